//
// sender.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"crypto/rsa"
	"fmt"
	"math/big"
	"sync"

	"github.com/markkurossi/tnot/env"
	"github.com/markkurossi/tnot/ot/mpint"
	"github.com/markkurossi/tnot/ot/poly"
)

// Setup defines the sender's setup message.
type Setup struct {
	PublicKey *rsa.PublicKey
	// Prime is the field prime for the receiver's polynomial. If nil,
	// the receiver derives it from the public key modulus.
	Prime        *big.Int
	Hashes       [][]byte
	SecretLength int
	// Count is the number of messages the receiver may select. Zero
	// means unspecified.
	Count int
}

// NumMessages returns the number of sender's messages.
func (s *Setup) NumMessages() int {
	return len(s.Hashes)
}

type senderState int

const (
	senderConstructed senderState = iota
	senderSetupPublished
	senderTransmitted
)

var senderStates = map[senderState]string{
	senderConstructed:    "constructed",
	senderSetupPublished: "setup published",
	senderTransmitted:    "transmitted",
}

func (s senderState) String() string {
	name, ok := senderStates[s]
	if ok {
		return name
	}
	return fmt.Sprintf("{senderState %d}", s)
}

// Sender implements the t-out-of-n OT sender. The sender is not safe
// for concurrent use.
type Sender struct {
	config       *env.Config
	state        senderState
	messages     [][]byte
	count        int
	secretLength int
	key          *PrivateKey
	prime        *big.Int
	hashes       [][]byte
}

// NewSender creates a new sender for the messages. The receiver can
// select count messages.
func NewSender(config *env.Config, messages [][]byte, count int) (
	*Sender, error) {

	if len(messages) == 0 {
		return nil, fmt.Errorf("%w: no messages", ErrInvalidMessageSet)
	}
	if count < 1 || count > len(messages) {
		return nil, fmt.Errorf("%w: count %d not in range [1, %d]",
			ErrInvalidSelection, count, len(messages))
	}
	secretLength := len(messages[0])
	for idx, m := range messages {
		if len(m) != secretLength {
			return nil, fmt.Errorf("%w: message %d length %d != %d",
				ErrInvalidMessageSet, idx, len(m), secretLength)
		}
	}
	bits := config.GetKeyBits()
	if secretLength >= (bits+7)/8 {
		return nil, fmt.Errorf("%w: message length %d too long for %d bit key",
			ErrInvalidMessageSet, secretLength, bits)
	}

	key, err := GenerateKey(config.GetRandom(), bits)
	if err != nil {
		return nil, err
	}

	sender := &Sender{
		config:       config,
		messages:     make([][]byte, len(messages)),
		count:        count,
		secretLength: secretLength,
		key:          key,
		prime:        mpint.NextPrime(key.PublicKey().N),
		hashes:       make([][]byte, len(messages)),
	}
	for idx, m := range messages {
		sender.messages[idx] = append([]byte(nil), m...)
		sender.hashes[idx] = Commit(m)
	}
	sender.Debugf("Sender: n=%d, t=%d, L=%d, key=%d bits\n",
		len(messages), count, secretLength, bits)

	return sender, nil
}

// Debugf prints debugging message if verbose output is enabled.
func (s *Sender) Debugf(format string, a ...interface{}) {
	if s.config == nil || !s.config.Verbose {
		return
	}
	fmt.Printf(format, a...)
}

// PublicKey returns the sender's public key.
func (s *Sender) PublicKey() *rsa.PublicKey {
	return s.key.PublicKey()
}

// Prime returns the field prime.
func (s *Sender) Prime() *big.Int {
	return new(big.Int).Set(s.prime)
}

// Setup returns the sender's setup message. The function can be
// called multiple times until the messages are transmitted.
func (s *Sender) Setup() *Setup {
	if s.state == senderConstructed {
		s.state = senderSetupPublished
	}
	hashes := make([][]byte, len(s.hashes))
	for idx, h := range s.hashes {
		hashes[idx] = append([]byte(nil), h...)
	}
	return &Setup{
		PublicKey:    s.PublicKey(),
		Prime:        s.Prime(),
		Hashes:       hashes,
		SecretLength: s.secretLength,
		Count:        s.count,
	}
}

// Transmit computes the blinded messages for the receiver's
// polynomial f. The result has one value for each sender message. The
// messages can be transmitted only once.
func (s *Sender) Transmit(f poly.Polynomial) ([]*big.Int, error) {
	if s.state != senderSetupPublished {
		return nil, fmt.Errorf("%w: transmit in state %s",
			ErrProtocolState, s.state)
	}
	if len(f) != s.count {
		return nil, fmt.Errorf("%w: polynomial has %d coefficients, expected %d",
			ErrSelectionCountMismatch, len(f), s.count)
	}
	for idx, c := range f {
		if c == nil || c.Sign() < 0 || c.Cmp(s.prime) >= 0 {
			return nil, fmt.Errorf("%w: coefficient %d out of range",
				ErrInvalidPolynomial, idx)
		}
	}

	result := make([]*big.Int, len(s.messages))

	workers := s.config.GetWorkers()
	if workers > len(result) {
		workers = len(result)
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(result); i += workers {
				result[i] = s.blind(f, i)
			}
		}(w)
	}
	wg.Wait()

	s.state = senderTransmitted
	s.Debugf("Sender: transmitted %d values with %d workers\n",
		len(result), workers)

	return result, nil
}

// blind computes f(i)^d * m_i (mod n).
func (s *Sender) blind(f poly.Polynomial, i int) *big.Int {
	n := s.key.PublicKey().N
	y := f.Eval(big.NewInt(int64(i)), s.prime)
	k := s.key.Transform(y)
	return mpint.Mod(mpint.Mul(k, mpint.FromBytes(s.messages[i])), n)
}
