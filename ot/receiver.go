//
// receiver.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/markkurossi/tnot/env"
	"github.com/markkurossi/tnot/ot/mpint"
	"github.com/markkurossi/tnot/ot/poly"
)

// Result holds the outcome of one selected message.
type Result struct {
	Index   int
	Message []byte
	// Err is an *IntegrityError if the recovered message did not
	// match the sender's hash. Message is nil in that case.
	Err error
}

// Plaintexts returns the messages of the results. The returned error
// joins all per-message errors; messages of the failed results are
// nil.
func Plaintexts(results []Result) ([][]byte, error) {
	messages := make([][]byte, len(results))
	var errs []error
	for idx, r := range results {
		messages[idx] = r.Message
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return messages, errors.Join(errs...)
}

type receiverState int

const (
	receiverConstructed receiverState = iota
	receiverSetupReceived
	receiverDecrypted
)

func (s receiverState) String() string {
	switch s {
	case receiverConstructed:
		return "constructed"
	case receiverSetupReceived:
		return "setup received"
	case receiverDecrypted:
		return "decrypted"
	default:
		return fmt.Sprintf("{receiverState %d}", s)
	}
}

// Receiver implements the t-out-of-n OT receiver. The receiver is not
// safe for concurrent use.
type Receiver struct {
	config       *env.Config
	state        receiverState
	selection    []int
	pub          *rsa.PublicKey
	prime        *big.Int
	hashes       [][]byte
	secretLength int
	blinds       []*big.Int
}

// NewReceiver creates a new receiver for the selected message
// indices. The selected messages are returned in the selection order.
func NewReceiver(config *env.Config, selection []int) (*Receiver, error) {
	if len(selection) == 0 {
		return nil, fmt.Errorf("%w: no messages selected", ErrInvalidSelection)
	}
	seen := make(map[int]bool)
	for _, idx := range selection {
		if idx < 0 {
			return nil, fmt.Errorf("%w: negative index %d",
				ErrInvalidSelection, idx)
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: duplicate index %d",
				ErrInvalidSelection, idx)
		}
		seen[idx] = true
	}
	return &Receiver{
		config:    config,
		selection: append([]int(nil), selection...),
	}, nil
}

// Debugf prints debugging message if verbose output is enabled.
func (r *Receiver) Debugf(format string, a ...interface{}) {
	if r.config == nil || !r.config.Verbose {
		return
	}
	fmt.Printf(format, a...)
}

// ConsumeSetup processes the sender's setup message. It samples fresh
// blinding factors and returns the polynomial the receiver sends to
// the sender.
func (r *Receiver) ConsumeSetup(setup *Setup) (poly.Polynomial, error) {
	if r.state != receiverConstructed {
		return nil, fmt.Errorf("%w: setup in state %s",
			ErrProtocolState, r.state)
	}
	if err := r.checkSetup(setup); err != nil {
		return nil, err
	}
	pub := setup.PublicKey

	var prime *big.Int
	if setup.Prime != nil {
		if setup.Prime.Cmp(pub.N) <= 0 || !mpint.IsPrime(setup.Prime) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPrime, setup.Prime)
		}
		prime = new(big.Int).Set(setup.Prime)
	} else {
		prime = mpint.NextPrime(pub.N)
	}

	blinds := make([]*big.Int, len(r.selection))
	xs := make([]*big.Int, len(r.selection))
	ys := make([]*big.Int, len(r.selection))
	for j, idx := range r.selection {
		blind, err := randomUnit(r.config.GetRandom(), pub.N)
		if err != nil {
			return nil, err
		}
		blinds[j] = blind
		xs[j] = big.NewInt(int64(idx))
		ys[j] = PublicEncrypt(pub, blind)
	}
	f, err := poly.Interpolate(xs, ys, prime)
	if err != nil {
		return nil, err
	}

	r.pub = pub
	r.prime = prime
	r.hashes = make([][]byte, len(setup.Hashes))
	for idx, h := range setup.Hashes {
		r.hashes[idx] = append([]byte(nil), h...)
	}
	r.secretLength = setup.SecretLength
	r.blinds = blinds
	r.state = receiverSetupReceived

	r.Debugf("Receiver: G: %d bits\n", prime.BitLen())
	r.Debugf("Receiver: f(x)=%v\n", f)

	return f, nil
}

func (r *Receiver) checkSetup(setup *Setup) error {
	if setup == nil || setup.PublicKey == nil || setup.PublicKey.N == nil {
		return fmt.Errorf("%w: missing public key", ErrInvalidSetup)
	}
	pub := setup.PublicKey
	if pub.N.Sign() <= 0 || pub.E < 3 {
		return fmt.Errorf("%w: invalid public key", ErrInvalidSetup)
	}
	if pub.N.BitLen() < MinKeyBits {
		return fmt.Errorf("%w: %d bit modulus, minimum is %d bits",
			ErrInvalidSetup, pub.N.BitLen(), MinKeyBits)
	}
	if setup.SecretLength < 0 || setup.SecretLength >= pub.Size() {
		return fmt.Errorf("%w: invalid secret length %d",
			ErrInvalidSetup, setup.SecretLength)
	}
	for idx, h := range setup.Hashes {
		if len(h) != sha256.Size {
			return fmt.Errorf("%w: hash %d length %d",
				ErrInvalidSetup, idx, len(h))
		}
	}
	if setup.Count != 0 && setup.Count != len(r.selection) {
		return fmt.Errorf("%w: selected %d messages, sender allows %d",
			ErrSelectionCountMismatch, len(r.selection), setup.Count)
	}
	n := setup.NumMessages()
	if len(r.selection) > n {
		return fmt.Errorf("%w: selected %d messages out of %d",
			ErrInvalidSelection, len(r.selection), n)
	}
	for _, idx := range r.selection {
		if idx >= n {
			return fmt.Errorf("%w: index %d out of range [0, %d)",
				ErrInvalidSelection, idx, n)
		}
	}
	return nil
}

// randomUnit returns a uniformly random invertible element of Z_n.
func randomUnit(r io.Reader, n *big.Int) (*big.Int, error) {
	for {
		v, err := rand.Int(r, n)
		if err != nil {
			return nil, err
		}
		if v.Sign() == 0 {
			continue
		}
		if _, err := mpint.ModInverse(v, n); err == nil {
			return v, nil
		}
	}
}

// Receive recovers the selected messages from the sender's blinded
// values. It returns one result for each selected message in the
// selection order. A message whose hash does not match the sender's
// commitment is reported in its Result.Err while the other results
// remain valid.
func (r *Receiver) Receive(values []*big.Int) ([]Result, error) {
	if r.state != receiverSetupReceived {
		return nil, fmt.Errorf("%w: receive in state %s",
			ErrProtocolState, r.state)
	}
	if len(values) != len(r.hashes) {
		return nil, fmt.Errorf("%w: got %d values, expected %d",
			ErrInvalidTransmission, len(values), len(r.hashes))
	}

	results := make([]Result, len(r.selection))
	for j, idx := range r.selection {
		results[j].Index = idx

		v := values[idx]
		if v == nil || v.Sign() < 0 || v.Cmp(r.pub.N) >= 0 {
			results[j].Err = &IntegrityError{
				Index: idx,
			}
			continue
		}
		d, err := mpint.ModDiv(v, r.blinds[j], r.pub.N)
		if err != nil {
			results[j].Err = err
			continue
		}
		buf := d.FillBytes(make([]byte, r.pub.Size()))
		m := buf[len(buf)-r.secretLength:]

		if !Verify(m, r.hashes[idx]) {
			r.Debugf("Receiver: message %d hash mismatch\n", idx)
			results[j].Err = &IntegrityError{
				Index: idx,
			}
			continue
		}
		results[j].Message = m
	}
	r.blinds = nil
	r.state = receiverDecrypted

	return results, nil
}
