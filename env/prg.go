//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"crypto/sha256"

	"golang.org/x/crypto/chacha20"
)

// PRG implements a deterministic io.Reader producing the ChaCha20
// keystream of a seed. It must only be used where reproducible
// randomness is wanted, such as tests.
type PRG struct {
	cipher *chacha20.Cipher
}

// NewPRG creates a new PRG from the seed. The seed is hashed into the
// ChaCha20 key so it can be of any length.
func NewPRG(seed []byte) *PRG {
	key := sha256.Sum256(seed)
	nonce := make([]byte, chacha20.NonceSize)

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		panic(err)
	}
	return &PRG{
		cipher: c,
	}
}

// Read fills data with keystream bytes. It never fails.
func (prg *PRG) Read(data []byte) (int, error) {
	for i := range data {
		data[i] = 0
	}
	prg.cipher.XORKeyStream(data, data)
	return len(data), nil
}
