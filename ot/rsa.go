//
// rsa.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"crypto/rsa"
	"fmt"
	"io"
	"math/big"

	"github.com/markkurossi/tnot/ot/mpint"
)

const (
	// MinKeyBits specifies the minimum RSA modulus size.
	MinKeyBits = 1024
)

// PrivateKey implements the sender's RSA trapdoor permutation.
type PrivateKey struct {
	key *rsa.PrivateKey
}

// GenerateKey creates a new RSA key with a bits long modulus.
func GenerateKey(rand io.Reader, bits int) (*PrivateKey, error) {
	if bits < MinKeyBits {
		return nil, fmt.Errorf("RSA key size %d too small, minimum is %d",
			bits, MinKeyBits)
	}
	key, err := rsa.GenerateKey(rand, bits)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{
		key: key,
	}, nil
}

// PublicKey returns the public key.
func (k *PrivateKey) PublicKey() *rsa.PublicKey {
	return &k.key.PublicKey
}

// Size returns the modulus size in bytes.
func (k *PrivateKey) Size() int {
	return k.key.PublicKey.Size()
}

// Transform computes v^d mod n.
func (k *PrivateKey) Transform(v *big.Int) *big.Int {
	return mpint.Exp(v, k.key.D, k.key.PublicKey.N)
}

// PublicEncrypt computes v^e mod n.
func PublicEncrypt(pub *rsa.PublicKey, v *big.Int) *big.Int {
	e := big.NewInt(int64(pub.E))
	return mpint.Exp(v, e, pub.N)
}
