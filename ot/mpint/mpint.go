//
// mpint.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

// Package mpint implements multi-precision integer and number theory
// helpers for the prime field and RSA arithmetic.
package mpint

import (
	"errors"
	"math/big"
)

const (
	// PrimeRounds specifies the number of Miller-Rabin rounds for
	// primality tests. The value is fixed so that both protocol
	// peers derive the same primes.
	PrimeRounds = 32
)

var (
	// ErrNoInverse is returned when the modular inverse does not
	// exist.
	ErrNoInverse = errors.New("no modular inverse")

	one = big.NewInt(1)
	two = big.NewInt(2)
)

func FromBytes(data []byte) *big.Int {
	return big.NewInt(0).SetBytes(data)
}

func Add(a, b *big.Int) *big.Int {
	return big.NewInt(0).Add(a, b)
}

func Sub(a, b *big.Int) *big.Int {
	return big.NewInt(0).Sub(a, b)
}

func Mul(a, b *big.Int) *big.Int {
	return big.NewInt(0).Mul(a, b)
}

func Exp(x, y, m *big.Int) *big.Int {
	return big.NewInt(0).Exp(x, y, m)
}

// Mod returns x mod y in the range [0, |y|).
func Mod(x, y *big.Int) *big.Int {
	return big.NewInt(0).Mod(x, y)
}

// ModInverse returns b such that a*b = 1 (mod n). The inverse is
// computed with the extended Euclidean algorithm. The function
// returns ErrNoInverse if gcd(a, n) != 1.
func ModInverse(a, n *big.Int) (*big.Int, error) {
	if n.Cmp(one) <= 0 {
		return nil, ErrNoInverse
	}
	x := big.NewInt(0)
	gcd := big.NewInt(0).GCD(x, nil, Mod(a, n), n)
	if gcd.Cmp(one) != 0 {
		return nil, ErrNoInverse
	}
	return x.Mod(x, n), nil
}

// ModDiv returns a/b (mod n).
func ModDiv(a, b, n *big.Int) (*big.Int, error) {
	inv, err := ModInverse(b, n)
	if err != nil {
		return nil, err
	}
	return inv.Mod(inv.Mul(inv, a), n), nil
}

// IsPrime tests if p is prime. The test is deterministic for the
// given p.
func IsPrime(p *big.Int) bool {
	return p.ProbablyPrime(PrimeRounds)
}

// NextPrime returns the smallest prime strictly greater than bound.
func NextPrime(bound *big.Int) *big.Int {
	if bound.Cmp(two) < 0 {
		return big.NewInt(2)
	}
	p := Add(bound, one)
	if p.Bit(0) == 0 {
		if p.Cmp(two) == 0 {
			return p
		}
		p.Add(p, one)
	}
	for !IsPrime(p) {
		p.Add(p, two)
	}
	return p
}
