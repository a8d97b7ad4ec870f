//
// mpint_test.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"errors"
	"math/big"
	"testing"
)

var (
	oneData   = []byte{0x1}
	twoData   = []byte{0x2}
	threeData = []byte{0x3}
)

func TestMPInt(t *testing.T) {
	one := FromBytes(oneData)
	two := FromBytes(twoData)
	three := FromBytes(threeData)

	sum := Add(one, two)
	if sum.Cmp(three) != 0 {
		t.Errorf("%s + %s = %s, expected %s", one, two, sum, three)
	}
	diff := Sub(one, three)
	if diff.Int64() != -2 {
		t.Errorf("%s - %s = %s, expected -2", one, three, diff)
	}
	if m := Mod(diff, three); m.Int64() != 1 {
		t.Errorf("%s mod %s = %s, expected 1", diff, three, m)
	}
	if e := Exp(three, two, big.NewInt(5)); e.Int64() != 4 {
		t.Errorf("%s^%s mod 5 = %s, expected 4", three, two, e)
	}
}

func TestModInverse(t *testing.T) {
	tests := []struct {
		a, n int64
		ok   bool
	}{
		{3, 11, true},
		{10, 17, true},
		{-4, 7, true},
		{1, 2, true},
		{6, 9, false},
		{0, 13, false},
		{5, 1, false},
	}
	for _, test := range tests {
		a := big.NewInt(test.a)
		n := big.NewInt(test.n)
		inv, err := ModInverse(a, n)
		if !test.ok {
			if !errors.Is(err, ErrNoInverse) {
				t.Errorf("ModInverse(%v, %v): expected ErrNoInverse, got %v",
					a, n, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ModInverse(%v, %v) failed: %v", a, n, err)
		}
		if inv.Sign() < 0 || inv.Cmp(n) >= 0 {
			t.Errorf("ModInverse(%v, %v)=%v not reduced", a, n, inv)
		}
		check := Mod(Mul(a, inv), n)
		if check.Cmp(big.NewInt(1)) != 0 {
			t.Errorf("%v * %v = %v (mod %v), expected 1", a, inv, check, n)
		}
	}
}

func TestModDiv(t *testing.T) {
	n := big.NewInt(101)
	for a := int64(0); a < 101; a += 7 {
		for b := int64(1); b < 101; b += 9 {
			q, err := ModDiv(big.NewInt(a), big.NewInt(b), n)
			if err != nil {
				t.Fatalf("ModDiv(%v, %v) failed: %v", a, b, err)
			}
			if Mod(Mul(q, big.NewInt(b)), n).Int64() != a {
				t.Errorf("ModDiv(%v, %v)=%v", a, b, q)
			}
		}
	}
	_, err := ModDiv(big.NewInt(1), big.NewInt(0), n)
	if !errors.Is(err, ErrNoInverse) {
		t.Errorf("division by zero: expected ErrNoInverse, got %v", err)
	}
}

func TestNextPrime(t *testing.T) {
	tests := []struct {
		bound, prime int64
	}{
		{-5, 2},
		{0, 2},
		{1, 2},
		{2, 3},
		{3, 5},
		{4, 5},
		{13, 17},
		{89, 97},
		{7918, 7919},
		{7919, 7927},
	}
	for _, test := range tests {
		p := NextPrime(big.NewInt(test.bound))
		if p.Int64() != test.prime {
			t.Errorf("NextPrime(%v)=%v, expected %v", test.bound, p, test.prime)
		}
	}

	// 2^127-1 is a Mersenne prime; 2^127-2 is its predecessor.
	m127 := Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	if p := NextPrime(Sub(m127, big.NewInt(1))); p.Cmp(m127) != 0 {
		t.Errorf("NextPrime(2^127-2)=%v, expected %v", p, m127)
	}
	if !IsPrime(m127) {
		t.Errorf("IsPrime(2^127-1)=false")
	}
}

func TestNextPrimeDeterministic(t *testing.T) {
	bound, ok := new(big.Int).SetString(
		"c90fdaa22168c234c4c6628b80dc1cd129024e088a67cc74020bbea63b139b22", 16)
	if !ok {
		t.Fatal("SetString failed")
	}
	p0 := NextPrime(bound)
	p1 := NextPrime(bound)
	if p0.Cmp(p1) != 0 {
		t.Fatalf("NextPrime not deterministic: %v != %v", p0, p1)
	}
	if p0.Cmp(bound) <= 0 || !IsPrime(p0) {
		t.Fatalf("NextPrime(%v)=%v is invalid", bound, p0)
	}
	for c := Add(bound, big.NewInt(1)); c.Cmp(p0) < 0; c.Add(c, big.NewInt(1)) {
		if IsPrime(c) {
			t.Fatalf("found smaller prime %v < %v", c, p0)
		}
	}
}
