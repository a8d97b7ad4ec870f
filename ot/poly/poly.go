//
// poly.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package poly implements polynomials over prime fields.
package poly

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/markkurossi/text/superscript"
	"github.com/markkurossi/tnot/ot/mpint"
)

var (
	// ErrInterpolation is returned if the interpolation input is
	// malformed or the polynomial can't be constructed.
	ErrInterpolation = errors.New("interpolation failed")
)

// Polynomial defines a polynomial as its coefficients, highest degree
// first. The polynomial c[0]x^2 + c[1]x + c[2] has three
// coefficients.
type Polynomial []*big.Int

// Degree returns the polynomial degree. The degree of the empty
// polynomial is -1.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// Eval evaluates the polynomial at x modulo modulus.
func (p Polynomial) Eval(x, modulus *big.Int) *big.Int {
	return Evaluate(p, x, modulus)
}

func (p Polynomial) String() string {
	var sb strings.Builder

	for idx, c := range p {
		if c.Sign() == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" + ")
		}
		deg := len(p) - 1 - idx
		if deg == 0 || c.Cmp(big.NewInt(1)) != 0 {
			sb.WriteString(c.String())
		}
		if deg > 0 {
			sb.WriteRune('x')
		}
		if deg > 1 {
			sb.WriteString(superscript.Itoa(deg))
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

// Evaluate evaluates the polynomial coefficients (highest degree
// first) at x with Horner's scheme. The result is reduced modulo
// modulus.
func Evaluate(coeffs []*big.Int, x, modulus *big.Int) *big.Int {
	y := big.NewInt(0)
	for _, c := range coeffs {
		y.Mul(y, x)
		y.Add(y, c)
		y.Mod(y, modulus)
	}
	return y
}

// Interpolate returns the unique polynomial of degree len(xs)-1 that
// passes through the points (xs[i], ys[i]) over the prime field
// modulus. The x-coordinates must be distinct modulo modulus.
func Interpolate(xs, ys []*big.Int, modulus *big.Int) (Polynomial, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: no points", ErrInterpolation)
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: #xs=%d != #ys=%d",
			ErrInterpolation, len(xs), len(ys))
	}

	result := make(Polynomial, len(xs))
	for i := range result {
		result[i] = big.NewInt(0)
	}

	for i := range xs {
		// Numerator prod_{j!=i}(x - xs[j]) and denominator
		// prod_{j!=i}(xs[i] - xs[j]).
		num := Polynomial{big.NewInt(1)}
		den := big.NewInt(1)

		for j := range xs {
			if j == i {
				continue
			}
			num = num.mulLinear(mpint.Mod(new(big.Int).Neg(xs[j]), modulus),
				modulus)
			den.Mul(den, mpint.Sub(xs[i], xs[j]))
			den.Mod(den, modulus)
		}
		scale, err := mpint.ModDiv(ys[i], den, modulus)
		if err != nil {
			return nil, fmt.Errorf("%w: node %d: %w", ErrInterpolation, i, err)
		}
		for k, c := range num {
			c.Mul(c, scale)
			result[k].Add(result[k], c)
			result[k].Mod(result[k], modulus)
		}
	}

	for i, x := range xs {
		y := result.Eval(x, modulus)
		if y.Cmp(mpint.Mod(ys[i], modulus)) != 0 {
			return nil, fmt.Errorf("%w: f(%v)=%v != %v",
				ErrInterpolation, x, y, ys[i])
		}
	}
	return result, nil
}

// mulLinear multiplies the polynomial with (x + c) and returns the
// product.
func (p Polynomial) mulLinear(c, modulus *big.Int) Polynomial {
	result := make(Polynomial, len(p)+1)
	for k := range result {
		v := big.NewInt(0)
		if k < len(p) {
			v.Set(p[k])
		}
		if k > 0 {
			v.Add(v, mpint.Mul(c, p[k-1]))
		}
		result[k] = v.Mod(v, modulus)
	}
	return result
}
