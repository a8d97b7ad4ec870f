//
// ot.go
//
// Copyright (c) 2023-2025 Markku Rossi
//
// All rights reserved.

// Package ot implements the t-out-of-n oblivious transfer protocol
// based on the RSA trapdoor permutation and polynomial interpolation
// over a prime field.
//
// The sender holds n equal-length messages. The receiver selects t of
// them and learns exactly the selected messages. The sender learns
// nothing about the selection and the receiver learns nothing about
// the messages it did not select. The protocol has three messages:
//
//	Sender   -> Receiver: Setup{public key, prime, hashes, length}
//	Receiver -> Sender:   f, a polynomial of degree t-1 over GF(p)
//	Sender   -> Receiver: f(i)^d * m_i (mod n) for all i in [0, n)
//
// The receiver picks random blinding factors r_j and interpolates f
// through the points (s_j, r_j^e mod n) where s_j are the selected
// indices. For the selected indices f(s_j)^d = r_j (mod n) so the
// receiver recovers m_j by dividing out r_j.
package ot

import (
	"math/big"

	"github.com/markkurossi/tnot/ot/poly"
)

var (
	_ KSender   = &Sender{}
	_ KReceiver = &Receiver{}
)

// KSender defines the sender side of the t-out-of-n OT protocol.
type KSender interface {
	// Setup returns the sender's setup message.
	Setup() *Setup

	// Transmit computes the blinded messages for the receiver's
	// polynomial.
	Transmit(f poly.Polynomial) ([]*big.Int, error)
}

// KReceiver defines the receiver side of the t-out-of-n OT protocol.
type KReceiver interface {
	// ConsumeSetup processes the sender's setup message and returns
	// the polynomial for the sender.
	ConsumeSetup(setup *Setup) (poly.Polynomial, error)

	// Receive recovers the selected messages from the sender's
	// blinded messages.
	Receive(values []*big.Int) ([]Result, error)
}
