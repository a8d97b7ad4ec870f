//
// errors.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"errors"
	"fmt"

	"github.com/markkurossi/tnot/ot/mpint"
	"github.com/markkurossi/tnot/ot/poly"
)

// Protocol errors. The interpolation and inverse errors are defined by
// the poly and mpint packages and re-exported here.
var (
	ErrInvalidMessageSet      = errors.New("invalid message set")
	ErrInvalidSelection       = errors.New("invalid selection")
	ErrSelectionCountMismatch = errors.New("selection count mismatch")
	ErrInvalidPolynomial      = errors.New("invalid polynomial")
	ErrInvalidSetup           = errors.New("invalid setup")
	ErrInvalidPrime           = errors.New("invalid field prime")
	ErrInvalidTransmission    = errors.New("invalid transmission")
	ErrIntegrityMismatch      = errors.New("integrity mismatch")
	ErrProtocolState          = errors.New("invalid protocol state")
	ErrInterpolation          = poly.ErrInterpolation
	ErrNoInverse              = mpint.ErrNoInverse
)

// IntegrityError reports that the plaintext recovered for the message
// Index does not match the sender's published hash.
type IntegrityError struct {
	Index int
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("message %d: %s", e.Index, ErrIntegrityMismatch)
}

// Unwrap returns ErrIntegrityMismatch.
func (e *IntegrityError) Unwrap() error {
	return ErrIntegrityMismatch
}
