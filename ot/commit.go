//
// commit.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"crypto/sha256"
	"crypto/subtle"
)

// Commit returns the commitment digest of the message.
func Commit(m []byte) []byte {
	digest := sha256.Sum256(m)
	return digest[:]
}

// Verify tests if the digest is the commitment of the message m.
func Verify(m, digest []byte) bool {
	return subtle.ConstantTimeCompare(Commit(m), digest) == 1
}
