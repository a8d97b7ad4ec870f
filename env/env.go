//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the OT system.
package env

import (
	"crypto/rand"
	"io"
	"runtime"
)

const (
	// DefaultKeyBits specifies the default RSA modulus size.
	DefaultKeyBits = 2048
)

// Config defines the global system configuration for the OT
// system. Config must not be modified after being passed to any OT
// module. It is safe for concurrent use by multiple modules as they
// do not modify it.
type Config struct {
	// Rand is the source of entropy. If nil, crypto/rand.Reader is
	// used.
	Rand io.Reader

	// KeyBits specifies the RSA modulus size in bits. The modulus
	// size also bounds the field prime and the maximum message
	// length. If zero, DefaultKeyBits is used.
	KeyBits int

	// Workers specifies how many goroutines the sender uses for
	// computing the blinded values. If zero, runtime.NumCPU() is
	// used.
	Workers int

	// Verbose enables diagnostic output.
	Verbose bool
}

// GetRandom returns the source of entropy for key generation,
// blinding factors, and other cryptography operations.
func (config *Config) GetRandom() io.Reader {
	if config != nil && config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetKeyBits returns the RSA modulus size in bits.
func (config *Config) GetKeyBits() int {
	if config != nil && config.KeyBits > 0 {
		return config.KeyBits
	}
	return DefaultKeyBits
}

// GetWorkers returns the number of worker goroutines.
func (config *Config) GetWorkers() int {
	if config != nil && config.Workers > 0 {
		return config.Workers
	}
	return runtime.NumCPU()
}
