//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	var config *Config

	if config.GetRandom() != rand.Reader {
		t.Errorf("nil config: unexpected random source")
	}
	if config.GetKeyBits() != DefaultKeyBits {
		t.Errorf("nil config: GetKeyBits=%v, expected %v",
			config.GetKeyBits(), DefaultKeyBits)
	}
	if config.GetWorkers() <= 0 {
		t.Errorf("nil config: GetWorkers=%v", config.GetWorkers())
	}

	prg := NewPRG([]byte("seed"))
	config = &Config{
		Rand:    prg,
		KeyBits: 1024,
		Workers: 3,
	}
	if config.GetRandom() != prg {
		t.Errorf("configured random source not returned")
	}
	if config.GetKeyBits() != 1024 {
		t.Errorf("GetKeyBits=%v, expected 1024", config.GetKeyBits())
	}
	if config.GetWorkers() != 3 {
		t.Errorf("GetWorkers=%v, expected 3", config.GetWorkers())
	}
}

func TestPRG(t *testing.T) {
	a := make([]byte, 100)
	b := make([]byte, 100)

	NewPRG([]byte("seed")).Read(a)
	NewPRG([]byte("seed")).Read(b)
	if !bytes.Equal(a, b) {
		t.Fatalf("PRG not deterministic")
	}

	NewPRG([]byte("other")).Read(b)
	if bytes.Equal(a, b) {
		t.Fatalf("different seeds produced the same stream")
	}

	// Consecutive reads continue the keystream.
	prg := NewPRG([]byte("seed"))
	c := make([]byte, 40)
	prg.Read(c)
	prg.Read(c[:0])
	d := make([]byte, 60)
	prg.Read(d)
	if !bytes.Equal(a[:40], c) || !bytes.Equal(a[40:], d) {
		t.Fatalf("PRG stream not continuous")
	}
}
