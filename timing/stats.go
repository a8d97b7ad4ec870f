//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package timing

import (
	"sync/atomic"
)

// IOStats implements I/O statistics.
type IOStats struct {
	Sent    *atomic.Uint64
	Recvd   *atomic.Uint64
	Flushed *atomic.Uint64
}

// NewIOStats creates a new I/O statistics object.
func NewIOStats() IOStats {
	return IOStats{
		Sent:    new(atomic.Uint64),
		Recvd:   new(atomic.Uint64),
		Flushed: new(atomic.Uint64),
	}
}

// Sum returns sum of sent and received bytes.
func (stats IOStats) Sum() uint64 {
	return load(stats.Sent) + load(stats.Recvd)
}

func load(v *atomic.Uint64) uint64 {
	if v == nil {
		return 0
	}
	return v.Load()
}
