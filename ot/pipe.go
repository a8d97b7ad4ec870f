//
// pipe.go
//
// Copyright (c) 2023-2025 Markku Rossi
//
// All rights reserved.

package ot

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/markkurossi/tnot/timing"
)

const (
	maxDataLen = 64 * 1024 * 1024
)

var (
	bo    = binary.BigEndian
	_  IO = &Pipe{}
)

// Pipe implements the IO interface with in-memory io.Pipe.
type Pipe struct {
	hdr   [4]byte
	r     *io.PipeReader
	w     *io.PipeWriter
	Stats timing.IOStats
}

// NewPipe creates a new in-memory pipe. Anything sent to the first
// endpoint can be received from the second and vice versa.
func NewPipe() (*Pipe, *Pipe) {
	ar, aw := io.Pipe()
	br, bw := io.Pipe()

	return &Pipe{
			r:     ar,
			w:     bw,
			Stats: timing.NewIOStats(),
		}, &Pipe{
			r:     br,
			w:     aw,
			Stats: timing.NewIOStats(),
		}
}

// SendData sends binary data.
func (p *Pipe) SendData(val []byte) error {
	if len(val) > maxDataLen {
		return fmt.Errorf("data too long: %d > %d", len(val), maxDataLen)
	}
	buf := make([]byte, 4+len(val))
	bo.PutUint32(buf, uint32(len(val)))
	copy(buf[4:], val)
	return p.write(buf)
}

// SendUint32 sends an uint32 value.
func (p *Pipe) SendUint32(val int) error {
	var buf [4]byte
	bo.PutUint32(buf[:], uint32(val))
	return p.write(buf[:])
}

func (p *Pipe) write(data []byte) error {
	n, err := p.w.Write(data)
	p.Stats.Sent.Add(uint64(n))
	return err
}

// Flush flushed any pending data in the connection.
func (p *Pipe) Flush() error {
	p.Stats.Flushed.Add(1)
	return nil
}

// Drain consumes all input from the pipe.
func (p *Pipe) Drain() error {
	_, err := io.Copy(io.Discard, p.r)
	return err
}

// Close closes the pipe.
func (p *Pipe) Close() error {
	return p.w.Close()
}

// ReceiveData receives binary data.
func (p *Pipe) ReceiveData() ([]byte, error) {
	l, err := p.ReceiveUint32()
	if err != nil {
		return nil, err
	}
	if l > maxDataLen {
		return nil, fmt.Errorf("data too long: %d > %d", l, maxDataLen)
	}
	data := make([]byte, l)
	if err := p.read(data); err != nil {
		return nil, err
	}
	return data, nil
}

// ReceiveUint32 receives an uint32 value.
func (p *Pipe) ReceiveUint32() (int, error) {
	if err := p.read(p.hdr[:]); err != nil {
		return 0, err
	}
	return int(bo.Uint32(p.hdr[:])), nil
}

func (p *Pipe) read(data []byte) error {
	n, err := io.ReadFull(p.r, data)
	p.Stats.Recvd.Add(uint64(n))
	return err
}
