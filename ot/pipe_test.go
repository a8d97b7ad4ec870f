//
// pipe_test.go
//
// Copyright (c) 2023-2025 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
	"testing"
)

func TestPipe(t *testing.T) {
	var tests = []interface{}{
		big.NewInt(0x4242),
		42,
		[]byte("Hello, world!"),
		[]byte{},
		[]*big.Int{big.NewInt(1), big.NewInt(0), big.NewInt(1 << 40)},
	}

	pipe, rPipe := NewPipe()
	done := make(chan error)

	go func(pipe *Pipe) {
		for _, test := range tests {
			switch v := test.(type) {
			case *big.Int:
				val, err := ReceiveBigInt(pipe)
				if err != nil {
					done <- err
					pipe.Close()
					return
				}
				if val.Cmp(v) != 0 {
					done <- fmt.Errorf("ReceiveBigInt: mismatch: %v != %v",
						val, v)
					pipe.Close()
					return
				}

			case int:
				val, err := pipe.ReceiveUint32()
				if err != nil {
					done <- err
					pipe.Close()
					return
				}
				if val != v {
					done <- fmt.Errorf("ReceiveUint32: mismatch: %v != %v",
						val, v)
					pipe.Close()
					return
				}

			case []byte:
				data, err := pipe.ReceiveData()
				if err != nil {
					done <- err
					pipe.Close()
					return
				}
				if bytes.Compare(data, v) != 0 {
					done <- fmt.Errorf("ReceiveData: mismatch: %x != %x",
						data, v)
					pipe.Close()
					return
				}

			case []*big.Int:
				vals, err := ReceiveBigInts(pipe, len(v))
				if err != nil {
					done <- err
					pipe.Close()
					return
				}
				for i := range v {
					if vals[i].Cmp(v[i]) != 0 {
						done <- fmt.Errorf("ReceiveBigInts: mismatch: %v != %v",
							vals, v)
						pipe.Close()
						return
					}
				}

			default:
				panic(fmt.Sprintf("receive %v(%T) not supported", v, v))
			}
		}
		_, err := pipe.ReceiveUint32()
		if err != io.EOF {
			done <- fmt.Errorf("expected EOF, got %v", err)
			return
		}
		done <- nil
	}(rPipe)

	for _, test := range tests {
		switch v := test.(type) {
		case *big.Int:
			err := SendBigInt(pipe, v)
			if err != nil {
				t.Errorf("SendBigInt failed: %v", err)
			}

		case int:
			err := pipe.SendUint32(v)
			if err != nil {
				t.Errorf("SendUint32 failed: %v", err)
			}

		case []byte:
			err := pipe.SendData(v)
			if err != nil {
				t.Errorf("SendData failed: %v", err)
			}

		case []*big.Int:
			err := SendBigInts(pipe, v)
			if err != nil {
				t.Errorf("SendBigInts failed: %v", err)
			}
		}
	}
	err := pipe.Close()
	if err != nil {
		t.Errorf("Close failed: %v", err)
	}

	err = <-done
	if err != nil {
		t.Errorf("consumer failed: %v", err)
	}

	if pipe.Stats.Sent.Load() != rPipe.Stats.Recvd.Load() {
		t.Errorf("sent %v bytes, received %v bytes",
			pipe.Stats.Sent.Load(), rPipe.Stats.Recvd.Load())
	}
	if pipe.Stats.Sum() == 0 {
		t.Errorf("no I/O statistics")
	}
}

func TestPipeTooManyValues(t *testing.T) {
	pipe, rPipe := NewPipe()

	go func() {
		SendBigInts(pipe, []*big.Int{big.NewInt(1), big.NewInt(2)})
		pipe.Close()
	}()

	_, err := ReceiveBigInts(rPipe, 1)
	if err == nil {
		t.Fatalf("ReceiveBigInts accepted too many values")
	}
	rPipe.Drain()
}
