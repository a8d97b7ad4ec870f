//
// io.go
//
// Copyright (c) 2023-2025 Markku Rossi
//
// All rights reserved.

package ot

import (
	"crypto/rsa"
	"fmt"
	"math/big"
)

// IO defines an I/O interface to communicate between peers.
type IO interface {
	// SendData sends binary data.
	SendData(val []byte) error

	// SendUint32 sends an uint32 value.
	SendUint32(val int) error

	// Flush flushed any pending data in the connection.
	Flush() error

	// ReceiveData receives binary data.
	ReceiveData() ([]byte, error)

	// ReceiveUint32 receives an uint32 value.
	ReceiveUint32() (int, error)
}

// SendBigInt sends a non-negative big.Int value.
func SendBigInt(io IO, v *big.Int) error {
	return io.SendData(v.Bytes())
}

// ReceiveBigInt receives a bit.Int from the connection.
func ReceiveBigInt(io IO) (*big.Int, error) {
	data, err := io.ReceiveData()
	if err != nil {
		return nil, err
	}
	return big.NewInt(0).SetBytes(data), nil
}

// SendBigInts sends an array of big.Int values.
func SendBigInts(io IO, values []*big.Int) error {
	if err := io.SendUint32(len(values)); err != nil {
		return err
	}
	for _, v := range values {
		if err := SendBigInt(io, v); err != nil {
			return err
		}
	}
	return nil
}

// ReceiveBigInts receives an array of big.Int values. The argument
// limit specifies the maximum number of values to accept.
func ReceiveBigInts(io IO, limit int) ([]*big.Int, error) {
	count, err := io.ReceiveUint32()
	if err != nil {
		return nil, err
	}
	if count > limit {
		return nil, fmt.Errorf("too many values: %d > %d", count, limit)
	}
	result := make([]*big.Int, count)
	for i := 0; i < count; i++ {
		result[i], err = ReceiveBigInt(io)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// SendSetup sends the sender's setup message.
func SendSetup(io IO, setup *Setup) error {
	if err := io.SendUint32(setup.PublicKey.E); err != nil {
		return err
	}
	if err := SendBigInt(io, setup.PublicKey.N); err != nil {
		return err
	}
	var prime []byte
	if setup.Prime != nil {
		prime = setup.Prime.Bytes()
	}
	if err := io.SendData(prime); err != nil {
		return err
	}
	if err := io.SendUint32(setup.SecretLength); err != nil {
		return err
	}
	if err := io.SendUint32(setup.Count); err != nil {
		return err
	}
	if err := io.SendUint32(len(setup.Hashes)); err != nil {
		return err
	}
	for _, h := range setup.Hashes {
		if err := io.SendData(h); err != nil {
			return err
		}
	}
	return nil
}

// ReceiveSetup receives the sender's setup message.
func ReceiveSetup(io IO) (*Setup, error) {
	e, err := io.ReceiveUint32()
	if err != nil {
		return nil, err
	}
	n, err := ReceiveBigInt(io)
	if err != nil {
		return nil, err
	}
	primeData, err := io.ReceiveData()
	if err != nil {
		return nil, err
	}
	var prime *big.Int
	if len(primeData) > 0 {
		prime = big.NewInt(0).SetBytes(primeData)
	}
	secretLength, err := io.ReceiveUint32()
	if err != nil {
		return nil, err
	}
	count, err := io.ReceiveUint32()
	if err != nil {
		return nil, err
	}
	numHashes, err := io.ReceiveUint32()
	if err != nil {
		return nil, err
	}
	if numHashes > MaxMessages {
		return nil, fmt.Errorf("%w: too many messages: %d",
			ErrInvalidSetup, numHashes)
	}
	hashes := make([][]byte, numHashes)
	for i := 0; i < numHashes; i++ {
		hashes[i], err = io.ReceiveData()
		if err != nil {
			return nil, err
		}
	}

	return &Setup{
		PublicKey: &rsa.PublicKey{
			N: n,
			E: e,
		},
		Prime:        prime,
		Hashes:       hashes,
		SecretLength: secretLength,
		Count:        count,
	}, nil
}
