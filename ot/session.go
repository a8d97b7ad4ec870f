//
// session.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.

package ot

import (
	"io"

	"github.com/markkurossi/tnot/timing"
)

const (
	// MaxMessages limits the number of messages the session functions
	// accept from the peer.
	MaxMessages = 1 << 20
)

// RunSender runs the sender side of the protocol with the peer
// connected with conn. The protocol phases are recorded into tm which
// can be nil. If the protocol fails and conn implements io.Closer,
// conn is closed so that the peer does not block waiting for the
// sender's messages.
func RunSender(conn IO, sender *Sender, tm *timing.Timing) error {
	err := runSender(conn, sender, tm)
	if err != nil {
		closeOnError(conn)
	}
	return err
}

func runSender(conn IO, sender *Sender, tm *timing.Timing) error {
	setup := tm.Phase("Setup")
	if err := SendSetup(conn, sender.Setup()); err != nil {
		return err
	}
	if err := conn.Flush(); err != nil {
		return err
	}
	setup.Done()

	xfer := tm.Phase("Transmit")
	f, err := ReceiveBigInts(conn, MaxMessages)
	if err != nil {
		return err
	}
	xfer.Step("Receive f")
	values, err := sender.Transmit(f)
	if err != nil {
		return err
	}
	xfer.Step("Blind")
	if err := SendBigInts(conn, values); err != nil {
		return err
	}
	if err := conn.Flush(); err != nil {
		return err
	}
	xfer.Step("Send")
	xfer.Done()

	return nil
}

// RunReceiver runs the receiver side of the protocol with the peer
// connected with conn. It returns the results for the selected
// messages. The protocol phases are recorded into tm which can be
// nil. If the protocol fails and conn implements io.Closer, conn is
// closed so that the peer does not block waiting for the receiver's
// messages.
func RunReceiver(conn IO, receiver *Receiver, tm *timing.Timing) (
	[]Result, error) {

	results, err := runReceiver(conn, receiver, tm)
	if err != nil {
		closeOnError(conn)
	}
	return results, err
}

func runReceiver(conn IO, receiver *Receiver, tm *timing.Timing) (
	[]Result, error) {

	phase := tm.Phase("Setup")
	setup, err := ReceiveSetup(conn)
	if err != nil {
		return nil, err
	}
	phase.Step("Receive setup")
	f, err := receiver.ConsumeSetup(setup)
	if err != nil {
		return nil, err
	}
	phase.Step("Interpolate")
	if err := SendBigInts(conn, f); err != nil {
		return nil, err
	}
	if err := conn.Flush(); err != nil {
		return nil, err
	}
	phase.Step("Send f")
	phase.Done()

	phase = tm.Phase("Receive")
	values, err := ReceiveBigInts(conn, setup.NumMessages())
	if err != nil {
		return nil, err
	}
	phase.Step("Receive values")
	results, err := receiver.Receive(values)
	if err != nil {
		return nil, err
	}
	phase.Step("Decrypt")
	phase.Done()

	return results, nil
}

func closeOnError(conn IO) {
	if closer, ok := conn.(io.Closer); ok {
		closer.Close()
	}
}
