//
// main.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/markkurossi/tnot/env"
	"github.com/markkurossi/tnot/ot"
	"github.com/markkurossi/tnot/timing"
)

func main() {
	keyBits := flag.Int("bits", env.DefaultKeyBits, "RSA key size in bits")
	selectFlag := flag.String("select", "0,2", "comma-separated message indices")
	workers := flag.Int("workers", 0, "sender worker goroutines (0=#CPUs)")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Parse()
	log.SetFlags(0)

	var messages [][]byte
	for _, arg := range flag.Args() {
		messages = append(messages, []byte(arg))
	}
	if len(messages) == 0 {
		messages = [][]byte{
			[]byte("Secret message 1"),
			[]byte("Secret message 2"),
			[]byte("Secret message 3"),
		}
	}
	selection, err := parseSelection(*selectFlag)
	if err != nil {
		log.Fatal(err)
	}

	config := &env.Config{
		KeyBits: *keyBits,
		Workers: *workers,
		Verbose: *verbose,
	}

	pipe, rPipe := ot.NewPipe()
	sTiming := timing.NewTiming("Sender", pipe.Stats)
	rTiming := timing.NewTiming("Receiver", rPipe.Stats)

	keygen := sTiming.Phase("Keygen")
	sender, err := ot.NewSender(config, messages, len(selection))
	if err != nil {
		log.Fatal(err)
	}
	keygen.Done()

	receiver, err := ot.NewReceiver(config, selection)
	if err != nil {
		log.Fatal(err)
	}

	done := make(chan error)

	var results []ot.Result
	go func(pipe *ot.Pipe) {
		var err error
		results, err = ot.RunReceiver(pipe, receiver, rTiming)
		if err != nil {
			pipe.Drain()
		}
		done <- err
	}(rPipe)

	sErr := ot.RunSender(pipe, sender, sTiming)
	rErr := <-done
	if sErr != nil && sErr != io.EOF {
		log.Fatal(sErr)
	}
	if rErr != nil {
		log.Fatal(rErr)
	}
	if sErr != nil {
		log.Fatal(sErr)
	}

	var failed bool
	for j, r := range results {
		if r.Err != nil {
			fmt.Printf("m%d: %v\n", r.Index, r.Err)
			failed = true
			continue
		}
		fmt.Printf("m%d: %q\n", r.Index, r.Message)
		if !bytes.Equal(r.Message, messages[selection[j]]) {
			fmt.Printf("Verify failed!\n")
			failed = true
		}
	}

	if *verbose {
		sTiming.Print(os.Stdout)
		rTiming.Print(os.Stdout)
	}
	if failed {
		os.Exit(1)
	}
}

func parseSelection(value string) ([]int, error) {
	var result []int
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if len(part) == 0 {
			continue
		}
		idx, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid selection '%s': %v", part, err)
		}
		result = append(result, idx)
	}
	return result, nil
}
