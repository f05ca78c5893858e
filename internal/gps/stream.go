// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package gps

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/relabs-tech/gnss_fix/internal/nmea0183"
)

// Epoch is the result of decoding one block.
type Epoch struct {
	State *nmea0183.FixState
	Stats nmea0183.Stats
}

// DecodeEpochs reads NMEA lines from r, frames them into epochs and calls
// emit with every decoded epoch. The trailing partial epoch is decoded at
// EOF. An error returned by emit stops the loop and is returned as is.
func DecodeEpochs(r io.Reader, framer *EpochFramer, dec *nmea0183.Decoder, emit func(Epoch) error) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if block, ok := framer.Push(line); ok {
				if emitErr := decodeBlock(block, dec, emit); emitErr != nil {
					return emitErr
				}
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read nmea stream: %w", err)
		}
	}

	if block, ok := framer.Flush(); ok {
		return decodeBlock(block, dec, emit)
	}
	return nil
}

func decodeBlock(block string, dec *nmea0183.Decoder, emit func(Epoch) error) error {
	st, stats := dec.Decode(block)
	return emit(Epoch{State: st, Stats: stats})
}
