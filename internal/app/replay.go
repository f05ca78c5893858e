// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/relabs-tech/gnss_fix/internal/gps"
	"github.com/relabs-tech/gnss_fix/internal/nmea0183"
)

// ReplaySummary totals a replay run.
type ReplaySummary struct {
	Epochs   int
	Records  int
	Rejected int
}

// RunReplay decodes a captured NMEA log epoch by epoch and writes one JSON
// Fix per line to out.
func RunReplay(in io.Reader, out io.Writer, epoch nmea0183.Kind, maxLines int) (ReplaySummary, error) {
	var sum ReplaySummary
	enc := json.NewEncoder(out)
	framer := gps.NewEpochFramer(epoch, maxLines)

	err := gps.DecodeEpochs(in, framer, &nmea0183.Decoder{}, func(e gps.Epoch) error {
		sum.Epochs++
		sum.Records += e.Stats.Records
		sum.Rejected += e.Stats.Rejected
		if err := enc.Encode(gps.FromState(e.State)); err != nil {
			return fmt.Errorf("write fix: %w", err)
		}
		return nil
	})
	if err != nil {
		return sum, err
	}

	log.Printf("replay: %d epochs, %d sentences, %d rejected", sum.Epochs, sum.Records, sum.Rejected)
	return sum, nil
}
