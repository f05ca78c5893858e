// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package gps

import (
	"strings"

	"github.com/relabs-tech/gnss_fix/internal/nmea0183"
)

// DefaultMaxEpochLines bounds a block when the epoch sentence never shows up.
const DefaultMaxEpochLines = 64

// ValidEpochSentence reports whether k can open an epoch. GSA and GSV
// come in sets per epoch; splitting on them would cut a set in two and
// break the positional GSA correlation.
func ValidEpochSentence(k nmea0183.Kind) bool {
	switch k {
	case nmea0183.KindGGA, nmea0183.KindRMC, nmea0183.KindVTG:
		return true
	default:
		return false
	}
}

// EpochFramer groups receiver lines into decode blocks. Receivers emit one
// burst of sentences per navigation epoch; a line of the epoch kind (RMC
// by default) starts a new burst and so closes the previous block.
type EpochFramer struct {
	epoch    nmea0183.Kind
	maxLines int
	lines    []string
}

// NewEpochFramer returns a framer that splits on sentences of kind epoch.
// maxLines <= 0 selects DefaultMaxEpochLines.
func NewEpochFramer(epoch nmea0183.Kind, maxLines int) *EpochFramer {
	if maxLines <= 0 {
		maxLines = DefaultMaxEpochLines
	}
	return &EpochFramer{epoch: epoch, maxLines: maxLines}
}

// Push adds one line. When the line completes a block, the block is
// returned with ok set.
func (f *EpochFramer) Push(line string) (block string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}

	if f.opensEpoch(line) && len(f.lines) > 0 {
		block, ok = f.Flush()
	}
	f.lines = append(f.lines, line)

	if !ok && len(f.lines) >= f.maxLines {
		return f.Flush()
	}
	return block, ok
}

// Flush returns whatever is buffered as a block.
func (f *EpochFramer) Flush() (string, bool) {
	if len(f.lines) == 0 {
		return "", false
	}
	block := strings.Join(f.lines, "\r\n") + "\r\n"
	f.lines = f.lines[:0]
	return block, true
}

// Pending is the number of buffered lines.
func (f *EpochFramer) Pending() int { return len(f.lines) }

func (f *EpochFramer) opensEpoch(line string) bool {
	header, _, _ := strings.Cut(line, ",")
	return nmea0183.KindOf(header) == f.epoch
}
