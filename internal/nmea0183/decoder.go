// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package nmea0183

import (
	"log"
	"strings"
)

// Stats counts what happened to the records of one decode pass.
type Stats struct {
	Records      int // non-empty records seen
	Decoded      int // applied to the FixState
	Rejected     int // checksum missing or wrong
	Ignored      int // recognised but not applied (short GSA/GSV, GN GSV, ZDA, GLL)
	Unrecognized int // sentence type not handled
	Correlated   int // GSA records resolved by Correlate
}

// Decoder turns a block of sentences into a FixState. The zero value is
// ready to use and logs rejected sentences to the standard logger.
type Decoder struct {
	Logger *log.Logger
}

// Decode decodes block with a zero Decoder.
func Decode(block string) *FixState {
	st, _ := (&Decoder{}).Decode(block)
	return st
}

// Decode splits block into CRLF separated records, applies each valid one
// to a fresh FixState and finally runs Correlate. A bad record never aborts
// the pass; it is just left out.
func (d *Decoder) Decode(block string) (*FixState, Stats) {
	st := NewFixState()
	var stats Stats

	for _, rec := range strings.Split(block, "\n") {
		rec = strings.TrimRight(rec, "\r")
		if rec == "" {
			continue
		}
		stats.Records++

		body, ck, ok := strings.Cut(rec, "*")
		if !ok || !VerifyChecksum(body, ck) {
			stats.Rejected++
			d.logf("nmea: checksum error, dropping %q", rec)
			continue
		}

		f := strings.Split(body, ",")
		kind := KindOf(f[0])
		if kind == KindUnknown {
			stats.Unrecognized++
			continue
		}
		if apply(kind, st, f) {
			stats.Decoded++
		} else {
			stats.Ignored++
		}
	}

	stats.Correlated = Correlate(st)
	return st, stats
}

// apply dispatches one verified sentence to the decoder for its kind.
func apply(kind Kind, st *FixState, f []string) bool {
	switch kind {
	case KindGGA:
		return decodeGGA(st, f)
	case KindRMC:
		return decodeRMC(st, f)
	case KindVTG:
		return decodeVTG(st, f)
	case KindGSA:
		return decodeGSA(st, f)
	case KindGSV:
		return decodeGSV(st, f)
	case KindZDA:
		return decodeZDA(st, f)
	case KindGLL:
		return decodeGLL(st, f)
	default:
		return false
	}
}

func (d *Decoder) logf(format string, args ...any) {
	if d.Logger != nil {
		d.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
