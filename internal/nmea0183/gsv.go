// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package nmea0183

import (
	"strconv"
	"strings"
)

const (
	gsvHeaderFields = 4 // header, total messages, message number, in view
	gsvBlockFields  = 4 // id, elevation, azimuth, SNR
	gsvMaxBlocks    = 4
)

// GSV: GNSS satellites in view
//
//	0: header
//	1: total number of messages (1-9)
//	2: message number (1-9)
//	3: satellites in view
//	4..: up to four blocks of id, elevation, azimuth, SNR
//	last: signal id (NMEA 4.10+, hex), when the field count is 4n+5, n >= 1
//
// A truncated final block still yields its satellite, with the missing
// values unknown.
//
// Messages of a group are appended in arrival order; nothing is reordered
// or deduplicated. The combined GN talker carries no constellation and is
// ignored.
func decodeGSV(s *FixState, f []string) bool {
	if len(f) < gsvHeaderFields {
		return false
	}
	id := HeaderSystem(f[0])
	if id == SystemCombined {
		return false
	}

	g := s.Satellites.group(id)
	setInt(&g.InView, f[3])

	signal := hasSignalID(len(f))
	blocks := f
	if signal {
		blocks = f[:len(f)-1]
	}

	for i := 0; i < gsvMaxBlocks; i++ {
		base := gsvHeaderFields + i*gsvBlockFields
		if base >= len(blocks) {
			break
		}
		svid := blocks[base]
		if svid == "" {
			break
		}
		sat := Satellite{
			ID:        parseInt(svid),
			Elevation: optInt(field(blocks, base+1)),
			Azimuth:   optInt(field(blocks, base+2)),
			SNR:       optInt(field(blocks, base+3)),
		}
		if sat.ID == 0 {
			break
		}
		g.Satellites = append(g.Satellites, sat)
	}

	if signal {
		if v := f[len(f)-1]; v != "" {
			g.SignalID = parseSignalID(v)
		}
	}
	return true
}

// hasSignalID reports whether a GSV with n fields ends in a signal id: one
// field past at least one complete satellite block.
func hasSignalID(n int) bool {
	blocks := n - gsvHeaderFields
	return blocks > gsvBlockFields && blocks%gsvBlockFields == 1
}

// parseSignalID reads the 4.11 signal id, a single hex digit.
func parseSignalID(v string) int {
	id, err := strconv.ParseInt(strings.TrimSpace(v), 16, 0)
	if err != nil {
		return Unknown
	}
	return int(id)
}
