// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package nmea0183

import "strconv"

// Correlate resolves GSA records that are still pending after a decode
// pass, i.e. those reported under the GN talker with no system id field.
//
// Receivers that do this emit one GSA per constellation, in the same order
// as their per-constellation GSV groups. The i-th GSA record is therefore
// assigned the system of the i-th Satellites key. This is a positional
// guess: it is wrong for receivers that order the two sentence families
// differently or skip a constellation in one of them. Records beyond the
// number of known systems stay pending.
//
// Correlate only touches pending records, so running it again is a no-op.
// It returns the number of records it resolved.
func Correlate(s *FixState) int {
	keys := s.Satellites.Keys()
	resolved := 0
	for i := range s.GSA {
		rec := &s.GSA[i]
		if rec.System != SystemCombined {
			continue
		}
		if i >= len(keys) {
			continue
		}
		id, err := strconv.Atoi(keys[i])
		if err != nil {
			continue
		}
		rec.System = SystemID(id)
		rec.Source = SourceCorrelated
		resolved++
	}
	return resolved
}
