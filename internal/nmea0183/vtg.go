// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package nmea0183

// VTG: Course over ground and ground speed
//
//	0: header
//	1: course, true (deg)
//	2: T
//	3: course, magnetic (deg)
//	4: M
//	5: speed (knots)
//	6: N
//	7: speed (km/h)
//	8: K
//	9: mode indicator
func decodeVTG(s *FixState, f []string) bool {
	setFloat(&s.TrackTrue, field(f, 1))
	setFloat(&s.TrackMag, field(f, 3))
	setFloat(&s.SpeedKnots, field(f, 5))
	setFloat(&s.SpeedKmh, field(f, 7))
	if m := field(f, 9); m != "" {
		s.Mode = Mode(m)
	}
	return true
}
