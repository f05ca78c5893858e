// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package nmea0183

// RMC: Recommended Minimum Specific GNSS Data
//
//	0: header
//	1: time (hhmmss.ss)
//	2: status (A=active, V=void)
//	3: latitude
//	4: N/S
//	5: longitude
//	6: E/W
//	7: speed over ground (knots)
//	8: course over ground, true (deg)
//	9: date (ddmmyy)
//	10: magnetic variation (deg)
//	11: variation direction E/W
//	12: mode indicator (NMEA 2.3+)
//
// A void status does not stop the other fields from being applied; GGA's
// quality indicator is the authoritative fix flag.
func decodeRMC(s *FixState, f []string) bool {
	s.setTimeOfDay(field(f, 1))
	setString(&s.Status, field(f, 2))
	s.setPosition(field(f, 3), field(f, 4), field(f, 5), field(f, 6))

	setFloat(&s.SpeedKnots, field(f, 7))
	setFloat(&s.TrackTrue, field(f, 8))
	s.setDate(field(f, 9))
	setFloat(&s.MagVar, field(f, 10))
	setString(&s.MagVarDir, field(f, 11))
	if m := field(f, 12); m != "" {
		s.Mode = Mode(m)
	}
	return true
}

// setDate parses ddmmyy. Years are always 20yy.
func (s *FixState) setDate(v string) {
	if v == "" {
		return
	}
	s.Day = optInt(substr(v, 0, 2))
	s.Month = optInt(substr(v, 2, 2))
	if yy := optInt(substr(v, 4, 2)); yy != Unknown {
		s.Year = 2000 + yy
	} else {
		s.Year = Unknown
	}
}
