// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package nmea0183

// GGA: Global Positioning System Fix Data
//
//	0: header
//	1: time (hhmmss.ss)
//	2: latitude (ddmm.mmmm)
//	3: N/S
//	4: longitude (dddmm.mmmm)
//	5: E/W
//	6: quality indicator
//	7: satellites used
//	8: HDOP
//	9: altitude above MSL
//	10: altitude unit
//	11: geoid separation
//	12: geoid unit
//	13: age of differential data
//	14: differential station id
func decodeGGA(s *FixState, f []string) bool {
	s.setTimeOfDay(field(f, 1))
	s.setPosition(field(f, 2), field(f, 3), field(f, 4), field(f, 5))

	setInt(&s.Quality, field(f, 6))
	setInt(&s.NumSats, field(f, 7))
	setFloat(&s.HDOP, field(f, 8))
	setFloat(&s.Altitude, field(f, 9))
	setString(&s.AltitudeUnit, field(f, 10))
	setFloat(&s.Geoid, field(f, 11))
	setString(&s.GeoidUnit, field(f, 12))
	setFloat(&s.DGPSAge, field(f, 13))
	setString(&s.DGPSStation, field(f, 14))
	return true
}

// setTimeOfDay parses hhmmss with an optional fraction. A two digit
// fraction is in hundredths; any other length is taken as milliseconds
// unchanged. Without a fraction the milliseconds are unknown.
func (s *FixState) setTimeOfDay(v string) {
	if v == "" {
		return
	}
	s.Hour = optInt(substr(v, 0, 2))
	s.Minute = optInt(substr(v, 2, 2))
	s.Second = optInt(substr(v, 4, 2))

	frac := substr(v, 7, -1)
	switch len(frac) {
	case 0:
		s.Millisecond = Unknown
	case 2:
		s.Millisecond = scaleUnknown(parseInt(frac), 10)
	default:
		s.Millisecond = parseInt(frac)
	}
}

func scaleUnknown(v, by int) int {
	if v == Unknown {
		return Unknown
	}
	return v * by
}

// setPosition applies a lat/lon pair only when both values are present.
func (s *FixState) setPosition(lat, ns, lon, ew string) {
	if lat == "" || lon == "" {
		return
	}
	s.Latitude = DegMinToDecimal(parseFloat(lat))
	s.LatNS = ns
	s.Longitude = DegMinToDecimal(parseFloat(lon))
	s.LonEW = ew
}
