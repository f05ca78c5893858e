// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package nmea0183

import "strings"

// Kind is a recognised sentence type.
type Kind int

const (
	KindUnknown Kind = iota
	KindGGA          // global positioning system fix data
	KindRMC          // recommended minimum data
	KindVTG          // course over ground and ground speed
	KindGSA          // DOP and active satellites
	KindGSV          // satellites in view
	KindZDA          // time and date, accepted but not decoded
	KindGLL          // latitude and longitude, accepted but not decoded
)

var kindNames = [...]string{
	KindUnknown: "",
	KindGGA:     "GGA",
	KindRMC:     "RMC",
	KindVTG:     "VTG",
	KindGSA:     "GSA",
	KindGSV:     "GSV",
	KindZDA:     "ZDA",
	KindGLL:     "GLL",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) || k == KindUnknown {
		return "unknown"
	}
	return kindNames[k]
}

// Decoded reports whether sentences of this kind update the FixState.
func (k Kind) Decoded() bool {
	switch k {
	case KindGGA, KindRMC, KindVTG, KindGSA, KindGSV:
		return true
	default:
		return false
	}
}

// ParseKind maps a 3-letter sentence type such as "GGA" to its Kind.
func ParseKind(s string) Kind {
	s = strings.ToUpper(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name != "" && name == s {
			return Kind(k)
		}
	}
	return KindUnknown
}

// KindOf classifies a sentence header of the form "$G?XXX". Only the
// G-prefixed talkers are matched; the talker letter after G is free.
func KindOf(header string) Kind {
	if len(header) < 6 || header[0] != '$' || header[1] != 'G' {
		return KindUnknown
	}
	return ParseKind(header[3:6])
}
