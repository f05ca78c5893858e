// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package nmea0183

import "strconv"

// SystemID identifies a satellite constellation. The values follow the NMEA
// 4.10 GNSS system id table where one exists.
type SystemID int

const (
	SystemUnknown  SystemID = -1
	SystemCombined SystemID = 0 // GN talker, multi-constellation solution
	SystemGPS      SystemID = 1
	SystemGLONASS  SystemID = 2
	SystemGalileo  SystemID = 3
	SystemBeiDou   SystemID = 4
	SystemQZSS     SystemID = 5
	SystemSBAS     SystemID = 6
	SystemIMES     SystemID = 7
	SystemNavIC    SystemID = 8
)

var systemNames = map[SystemID]string{
	SystemCombined: "GNSS",
	SystemGPS:      "GPS",
	SystemGLONASS:  "GLONASS",
	SystemGalileo:  "Galileo",
	SystemBeiDou:   "BeiDou",
	SystemQZSS:     "QZSS",
	SystemSBAS:     "SBAS",
	SystemIMES:     "IMES",
	SystemNavIC:    "NavIC",
}

// String returns the constellation name, or "unknown".
func (id SystemID) String() string {
	if name, ok := systemNames[id]; ok {
		return name
	}
	return "unknown"
}

// Key is the Satellites table key for this system.
func (id SystemID) Key() string {
	return strconv.Itoa(int(id))
}

// TalkerSystem maps a 2-letter talker id to its constellation.
func TalkerSystem(talker string) SystemID {
	switch talker {
	case "GN":
		return SystemCombined
	case "GP":
		return SystemGPS
	case "GL":
		return SystemGLONASS
	case "GA":
		return SystemGalileo
	case "GB", "BD": // BD is the pre-4.10 BeiDou talker
		return SystemBeiDou
	case "GQ", "QZ":
		// Some receivers fold QZSS into GP instead.
		return SystemQZSS
	case "SB", "SV":
		return SystemSBAS
	case "IM":
		return SystemIMES
	case "GI":
		return SystemNavIC
	default:
		return SystemUnknown
	}
}

// HeaderSystem classifies a sentence header such as "$GPGSV" by its talker.
func HeaderSystem(header string) SystemID {
	if len(header) < 3 {
		return SystemUnknown
	}
	return TalkerSystem(header[1:3])
}
