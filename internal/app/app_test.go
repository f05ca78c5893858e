// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/relabs-tech/gnss_fix/internal/gps"
	"github.com/relabs-tech/gnss_fix/internal/nmea0183"
)

func nmeaLine(payload string) string {
	ck := byte(0)
	for i := 0; i < len(payload); i++ {
		ck ^= payload[i]
	}
	return fmt.Sprintf("$%s*%02X", payload, ck)
}

func nmeaBlock(payloads ...string) string {
	var b strings.Builder
	for _, p := range payloads {
		b.WriteString(nmeaLine(p))
		b.WriteString("\r\n")
	}
	return b.String()
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// sampleFix is a typical two-constellation epoch from a GN receiver.
func sampleFix() gps.Fix {
	return gps.FromState(nmea0183.Decode(nmeaBlock(
		"GNRMC,123519.00,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W,A",
		"GNGGA,123519.00,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,",
		"GNGSA,A,3,01,02,,,,,,,,,,,1.8,1.0,1.5",
		"GNGSA,A,3,65,,,,,,,,,,,,1.8,1.0,1.5",
		"GPGSV,1,1,02,01,40,083,46,02,17,308,41",
		"GLGSV,1,1,01,65,10,120,",
	)))
}
