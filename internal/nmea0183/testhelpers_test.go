// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package nmea0183

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

// nmeaLine frames payload with '$' and a correct checksum.
func nmeaLine(payload string) string {
	ck := byte(0)
	for i := 0; i < len(payload); i++ {
		ck ^= payload[i]
	}
	return fmt.Sprintf("$%s*%02X", payload, ck)
}

// nmeaBlock frames every payload and joins them the way a receiver does.
func nmeaBlock(payloads ...string) string {
	var b strings.Builder
	for _, p := range payloads {
		b.WriteString(nmeaLine(p))
		b.WriteString("\r\n")
	}
	return b.String()
}

func requireClose(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("%s=%v want %v", name, got, want)
	}
}

func requireNaN(t *testing.T, name string, got float64) {
	t.Helper()
	if !math.IsNaN(got) {
		t.Fatalf("%s=%v want NaN", name, got)
	}
}
