// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package nmea0183

import (
	"math"
	"testing"
)

func TestDegMinToDecimal(t *testing.T) {
	requireClose(t, "4807.038", DegMinToDecimal(4807.038), 48.1173)
	requireClose(t, "01131.000", DegMinToDecimal(1131.0), 11.516666666)
	requireClose(t, "0", DegMinToDecimal(0), 0)
	requireClose(t, "17959.999", DegMinToDecimal(17959.999), 179.99998333)
	requireNaN(t, "NaN", DegMinToDecimal(math.NaN()))
}

func TestParseInt(t *testing.T) {
	cases := map[string]int{
		"08":   8,
		" 12 ": 12,
		"3.7":  3,
		"abc":  Unknown,
		"":     Unknown,
	}
	for in, want := range cases {
		if got := parseInt(in); got != want {
			t.Errorf("parseInt(%q)=%d want %d", in, got, want)
		}
	}
}

func TestSetters_EmptyKeepsPrevious(t *testing.T) {
	f := 1.5
	setFloat(&f, "")
	requireClose(t, "float", f, 1.5)
	setFloat(&f, "x")
	requireNaN(t, "float", f)

	i := 7
	setInt(&i, "")
	if i != 7 {
		t.Fatalf("int=%d want 7", i)
	}
	setInt(&i, "?")
	if i != Unknown {
		t.Fatalf("int=%d want Unknown", i)
	}

	s := "M"
	setString(&s, "")
	if s != "M" {
		t.Fatalf("string=%q want M", s)
	}
}
