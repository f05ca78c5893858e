// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package nmea0183

import (
	"math"
	"strconv"
	"strings"
)

// Unknown marks an integer field that was absent or could not be parsed.
// Real-valued fields use NaN instead.
const Unknown = -1

// DegMinToDecimal converts the NMEA ddmm.mmmm / dddmm.mmmm encoding to
// decimal degrees. The hemisphere is carried separately, so the result is
// never negative for valid input.
func DegMinToDecimal(v float64) float64 {
	deg := math.Floor(v / 100)
	mins := (v - deg*100) / 60
	return deg + mins
}

func field(f []string, i int) string {
	if i < 0 || i >= len(f) {
		return ""
	}
	return f[i]
}

// substr is a bounds-tolerant s[i:i+n].
func substr(s string, i, n int) string {
	if i >= len(s) {
		return ""
	}
	end := i + n
	if n < 0 || end > len(s) {
		end = len(s)
	}
	return s[i:end]
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// parseInt accepts plain integers and, like most receivers expect, decimal
// values which are truncated.
func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Unknown
	}
	return int(v)
}

// setFloat, setInt and setString leave dst untouched when the field is
// empty. A non-empty field that does not parse writes the unknown value.
func setFloat(dst *float64, s string) {
	if s == "" {
		return
	}
	*dst = parseFloat(s)
}

func setInt(dst *int, s string) {
	if s == "" {
		return
	}
	*dst = parseInt(s)
}

func setString(dst *string, s string) {
	if s == "" {
		return
	}
	*dst = s
}

// optFloat and optInt parse a field for a freshly built record, where
// there is no previous value to keep.
func optFloat(s string) float64 {
	if s == "" {
		return math.NaN()
	}
	return parseFloat(s)
}

func optInt(s string) int {
	if s == "" {
		return Unknown
	}
	return parseInt(s)
}
