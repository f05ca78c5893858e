// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package nmea0183

import (
	"strconv"
	"strings"

	nmea "github.com/adrianmo/go-nmea"
)

// Checksum returns the XOR of every byte of body after the leading '$',
// formatted as two upper-case hex digits.
func Checksum(body string) string {
	if body == "" {
		return nmea.Checksum("")
	}
	return nmea.Checksum(body[1:])
}

// VerifyChecksum reports whether the hex checksum field ck matches body.
// body is everything before the '*', including the '$'.
func VerifyChecksum(body, ck string) bool {
	ck = strings.TrimSpace(ck)
	if ck == "" {
		return false
	}
	want, err := strconv.ParseUint(ck, 16, 8)
	if err != nil {
		return false
	}
	got, err := strconv.ParseUint(Checksum(body), 16, 8)
	if err != nil {
		return false
	}
	return got == want
}
