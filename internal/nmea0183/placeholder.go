// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package nmea0183

// ZDA (time and date) and GLL (geographic position) are recognised so the
// dispatcher can tell them apart from unknown sentences, but their content
// is not decoded yet.

func decodeZDA(s *FixState, f []string) bool { return false }

func decodeGLL(s *FixState, f []string) bool { return false }
