// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package nmea0183 decodes a block of NMEA 0183 sentences emitted by a GNSS
// receiver into a single FixState.
//
// A decode pass is a two-phase pipeline:
//   - every sentence is checksum-verified, classified by kind and handed to
//     its decoder, which writes into the FixState owned by the pass
//   - once all sentences are applied, Correlate assigns a constellation to
//     GSA records that arrived under the combined "GN" talker without an
//     explicit system id
//
// Nothing in this package keeps state between calls; concurrent decodes are
// safe as long as each uses its own FixState.
package nmea0183
