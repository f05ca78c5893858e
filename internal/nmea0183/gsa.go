// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package nmea0183

// minGSAFields is header + mode + fix type + 12 SV slots + PDOP/HDOP/VDOP.
const minGSAFields = 18

// GSA: GNSS DOP and active satellites
//
//	0: header
//	1: mode (M=manual, A=automatic)
//	2: fix type (1=none, 2=2D, 3=3D)
//	3-14: ids of satellites used in the solution
//	15: PDOP
//	16: HDOP
//	17: VDOP
//	18: GNSS system id (NMEA 4.10+)
//
// Every accepted sentence appends one record, in arrival order. Records
// from the combined GN talker without a system id field are left pending
// for Correlate.
func decodeGSA(s *FixState, f []string) bool {
	if len(f) < minGSAFields {
		return false
	}

	rec := GsaRecord{
		Mode:    f[1],
		FixType: optInt(f[2]),
		SVIDs:   make([]int, 0, 12),
		PDOP:    optFloat(f[15]),
		HDOP:    optFloat(f[16]),
		VDOP:    optFloat(f[17]),
	}
	for i := 3; i < 15; i++ {
		if f[i] == "" {
			break
		}
		rec.SVIDs = append(rec.SVIDs, parseInt(f[i]))
	}

	rec.System, rec.Source = gsaSystem(f)
	s.GSA = append(s.GSA, rec)
	return true
}

func gsaSystem(f []string) (SystemID, SystemSource) {
	id := HeaderSystem(f[0])
	if id != SystemCombined {
		return id, SourceTalker
	}
	if v := field(f, 18); v != "" {
		return SystemID(parseInt(v)), SourceField
	}
	return SystemCombined, SourcePending
}
