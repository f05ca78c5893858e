// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package nmea0183

import "testing"

func TestTalkerSystem(t *testing.T) {
	cases := map[string]SystemID{
		"GN": SystemCombined,
		"GP": SystemGPS,
		"GL": SystemGLONASS,
		"GA": SystemGalileo,
		"GB": SystemBeiDou,
		"BD": SystemBeiDou,
		"GQ": SystemQZSS,
		"QZ": SystemQZSS,
		"SB": SystemSBAS,
		"SV": SystemSBAS,
		"IM": SystemIMES,
		"GI": SystemNavIC,
		"ZZ": SystemUnknown,
		"":   SystemUnknown,
	}
	for talker, want := range cases {
		if got := TalkerSystem(talker); got != want {
			t.Errorf("TalkerSystem(%q)=%d want %d", talker, got, want)
		}
	}
	if int(TalkerSystem("GP")) != 1 || int(TalkerSystem("ZZ")) != -1 {
		t.Fatalf("system ids must keep their numeric values")
	}
}

func TestHeaderSystem(t *testing.T) {
	if got := HeaderSystem("$GLGSV"); got != SystemGLONASS {
		t.Fatalf("HeaderSystem($GLGSV)=%v", got)
	}
	if got := HeaderSystem("$G"); got != SystemUnknown {
		t.Fatalf("HeaderSystem($G)=%v want unknown", got)
	}
}

func TestSystemID_NameAndKey(t *testing.T) {
	if SystemBeiDou.String() != "BeiDou" || SystemID(42).String() != "unknown" {
		t.Fatalf("unexpected names %q %q", SystemBeiDou, SystemID(42))
	}
	if SystemGLONASS.Key() != "2" || SystemUnknown.Key() != "-1" {
		t.Fatalf("unexpected keys %q %q", SystemGLONASS.Key(), SystemUnknown.Key())
	}
}
