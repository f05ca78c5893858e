// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package gps

import (
	"errors"
	"strings"
	"testing"

	"github.com/relabs-tech/gnss_fix/internal/nmea0183"
)

func TestEpochFramer_SplitsOnEpochSentence(t *testing.T) {
	fr := NewEpochFramer(nmea0183.KindRMC, 0)
	rmc1 := nmeaLine("GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W")
	gga1 := nmeaLine("GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,")
	rmc2 := nmeaLine("GPRMC,123520,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W")

	if _, ok := fr.Push(rmc1 + "\r\n"); ok {
		t.Fatalf("first RMC must not flush an empty block")
	}
	if _, ok := fr.Push(gga1 + "\r\n"); ok {
		t.Fatalf("GGA must not flush")
	}
	block, ok := fr.Push(rmc2 + "\r\n")
	if !ok {
		t.Fatalf("second RMC should close the epoch")
	}
	if block != rmc1+"\r\n"+gga1+"\r\n" {
		t.Fatalf("block=%q", block)
	}
	if fr.Pending() != 1 {
		t.Fatalf("pending=%d want 1", fr.Pending())
	}

	block, ok = fr.Flush()
	if !ok || block != rmc2+"\r\n" {
		t.Fatalf("flush=%q ok=%v", block, ok)
	}
	if _, ok := fr.Flush(); ok {
		t.Fatalf("second flush should be empty")
	}
}

func TestEpochFramer_MaxLines(t *testing.T) {
	fr := NewEpochFramer(nmea0183.KindRMC, 2)
	gsv := nmeaLine("GPGSV,1,1,00")
	if _, ok := fr.Push(gsv); ok {
		t.Fatalf("unexpected flush after one line")
	}
	block, ok := fr.Push(gsv)
	if !ok || strings.Count(block, "\r\n") != 2 {
		t.Fatalf("expected a two line block, got %q ok=%v", block, ok)
	}
	if fr.Pending() != 0 {
		t.Fatalf("pending=%d want 0", fr.Pending())
	}
}

func TestEpochFramer_IgnoresBlankLines(t *testing.T) {
	fr := NewEpochFramer(nmea0183.KindGGA, 0)
	fr.Push("\r\n")
	fr.Push("   ")
	if fr.Pending() != 0 {
		t.Fatalf("pending=%d want 0", fr.Pending())
	}
}

func TestDecodeEpochs(t *testing.T) {
	input := nmeaBlock(
		"GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W",
		"GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,",
		"GPRMC,123520,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W",
	) + "$GPGGA,123520,bad*00" // no trailing newline, bad checksum

	var got []Epoch
	err := DecodeEpochs(strings.NewReader(input), NewEpochFramer(nmea0183.KindRMC, 0), &nmea0183.Decoder{}, func(e Epoch) error {
		got = append(got, e)
		return nil
	})
	if err != nil {
		t.Fatalf("DecodeEpochs: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("epochs=%d want 2", len(got))
	}
	if got[0].State.Second != 19 || got[0].State.NumSats != 8 || got[0].Stats.Decoded != 2 {
		t.Fatalf("epoch 0: sec=%d sats=%d stats=%+v", got[0].State.Second, got[0].State.NumSats, got[0].Stats)
	}
	if got[1].State.Second != 20 || got[1].Stats.Rejected != 1 {
		t.Fatalf("epoch 1: sec=%d stats=%+v", got[1].State.Second, got[1].Stats)
	}
}

func TestDecodeEpochs_EmitErrorStops(t *testing.T) {
	input := nmeaBlock(
		"GPRMC,123519,A,,,,,,,230394,,",
		"GPRMC,123520,A,,,,,,,230394,,",
		"GPRMC,123521,A,,,,,,,230394,,",
	)
	stop := errors.New("stop")
	calls := 0
	err := DecodeEpochs(strings.NewReader(input), NewEpochFramer(nmea0183.KindRMC, 0), &nmea0183.Decoder{}, func(Epoch) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}
}

func TestValidEpochSentence(t *testing.T) {
	for _, k := range []nmea0183.Kind{nmea0183.KindGGA, nmea0183.KindRMC, nmea0183.KindVTG} {
		if !ValidEpochSentence(k) {
			t.Errorf("%v should open epochs", k)
		}
	}
	for _, k := range []nmea0183.Kind{nmea0183.KindGSA, nmea0183.KindGSV, nmea0183.KindZDA, nmea0183.KindUnknown} {
		if ValidEpochSentence(k) {
			t.Errorf("%v should not open epochs", k)
		}
	}
}
