// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// nmea_decode prints one JSON fix per receiver epoch of a captured NMEA log.
//
//	nmea_decode -epoch RMC capture.nmea
//	cat capture.nmea | nmea_decode
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/relabs-tech/gnss_fix/internal/app"
	"github.com/relabs-tech/gnss_fix/internal/gps"
	"github.com/relabs-tech/gnss_fix/internal/nmea0183"
)

func main() {
	epoch := flag.String("epoch", "RMC", "sentence type that starts a receiver epoch")
	maxLines := flag.Int("max-lines", 64, "flush an epoch after this many lines")
	flag.Parse()

	kind := nmea0183.ParseKind(*epoch)
	if !gps.ValidEpochSentence(kind) {
		log.Fatalf("invalid -epoch %q: must be one of GGA, RMC, VTG", *epoch)
	}

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("failed to open capture: %v", err)
		}
		defer f.Close()
		in = f
	}

	if _, err := app.RunReplay(in, os.Stdout, kind, *maxLines); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
