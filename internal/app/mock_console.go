// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/relabs-tech/gnss_fix/internal/gps"
	"github.com/relabs-tech/gnss_fix/internal/nmea0183"
)

// RunMockConsole decodes one epoch per second from a simulated receiver
// and prints it until Ctrl+C.
func RunMockConsole() {
	src := gps.NewMockReceiver()
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			printMockEpoch(os.Stdout, src)
		case <-sigCh:
			log.Println("mock console: shutting down")
			return
		}
	}
}

func printMockEpoch(w io.Writer, src *gps.MockReceiver) {
	fmt.Fprint(w, formatFix(gps.FromState(nmea0183.Decode(src.Next()))))
}
