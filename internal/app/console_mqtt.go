// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/gnss_fix/internal/config"
	"github.com/relabs-tech/gnss_fix/internal/gps"
)

func RunConsoleMQTT() error {
	cfg := config.Get()

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDConsole)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("console: connected to MQTT broker at %s", cfg.MQTTBroker)

	// Subscribe to GPS
	gpsToken := client.Subscribe(cfg.TopicGPS, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var f gps.Fix
		if err := json.Unmarshal(msg.Payload(), &f); err != nil {
			log.Printf("console: gps unmarshal error: %v", err)
			return
		}
		fmt.Print(formatFix(f))
	})
	gpsToken.Wait()
	if gpsToken.Error() != nil {
		return gpsToken.Error()
	}
	log.Printf("console: subscribed to %s", cfg.TopicGPS)

	// Wait for Ctrl+C
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("console: shutting down")
	client.Disconnect(250)
	return nil
}

// formatFix renders one summary line for the fix and one per constellation.
func formatFix(f gps.Fix) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"[GPS ]  time=%s date=%s lat=%s lon=%s alt=%s quality=%s sats=%s hdop=%s speed=%skn course=%s° mode=%s\n",
		orDash(f.Time), orDash(f.Date),
		fmtFloat(f.Latitude, 6), fmtFloat(f.Longitude, 6), fmtFloat(f.Altitude, 1),
		f.QualityLabel, fmtInt(f.NumSats), fmtFloat(f.HDOP, 2),
		fmtFloat(f.SpeedKnots, 1), fmtFloat(f.CourseDeg, 1), f.Mode,
	)
	for _, d := range f.DOP {
		fmt.Fprintf(&b, "[DOP ]  %-8s fix=%s used=%v pdop=%s hdop=%s vdop=%s (%s)\n",
			d.System, fmtInt(d.FixType), d.SVIDs,
			fmtFloat(d.PDOP, 2), fmtFloat(d.HDOP, 2), fmtFloat(d.VDOP, 2), d.Resolved)
	}
	for _, s := range f.Satellites {
		ids := make([]string, 0, len(s.Satellites))
		for _, sat := range s.Satellites {
			ids = append(ids, fmt.Sprintf("%d:%s", sat.ID, fmtInt(sat.SNR)))
		}
		fmt.Fprintf(&b, "[SAT ]  %-8s in_view=%s %s\n", s.System, fmtInt(s.InView), strings.Join(ids, " "))
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func fmtFloat(v *float64, prec int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.*f", prec, *v)
}

func fmtInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}
