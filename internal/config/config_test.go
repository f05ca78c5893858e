// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/relabs-tech/gnss_fix/internal/nmea0183"
)

const minimalConfig = `
# broker and receiver
MQTT_BROKER=tcp://localhost:1883
GPS_SERIAL_PORT=/dev/serial0
GPS_BAUD_RATE=9600
`

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	tmp := t.TempDir()
	path := filepath.Join(tmp, "gnss_config.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

func requireErrContains(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error containing %q, got nil", want)
	}
	if !strings.Contains(err.Error(), want) {
		t.Fatalf("error=%q want it to contain %q", err.Error(), want)
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.MQTTBroker != "tcp://localhost:1883" || cfg.GPSSerialPort != "/dev/serial0" || cfg.GPSBaudRate != 9600 {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.TopicGPS != "gnss/fix" || cfg.TopicGPSSatellites != "gnss/satellites" {
		t.Fatalf("topics=%q %q", cfg.TopicGPS, cfg.TopicGPSSatellites)
	}
	if cfg.GPSEpochSentence != nmea0183.KindRMC || cfg.GPSMaxEpochLines != 64 || cfg.WebServerPort != 8080 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.MetricsPort != 0 || cfg.WebFixTTLSeconds != 10 {
		t.Fatalf("metrics=%d ttl=%d", cfg.MetricsPort, cfg.WebFixTTLSeconds)
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, minimalConfig+`
TOPIC_GPS = rover/fix
GPS_EPOCH_SENTENCE=gga
GPS_MAX_EPOCH_LINES=20
WEB_SERVER_PORT=9000
MQTT_CLIENT_ID_WEB=web-1
METRICS_PORT=9100
WEB_FIX_TTL_SECONDS=0
`))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.TopicGPS != "rover/fix" || cfg.GPSEpochSentence != nmea0183.KindGGA {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.GPSMaxEpochLines != 20 || cfg.WebServerPort != 9000 || cfg.MQTTClientIDWeb != "web-1" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.MetricsPort != 9100 || cfg.WebFixTTLSeconds != 0 {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		want     string
	}{
		{"missing broker", "GPS_SERIAL_PORT=/dev/ttyUSB0\nGPS_BAUD_RATE=9600\n", "MQTT_BROKER is required"},
		{"missing port", "MQTT_BROKER=tcp://x:1883\nGPS_BAUD_RATE=9600\n", "GPS_SERIAL_PORT is required"},
		{"missing baud", "MQTT_BROKER=tcp://x:1883\nGPS_SERIAL_PORT=/dev/ttyUSB0\n", "GPS_BAUD_RATE is required"},
		{"unknown key", minimalConfig + "IMU_LEFT_CS_PIN=18\n", `unknown config key: "IMU_LEFT_CS_PIN"`},
		{"no equals", minimalConfig + "GPS_BAUD_RATE\n", "invalid config line"},
		{"bad baud", minimalConfig + "GPS_BAUD_RATE=fast\n", "invalid GPS_BAUD_RATE"},
		{"bad epoch", minimalConfig + "GPS_EPOCH_SENTENCE=ZDA\n", "GPS_EPOCH_SENTENCE must be one of"},
		{"gsa epoch", minimalConfig + "GPS_EPOCH_SENTENCE=GSA\n", "GPS_EPOCH_SENTENCE must be one of GGA, RMC, VTG"},
		{"gsv epoch", minimalConfig + "GPS_EPOCH_SENTENCE=gsv\n", "GPS_EPOCH_SENTENCE must be one of GGA, RMC, VTG"},
		{"bad max lines", minimalConfig + "GPS_MAX_EPOCH_LINES=0\n", "GPS_MAX_EPOCH_LINES must be at least 1"},
		{"bad web port", minimalConfig + "WEB_SERVER_PORT=70000\n", "WEB_SERVER_PORT must be 1-65535"},
		{"bad metrics port", minimalConfig + "METRICS_PORT=-1\n", "METRICS_PORT must be 0-65535"},
		{"bad ttl", minimalConfig + "WEB_FIX_TTL_SECONDS=-5\n", "WEB_FIX_TTL_SECONDS must not be negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeTempConfig(t, tc.contents))
			requireErrContains(t, err, tc.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	requireErrContains(t, err, "failed to open config file")
}

func TestInitGlobal(t *testing.T) {
	path := writeTempConfig(t, minimalConfig)
	if err := InitGlobal(path); err != nil {
		t.Fatalf("InitGlobal() error: %v", err)
	}
	if Get() == nil || Get().GPSBaudRate != 9600 {
		t.Fatalf("Get()=%+v", Get())
	}
	// Later calls are no-ops.
	if err := InitGlobal(filepath.Join(t.TempDir(), "missing.txt")); err != nil {
		t.Fatalf("second InitGlobal() error: %v", err)
	}
	if Get().GPSSerialPort != "/dev/serial0" {
		t.Fatalf("global config was replaced")
	}
}
