// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/relabs-tech/gnss_fix/internal/gps"
	"github.com/relabs-tech/gnss_fix/internal/nmea0183"
)

// Config holds all application configuration values.
type Config struct {
	// MQTT
	MQTTBroker          string
	MQTTClientIDGPS     string
	MQTTClientIDConsole string
	MQTTClientIDWeb     string

	// Topics
	TopicGPS           string
	TopicGPSSatellites string

	// GPS
	GPSSerialPort    string
	GPSBaudRate      int
	GPSEpochSentence nmea0183.Kind // sentence type that opens a receiver epoch: GGA, RMC or VTG
	GPSMaxEpochLines int

	// Metrics (0 disables the producer's /metrics endpoint)
	MetricsPort int

	// Web Server
	WebServerPort    int
	WebFixTTLSeconds int // 0 keeps the last fix forever
}

// Package-level unexported variables for singleton pattern:
//   - globalConfig: only reachable through InitGlobal and Get.
//   - configOnce: ensures InitGlobal() only runs once, even if called multiple times.
//   - configMu: RWMutex protects concurrent access.
var (
	globalConfig *Config
	configOnce   sync.Once
	configMu     sync.RWMutex
)

// Defaults returns a Config with every optional value filled in.
func Defaults() *Config {
	return &Config{
		MQTTClientIDGPS:     "gnss-gps-producer",
		MQTTClientIDConsole: "gnss-console-subscriber",
		MQTTClientIDWeb:     "gnss-web-subscriber",
		TopicGPS:            "gnss/fix",
		TopicGPSSatellites:  "gnss/satellites",
		GPSEpochSentence:    nmea0183.KindRMC,
		GPSMaxEpochLines:    64,
		WebServerPort:       8080,
		WebFixTTLSeconds:    10,
	}
}

// Load reads the configuration file and returns a Config struct.
func Load(configPath string) (*Config, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	cfg := Defaults()
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := cfg.setValue(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	switch key {
	// MQTT
	case "MQTT_BROKER":
		c.MQTTBroker = value
	case "MQTT_CLIENT_ID_GPS":
		c.MQTTClientIDGPS = value
	case "MQTT_CLIENT_ID_CONSOLE":
		c.MQTTClientIDConsole = value
	case "MQTT_CLIENT_ID_WEB":
		c.MQTTClientIDWeb = value

	// Topics
	case "TOPIC_GPS":
		c.TopicGPS = value
	case "TOPIC_GPS_SATELLITES":
		c.TopicGPSSatellites = value

	// GPS
	case "GPS_SERIAL_PORT":
		c.GPSSerialPort = value
	case "GPS_BAUD_RATE":
		rate, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid GPS_BAUD_RATE %q: %w", value, err)
		}
		c.GPSBaudRate = rate
	case "GPS_EPOCH_SENTENCE":
		kind := nmea0183.ParseKind(value)
		if !gps.ValidEpochSentence(kind) {
			return fmt.Errorf("GPS_EPOCH_SENTENCE must be one of GGA, RMC, VTG, got %q", value)
		}
		c.GPSEpochSentence = kind
	case "GPS_MAX_EPOCH_LINES":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid GPS_MAX_EPOCH_LINES %q: %w", value, err)
		}
		if n < 1 {
			return fmt.Errorf("GPS_MAX_EPOCH_LINES must be at least 1, got %d", n)
		}
		c.GPSMaxEpochLines = n

	// Metrics
	case "METRICS_PORT":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid METRICS_PORT %q: %w", value, err)
		}
		if port < 0 || port > 65535 {
			return fmt.Errorf("METRICS_PORT must be 0-65535, got %d", port)
		}
		c.MetricsPort = port

	// Web Server
	case "WEB_SERVER_PORT":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid WEB_SERVER_PORT %q: %w", value, err)
		}
		if port < 1 || port > 65535 {
			return fmt.Errorf("WEB_SERVER_PORT must be 1-65535, got %d", port)
		}
		c.WebServerPort = port
	case "WEB_FIX_TTL_SECONDS":
		ttl, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid WEB_FIX_TTL_SECONDS %q: %w", value, err)
		}
		if ttl < 0 {
			return fmt.Errorf("WEB_FIX_TTL_SECONDS must not be negative, got %d", ttl)
		}
		c.WebFixTTLSeconds = ttl

	default:
		return fmt.Errorf("unknown config key: %q", key)
	}

	return nil
}

// validate checks that all required fields are set.
func (c *Config) validate() error {
	if c.MQTTBroker == "" {
		return fmt.Errorf("MQTT_BROKER is required")
	}
	if c.TopicGPS == "" {
		return fmt.Errorf("TOPIC_GPS is required")
	}
	if c.GPSSerialPort == "" {
		return fmt.Errorf("GPS_SERIAL_PORT is required")
	}
	if c.GPSBaudRate == 0 {
		return fmt.Errorf("GPS_BAUD_RATE is required")
	}
	return nil
}

// InitGlobal initializes the global configuration from file.
// Uses sync.Once to ensure this only runs once, even if called multiple times.
func InitGlobal(configPath string) error {
	var err error
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		globalConfig, err = Load(configPath)
	})
	return err
}

// Get returns the global configuration instance.
// InitGlobal must be called first, or this will return nil.
func Get() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}
