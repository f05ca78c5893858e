// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"fmt"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	serial "github.com/jacobsa/go-serial/serial"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/relabs-tech/gnss_fix/internal/config"
	"github.com/relabs-tech/gnss_fix/internal/gps"
	"github.com/relabs-tech/gnss_fix/internal/nmea0183"
)

// RunGPSProducer opens the GPS serial port, decodes NMEA sentences one
// receiver epoch at a time, and publishes each decoded fix as JSON to MQTT.
func RunGPSProducer() error {
	cfg := config.Get()

	// ---- 1) Connect to MQTT broker ----
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDGPS)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer client.Disconnect(250)
	log.Printf("GPS producer connected to MQTT broker at %s", cfg.MQTTBroker)

	// ---- 2) Open GPS serial port ----
	serialOpts := serial.OpenOptions{
		PortName:              cfg.GPSSerialPort,
		BaudRate:              uint(cfg.GPSBaudRate),
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       1,
		ParityMode:            serial.PARITY_NONE,
		InterCharacterTimeout: 0,
	}

	port, err := serial.Open(serialOpts)
	if err != nil {
		return fmt.Errorf("open GPS serial port %s: %w", cfg.GPSSerialPort, err)
	}
	defer port.Close()
	log.Printf("GPS serial port opened on %s at %d baud", serialOpts.PortName, serialOpts.BaudRate)

	// ---- 3) Decode epochs and publish ----
	framer := gps.NewEpochFramer(cfg.GPSEpochSentence, cfg.GPSMaxEpochLines)
	dec := &nmea0183.Decoder{}
	pub := &fixPublisher{client: client, fixTopic: cfg.TopicGPS, satTopic: cfg.TopicGPSSatellites}

	if cfg.MetricsPort > 0 {
		metrics, err := newDecodeMetrics(prometheus.NewRegistry())
		if err != nil {
			return err
		}
		metrics.serveMetrics(cfg.MetricsPort)
		pub.metrics = metrics
	}

	err = gps.DecodeEpochs(port, framer, dec, pub.publish)
	if err != nil {
		log.Printf("GPS read error: %v", err)
	}
	return err
}

// fixPublisher publishes decoded epochs. Publish failures are logged and
// skipped so one broker hiccup does not stop the receiver loop.
type fixPublisher struct {
	client   mqtt.Client
	fixTopic string
	satTopic string
	metrics  *decodeMetrics
}

func (p *fixPublisher) publish(e gps.Epoch) error {
	p.metrics.observe(e)
	if e.Stats.Rejected > 0 {
		log.Printf("GPS epoch: %d of %d sentences failed checksum", e.Stats.Rejected, e.Stats.Records)
	}
	if e.Stats.Decoded == 0 {
		return nil
	}

	fix := gps.FromState(e.State)
	payload, err := json.Marshal(fix)
	if err != nil {
		log.Printf("GPS JSON marshal error: %v", err)
		return nil
	}
	if err := p.send(p.fixTopic, true, payload); err != nil {
		log.Printf("GPS publish error: %v", err)
		return nil
	}

	if p.satTopic != "" {
		sats, err := json.Marshal(gps.SatellitesFromState(e.State))
		if err != nil {
			log.Printf("GPS satellites marshal error: %v", err)
			return nil
		}
		if err := p.send(p.satTopic, false, sats); err != nil {
			log.Printf("GPS satellites publish error: %v", err)
			return nil
		}
	}

	log.Printf("published GPS fix: time=%s quality=%s sats=%d systems=%d",
		fix.Time, fix.QualityLabel, e.State.NumSats, e.State.Satellites.Len())
	return nil
}

func (p *fixPublisher) send(topic string, retained bool, payload []byte) error {
	token := p.client.Publish(topic, 0, retained, payload)
	token.Wait()
	return token.Error()
}
