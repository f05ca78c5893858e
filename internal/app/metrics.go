// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/relabs-tech/gnss_fix/internal/gps"
)

// decodeMetrics exports the per-epoch decoder counters and the most recent
// fix quality of the GPS producer.
type decodeMetrics struct {
	gatherer prometheus.Gatherer

	Epochs    prometheus.Counter
	Sentences *prometheus.CounterVec // by outcome
	Quality   prometheus.Gauge
	NumSats   prometheus.Gauge
	Systems   prometheus.Gauge
}

func newDecodeMetrics(reg *prometheus.Registry) (*decodeMetrics, error) {
	m := &decodeMetrics{
		gatherer: reg,
		Epochs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gnss_epochs_total",
			Help: "Receiver epochs decoded.",
		}),
		Sentences: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gnss_nmea_sentences_total",
			Help: "NMEA sentences seen, labeled by decode outcome.",
		}, []string{"outcome"}),
		Quality: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gnss_fix_quality",
			Help: "GGA quality indicator of the latest epoch.",
		}),
		NumSats: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gnss_satellites_used",
			Help: "Satellites used in the latest fix, -1 when unknown.",
		}),
		Systems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gnss_systems_in_view",
			Help: "Constellations reported by GSV in the latest epoch.",
		}),
	}
	for _, c := range []prometheus.Collector{m.Epochs, m.Sentences, m.Quality, m.NumSats, m.Systems} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return m, nil
}

func (m *decodeMetrics) observe(e gps.Epoch) {
	if m == nil {
		return
	}
	s := e.Stats
	m.Epochs.Inc()
	m.Sentences.WithLabelValues("decoded").Add(float64(s.Decoded))
	m.Sentences.WithLabelValues("rejected").Add(float64(s.Rejected))
	m.Sentences.WithLabelValues("ignored").Add(float64(s.Ignored))
	m.Sentences.WithLabelValues("unrecognized").Add(float64(s.Unrecognized))
	m.Sentences.WithLabelValues("correlated").Add(float64(s.Correlated))

	m.Quality.Set(float64(e.State.Quality))
	m.NumSats.Set(float64(e.State.NumSats))
	m.Systems.Set(float64(e.State.Satellites.Len()))
}

// Handler exposes the registry as a /metrics handler.
func (m *decodeMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// serveMetrics starts the /metrics listener in the background.
func (m *decodeMetrics) serveMetrics(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	addr := fmt.Sprintf(":%d", port)
	go func() {
		log.Printf("metrics: listening on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("metrics: server error: %v", err)
		}
	}()
}
