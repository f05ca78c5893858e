// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gorilla/websocket"
	"github.com/patrickmn/go-cache"

	"github.com/relabs-tech/gnss_fix/internal/config"
	"github.com/relabs-tech/gnss_fix/internal/gps"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

const latestFixKey = "fix"

// fixHub keeps the latest fix and fans every new one out to websocket
// clients. The latest fix expires after ttl so a dead receiver is not
// reported as a current position; ttl <= 0 keeps it forever.
type fixHub struct {
	mu      sync.Mutex
	last    *cache.Cache
	clients map[*websocket.Conn]chan gps.Fix
}

func newFixHub(ttl time.Duration) *fixHub {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &fixHub{
		last:    cache.New(ttl, time.Minute),
		clients: make(map[*websocket.Conn]chan gps.Fix),
	}
}

func (h *fixHub) update(f gps.Fix) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last.SetDefault(latestFixKey, f)
	for conn, ch := range h.clients {
		select {
		case ch <- f:
		default:
			log.Printf("web: client %s too slow, dropping fix", conn.RemoteAddr())
		}
	}
}

func (h *fixHub) latest() (gps.Fix, bool) {
	v, ok := h.last.Get(latestFixKey)
	if !ok {
		return gps.Fix{}, false
	}
	return v.(gps.Fix), true
}

// handleFix serves the latest fix as JSON, or 503 when there is none.
func (h *fixHub) handleFix(w http.ResponseWriter, r *http.Request) {
	f, ok := h.latest()
	if !ok {
		http.Error(w, "no data yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(f); err != nil {
		log.Printf("json encode error: %v", err)
	}
}

// handleWS streams fixes to one websocket client, starting with the latest.
func (h *fixHub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("web: websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	ch := make(chan gps.Fix, 8)
	h.mu.Lock()
	h.clients[conn] = ch
	if f, ok := h.latest(); ok {
		ch <- f
	}
	h.mu.Unlock()
	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// The reader only notices the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("web: websocket error: %v", err)
				}
				return
			}
		}
	}()

	for {
		select {
		case f := <-ch:
			if err := conn.WriteJSON(f); err != nil {
				log.Printf("web: websocket write error: %v", err)
				return
			}
		case <-closed:
			return
		}
	}
}

func (h *fixHub) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/gps", h.handleFix)
	mux.HandleFunc("/ws/gps", h.handleWS)
	// Static files from ./web as the root
	mux.Handle("/", http.FileServer(http.Dir("web")))
	return mux
}

func RunWeb() error {
	cfg := config.Get()
	hub := newFixHub(time.Duration(cfg.WebFixTTLSeconds) * time.Second)

	// 1) Connect to MQTT broker
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDWeb)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("connected to MQTT broker at %s", cfg.MQTTBroker)

	// 2) Subscribe to the fix topic and update the hub on each message
	token := client.Subscribe(cfg.TopicGPS, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var f gps.Fix
		if err := json.Unmarshal(msg.Payload(), &f); err != nil {
			log.Printf("MQTT payload unmarshal error: %v", err)
			return
		}
		hub.update(f)
	})
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("subscribed to MQTT topic %s", cfg.TopicGPS)

	addr := fmt.Sprintf(":%d", cfg.WebServerPort)
	log.Printf("web server listening on %s", addr)
	return http.ListenAndServe(addr, hub.routes())
}
