// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package gps

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/relabs-tech/gnss_fix/internal/nmea0183"
)

// MockReceiver emits NMEA epochs for a receiver driving a slow circle.
// It reports GSA under the combined GN talker without system ids, so the
// decoder has to correlate them against the GP/GL GSV groups.
type MockReceiver struct {
	CenterLat float64
	CenterLon float64
	RadiusDeg float64
	SpeedKt   float64

	start time.Time
	now   func() time.Time
}

// NewMockReceiver creates a mock receiver circling Munich.
func NewMockReceiver() *MockReceiver {
	return &MockReceiver{
		CenterLat: 48.1173,
		CenterLon: 11.516666,
		RadiusDeg: 0.01,
		SpeedKt:   12,
		start:     time.Now(),
		now:       time.Now,
	}
}

// Next returns the CRLF separated sentences of the current epoch.
func (m *MockReceiver) Next() string {
	now := m.now().UTC()
	elapsed := now.Sub(m.start).Seconds()

	angle := elapsed * 0.05
	lat := m.CenterLat + m.RadiusDeg*math.Sin(angle)
	lon := m.CenterLon + m.RadiusDeg*math.Cos(angle)
	course := math.Mod(360-angle*180/math.Pi, 360)
	if course < 0 {
		course += 360
	}

	hms := fmt.Sprintf("%02d%02d%02d.%02d", now.Hour(), now.Minute(), now.Second(), now.Nanosecond()/10_000_000)
	dmy := fmt.Sprintf("%02d%02d%02d", now.Day(), int(now.Month()), now.Year()%100)
	latStr, ns := degMin(lat, 2, "N", "S")
	lonStr, ew := degMin(lon, 3, "E", "W")

	payloads := []string{
		fmt.Sprintf("GPRMC,%s,A,%s,%s,%s,%s,%.1f,%.1f,%s,,,A", hms, latStr, ns, lonStr, ew, m.SpeedKt, course, dmy),
		fmt.Sprintf("GPGGA,%s,%s,%s,%s,%s,1,08,0.9,545.4,M,46.9,M,,", hms, latStr, ns, lonStr, ew),
		fmt.Sprintf("GPVTG,%.1f,T,,M,%.1f,N,%.1f,K,A", course, m.SpeedKt, m.SpeedKt*1.852),
		gsaPayload([]int{1, 2, 3, 4}),
		gsaPayload([]int{65, 66, 67, 68}),
		"GPGSV,1,1,04,01,40,083,46,02,17,308,41,03,62,120,44,04,25,210,39",
		"GLGSV,1,1,04,65,33,045,38,66,51,160,42,67,12,290,31,68,70,010,45",
	}

	var b strings.Builder
	for _, p := range payloads {
		body := "$" + p
		fmt.Fprintf(&b, "%s*%s\r\n", body, nmea0183.Checksum(body))
	}
	return b.String()
}

// degMin encodes v as ddmm.mmmm (or dddmm.mmmm) plus its hemisphere.
func degMin(v float64, degDigits int, pos, neg string) (string, string) {
	hemi := pos
	if v < 0 {
		hemi = neg
		v = -v
	}
	deg := math.Floor(v)
	mins := (v - deg) * 60
	return fmt.Sprintf("%0*d%07.4f", degDigits, int(deg), mins), hemi
}

func gsaPayload(svids []int) string {
	slots := make([]string, 12)
	for i, id := range svids {
		slots[i] = fmt.Sprintf("%02d", id)
	}
	return "GNGSA,A,3," + strings.Join(slots, ",") + ",1.6,0.9,1.3"
}
