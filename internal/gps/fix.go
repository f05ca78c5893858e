// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package gps

import (
	"fmt"
	"math"

	"github.com/relabs-tech/gnss_fix/internal/nmea0183"
)

// Fix is the JSON form of a decoded nmea0183.FixState, suitable for MQTT
// and the web API. Unknown values are omitted rather than sent as NaN,
// which encoding/json cannot represent.
type Fix struct {
	Time string `json:"time,omitempty"` // e.g. "12:34:56.000"
	Date string `json:"date,omitempty"` // e.g. "2025-12-06"

	Latitude  *float64 `json:"lat,omitempty"` // signed decimal degrees
	Longitude *float64 `json:"lon,omitempty"` // signed decimal degrees
	LatNS     string   `json:"lat_ns,omitempty"`
	LonEW     string   `json:"lon_ew,omitempty"`

	Altitude     *float64 `json:"altitude,omitempty"`
	AltitudeUnit string   `json:"altitude_unit,omitempty"`
	Geoid        *float64 `json:"geoid,omitempty"`
	GeoidUnit    string   `json:"geoid_unit,omitempty"`

	Quality      int      `json:"quality"`
	QualityLabel string   `json:"quality_label"`
	NumSats      *int     `json:"num_sats,omitempty"`
	HDOP         *float64 `json:"hdop,omitempty"`
	DGPSAge      *float64 `json:"dgps_age,omitempty"`
	DGPSStation  string   `json:"dgps_station,omitempty"`

	SpeedKnots *float64 `json:"speed_knots,omitempty"` // speed over ground
	SpeedKmh   *float64 `json:"speed_kmh,omitempty"`
	CourseDeg  *float64 `json:"course_deg,omitempty"` // course over ground, true
	CourseMag  *float64 `json:"course_mag_deg,omitempty"`
	MagVar     *float64 `json:"mag_var,omitempty"`
	MagVarDir  string   `json:"mag_var_dir,omitempty"`

	Mode     string `json:"mode"`               // N, A, D, E, M
	Validity string `json:"validity,omitempty"` // "A" (valid) / "V" (void), etc.

	DOP        []DOP          `json:"dop,omitempty"`
	Satellites []SystemInView `json:"satellites,omitempty"`
}

// DOP is one GSA record.
type DOP struct {
	System   string   `json:"system"`
	SystemID int      `json:"system_id"`
	Resolved string   `json:"resolved"` // talker, field, correlated, pending
	Mode     string   `json:"mode,omitempty"`
	FixType  *int     `json:"fix_type,omitempty"`
	SVIDs    []int    `json:"svids"`
	PDOP     *float64 `json:"pdop,omitempty"`
	HDOP     *float64 `json:"hdop,omitempty"`
	VDOP     *float64 `json:"vdop,omitempty"`
}

// SystemInView is the GSV data of one constellation.
type SystemInView struct {
	System     string      `json:"system"`
	SystemID   int         `json:"system_id"`
	InView     *int        `json:"in_view,omitempty"`
	SignalID   *int        `json:"signal_id,omitempty"`
	Satellites []Satellite `json:"sats"`
}

// Satellite is one satellite in view.
type Satellite struct {
	ID        int  `json:"id"`
	Elevation *int `json:"elev,omitempty"`
	Azimuth   *int `json:"az,omitempty"`
	SNR       *int `json:"snr,omitempty"`
}

// SatelliteView is the payload of the satellites topic.
type SatelliteView struct {
	Time       string         `json:"time,omitempty"`
	DOP        []DOP          `json:"dop"`
	Satellites []SystemInView `json:"satellites"`
}

// FromState builds the JSON view of st.
func FromState(st *nmea0183.FixState) Fix {
	f := Fix{
		Time:         timeString(st),
		Date:         dateString(st),
		LatNS:        st.LatNS,
		LonEW:        st.LonEW,
		Altitude:     floatPtr(st.Altitude),
		AltitudeUnit: st.AltitudeUnit,
		Geoid:        floatPtr(st.Geoid),
		GeoidUnit:    st.GeoidUnit,
		Quality:      st.Quality,
		QualityLabel: st.QualityDesc(),
		NumSats:      intPtr(st.NumSats),
		HDOP:         floatPtr(st.HDOP),
		DGPSAge:      floatPtr(st.DGPSAge),
		DGPSStation:  st.DGPSStation,
		SpeedKnots:   floatPtr(st.SpeedKnots),
		SpeedKmh:     floatPtr(st.SpeedKmh),
		CourseDeg:    floatPtr(st.TrackTrue),
		CourseMag:    floatPtr(st.TrackMag),
		MagVar:       floatPtr(st.MagVar),
		MagVarDir:    st.MagVarDir,
		Mode:         string(st.Mode),
		Validity:     st.Status,
		DOP:          dopView(st),
		Satellites:   inViewView(st),
	}
	if st.HasPosition() {
		f.Latitude = floatPtr(st.SignedLatitude())
		f.Longitude = floatPtr(st.SignedLongitude())
	}
	return f
}

// SatellitesFromState builds the satellites topic payload of st.
func SatellitesFromState(st *nmea0183.FixState) SatelliteView {
	v := SatelliteView{
		Time:       timeString(st),
		DOP:        dopView(st),
		Satellites: inViewView(st),
	}
	if v.DOP == nil {
		v.DOP = []DOP{}
	}
	if v.Satellites == nil {
		v.Satellites = []SystemInView{}
	}
	return v
}

func dopView(st *nmea0183.FixState) []DOP {
	if len(st.GSA) == 0 {
		return nil
	}
	out := make([]DOP, 0, len(st.GSA))
	for _, r := range st.GSA {
		svids := r.SVIDs
		if svids == nil {
			svids = []int{}
		}
		out = append(out, DOP{
			System:   r.System.String(),
			SystemID: int(r.System),
			Resolved: r.Source.String(),
			Mode:     r.Mode,
			FixType:  intPtr(r.FixType),
			SVIDs:    svids,
			PDOP:     floatPtr(r.PDOP),
			HDOP:     floatPtr(r.HDOP),
			VDOP:     floatPtr(r.VDOP),
		})
	}
	return out
}

func inViewView(st *nmea0183.FixState) []SystemInView {
	groups := st.Satellites.Groups()
	if len(groups) == 0 {
		return nil
	}
	out := make([]SystemInView, 0, len(groups))
	for _, g := range groups {
		sats := make([]Satellite, 0, len(g.Satellites))
		for _, s := range g.Satellites {
			sats = append(sats, Satellite{
				ID:        s.ID,
				Elevation: intPtr(s.Elevation),
				Azimuth:   intPtr(s.Azimuth),
				SNR:       intPtr(s.SNR),
			})
		}
		out = append(out, SystemInView{
			System:     g.System.String(),
			SystemID:   int(g.System),
			InView:     intPtr(g.InView),
			SignalID:   intPtr(g.SignalID),
			Satellites: sats,
		})
	}
	return out
}

func timeString(st *nmea0183.FixState) string {
	if st.Hour == nmea0183.Unknown || st.Minute == nmea0183.Unknown || st.Second == nmea0183.Unknown {
		return ""
	}
	if st.Millisecond == nmea0183.Unknown {
		return fmt.Sprintf("%02d:%02d:%02d", st.Hour, st.Minute, st.Second)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%03d", st.Hour, st.Minute, st.Second, st.Millisecond)
}

func dateString(st *nmea0183.FixState) string {
	if st.Year == nmea0183.Unknown || st.Month == nmea0183.Unknown || st.Day == nmea0183.Unknown {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", st.Year, st.Month, st.Day)
}

func floatPtr(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func intPtr(v int) *int {
	if v == nmea0183.Unknown {
		return nil
	}
	return &v
}
