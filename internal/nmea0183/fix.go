// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package nmea0183

import "math"

// DefaultHDOP is the protocol's "unknown" horizontal dilution of precision.
const DefaultHDOP = 99.99

// Mode is the positioning mode indicator letter of RMC and VTG.
type Mode string

const (
	ModeNoData       Mode = "N"
	ModeAutonomous   Mode = "A"
	ModeDifferential Mode = "D"
	ModeEstimated    Mode = "E"
	ModeManual       Mode = "M"
)

func (m Mode) String() string {
	switch m {
	case ModeNoData:
		return "no data"
	case ModeAutonomous:
		return "autonomous"
	case ModeDifferential:
		return "differential"
	case ModeEstimated:
		return "estimated"
	case ModeManual:
		return "manual"
	default:
		return string(m)
	}
}

var qualityLabels = [...]string{
	"Not fix",
	"SPS fix",
	"DGPS fix",
	"GPS-PPS",
	"RTK fix",
	"RTK float",
	"Estimated",
	"Manual",
	"Simulation",
}

// QualityLabel returns the human readable GGA quality indicator.
func QualityLabel(q int) string {
	if q < 0 || q >= len(qualityLabels) {
		return "undefined"
	}
	return qualityLabels[q]
}

// GsaRecord is one GSA sentence: the satellites used in the solution of
// one constellation together with its DOP values.
type GsaRecord struct {
	Mode    string // A=automatic, M=manual 2D/3D selection
	FixType int    // 1=no fix, 2=2D, 3=3D
	SVIDs   []int  // at most 12
	PDOP    float64
	HDOP    float64
	VDOP    float64

	System SystemID
	Source SystemSource
}

// SystemSource records how GsaRecord.System was determined.
type SystemSource int

const (
	SourceTalker     SystemSource = iota // from the talker prefix
	SourceField                          // from the NMEA 4.10 system id field
	SourceCorrelated                     // positional match with GSV groups
	SourcePending                        // combined talker, not yet resolved
)

func (s SystemSource) String() string {
	switch s {
	case SourceTalker:
		return "talker"
	case SourceField:
		return "field"
	case SourceCorrelated:
		return "correlated"
	default:
		return "pending"
	}
}

// Satellite is one satellite block of a GSV sentence. Elevation, Azimuth
// and SNR are Unknown when the receiver left them empty.
type Satellite struct {
	ID        int
	Elevation int // degrees, 0-90
	Azimuth   int // degrees from true north, 0-359
	SNR       int // C/No in dB-Hz, 0-99
}

// SatelliteGroup collects the satellites in view of one constellation.
type SatelliteGroup struct {
	System     SystemID
	InView     int // total in view as last reported by the receiver
	Satellites []Satellite

	// SignalID is the NMEA 4.10 signal identifier of the most recent GSV.
	// It is decoded but not used by anything in this package.
	SignalID int
}

// Satellites maps a system key (SystemID.Key) to its group, remembering the
// order in which systems were first seen.
type Satellites struct {
	keys   []string
	groups map[string]*SatelliteGroup
}

// Keys returns the system keys in first-seen order.
func (s *Satellites) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len is the number of systems seen.
func (s *Satellites) Len() int { return len(s.keys) }

// Group looks up the group stored under key.
func (s *Satellites) Group(key string) (*SatelliteGroup, bool) {
	g, ok := s.groups[key]
	return g, ok
}

// Groups returns every group in first-seen order.
func (s *Satellites) Groups() []*SatelliteGroup {
	out := make([]*SatelliteGroup, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.groups[k])
	}
	return out
}

func (s *Satellites) group(id SystemID) *SatelliteGroup {
	key := id.Key()
	if g, ok := s.groups[key]; ok {
		return g
	}
	if s.groups == nil {
		s.groups = make(map[string]*SatelliteGroup)
	}
	g := &SatelliteGroup{
		System:     id,
		InView:     Unknown,
		Satellites: []Satellite{},
		SignalID:   Unknown,
	}
	s.groups[key] = g
	s.keys = append(s.keys, key)
	return g
}

// FixState is everything known about the current fix after one decode
// pass. Time and date come from different sentences and are not checked
// against each other.
type FixState struct {
	// UTC time of day (GGA, RMC).
	Hour, Minute, Second, Millisecond int
	// UTC date (RMC).
	Day, Month, Year int

	// Latitude and Longitude are unsigned; see LatNS and LonEW.
	Latitude  float64
	LatNS     string
	Longitude float64
	LonEW     string

	Altitude     float64
	AltitudeUnit string
	Geoid        float64 // geoid separation
	GeoidUnit    string

	Quality     int // GGA quality indicator, see QualityLabel
	NumSats     int
	HDOP        float64
	DGPSAge     float64
	DGPSStation string

	SpeedKnots float64
	SpeedKmh   float64
	TrackTrue  float64
	TrackMag   float64
	MagVar     float64
	MagVarDir  string

	Mode Mode
	// Status is the RMC validity letter (A/V). It does not gate any field.
	Status string

	GSA        []GsaRecord
	Satellites Satellites
}

// NewFixState returns a state with every field unknown except the
// documented protocol defaults.
func NewFixState() *FixState {
	nan := math.NaN()
	return &FixState{
		Hour:         Unknown,
		Minute:       Unknown,
		Second:       Unknown,
		Millisecond:  Unknown,
		Day:          Unknown,
		Month:        Unknown,
		Year:         Unknown,
		Latitude:     nan,
		Longitude:    nan,
		Altitude:     nan,
		AltitudeUnit: "M",
		Geoid:        nan,
		GeoidUnit:    "M",
		Quality:      0,
		NumSats:      Unknown,
		HDOP:         DefaultHDOP,
		DGPSAge:      nan,
		SpeedKnots:   nan,
		SpeedKmh:     nan,
		TrackTrue:    nan,
		TrackMag:     nan,
		MagVar:       nan,
		Mode:         ModeNoData,
		Satellites:   Satellites{groups: make(map[string]*SatelliteGroup)},
	}
}

// QualityDesc is QualityLabel(s.Quality).
func (s *FixState) QualityDesc() string {
	return QualityLabel(s.Quality)
}

// SignedLatitude applies the N/S letter; south is negative.
func (s *FixState) SignedLatitude() float64 {
	if s.LatNS == "S" {
		return -s.Latitude
	}
	return s.Latitude
}

// SignedLongitude applies the E/W letter; west is negative.
func (s *FixState) SignedLongitude() float64 {
	if s.LonEW == "W" {
		return -s.Longitude
	}
	return s.Longitude
}

// HasPosition reports whether both coordinates are known.
func (s *FixState) HasPosition() bool {
	return !math.IsNaN(s.Latitude) && !math.IsNaN(s.Longitude)
}
