package workout

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Type is the workout variant tag.
type Type string

const (
	TypeRunning Type = "running"
	TypeCycling Type = "cycling"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeRunning, TypeCycling:
		return true
	default:
		return false
	}
}

// Title is the capitalized type name, e.g. "Running".
func (t Type) Title() string {
	if t == "" {
		return ""
	}
	s := string(t)
	return strings.ToUpper(s[:1]) + s[1:]
}

// PopupClass is the marker popup style used for the type on the map.
func (t Type) PopupClass() string {
	return string(t) + "-popup"
}

func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", newValidationError("type", fmt.Sprintf("unknown workout type %q", s))
	}
	return t, nil
}

// Coords is a (latitude, longitude) pair.
type Coords struct {
	Lat float64
	Lng float64
}

func (c Coords) String() string {
	return fmt.Sprintf("(%g, %g)", c.Lat, c.Lng)
}

func (c Coords) validate() error {
	if !isFinite(c.Lat) || !isFinite(c.Lng) {
		return newValidationError("coords", "must be finite numbers")
	}
	if c.Lat < -90 || c.Lat > 90 {
		return newValidationError("coords", "latitude must be within [-90, 90]")
	}
	if c.Lng < -180 || c.Lng > 180 {
		return newValidationError("coords", "longitude must be within [-180, 180]")
	}
	return nil
}

type RunningMetrics struct {
	// Cadence in steps per minute.
	Cadence float64
	// Pace in minutes per km.
	Pace float64
}

type CyclingMetrics struct {
	// ElevationGain in meters.
	ElevationGain float64
	// Speed in km/h.
	Speed float64
}

// Record is one logged workout. The zero value is not a valid record;
// records are made by a Factory or restored from a snapshot, and never change afterwards.
type Record struct {
	id          string
	kind        Type
	createdAt   time.Time
	distance    float64
	duration    float64
	coords      Coords
	description string

	// only the payload matching kind is set
	running RunningMetrics
	cycling CyclingMetrics
}

func (r Record) ID() string           { return r.id }
func (r Record) Type() Type           { return r.kind }
func (r Record) CreatedAt() time.Time { return r.createdAt }
func (r Record) Coords() Coords       { return r.coords }
func (r Record) Description() string  { return r.description }

// Distance in km.
func (r Record) Distance() float64 { return r.distance }

// Duration in minutes.
func (r Record) Duration() float64 { return r.duration }

func (r Record) Running() (RunningMetrics, bool) {
	return r.running, r.kind == TypeRunning
}

func (r Record) Cycling() (CyclingMetrics, bool) {
	return r.cycling, r.kind == TypeCycling
}

// Equal reports whether both records carry the same tag, fields and derived values.
func (r Record) Equal(other Record) bool {
	if r.id != other.id ||
		r.kind != other.kind ||
		!r.createdAt.Equal(other.createdAt) ||
		r.distance != other.distance ||
		r.duration != other.duration ||
		r.coords != other.coords ||
		r.description != other.description {
		return false
	}

	switch r.kind {
	case TypeRunning:
		return r.running == other.running
	case TypeCycling:
		return r.cycling == other.cycling
	default:
		return false
	}
}

func (r Record) String() string {
	return fmt.Sprintf("%s [%s] %s", r.description, r.id, r.coords)
}

func pace(distance, duration float64) float64 {
	return duration / distance
}

func speed(distance, duration float64) float64 {
	return distance / (duration / 60)
}

func describe(t Type, createdAt time.Time) string {
	return fmt.Sprintf("%s on %s %d", t.Title(), createdAt.Month(), createdAt.Day())
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
