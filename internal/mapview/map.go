package mapview

import (
	"time"

	"github.com/2beens/mapty/internal/workout"
)

//go:generate mockgen -source=$GOFILE -destination=map_mocks_test.go -package=mapview_test

// Handle identifies a rendered map inside the map capability.
type Handle string

// MarkerRef identifies a marker placed on a map.
type MarkerRef string

type PopupOptions struct {
	MaxWidth     int
	MaxHeight    int
	AutoClose    bool
	CloseOnClick bool
	ClassName    string
	Content      string
}

type ViewOptions struct {
	Animate     bool
	PanDuration time.Duration
}

// Map is the external map widget: it renders tiles, reports clicks and shows markers.
type Map interface {
	Initialize(container string, center workout.Coords, zoom int) (Handle, error)
	OnClick(h Handle, fn func(workout.Coords))
	AddMarker(h Handle, coords workout.Coords, opts PopupOptions) (MarkerRef, error)
	SetView(h Handle, coords workout.Coords, zoom int, opts ViewOptions) error
}
