package geolocation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/mapty/internal/config"
	"github.com/2beens/mapty/internal/workout"
)

var ErrPositionUnavailable = errors.New("position unavailable")

// Geolocator asks for the current position once. Exactly one of the callbacks
// is invoked, possibly from another goroutine.
type Geolocator interface {
	CurrentPosition(onSuccess func(workout.Coords), onFailure func(error))
}

// New returns the provider selected by the geolocation config value.
func New(cfg *config.Config, ipInfoToken string) (Geolocator, error) {
	switch cfg.Geolocation {
	case config.GeolocationStatic:
		return NewStatic(workout.Coords{Lat: cfg.StaticLatitude, Lng: cfg.StaticLongitude}), nil
	case config.GeolocationIPInfo:
		return NewIPInfo(nil, ipInfoToken), nil
	default:
		return nil, fmt.Errorf("unknown geolocation provider: %s", cfg.Geolocation)
	}
}

// parseLocation parses the "lat,lng" form used by ipinfo.io.
func parseLocation(loc string) (workout.Coords, error) {
	latStr, lngStr, ok := strings.Cut(loc, ",")
	if !ok {
		return workout.Coords{}, fmt.Errorf("malformed location [%s]", loc)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return workout.Coords{}, fmt.Errorf("parse latitude [%s]: %w", latStr, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return workout.Coords{}, fmt.Errorf("parse longitude [%s]: %w", lngStr, err)
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return workout.Coords{}, fmt.Errorf("location out of range [%s]", loc)
	}
	return workout.Coords{Lat: lat, Lng: lng}, nil
}
