package app

import (
	"time"

	"github.com/2beens/mapty/internal/workout"
)

//go:generate mockgen -source=$GOFILE -destination=capabilities_mocks_test.go -package=app_test

// Renderer draws workout entries into the list next to the map.
type Renderer interface {
	RenderEntry(e Entry)
}

// Notifier shows a blocking notice to the user.
type Notifier interface {
	Notify(msg string)
}

type Geolocator interface {
	CurrentPosition(onSuccess func(workout.Coords), onFailure func(error))
}

// Loop serializes app events. Callbacks arriving from other goroutines are
// posted to it, and the form uses it to schedule the layout restore.
type Loop interface {
	Post(fn func())
	After(d time.Duration, fn func())
}
