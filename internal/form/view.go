package form

import "time"

//go:generate mockgen -source=$GOFILE -destination=view_mocks_test.go -package=form_test

// Field names an input of the workout form.
type Field string

const (
	FieldType      Field = "type"
	FieldDistance  Field = "distance"
	FieldDuration  Field = "duration"
	FieldCadence   Field = "cadence"
	FieldElevation Field = "elevation"
)

// View is the form as drawn by the UI.
type View interface {
	// Show reveals the form.
	Show()
	// Hide hides the form at once, skipping the hide animation.
	Hide()
	// RestoreLayout brings back the form's normal layout mode after a Hide.
	RestoreLayout()
	SetRowVisible(f Field, visible bool)
	Clear(f Field)
	Focus(f Field)
}

// Scheduler runs fn once, after d.
type Scheduler interface {
	After(d time.Duration, fn func())
}
