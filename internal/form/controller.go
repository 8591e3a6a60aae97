package form

import (
	"strconv"
	"strings"
	"time"

	"github.com/2beens/mapty/internal/workout"

	log "github.com/sirupsen/logrus"
)

// Input is the raw form content on submit.
type Input struct {
	Type      string
	Distance  string
	Duration  string
	Cadence   string
	Elevation string
}

// Extra returns the raw value of the field that belongs to t.
func (in Input) Extra(t workout.Type) string {
	if t == workout.TypeCycling {
		return in.Elevation
	}
	return in.Cadence
}

// Values are validated, numeric form values.
type Values struct {
	Type     workout.Type
	Distance float64
	Duration float64
	// Extra is the cadence for running and the elevation gain for cycling.
	Extra float64
}

type Controller struct {
	view       View
	scheduler  Scheduler
	resetDelay time.Duration

	workoutType workout.Type
	visible     map[Field]bool
}

func NewController(view View, scheduler Scheduler, resetDelay time.Duration) *Controller {
	c := &Controller{
		view:       view,
		scheduler:  scheduler,
		resetDelay: resetDelay,
		visible:    map[Field]bool{},
	}
	c.ToggleFieldsForType(workout.TypeRunning)
	return c
}

func (c *Controller) Type() workout.Type {
	return c.workoutType
}

// RowVisible reports whether the row of a type specific field is shown.
func (c *Controller) RowVisible(f Field) bool {
	return c.visible[f]
}

// ToggleFieldsForType shows the cadence row for running and the elevation
// row for cycling. Exactly one of them is visible at any time.
func (c *Controller) ToggleFieldsForType(t workout.Type) {
	showCadence := t != workout.TypeCycling
	if t != workout.TypeCycling {
		t = workout.TypeRunning
	}
	c.workoutType = t

	c.visible[FieldCadence] = showCadence
	c.visible[FieldElevation] = !showCadence
	c.view.SetRowVisible(FieldCadence, showCadence)
	c.view.SetRowVisible(FieldElevation, !showCadence)
}

// Open reveals the form and puts the cursor into the distance field.
func (c *Controller) Open() {
	c.view.Show()
	c.view.Focus(FieldDistance)
}

// Validate parses and checks raw input. Every value must be a finite positive
// number, except the cycling elevation gain which may also be zero.
func (c *Controller) Validate(t workout.Type, distance, duration, extra string) (Values, error) {
	values := Values{Type: t}
	var err error
	if values.Distance, err = parseNumber("distance", distance); err != nil {
		return Values{}, err
	}
	if values.Duration, err = parseNumber("duration", duration); err != nil {
		return Values{}, err
	}
	extraField := "cadence"
	if t == workout.TypeCycling {
		extraField = "elevationGain"
	}
	if values.Extra, err = parseNumber(extraField, extra); err != nil {
		return Values{}, err
	}

	return ValidateNumbers(t, values.Distance, values.Duration, values.Extra)
}

// ValidateNumbers is Validate for input that is numeric already.
func ValidateNumbers(t workout.Type, distance, duration, extra float64) (Values, error) {
	if err := workout.ValidateInputs(t, distance, duration, extra); err != nil {
		return Values{}, err
	}
	return Values{
		Type:     t,
		Distance: distance,
		Duration: duration,
		Extra:    extra,
	}, nil
}

// Reset clears every input and hides the form. The layout is restored after
// the reset delay, once the hide animation is over; the returned channel is
// closed at that point.
func (c *Controller) Reset() <-chan struct{} {
	for _, f := range []Field{FieldDistance, FieldDuration, FieldCadence, FieldElevation} {
		c.view.Clear(f)
	}
	c.view.Hide()

	done := make(chan struct{})
	c.scheduler.After(c.resetDelay, func() {
		c.view.RestoreLayout()
		log.Trace("form layout restored")
		close(done)
	})
	return done
}

func parseNumber(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &workout.ValidationError{Field: field, Reason: "must be a number"}
	}
	return v, nil
}
