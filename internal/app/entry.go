package app

import (
	"fmt"
	"strconv"

	"github.com/2beens/mapty/internal/workout"
)

// Field is one labeled value of a list entry.
type Field struct {
	Icon  string
	Value string
	Unit  string
}

// Entry is a workout as shown in the list.
type Entry struct {
	ID          string
	Type        workout.Type
	Description string
	Fields      []Field
}

func (e Entry) String() string {
	s := fmt.Sprintf("[%s] %s:", e.ID, e.Description)
	for _, f := range e.Fields {
		s += fmt.Sprintf(" %s %s %s", f.Icon, f.Value, f.Unit)
	}
	return s
}

// EntryFor lays out r the way the workouts list shows it.
func EntryFor(r workout.Record) Entry {
	icon := "🏃‍♂️"
	if r.Type() == workout.TypeCycling {
		icon = "🚴‍♀️"
	}

	fields := []Field{
		{Icon: icon, Value: formatNumber(r.Distance()), Unit: "km"},
		{Icon: "⏱", Value: formatNumber(r.Duration()), Unit: "min"},
	}
	if m, ok := r.Running(); ok {
		fields = append(fields,
			Field{Icon: "⚡️", Value: fmt.Sprintf("%.1f", m.Pace), Unit: "min/km"},
			Field{Icon: "🦶🏼", Value: formatNumber(m.Cadence), Unit: "spm"},
		)
	}
	if m, ok := r.Cycling(); ok {
		fields = append(fields,
			Field{Icon: "⚡️", Value: fmt.Sprintf("%.1f", m.Speed), Unit: "km/h"},
			Field{Icon: "⛰", Value: formatNumber(m.ElevationGain), Unit: "m"},
		)
	}

	return Entry{
		ID:          r.ID(),
		Type:        r.Type(),
		Description: r.Description(),
		Fields:      fields,
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
