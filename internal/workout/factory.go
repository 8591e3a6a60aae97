package workout

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// IDSource hands out workout identifiers of the form <prefix>-<n>.
// n comes from an atomic counter, so ids from one source never repeat;
// the random prefix keeps ids from different sessions apart.
type IDSource struct {
	prefix string
	next   atomic.Uint64
}

func NewIDSource() *IDSource {
	return NewIDSourceWithPrefix(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

func NewIDSourceWithPrefix(prefix string) *IDSource {
	return &IDSource{prefix: prefix}
}

func (s *IDSource) Next() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.next.Add(1))
}

// Observe moves the counter past id when id was made with this prefix,
// so restored ids are never handed out again. Other ids are ignored.
func (s *IDSource) Observe(id string) {
	rest, ok := strings.CutPrefix(id, s.prefix+"-")
	if !ok {
		return
	}
	n, err := strconv.ParseUint(rest, 10, 64)
	if err != nil {
		return
	}
	for {
		current := s.next.Load()
		if current >= n || s.next.CompareAndSwap(current, n) {
			return
		}
	}
}

// Factory builds fully derived records. Creation time comes from now.
type Factory struct {
	now func() time.Time
	ids *IDSource
}

func NewFactory(now func() time.Time, ids *IDSource) *Factory {
	if now == nil {
		now = time.Now
	}
	if ids == nil {
		ids = NewIDSource()
	}
	return &Factory{
		now: now,
		ids: ids,
	}
}

// Observe reserves the ids of already existing records.
func (f *Factory) Observe(records ...Record) {
	for _, r := range records {
		f.ids.Observe(r.id)
	}
}

func DefaultFactory() *Factory {
	return NewFactory(time.Now, NewIDSource())
}

func (f *Factory) Running(distance, duration float64, coords Coords, cadence float64) (Record, error) {
	return f.build(TypeRunning, distance, duration, coords, cadence)
}

func (f *Factory) Cycling(distance, duration float64, coords Coords, elevationGain float64) (Record, error) {
	return f.build(TypeCycling, distance, duration, coords, elevationGain)
}

// New dispatches on t; extra is cadence or elevation gain.
func (f *Factory) New(t Type, distance, duration float64, coords Coords, extra float64) (Record, error) {
	return f.build(t, distance, duration, coords, extra)
}

func (f *Factory) build(t Type, distance, duration float64, coords Coords, extra float64) (Record, error) {
	if err := ValidateInputs(t, distance, duration, extra); err != nil {
		return Record{}, err
	}
	if err := coords.validate(); err != nil {
		return Record{}, err
	}

	// Round(0) drops the monotonic reading, only wall time is kept
	createdAt := f.now().Round(0)
	return assemble(f.ids.Next(), t, createdAt, distance, duration, coords, extra, describe(t, createdAt)), nil
}

// assemble computes the derived metrics; inputs must already be validated.
func assemble(
	id string,
	t Type,
	createdAt time.Time,
	distance, duration float64,
	coords Coords,
	extra float64,
	description string,
) Record {
	r := Record{
		id:          id,
		kind:        t,
		createdAt:   createdAt,
		distance:    distance,
		duration:    duration,
		coords:      coords,
		description: description,
	}

	switch t {
	case TypeRunning:
		r.running = RunningMetrics{
			Cadence: extra,
			Pace:    pace(distance, duration),
		}
	case TypeCycling:
		r.cycling = CyclingMetrics{
			ElevationGain: extra,
			Speed:         speed(distance, duration),
		}
	}

	return r
}
