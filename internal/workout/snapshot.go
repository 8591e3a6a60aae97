package workout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// snapshotRecord is the persisted shape of a Record.
type snapshotRecord struct {
	Type        Type       `json:"type"`
	ID          string     `json:"id"`
	CreatedAt   time.Time  `json:"createdAt"`
	Distance    float64    `json:"distance"`
	Duration    float64    `json:"duration"`
	Coords      []float64  `json:"coords"`
	Description string     `json:"description"`

	Cadence       *float64 `json:"cadence,omitempty"`
	Pace          *float64 `json:"pace,omitempty"`
	ElevationGain *float64 `json:"elevationGain,omitempty"`
	Speed         *float64 `json:"speed,omitempty"`

	// Date is where older snapshots kept the creation time; only read, never written.
	Date *time.Time `json:"date,omitempty"`
}

func toSnapshot(r Record) snapshotRecord {
	sr := snapshotRecord{
		Type:        r.kind,
		ID:          r.id,
		CreatedAt:   r.createdAt,
		Distance:    r.distance,
		Duration:    r.duration,
		Coords:      []float64{r.coords.Lat, r.coords.Lng},
		Description: r.description,
	}

	switch r.kind {
	case TypeRunning:
		cadence, pace := r.running.Cadence, r.running.Pace
		sr.Cadence, sr.Pace = &cadence, &pace
	case TypeCycling:
		gain, speed := r.cycling.ElevationGain, r.cycling.Speed
		sr.ElevationGain, sr.Speed = &gain, &speed
	}

	return sr
}

// fromSnapshot rebuilds a typed record. Inputs are validated again and pace/speed are
// recomputed from distance and duration instead of trusting the stored values.
func fromSnapshot(sr snapshotRecord) (Record, error) {
	if sr.ID == "" {
		return Record{}, errors.New("record without id")
	}
	if sr.CreatedAt.IsZero() && sr.Date != nil {
		sr.CreatedAt = *sr.Date
	}
	if sr.CreatedAt.IsZero() {
		return Record{}, fmt.Errorf("record [%s] without createdAt", sr.ID)
	}

	var extra, foreign *float64
	switch sr.Type {
	case TypeRunning:
		extra, foreign = sr.Cadence, sr.ElevationGain
	case TypeCycling:
		extra, foreign = sr.ElevationGain, sr.Cadence
	default:
		return Record{}, fmt.Errorf("record [%s] has unknown type %q", sr.ID, sr.Type)
	}
	if extra == nil {
		return Record{}, fmt.Errorf("record [%s] misses its %s metric", sr.ID, sr.Type)
	}
	if foreign != nil {
		return Record{}, fmt.Errorf("record [%s] of type %s carries metrics of the other type", sr.ID, sr.Type)
	}

	if err := ValidateInputs(sr.Type, sr.Distance, sr.Duration, *extra); err != nil {
		return Record{}, fmt.Errorf("record [%s]: %w", sr.ID, err)
	}
	if len(sr.Coords) != 2 {
		return Record{}, fmt.Errorf("record [%s] has %d coordinates, want 2", sr.ID, len(sr.Coords))
	}
	coords := Coords{Lat: sr.Coords[0], Lng: sr.Coords[1]}
	if err := coords.validate(); err != nil {
		return Record{}, fmt.Errorf("record [%s]: %w", sr.ID, err)
	}

	description := sr.Description
	if description == "" {
		description = describe(sr.Type, sr.CreatedAt)
	}

	return assemble(sr.ID, sr.Type, sr.CreatedAt, sr.Distance, sr.Duration, coords, *extra, description), nil
}

// Serialize encodes every record, in order, as a JSON array.
func (s *Store) Serialize() ([]byte, error) {
	records := s.List()
	snapshot := make([]snapshotRecord, 0, len(records))
	for _, r := range records {
		snapshot = append(snapshot, toSnapshot(r))
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("marshal workouts: %w", err)
	}
	return data, nil
}

// Deserialize rebuilds a store from a snapshot made by Serialize.
// An absent (empty or "null") snapshot gives an empty store and no error.
// A malformed one gives an empty store and an error wrapping ErrSnapshotCorrupt;
// it is never a reason to stop the app.
func Deserialize(snapshot []byte) (*Store, error) {
	trimmed := bytes.TrimSpace(snapshot)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return NewStore(), nil
	}

	var records []snapshotRecord
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return NewStore(), fmt.Errorf("%w: %s", ErrSnapshotCorrupt, err)
	}

	store := NewStore()
	for i, sr := range records {
		r, err := fromSnapshot(sr)
		if err != nil {
			return NewStore(), fmt.Errorf("%w: entry %d: %s", ErrSnapshotCorrupt, i, err)
		}
		if err := store.Add(r); err != nil {
			return NewStore(), fmt.Errorf("%w: entry %d: %s [%s]", ErrSnapshotCorrupt, i, err, r.id)
		}
	}

	return store, nil
}
