package workout

import (
	"sync"
)

// Store is the ordered, in-memory collection of workouts. Insertion order is
// creation order and also display order.
type Store struct {
	mu      sync.RWMutex
	records []Record
	byID    map[string]int
}

func NewStore() *Store {
	return &Store{
		byID: make(map[string]int),
	}
}

// Add appends r. It does not persist anything.
func (s *Store) Add(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[r.id]; exists {
		return ErrDuplicateID
	}
	s.byID[r.id] = len(s.records)
	s.records = append(s.records, r)
	return nil
}

// List returns a copy of the records in insertion order.
func (s *Store) List() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Record, len(s.records))
	copy(list, s.records)
	return list
}

func (s *Store) FindByID(id string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return Record{}, false
	}
	return s.records[i], true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
