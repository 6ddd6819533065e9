package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MrJamesThe3rd/valueplus/internal/apperr"
	"github.com/MrJamesThe3rd/valueplus/internal/recommendation"
)

// Store keeps the catalog in memory, most recent addition first.
type Store struct {
	mu      sync.RWMutex
	records []recommendation.Record
	lastID  int64
	now     func() time.Time
}

// New returns a store holding initial in the given order. IDs must be unique.
func New(initial []recommendation.Record) (*Store, error) {
	s := &Store{
		records: make([]recommendation.Record, 0, len(initial)),
		now:     time.Now,
	}

	seen := make(map[int64]struct{}, len(initial))

	for _, rec := range initial {
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("duplicate recommendation id %d", rec.ID)
		}

		seen[rec.ID] = struct{}{}
		s.lastID = max(s.lastID, rec.ID)
		s.records = append(s.records, rec)
	}

	return s, nil
}

// WithClock replaces the clock IDs are derived from.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) Insert(_ context.Context, rec *recommendation.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = s.nextID()
	s.records = slices.Insert(s.records, 0, *rec)

	return nil
}

// nextID derives an ID from the clock and bumps it past the last one handed
// out, so IDs stay unique when two adds land in the same millisecond.
func (s *Store) nextID() int64 {
	id := max(s.now().UnixMilli(), s.lastID+1)
	s.lastID = id

	return id
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = slices.DeleteFunc(s.records, func(r recommendation.Record) bool {
		return r.ID == id
	})

	return nil
}

func (s *Store) Get(_ context.Context, id int64) (*recommendation.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := slices.IndexFunc(s.records, func(r recommendation.Record) bool {
		return r.ID == id
	})
	if idx < 0 {
		return nil, apperr.NotFound(fmt.Sprintf("recommendation %d not found", id))
	}

	rec := s.records[idx]

	return &rec, nil
}

func (s *Store) List(_ context.Context) ([]recommendation.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.records), nil
}
