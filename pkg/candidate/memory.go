package candidate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps records in insertion order.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (s *MemoryStore) Add(_ context.Context, r Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := stamp(r, s.now)
	if err != nil {
		return Record{}, err
	}
	s.records = append(s.records, r)
	return r, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(s.records, id)
}

func (s *MemoryStore) List(_ context.Context, q Query) (Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Project(s.records, q), nil
}

// stamp assigns a time-ordered id and the creation time.
func stamp(r Record, now func() time.Time) (Record, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Record{}, fmt.Errorf("generate candidate id: %w", err)
	}
	r.ID = id.String()
	r.CreatedAt = now().UTC()
	return r, nil
}

func find(records []Record, id string) (Record, error) {
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return Record{}, ErrNotFound
}
