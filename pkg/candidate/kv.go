package candidate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/artem13815/interview/pkg/checkpoint"
)

// KVStore persists the whole list as one JSON value under
// checkpoint.CandidatesKey and serves reads from memory.
type KVStore struct {
	mu      sync.RWMutex
	cp      *checkpoint.Checkpointer
	records []Record
	now     func() time.Time
}

// NewKVStore loads the persisted list. A missing or corrupt list starts
// empty.
func NewKVStore(ctx context.Context, cp *checkpoint.Checkpointer) (*KVStore, error) {
	s := &KVStore{cp: cp, now: time.Now}
	found, err := cp.Load(ctx, checkpoint.CandidatesKey, &s.records)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	if !found {
		s.records = nil
	}
	return s, nil
}

// Add persists before publishing: on a store error the in-memory list is
// unchanged.
func (s *KVStore) Add(ctx context.Context, r Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := stamp(r, s.now)
	if err != nil {
		return Record{}, err
	}
	next := append(s.records[:len(s.records):len(s.records)], r)
	if err := s.cp.Save(ctx, checkpoint.CandidatesKey, next); err != nil {
		return Record{}, err
	}
	s.records = next
	return r, nil
}

func (s *KVStore) Get(_ context.Context, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(s.records, id)
}

func (s *KVStore) List(_ context.Context, q Query) (Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Project(s.records, q), nil
}
