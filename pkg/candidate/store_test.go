package candidate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/interview/pkg/checkpoint"
	"github.com/artem13815/interview/pkg/resume"
)

func newRecord(name string, score int) Record {
	return Record{
		Info:    resume.CandidateInfo{Name: name, Email: "x@example.com"},
		Answers: []string{"a"},
		Score:   score,
		Summary: "summary",
	}
}

func testStore(t *testing.T, s Store) {
	ctx := context.Background()

	first, err := s.Add(ctx, newRecord("Jane Doe", 80))
	require.NoError(t, err)
	second, err := s.Add(ctx, newRecord("John Roe", 30))
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	_, err = uuid.Parse(first.ID)
	assert.NoError(t, err)
	assert.False(t, first.CreatedAt.IsZero())
	assert.False(t, second.CreatedAt.Before(first.CreatedAt))

	got, err := s.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Roe", got.Info.Name)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	page, err := s.List(ctx, Query{SortBy: SortByScore, Order: Asc})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, []string{second.ID, first.ID}, ids(page))
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestKVStore(t *testing.T) {
	ctx := context.Background()
	cp := checkpoint.New(checkpoint.NewMemoryKV(), nil)
	s, err := NewKVStore(ctx, cp)
	require.NoError(t, err)
	testStore(t, s)
}

func TestKVStoreSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	kv, err := checkpoint.NewFileKV(t.TempDir())
	require.NoError(t, err)

	s, err := NewKVStore(ctx, checkpoint.New(kv, nil))
	require.NoError(t, err)
	added, err := s.Add(ctx, newRecord("Jane Doe", 80))
	require.NoError(t, err)

	reopened, err := NewKVStore(ctx, checkpoint.New(kv, nil))
	require.NoError(t, err)
	got, err := reopened.Get(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, added.Info, got.Info)
	assert.True(t, added.CreatedAt.Equal(got.CreatedAt))
}

func TestKVStoreCorruptListStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := checkpoint.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, checkpoint.CandidatesKey, []byte(`[{"id":"a","score":"high"}]`)))

	s, err := NewKVStore(ctx, checkpoint.New(kv, nil))
	require.NoError(t, err)
	page, err := s.List(ctx, Query{})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.Empty(t, page.Items)
}

type failingKV struct{ checkpoint.KV }

func (failingKV) Set(context.Context, string, []byte) error { return errors.New("disk full") }

func TestKVStoreAddFailureKeepsList(t *testing.T) {
	ctx := context.Background()
	s, err := NewKVStore(ctx, checkpoint.New(failingKV{checkpoint.NewMemoryKV()}, nil))
	require.NoError(t, err)

	_, err = s.Add(ctx, newRecord("Jane Doe", 80))
	require.Error(t, err)
	page, err := s.List(ctx, Query{})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
}

func TestMemoryStoreConcurrentReaders(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 50 {
			_, err := s.Add(ctx, newRecord(fmt.Sprintf("c%d", i), i))
			assert.NoError(t, err)
		}
	}()
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				_, err := s.List(ctx, Query{SortBy: SortByName})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	page, err := s.List(ctx, Query{})
	require.NoError(t, err)
	assert.Equal(t, 50, page.Total)
}
