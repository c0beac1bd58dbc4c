package assessment

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/interview/pkg/candidate"
	"github.com/artem13815/interview/pkg/checkpoint"
	"github.com/artem13815/interview/pkg/interview"
	"github.com/artem13815/interview/pkg/question"
	"github.com/artem13815/interview/pkg/resume"
)

var jane = resume.CandidateInfo{Name: "Jane Doe", Email: "jane@example.com", Phone: "555-123-4567"}

type fixedBank []question.Question

func (b fixedBank) Questions() []question.Question { return append([]question.Question(nil), b...) }

type fixture struct {
	svc   *Service
	store *candidate.MemoryStore
	kv    *checkpoint.MemoryKV
}

func newFixture(t *testing.T, bank question.Bank, tick time.Duration) fixture {
	t.Helper()
	kv := checkpoint.NewMemoryKV()
	store := candidate.NewMemoryStore()
	svc := NewService(bank, store, checkpoint.New(kv, nil), Config{TickInterval: tick}, nil)
	t.Cleanup(svc.Close)
	return fixture{svc: svc, store: store, kv: kv}
}

// flakyStore fails the first n Adds.
type flakyStore struct {
	*candidate.MemoryStore
	fails atomic.Int32
}

func newFlakyStore(n int32) *flakyStore {
	st := &flakyStore{MemoryStore: candidate.NewMemoryStore()}
	st.fails.Store(n)
	return st
}

func (s *flakyStore) Add(ctx context.Context, rec candidate.Record) (candidate.Record, error) {
	if s.fails.Add(-1) >= 0 {
		return candidate.Record{}, errors.New("store down")
	}
	return s.MemoryStore.Add(ctx, rec)
}

func (s *Service) live(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	return ok
}

func TestStartValidatesCandidate(t *testing.T) {
	f := newFixture(t, question.NewStaticBank(), 0)
	ctx := context.Background()

	cases := map[string]resume.CandidateInfo{
		"no name":   {Email: "a@b.io", Phone: "1"},
		"no email":  {Name: "A B", Phone: "1"},
		"bad email": {Name: "A B", Email: "not-an-email", Phone: "1"},
		"no phone":  {Name: "A B", Email: "a@b.io", Phone: "  "},
	}
	for name, info := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.Start(ctx, info)
			assert.ErrorIs(t, err, ErrInvalidCandidate)
		})
	}
}

func TestFullInterviewStoresRecord(t *testing.T) {
	f := newFixture(t, question.NewStaticBank(), 0)
	ctx := context.Background()

	v, err := f.svc.Start(ctx, resume.CandidateInfo{Name: " Jane Doe ", Email: "jane@example.com", Phone: "555-123-4567"})
	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.True(t, v.IsActive)
	assert.Equal(t, "Jane Doe", v.Candidate.Name)
	require.NotNil(t, v.Progress)
	assert.Equal(t, 1, v.Progress.Number)

	for i := 0; i < 6; i++ {
		v, err = f.svc.Submit(ctx, v.ID, Submission{Text: "react component", QuestionIndex: i})
		require.NoError(t, err)
	}
	assert.True(t, v.IsComplete)
	assert.False(t, v.IsActive)
	assert.Nil(t, v.Progress)
	require.NotEmpty(t, v.RecordID)

	rec, err := f.store.Get(ctx, v.RecordID)
	require.NoError(t, err)
	assert.Equal(t, v.Score, rec.Score)
	assert.Equal(t, v.Summary, rec.Summary)
	assert.Equal(t, v.Answers, rec.Answers)
	assert.Len(t, rec.Evaluations, 6)
	require.NotEmpty(t, rec.Transcript)
	assert.Equal(t, interview.SenderCandidate, rec.Transcript[len(rec.Transcript)-1].Sender)

	assert.False(t, f.svc.live(v.ID))
	got, err := f.svc.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.True(t, got.IsComplete)
	assert.Equal(t, v.RecordID, got.RecordID)
	assert.False(t, f.svc.live(v.ID))

	_, err = f.svc.Submit(ctx, v.ID, Submission{Text: "late", QuestionIndex: 5})
	assert.ErrorIs(t, err, interview.ErrInvalidTransition)

	page, err := f.store.List(ctx, candidate.Query{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

func TestStaleAnswerIsNoop(t *testing.T) {
	f := newFixture(t, question.NewStaticBank(), 0)
	ctx := context.Background()

	v, err := f.svc.Start(ctx, jane)
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, v.ID, Submission{Text: "first", QuestionIndex: 0})
	require.NoError(t, err)

	v, err = f.svc.Submit(ctx, v.ID, Submission{Text: "again", QuestionIndex: 0})
	assert.ErrorIs(t, err, ErrStaleAnswer)
	assert.Equal(t, 1, v.CurrentIndex)
	assert.Equal(t, "", v.Answers[1])
}

func TestTickTimesOutWithDraft(t *testing.T) {
	f := newFixture(t, question.NewStaticBank(), 0)
	ctx := context.Background()

	v, err := f.svc.Start(ctx, jane)
	require.NoError(t, err)
	_, err = f.svc.SetDraft(ctx, v.ID, "half an answer")
	require.NoError(t, err)

	for range question.EasyTimeLimit {
		v, err = f.svc.Tick(ctx, v.ID)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, v.CurrentIndex)
	assert.Equal(t, "half an answer", v.Answers[0])
	assert.Equal(t, question.EasyTimeLimit, v.TimeRemaining)
}

func TestAnswerAfterTimeoutIsStale(t *testing.T) {
	f := newFixture(t, question.NewStaticBank(), 0)
	ctx := context.Background()

	v, err := f.svc.Start(ctx, jane)
	require.NoError(t, err)
	for range question.EasyTimeLimit {
		v, err = f.svc.Tick(ctx, v.ID)
		require.NoError(t, err)
	}
	require.Equal(t, 1, v.CurrentIndex)

	v, err = f.svc.Submit(ctx, v.ID, Submission{Text: "answer meant for question one", QuestionIndex: 0})
	assert.ErrorIs(t, err, ErrStaleAnswer)
	assert.Equal(t, 1, v.CurrentIndex)
	assert.Equal(t, []string{interview.NoAnswer, "", "", "", "", ""}, v.Answers)
}

func TestUnknownSession(t *testing.T) {
	f := newFixture(t, question.NewStaticBank(), 0)
	ctx := context.Background()

	_, err := f.svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.svc.Submit(ctx, "", Submission{Text: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.svc.Reset(ctx, "nope"), ErrNotFound)
}

func TestResetDropsSession(t *testing.T) {
	f := newFixture(t, question.NewStaticBank(), 0)
	ctx := context.Background()

	v, err := f.svc.Start(ctx, jane)
	require.NoError(t, err)
	require.NoError(t, f.svc.Reset(ctx, v.ID))

	_, err = f.svc.Get(ctx, v.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.kv.Get(ctx, checkpoint.SessionKey(v.ID))
	assert.ErrorIs(t, err, checkpoint.ErrNotFound)
}

func TestRestoreAfterRestart(t *testing.T) {
	ctx := context.Background()
	kv := checkpoint.NewMemoryKV()
	store := candidate.NewMemoryStore()

	first := NewService(question.NewStaticBank(), store, checkpoint.New(kv, nil), Config{}, nil)
	v, err := first.Start(ctx, jane)
	require.NoError(t, err)
	_, err = first.Submit(ctx, v.ID, Submission{Text: "one", QuestionIndex: 0})
	require.NoError(t, err)
	_, err = first.Tick(ctx, v.ID)
	require.NoError(t, err)
	first.Close()

	second := NewService(question.NewStaticBank(), store, checkpoint.New(kv, nil), Config{}, nil)
	t.Cleanup(second.Close)

	got, err := second.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentIndex)
	assert.Equal(t, question.EasyTimeLimit-1, got.TimeRemaining)
	assert.Equal(t, "one", got.Answers[0])

	for i := 1; i < 6; i++ {
		got, err = second.Submit(ctx, v.ID, Submission{Text: "more", QuestionIndex: i})
		require.NoError(t, err)
	}
	assert.True(t, got.IsComplete)
	assert.NotEmpty(t, got.RecordID)
}

func TestCorruptCheckpointIsNotFound(t *testing.T) {
	f := newFixture(t, question.NewStaticBank(), 0)
	ctx := context.Background()
	require.NoError(t, f.kv.Set(ctx, checkpoint.SessionKey("broken"), []byte("{")))

	_, err := f.svc.Get(ctx, "broken")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDriverCompletesInterview(t *testing.T) {
	bank := fixedBank{
		{ID: 1, Text: "one", Difficulty: question.Easy, TimeLimitSeconds: 1},
		{ID: 2, Text: "two", Difficulty: question.Hard, TimeLimitSeconds: 2},
	}
	f := newFixture(t, bank, time.Millisecond)
	ctx := context.Background()

	v, err := f.svc.Start(ctx, jane)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		got, err := f.svc.Get(ctx, v.ID)
		return err == nil && got.IsComplete
	}, 2*time.Second, 5*time.Millisecond)

	got, err := f.svc.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{interview.NoAnswer, interview.NoAnswer}, got.Answers)
	assert.NotEmpty(t, got.RecordID)

	page, err := f.store.List(ctx, candidate.Query{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

func TestConcurrentSubmitsForSameQuestion(t *testing.T) {
	f := newFixture(t, question.NewStaticBank(), 0)
	ctx := context.Background()

	v, err := f.svc.Start(ctx, jane)
	require.NoError(t, err)

	var ok, stale atomic.Int32
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Submit(ctx, v.ID, Submission{Text: "mine", QuestionIndex: 0})
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, ErrStaleAnswer):
				stale.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), ok.Load())
	assert.Equal(t, int32(7), stale.Load())
	got, err := f.svc.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentIndex)
}

func TestRecordStoredAfterStoreRecovers(t *testing.T) {
	ctx := context.Background()
	store := newFlakyStore(2)
	svc := NewService(question.NewStaticBank(), store, checkpoint.New(checkpoint.NewMemoryKV(), nil),
		Config{RecordRetry: time.Millisecond}, nil)
	t.Cleanup(svc.Close)

	v, err := svc.Start(ctx, jane)
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		v, err = svc.Submit(ctx, v.ID, Submission{Text: "answer", QuestionIndex: i})
		require.NoError(t, err)
	}
	assert.True(t, v.IsComplete)

	require.Eventually(t, func() bool {
		got, err := svc.Get(ctx, v.ID)
		return err == nil && got.RecordID != "" && !got.RecordPending
	}, 2*time.Second, 5*time.Millisecond)

	page, err := store.List(ctx, candidate.Query{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, v.Score, page.Items[0].Score)
}

func TestPendingRecordSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	kv := checkpoint.NewMemoryKV()
	bank := fixedBank{{ID: 1, Text: "one", Difficulty: question.Easy, TimeLimitSeconds: 20}}

	down := newFlakyStore(1 << 30)
	first := NewService(bank, down, checkpoint.New(kv, nil), Config{RecordRetry: time.Hour}, nil)
	v, err := first.Start(ctx, jane)
	require.NoError(t, err)
	v, err = first.Submit(ctx, v.ID, Submission{Text: "react", QuestionIndex: 0})
	require.NoError(t, err)
	assert.True(t, v.IsComplete)
	assert.True(t, v.RecordPending)
	assert.Empty(t, v.RecordID)
	first.Close()

	store := candidate.NewMemoryStore()
	second := NewService(bank, store, checkpoint.New(kv, nil), Config{RecordRetry: time.Millisecond}, nil)
	t.Cleanup(second.Close)

	got, err := second.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.True(t, got.IsComplete)

	require.Eventually(t, func() bool {
		got, err := second.Get(ctx, v.ID)
		return err == nil && got.RecordID != ""
	}, 2*time.Second, 5*time.Millisecond)

	page, err := store.List(ctx, candidate.Query{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}
