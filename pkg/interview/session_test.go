package interview

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/interview/pkg/evaluation"
	"github.com/artem13815/interview/pkg/question"
	"github.com/artem13815/interview/pkg/resume"
)

var candidate = resume.CandidateInfo{Name: "Jane Doe", Email: "jane@example.com", Phone: "555-123-4567"}

func fixedClock() func() time.Time {
	t0 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time { return t0 }
}

func started(t *testing.T) *Session {
	t.Helper()
	s := New(WithClock(fixedClock()))
	require.NoError(t, s.Start(candidate, question.NewStaticBank().Questions()))
	return s
}

func requireInvalid(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition), err.Error())
	var te *TransitionError
	assert.True(t, errors.As(err, &te))
}

func TestStart(t *testing.T) {
	s := started(t)

	assert.Equal(t, Active, s.Status())
	assert.True(t, s.IsActive())
	assert.False(t, s.IsComplete())
	assert.Equal(t, 0, s.CurrentIndex())
	assert.Equal(t, []string{"", "", "", "", "", ""}, s.Answers())
	assert.Equal(t, question.EasyTimeLimit, s.TimeRemaining())

	tr := s.Transcript()
	require.Len(t, tr, 2)
	assert.Equal(t, SenderAI, tr[0].Sender)
	assert.Contains(t, tr[0].Content, "Hello Jane Doe!")
	assert.Contains(t, tr[0].Content, "6 questions")
	assert.Equal(t, s.Questions()[0].Text, tr[1].Content)
}

func TestStartRejected(t *testing.T) {
	s := started(t)
	requireInvalid(t, s.Start(candidate, question.NewStaticBank().Questions()))

	empty := New()
	assert.ErrorIs(t, empty.Start(candidate, nil), ErrNoQuestions)
	assert.Equal(t, NotStarted, empty.Status())
}

func TestOperationsOutsideActiveLeaveStateUntouched(t *testing.T) {
	s := New()
	before := s.Snapshot()

	_, err := s.Tick()
	requireInvalid(t, err)
	_, err = s.SubmitAnswer("x")
	requireInvalid(t, err)
	requireInvalid(t, s.SetDraft("x"))
	assert.Equal(t, before, s.Snapshot())

	s = started(t)
	for range 6 {
		_, err := s.SubmitAnswer("answer")
		require.NoError(t, err)
	}
	require.True(t, s.IsComplete())
	before = s.Snapshot()

	_, err = s.Tick()
	requireInvalid(t, err)
	_, err = s.SubmitAnswer("late")
	requireInvalid(t, err)
	requireInvalid(t, s.Start(candidate, question.NewStaticBank().Questions()))
	assert.Equal(t, before, s.Snapshot())
}

func TestSubmitAdvancesAndResetsTimer(t *testing.T) {
	s := started(t)
	qs := s.Questions()

	for i := 0; i < len(qs)-1; i++ {
		_, err := s.Tick()
		require.NoError(t, err)

		out, err := s.SubmitAnswer("  answer  ")
		require.NoError(t, err)
		assert.Equal(t, Advanced, out)
		assert.Equal(t, i+1, s.CurrentIndex())
		assert.Equal(t, qs[i+1].TimeLimitSeconds, s.TimeRemaining())
		assert.Equal(t, "answer", s.Answers()[i])
		assert.Len(t, s.Answers(), len(qs))
	}

	out, err := s.SubmitAnswer("")
	require.NoError(t, err)
	assert.Equal(t, Completed, out)
	assert.Equal(t, NoAnswer, s.Answers()[5])
	assert.True(t, s.IsComplete())
	assert.False(t, s.IsActive())
	assert.Equal(t, 0, s.TimeRemaining())
	assert.Len(t, s.Result().Evaluations, 6)
	assert.NotEmpty(t, s.Result().Summary)
}

func TestBlankSubmissionUsesPlaceholder(t *testing.T) {
	s := started(t)
	_, err := s.SubmitAnswer(" \n\t ")
	require.NoError(t, err)
	assert.Equal(t, NoAnswer, s.Answers()[0])
}

func TestTickCountsDownAndTimesOut(t *testing.T) {
	s := started(t)
	for i := question.EasyTimeLimit - 1; i > 0; i-- {
		out, err := s.Tick()
		require.NoError(t, err)
		assert.Equal(t, Ticked, out)
		assert.Equal(t, i, s.TimeRemaining())
	}
	out, err := s.Tick()
	require.NoError(t, err)
	assert.Equal(t, Advanced, out)
	assert.Equal(t, 1, s.CurrentIndex())
	assert.Equal(t, NoAnswer, s.Answers()[0])
	assert.Equal(t, question.EasyTimeLimit, s.TimeRemaining())
}

func TestTimeoutSubmitsDraft(t *testing.T) {
	s := started(t)
	require.NoError(t, s.SetDraft("JSX is a syntax extension"))
	assert.Equal(t, "JSX is a syntax extension", s.Draft())

	for range question.EasyTimeLimit {
		_, err := s.Tick()
		require.NoError(t, err)
	}
	assert.Equal(t, "JSX is a syntax extension", s.Answers()[0])
	assert.Empty(t, s.Draft())
}

func runToEnd(t *testing.T, s *Session, lastByTimeout bool) {
	t.Helper()
	for i := 0; i < 5; i++ {
		_, err := s.SubmitAnswer("")
		require.NoError(t, err)
	}
	if !lastByTimeout {
		_, err := s.SubmitAnswer("")
		require.NoError(t, err)
		return
	}
	for s.IsActive() {
		_, err := s.Tick()
		require.NoError(t, err)
	}
}

func TestTimeoutOnLastQuestionEqualsEmptySubmit(t *testing.T) {
	a := started(t)
	runToEnd(t, a, true)
	b := started(t)
	runToEnd(t, b, false)

	require.True(t, a.IsComplete())
	assert.Equal(t, b.Result(), a.Result())
	assert.Equal(t, b.Answers(), a.Answers())
}

func TestCompletionMatchesEvaluator(t *testing.T) {
	s := started(t)
	answers := []string{"react components", "props and state", "", "memo", "custom hook with context", "redux"}
	for _, a := range answers {
		_, err := s.SubmitAnswer(a)
		require.NoError(t, err)
	}
	want := evaluation.Evaluate(s.Questions(), s.Answers())
	assert.Equal(t, want, s.Result())
	assert.GreaterOrEqual(t, s.Result().Score, 0)
	assert.LessOrEqual(t, s.Result().Score, 100)
}

func TestTranscript(t *testing.T) {
	s := started(t)
	for i := 0; i < 6; i++ {
		_, err := s.SubmitAnswer("a")
		require.NoError(t, err)
	}
	tr := s.Transcript()
	// welcome + 6 questions + 6 answers + closing
	require.Len(t, tr, 14)
	assert.Equal(t, closingMessage, tr[13].Content)
	assert.Equal(t, SenderCandidate, tr[2].Sender)

	answered := s.AnsweredTranscript()
	require.Len(t, answered, 13)
	assert.Equal(t, SenderCandidate, answered[12].Sender)
}

func TestReset(t *testing.T) {
	s := started(t)
	_, err := s.SubmitAnswer("x")
	require.NoError(t, err)

	s.Reset()
	assert.Equal(t, New().Snapshot(), s.Snapshot())

	require.NoError(t, s.Start(candidate, question.NewStaticBank().Questions()))
	assert.Equal(t, 0, s.CurrentIndex())
	assert.Len(t, s.Transcript(), 2)
}

func TestProgress(t *testing.T) {
	_, ok := New().Progress()
	assert.False(t, ok)

	s := started(t)
	for range 5 {
		_, err := s.Tick()
		require.NoError(t, err)
	}
	p, ok := s.Progress()
	require.True(t, ok)
	assert.Equal(t, Progress{
		Number:           1,
		Total:            6,
		Difficulty:       "Easy",
		TimeRemaining:    15,
		TimeLimit:        20,
		RemainingPercent: 75,
	}, p)
}

func TestProgressPercentRounds(t *testing.T) {
	s := New()
	require.NoError(t, s.Start(resume.CandidateInfo{Name: "Jane Doe"}, []question.Question{
		{ID: 1, Text: "short", Difficulty: question.Easy, TimeLimitSeconds: 3},
	}))
	_, err := s.Tick()
	require.NoError(t, err)

	p, ok := s.Progress()
	require.True(t, ok)
	assert.Equal(t, 2, p.TimeRemaining)
	assert.Equal(t, 67, p.RemainingPercent)
}

func TestSnapshotRoundTripThroughJSON(t *testing.T) {
	s := started(t)
	require.NoError(t, s.SetDraft("half"))
	_, err := s.SubmitAnswer("first")
	require.NoError(t, err)

	raw, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(raw, &snap))
	restored, err := Restore(snap, WithClock(fixedClock()))
	require.NoError(t, err)

	assert.Equal(t, s.Snapshot(), restored.Snapshot())

	out, err := restored.SubmitAnswer("second")
	require.NoError(t, err)
	assert.Equal(t, Advanced, out)
	assert.Equal(t, 2, restored.CurrentIndex())
}

func TestRestoreRejectsInconsistentSnapshot(t *testing.T) {
	good := started(t).Snapshot()

	cases := map[string]func(*Snapshot){
		"unknown status":  func(s *Snapshot) { s.Status = "paused" },
		"flags mismatch":  func(s *Snapshot) { s.IsComplete = true },
		"answers length":  func(s *Snapshot) { s.Answers = s.Answers[:2] },
		"index too large": func(s *Snapshot) { s.CurrentIndex = 6 },
		"no questions":    func(s *Snapshot) { s.Questions = nil; s.Answers = nil },
		"negative time":   func(s *Snapshot) { s.TimeRemaining = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			snap := good
			snap.Answers = append([]string(nil), good.Answers...)
			mutate(&snap)
			_, err := Restore(snap)
			assert.ErrorIs(t, err, ErrCorruptSnapshot)
		})
	}
}
