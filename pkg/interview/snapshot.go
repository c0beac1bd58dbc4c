package interview

import (
	"fmt"
	"time"

	"github.com/artem13815/interview/pkg/evaluation"
	"github.com/artem13815/interview/pkg/question"
	"github.com/artem13815/interview/pkg/resume"
)

// Snapshot is the serializable state of a Session. It is what gets
// checkpointed and what the API returns.
type Snapshot struct {
	Status        Status                  `json:"status"`
	IsActive      bool                    `json:"isActive"`
	IsComplete    bool                    `json:"isComplete"`
	Candidate     resume.CandidateInfo    `json:"candidateInfo"`
	Questions     []question.Question     `json:"questions"`
	CurrentIndex  int                     `json:"currentIndex"`
	Answers       []string                `json:"answers"`
	TimeRemaining int                     `json:"timeRemainingSeconds"`
	Draft         string                  `json:"draft,omitempty"`
	Score         int                     `json:"score"`
	Summary       string                  `json:"summaryText,omitempty"`
	Evaluations   []evaluation.Evaluation `json:"evaluations,omitempty"`
	Transcript    []Message               `json:"transcript"`
	StartedAt     *time.Time              `json:"startedAt,omitempty"`
	CompletedAt   *time.Time              `json:"completedAt,omitempty"`
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Status:        s.status,
		IsActive:      s.status == Active,
		IsComplete:    s.status == Complete,
		Candidate:     s.candidate,
		Questions:     s.Questions(),
		CurrentIndex:  s.current,
		Answers:       s.Answers(),
		TimeRemaining: s.timeRemaining,
		Draft:         s.draft,
		Score:         s.result.Score,
		Summary:       s.result.Summary,
		Evaluations:   append([]evaluation.Evaluation(nil), s.result.Evaluations...),
		Transcript:    s.Transcript(),
	}
	if !s.startedAt.IsZero() {
		t := s.startedAt
		snap.StartedAt = &t
	}
	if !s.completedAt.IsZero() {
		t := s.completedAt
		snap.CompletedAt = &t
	}
	return snap
}

// Restore rebuilds a session from a snapshot. A snapshot that breaks the
// session invariants is rejected with ErrCorruptSnapshot.
func Restore(snap Snapshot, opts ...Option) (*Session, error) {
	if err := snap.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	s := New(opts...)
	if snap.Status == NotStarted {
		return s, nil
	}
	s.status = snap.Status
	s.candidate = snap.Candidate
	s.questions = append([]question.Question(nil), snap.Questions...)
	s.current = snap.CurrentIndex
	s.answers = append([]string(nil), snap.Answers...)
	s.timeRemaining = snap.TimeRemaining
	s.draft = snap.Draft
	s.result = evaluation.Result{
		Score:       snap.Score,
		Summary:     snap.Summary,
		Evaluations: append([]evaluation.Evaluation(nil), snap.Evaluations...),
	}
	s.transcript = append([]Message(nil), snap.Transcript...)
	if snap.StartedAt != nil {
		s.startedAt = *snap.StartedAt
	}
	if snap.CompletedAt != nil {
		s.completedAt = *snap.CompletedAt
	}
	return s, nil
}

func (snap Snapshot) validate() error {
	if !snap.Status.valid() {
		return fmt.Errorf("unknown status %q", snap.Status)
	}
	if snap.IsActive != (snap.Status == Active) || snap.IsComplete != (snap.Status == Complete) {
		return fmt.Errorf("flags do not match status %q", snap.Status)
	}
	if snap.Status == NotStarted {
		return nil
	}
	n := len(snap.Questions)
	switch {
	case n == 0:
		return ErrNoQuestions
	case len(snap.Answers) != n:
		return fmt.Errorf("%d answers for %d questions", len(snap.Answers), n)
	case snap.CurrentIndex < 0 || snap.CurrentIndex >= n:
		return fmt.Errorf("current index %d out of range", snap.CurrentIndex)
	case snap.TimeRemaining < 0:
		return fmt.Errorf("negative time remaining")
	case snap.Score < 0 || snap.Score > 100:
		return fmt.Errorf("score %d out of range", snap.Score)
	}
	return nil
}
