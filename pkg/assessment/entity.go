package assessment

import (
	"errors"

	"github.com/artem13815/interview/pkg/interview"
)

var (
	ErrNotFound = errors.New("interview not found")
	// ErrStaleAnswer: the answer names a question that is no longer
	// current, usually because the timer advanced first. Nothing changes.
	ErrStaleAnswer      = errors.New("answer is for a question that is no longer current")
	ErrInvalidCandidate = errors.New("invalid candidate info")
)

// View is what callers see of a session.
type View struct {
	ID string `json:"id"`
	interview.Snapshot
	Progress *interview.Progress `json:"progress,omitempty"`
	// RecordID is set once the finished interview is in the candidate store.
	RecordID string `json:"recordId,omitempty"`
	// RecordPending: the interview is complete but storing its record
	// failed; it is retried in the background.
	RecordPending bool `json:"recordPending,omitempty"`
}

// Submission is one answer. QuestionIndex must match the current question.
type Submission struct {
	Text          string
	QuestionIndex int
}
