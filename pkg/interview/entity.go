package interview

import (
	"errors"
	"fmt"
	"time"
)

// Status is the lifecycle state of a Session.
type Status string

const (
	NotStarted Status = "not_started"
	Active     Status = "active"
	Complete   Status = "complete"
)

func (s Status) valid() bool {
	switch s {
	case NotStarted, Active, Complete:
		return true
	}
	return false
}

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderAI        Sender = "ai"
	SenderCandidate Sender = "candidate"
)

// Message is one entry of the chat transcript.
type Message struct {
	Sender  Sender    `json:"sender"`
	Content string    `json:"content"`
	Time    time.Time `json:"timestamp"`
}

// NoAnswer replaces a blank submission.
const NoAnswer = "No answer provided"

var (
	// ErrInvalidTransition is returned (wrapped in *TransitionError) when an
	// operation is called in a state that does not allow it. The session is
	// left untouched.
	ErrInvalidTransition = errors.New("invalid session transition")
	ErrNoQuestions       = errors.New("interview needs at least one question")
	ErrCorruptSnapshot   = errors.New("inconsistent session snapshot")
)

// TransitionError describes a rejected operation.
type TransitionError struct {
	Op     string
	Status Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: not allowed while %s", e.Op, e.Status)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// Outcome tells the caller what a Tick or SubmitAnswer did.
type Outcome int

const (
	// Ticked: the clock moved, the question did not change.
	Ticked Outcome = iota
	// Advanced: an answer was recorded and the next question is on.
	Advanced
	// Completed: the last answer was recorded and the session is scored.
	Completed
)

func (o Outcome) String() string {
	switch o {
	case Ticked:
		return "ticked"
	case Advanced:
		return "advanced"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Progress is the view of the question currently on screen.
type Progress struct {
	Number           int    `json:"number"`
	Total            int    `json:"total"`
	Difficulty       string `json:"difficulty"`
	TimeRemaining    int    `json:"timeRemainingSeconds"`
	TimeLimit        int    `json:"timeLimitSeconds"`
	RemainingPercent int    `json:"remainingPercent"`
}
