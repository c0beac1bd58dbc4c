package interview

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/artem13815/interview/pkg/evaluation"
	"github.com/artem13815/interview/pkg/question"
	"github.com/artem13815/interview/pkg/resume"
)

const closingMessage = "Thank you for completing the interview! I'm now evaluating your answers..."

// Session is the timed question-answer state machine of one candidate.
//
// Session is not safe for concurrent use; the owner serializes Tick and
// SubmitAnswer (see assessment). It performs no I/O: time only moves when
// Tick is called.
type Session struct {
	status        Status
	candidate     resume.CandidateInfo
	questions     []question.Question
	current       int
	answers       []string
	timeRemaining int
	draft         string
	result        evaluation.Result
	transcript    []Message
	startedAt     time.Time
	completedAt   time.Time

	evaluator *evaluation.Evaluator
	now       func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithEvaluator overrides the scoring policy.
func WithEvaluator(e *evaluation.Evaluator) Option {
	return func(s *Session) { s.evaluator = e }
}

// WithClock overrides time.Now for transcript timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New returns a session in the NotStarted state.
func New(opts ...Option) *Session {
	s := &Session{
		status:    NotStarted,
		evaluator: evaluation.NewEvaluator(evaluation.DefaultPolicy()),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins the interview with the given questions.
func (s *Session) Start(candidate resume.CandidateInfo, questions []question.Question) error {
	if s.status != NotStarted {
		return &TransitionError{Op: "start", Status: s.status}
	}
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	s.candidate = candidate
	s.questions = append([]question.Question(nil), questions...)
	s.current = 0
	s.answers = make([]string, len(questions))
	s.timeRemaining = questions[0].TimeLimitSeconds
	s.draft = ""
	s.result = evaluation.Result{}
	s.startedAt = s.now()
	s.status = Active

	s.transcript = nil
	s.say(SenderAI, fmt.Sprintf(
		"Hello %s! Welcome to your AI interview for a React/Node.js role. "+
			"I'll ask you %d questions of varying difficulty. "+
			"You'll have limited time for each question, shown by the timer above. "+
			"Let's begin with the first question.",
		candidate.Name, len(questions)))
	s.say(SenderAI, questions[0].Text)
	return nil
}

// Tick moves the clock one second. When the time runs out the current draft
// is submitted as if the candidate had pressed submit.
func (s *Session) Tick() (Outcome, error) {
	if s.status != Active {
		return Ticked, &TransitionError{Op: "tick", Status: s.status}
	}
	s.timeRemaining--
	if s.timeRemaining > 0 {
		return Ticked, nil
	}
	s.timeRemaining = 0
	return s.submit(s.draft), nil
}

// SubmitAnswer records an answer for the current question.
func (s *Session) SubmitAnswer(text string) (Outcome, error) {
	if s.status != Active {
		return Ticked, &TransitionError{Op: "submit", Status: s.status}
	}
	return s.submit(text), nil
}

// SetDraft stores the partially typed answer.
func (s *Session) SetDraft(text string) error {
	if s.status != Active {
		return &TransitionError{Op: "draft", Status: s.status}
	}
	s.draft = text
	return nil
}

// Reset drops everything and returns to NotStarted. Always succeeds.
func (s *Session) Reset() {
	*s = Session{
		status:    NotStarted,
		evaluator: s.evaluator,
		now:       s.now,
	}
}

func (s *Session) submit(text string) Outcome {
	answer := strings.TrimSpace(text)
	if answer == "" {
		answer = NoAnswer
	}
	s.answers[s.current] = answer
	s.draft = ""
	s.say(SenderCandidate, answer)

	if s.current == len(s.questions)-1 {
		s.result = s.evaluator.Evaluate(s.questions, s.answers)
		s.timeRemaining = 0
		s.completedAt = s.now()
		s.status = Complete
		s.say(SenderAI, closingMessage)
		return Completed
	}

	s.current++
	s.timeRemaining = s.questions[s.current].TimeLimitSeconds
	s.say(SenderAI, s.questions[s.current].Text)
	return Advanced
}

func (s *Session) say(from Sender, content string) {
	s.transcript = append(s.transcript, Message{Sender: from, Content: content, Time: s.now()})
}

func (s *Session) Status() Status                  { return s.status }
func (s *Session) IsActive() bool                  { return s.status == Active }
func (s *Session) IsComplete() bool                { return s.status == Complete }
func (s *Session) Candidate() resume.CandidateInfo { return s.candidate }
func (s *Session) CurrentIndex() int               { return s.current }
func (s *Session) TimeRemaining() int              { return s.timeRemaining }
func (s *Session) Draft() string                   { return s.draft }
func (s *Session) Result() evaluation.Result       { return s.result }
func (s *Session) StartedAt() time.Time            { return s.startedAt }
func (s *Session) CompletedAt() time.Time          { return s.completedAt }

func (s *Session) Questions() []question.Question {
	return append([]question.Question(nil), s.questions...)
}

func (s *Session) Answers() []string {
	return append([]string(nil), s.answers...)
}

func (s *Session) Transcript() []Message {
	return append([]Message(nil), s.transcript...)
}

// AnsweredTranscript is the transcript up to the last candidate message.
// Trailing interviewer messages (the closing note) are dropped.
func (s *Session) AnsweredTranscript() []Message {
	end := len(s.transcript)
	for end > 0 && s.transcript[end-1].Sender != SenderCandidate {
		end--
	}
	return append([]Message(nil), s.transcript[:end]...)
}

// Progress reports the current question. ok is false unless Active.
func (s *Session) Progress() (p Progress, ok bool) {
	if s.status != Active {
		return Progress{}, false
	}
	q := s.questions[s.current]
	p = Progress{
		Number:        s.current + 1,
		Total:         len(s.questions),
		Difficulty:    q.Difficulty.Label(),
		TimeRemaining: s.timeRemaining,
		TimeLimit:     q.TimeLimitSeconds,
	}
	if q.TimeLimitSeconds > 0 {
		p.RemainingPercent = int(math.Round(float64(s.timeRemaining) * 100 / float64(q.TimeLimitSeconds)))
	}
	return p, true
}
