package question

import "fmt"

// Difficulty is the band a question belongs to. Each band has its own time
// limit and keyword set.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Valid reports whether d is one of the known bands.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Label returns the display label ("Easy", "Medium", "Hard").
func (d Difficulty) Label() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Question is immutable once handed to a session.
type Question struct {
	ID               int        `json:"id" yaml:"id"`
	Text             string     `json:"text" yaml:"text"`
	Difficulty       Difficulty `json:"difficulty" yaml:"difficulty"`
	TimeLimitSeconds int        `json:"timeLimitSeconds" yaml:"time_limit_seconds"`
}

func (q Question) String() string {
	return fmt.Sprintf("#%d [%s, %ds] %s", q.ID, q.Difficulty, q.TimeLimitSeconds, q.Text)
}

// Bank supplies the ordered question sequence for a new session.
type Bank interface {
	Questions() []Question
}
