package evaluation

import "github.com/artem13815/interview/pkg/question"

// Policy holds the scoring weights. The defaults are placeholders for a real
// evaluation model and are kept stable so stored scores stay comparable.
type Policy struct {
	// Keywords per difficulty band; each one found in an answer adds a point.
	Keywords map[question.Difficulty][]string
	// MaxQuestionScore caps a single answer.
	MaxQuestionScore int
	// Answers longer than LongAnswer characters get 3 points, longer than
	// ShortAnswer get 2, any non-empty answer gets 1.
	LongAnswer  int
	ShortAnswer int
	// Per-question scores at or above StrengthScore count as strengths, at
	// or below WeaknessScore as weaknesses.
	StrengthScore int
	WeaknessScore int
}

// DefaultPolicy returns the reference weights.
func DefaultPolicy() Policy {
	return Policy{
		Keywords: map[question.Difficulty][]string{
			question.Easy:   {"react", "component", "jsx", "props", "state"},
			question.Medium: {"lifecycle", "performance", "optimization", "useEffect", "memo"},
			question.Hard:   {"architecture", "custom", "hook", "redux", "context", "scale"},
		},
		MaxQuestionScore: 10,
		LongAnswer:       50,
		ShortAnswer:      20,
		StrengthScore:    7,
		WeaknessScore:    3,
	}
}
