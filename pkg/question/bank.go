package question

// Default time limits per band, in seconds.
const (
	EasyTimeLimit   = 20
	MediumTimeLimit = 60
	HardTimeLimit   = 120
)

var defaultQuestions = []Question{
	{ID: 1, Text: "What is JSX in React?", Difficulty: Easy, TimeLimitSeconds: EasyTimeLimit},
	{ID: 2, Text: "Explain the difference between state and props in React.", Difficulty: Easy, TimeLimitSeconds: EasyTimeLimit},
	{ID: 3, Text: "Describe the React component lifecycle methods and their purpose.", Difficulty: Medium, TimeLimitSeconds: MediumTimeLimit},
	{ID: 4, Text: "How would you optimize the performance of a React application?", Difficulty: Medium, TimeLimitSeconds: MediumTimeLimit},
	{ID: 5, Text: "Explain how you would implement a custom hook for form validation in React.", Difficulty: Hard, TimeLimitSeconds: HardTimeLimit},
	{ID: 6, Text: "Describe how you would architect a large-scale React application with Redux, including folder structure and state management strategies.", Difficulty: Hard, TimeLimitSeconds: HardTimeLimit},
}

type staticBank struct {
	questions []Question
}

// NewStaticBank returns the built-in bank: two easy, two medium and two hard
// questions, always in that order.
func NewStaticBank() Bank {
	return &staticBank{questions: defaultQuestions}
}

// Questions returns a fresh copy so callers cannot mutate the bank.
func (b *staticBank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}
