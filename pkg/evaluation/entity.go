package evaluation

// Evaluation — оценка одного ответа.
type Evaluation struct {
	QuestionID int    `json:"questionId"`
	Score      int    `json:"score"`
	Feedback   string `json:"feedbackText"`
}

// Result — итог интервью: процент, оценки по вопросам и текстовое резюме.
type Result struct {
	Score       int          `json:"score"`
	Evaluations []Evaluation `json:"evaluations"`
	Summary     string       `json:"summaryText"`
}
