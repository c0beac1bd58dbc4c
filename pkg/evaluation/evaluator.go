package evaluation

import (
	"fmt"
	"math"
	"strings"

	"github.com/artem13815/interview/pkg/nlp"
	"github.com/artem13815/interview/pkg/question"
)

// Evaluator scores answers with a fixed Policy. It holds no mutable state and
// is safe for concurrent use.
type Evaluator struct {
	policy Policy
}

// NewEvaluator creates an evaluator for the given policy.
func NewEvaluator(p Policy) *Evaluator {
	return &Evaluator{policy: p}
}

var defaultEvaluator = NewEvaluator(DefaultPolicy())

// Evaluate scores answers with the default policy.
func Evaluate(questions []question.Question, answers []string) Result {
	return defaultEvaluator.Evaluate(questions, answers)
}

// Evaluate is a pure function of its inputs. answers may be shorter than
// questions; missing answers count as empty.
func (e *Evaluator) Evaluate(questions []question.Question, answers []string) Result {
	evals := make([]Evaluation, 0, len(questions))
	total := 0
	for i, q := range questions {
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}
		score := e.ScoreAnswer(q, answer)
		total += score
		evals = append(evals, Evaluation{
			QuestionID: q.ID,
			Score:      score,
			Feedback:   feedback(score, q.Difficulty),
		})
	}

	percent := 0
	if maxTotal := e.policy.MaxQuestionScore * len(questions); maxTotal > 0 {
		percent = int(math.Round(float64(total) / float64(maxTotal) * 100))
	}
	return Result{
		Score:       percent,
		Evaluations: evals,
		Summary:     e.summary(percent, evals),
	}
}

// ScoreAnswer scores one answer in [0, MaxQuestionScore].
func (e *Evaluator) ScoreAnswer(q question.Question, answer string) int {
	score := 0
	switch n := nlp.CharCount(answer); {
	case n > e.policy.LongAnswer:
		score += 3
	case n > e.policy.ShortAnswer:
		score += 2
	case n > 0:
		score++
	}
	for _, kw := range e.policy.Keywords[q.Difficulty] {
		if nlp.ContainsFold(answer, kw) {
			score++
		}
	}
	return min(score, e.policy.MaxQuestionScore)
}

func feedback(score int, d question.Difficulty) string {
	switch {
	case score >= 8:
		return fmt.Sprintf("Excellent answer for a %s question. Comprehensive and well-articulated.", d)
	case score >= 5:
		return fmt.Sprintf("Good answer for a %s question. Covers the main points but could be more detailed.", d)
	case score >= 3:
		return fmt.Sprintf("Adequate answer for a %s question. Basic understanding demonstrated.", d)
	default:
		return fmt.Sprintf("Limited answer for a %s question. Consider reviewing this topic.", d)
	}
}

func (e *Evaluator) summary(percent int, evals []Evaluation) string {
	strengths, weaknesses := 0, 0
	for _, ev := range evals {
		if ev.Score >= e.policy.StrengthScore {
			strengths++
		}
		if ev.Score <= e.policy.WeaknessScore {
			weaknesses++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The candidate scored %d%% overall. ", percent)

	switch {
	case percent >= 80:
		b.WriteString("This is an excellent result, indicating strong React and Node.js knowledge. ")
	case percent >= 60:
		b.WriteString("This is a good result, showing solid understanding of React and Node.js concepts. ")
	case percent >= 40:
		b.WriteString("This is an average result, with basic React and Node.js knowledge demonstrated. ")
	default:
		b.WriteString("This result suggests limited React and Node.js knowledge. ")
	}

	if strengths > 0 {
		fmt.Fprintf(&b, "The candidate showed strength in %d %s. ", strengths, plural(strengths, "area", "areas"))
	}
	if weaknesses > 0 {
		fmt.Fprintf(&b, "There %s %d %s that could use improvement. ",
			plural(weaknesses, "is", "are"), weaknesses, plural(weaknesses, "area", "areas"))
	}

	b.WriteString("Overall recommendation: ")
	switch {
	case percent >= 70:
		b.WriteString(RecommendAdvance)
	case percent >= 50:
		b.WriteString(RecommendJunior)
	default:
		b.WriteString(RecommendReject)
	}
	return b.String()
}

// Recommendation sentences closing every summary.
const (
	RecommendAdvance = "Consider for next interview stage."
	RecommendJunior  = "May be suitable for junior positions or with additional training."
	RecommendReject  = "Not recommended for current React/Node.js positions."
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
