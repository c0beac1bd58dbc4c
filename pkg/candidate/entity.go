package candidate

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/artem13815/interview/pkg/evaluation"
	"github.com/artem13815/interview/pkg/interview"
	"github.com/artem13815/interview/pkg/question"
	"github.com/artem13815/interview/pkg/resume"
)

var ErrNotFound = errors.New("candidate not found")

// Record is a finished interview. Records are never modified after Add.
type Record struct {
	ID          string                  `json:"id"`
	CreatedAt   time.Time               `json:"date"`
	Info        resume.CandidateInfo    `json:"candidateInfo"`
	Questions   []question.Question     `json:"questions"`
	Answers     []string                `json:"answers"`
	Score       int                     `json:"score"`
	Summary     string                  `json:"summaryText"`
	Evaluations []evaluation.Evaluation `json:"evaluations"`
	Transcript  []interview.Message     `json:"transcript"`
}

// SortKey selects the list ordering.
type SortKey string

const (
	SortByScore SortKey = "score"
	SortByName  SortKey = "name"
	SortByDate  SortKey = "date"
)

// ParseSortKey falls back to score for unknown keys.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortByName, SortByDate:
		return k
	default:
		return SortByScore
	}
}

type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// ParseOrder falls back to descending.
func ParseOrder(s string) Order {
	if Order(strings.ToLower(strings.TrimSpace(s))) == Asc {
		return Asc
	}
	return Desc
}

// Query describes a list request. Zero Limit means no limit.
type Query struct {
	Search string
	SortBy SortKey
	Order  Order
	Limit  int
	Offset int
}

// Page is one slice of a filtered, sorted list. Total counts all matches.
type Page struct {
	Items []Record `json:"items"`
	Total int      `json:"total"`
}

// Store is the append-only collection of finished interviews.
type Store interface {
	// Add assigns ID and CreatedAt and returns the stored record.
	Add(ctx context.Context, r Record) (Record, error)
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, q Query) (Page, error)
}
