package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/interview/pkg/candidate"
)

// CandidateRepository хранит завершённые интервью. Запись целиком лежит
// в JSONB, имя, email и балл продублированы в колонках для поиска.
type CandidateRepository struct {
	pool *pgxpool.Pool
}

func NewCandidateRepository(pool *pgxpool.Pool) *CandidateRepository {
	return &CandidateRepository{pool: pool}
}

func (r *CandidateRepository) Add(ctx context.Context, rec candidate.Record) (candidate.Record, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return candidate.Record{}, fmt.Errorf("generate candidate id: %w", err)
	}
	rec.ID = id.String()
	rec.CreatedAt = time.Now().UTC()

	payload, err := json.Marshal(rec)
	if err != nil {
		return candidate.Record{}, fmt.Errorf("encode candidate: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO candidates (id, created_at, name, email, score, record)
VALUES ($1, $2, $3, $4, $5, $6)
`, id, rec.CreatedAt, rec.Info.Name, rec.Info.Email, rec.Score, payload)
	if err != nil {
		return candidate.Record{}, err
	}
	return rec, nil
}

func (r *CandidateRepository) Get(ctx context.Context, id string) (candidate.Record, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return candidate.Record{}, candidate.ErrNotFound
	}
	var payload []byte
	err = r.pool.QueryRow(ctx, `SELECT record FROM candidates WHERE id = $1`, uid).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Record{}, candidate.ErrNotFound
		}
		return candidate.Record{}, err
	}
	var rec candidate.Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return candidate.Record{}, fmt.Errorf("decode candidate %s: %w", id, err)
	}
	return rec, nil
}

// List narrows rows in SQL and leaves ordering and paging to
// candidate.Project so every store sorts the same way.
func (r *CandidateRepository) List(ctx context.Context, q candidate.Query) (candidate.Page, error) {
	rows, err := r.pool.Query(ctx, `
SELECT record FROM candidates
WHERE $1 = '' OR name ILIKE $2 OR email ILIKE $2
ORDER BY seq
`, strings.TrimSpace(q.Search), likePattern(q.Search))
	if err != nil {
		return candidate.Page{}, err
	}
	defer rows.Close()

	var records []candidate.Record
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return candidate.Page{}, err
		}
		var rec candidate.Record
		if err := json.Unmarshal(payload, &rec); err != nil {
			return candidate.Page{}, fmt.Errorf("decode candidate: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return candidate.Page{}, err
	}
	return candidate.Project(records, q), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(search string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(search)) + "%"
}
