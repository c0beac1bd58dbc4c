package checkers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaTables are created by the migrations; the service is not ready
// until all of them exist.
var schemaTables = []string{"resumes", "parsed_resumes", "candidates", "kv_store"}

const missingTablesQuery = `
SELECT COALESCE(array_agg(t ORDER BY t), '{}')
FROM unnest($1::text[]) AS t
WHERE to_regclass('public.' || t) IS NULL`

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresChecker checks that the database answers and is migrated.
type PostgresChecker struct {
	db     rowQuerier
	tables []string
}

func NewPostgresChecker(pool *pgxpool.Pool) *PostgresChecker {
	return &PostgresChecker{db: pool, tables: schemaTables}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	var missing []string
	if err := c.db.QueryRow(ctx, missingTablesQuery, c.tables).Scan(&missing); err != nil {
		return fmt.Errorf("query schema: %w", err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("schema not migrated, missing %s", strings.Join(missing, ", "))
	}
	return nil
}
