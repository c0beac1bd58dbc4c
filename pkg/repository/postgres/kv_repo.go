package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/interview/pkg/checkpoint"
)

// KVRepository implements checkpoint.KV on the kv_store table.
type KVRepository struct {
	pool *pgxpool.Pool
}

func NewKVRepository(pool *pgxpool.Pool) *KVRepository {
	return &KVRepository{pool: pool}
}

func (r *KVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := r.pool.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, checkpoint.ErrNotFound
	}
	return v, err
}

func (r *KVRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO kv_store (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
`, key, value)
	return err
}

func (r *KVRepository) Delete(ctx context.Context, key string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key)
	return err
}
