package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/artem13815/interview/pkg/checkpoint"
)

// KVRepository implements checkpoint.KV on Redis strings. Keys are used
// as given; they already carry the interview namespace.
type KVRepository struct {
	client *redis.Client
}

func NewKVRepository(client *redis.Client) *KVRepository {
	return &KVRepository{client: client}
}

func (r *KVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, checkpoint.ErrNotFound
	}
	return v, err
}

func (r *KVRepository) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *KVRepository) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
