package checkers

import (
	"context"
	"errors"
	"time"

	"github.com/artem13815/interview/pkg/checkpoint"
)

// KVChecker probes a checkpoint store with a read of a fixed key.
type KVChecker struct {
	name string
	kv   checkpoint.KV
}

func NewKVChecker(name string, kv checkpoint.KV) *KVChecker {
	return &KVChecker{name: name, kv: kv}
}

func (c *KVChecker) Name() string { return c.name }

func (c *KVChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	_, err := c.kv.Get(ctx, checkpoint.CandidatesKey)
	if errors.Is(err, checkpoint.ErrNotFound) {
		return nil
	}
	return err
}
