package checkpoint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/artem13815/interview/pkg/interview"
	"github.com/artem13815/interview/pkg/logger"
)

// Only keys under this namespace are durable.
const (
	Namespace     = "interview"
	CandidatesKey = Namespace + ":candidates"
)

// SessionKey is the key of one interview session.
func SessionKey(id string) string {
	return Namespace + ":session:" + id
}

// Checkpointer saves and loads JSON payloads on a KV. A payload that does
// not decode is logged and treated as absent.
type Checkpointer struct {
	kv  KV
	log *zap.Logger
}

func New(kv KV, log *zap.Logger) *Checkpointer {
	return &Checkpointer{kv: kv, log: logger.OrNop(log)}
}

// Save encodes v as JSON under key.
func (c *Checkpointer) Save(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.kv.Set(ctx, key, b); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Load decodes the value under key into v. found is false when the key is
// missing or its payload is corrupt; err is reserved for store failures.
func (c *Checkpointer) Load(ctx context.Context, key string, v any) (found bool, err error) {
	b, err := c.kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		c.log.Warn("discarding corrupt checkpoint",
			zap.String("key", key),
			zap.Int("sizeB", len(b)),
			zap.Error(err),
		)
		return false, nil
	}
	return true, nil
}

func (c *Checkpointer) Delete(ctx context.Context, key string) error {
	if err := c.kv.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// SessionState is the stored form of one session. RecordID stays empty
// until the finished interview is in the candidate store, so a complete
// session without it still owes its record.
type SessionState struct {
	interview.Snapshot
	RecordID string `json:"recordId,omitempty"`
}

// Restored is a session read back from its checkpoint.
type Restored struct {
	Session  *interview.Session
	RecordID string
}

// RecordPending reports a complete session whose record is not stored yet.
func (r Restored) RecordPending() bool {
	return r.Session.IsComplete() && r.RecordID == ""
}

func (c *Checkpointer) SaveSession(ctx context.Context, id string, s *interview.Session, recordID string) error {
	return c.Save(ctx, SessionKey(id), SessionState{Snapshot: s.Snapshot(), RecordID: recordID})
}

// LoadSession restores a session. A snapshot that decodes but breaks the
// session invariants is treated like a corrupt one.
func (c *Checkpointer) LoadSession(ctx context.Context, id string, opts ...interview.Option) (Restored, bool, error) {
	var st SessionState
	found, err := c.Load(ctx, SessionKey(id), &st)
	if err != nil || !found {
		return Restored{}, false, err
	}
	s, err := interview.Restore(st.Snapshot, opts...)
	if err != nil {
		c.log.Warn("discarding invalid session checkpoint", zap.String("session", id), zap.Error(err))
		return Restored{}, false, nil
	}
	return Restored{Session: s, RecordID: st.RecordID}, true, nil
}

func (c *Checkpointer) DeleteSession(ctx context.Context, id string) error {
	return c.Delete(ctx, SessionKey(id))
}
