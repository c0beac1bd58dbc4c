package health

import (
	"context"
	"errors"
	"fmt"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// StatusOK is the report entry of a passing probe.
const StatusOK = "ok"

// Report maps each probe name to StatusOK or its error text.
type Report map[string]string

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) (Report, error)
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers. Nil checkers are skipped so
// optional backends can be passed unconditionally.
func NewService(checkers ...Checker) ReadinessUseCase {
	s := &service{}
	for _, ch := range checkers {
		if ch != nil {
			s.checkers = append(s.checkers, ch)
		}
	}
	return s
}

// Ready runs every probe so one report shows all broken stores.
func (s *service) Ready(ctx context.Context) (Report, error) {
	rep := make(Report, len(s.checkers))
	var errs []error
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			rep[ch.Name()] = err.Error()
			errs = append(errs, fmt.Errorf("%s: %w", ch.Name(), err))
			continue
		}
		rep[ch.Name()] = StatusOK
	}
	return rep, errors.Join(errs...)
}
