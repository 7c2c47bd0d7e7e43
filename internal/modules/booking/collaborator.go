package booking

import (
	"context"
	"time"

	"termine/internal/domain"
)

// StubCollaborator simulates the booking backend: it waits a fixed delay,
// always succeeds and echoes the record back. It honors context
// cancellation and deadlines so the lifecycle can abandon it.
type StubCollaborator struct {
	Delay time.Duration
}

func NewStubCollaborator(delay time.Duration) StubCollaborator {
	return StubCollaborator{Delay: delay}
}

func (c StubCollaborator) Submit(ctx context.Context, rec domain.Record) (domain.Record, error) {
	timer := time.NewTimer(c.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return domain.Record{}, ctx.Err()
	case <-timer.C:
		return rec, nil
	}
}
