package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"termine/internal/domain"
)

// Banner messages for the non-field submission error path.
const (
	MsgSubmitFailed  = "Die Buchung ist fehlgeschlagen. Bitte versuchen Sie es erneut."
	MsgSubmitTimeout = "Die Buchung hat zu lange gedauert. Bitte versuchen Sie es erneut."
)

// Lifecycle drives one booking through editing -> submitting -> confirmed.
//
// Valid transitions:
//
//	editing    -> submitting   accepted record, collaborator call starts
//	submitting -> confirmed    collaborator succeeded, record finalized
//	submitting -> editing      collaborator failed or timed out, banner set
//	confirmed  -> editing      user dismissed the confirmation
//
// While submitting, further submits are rejected, so at most one
// collaborator call is in flight per lifecycle.
type Lifecycle struct {
	mu        sync.Mutex
	state     domain.SubmissionState
	finalized *domain.Record
	subErr    string
	cancel    context.CancelFunc

	collab   Collaborator
	timeout  time.Duration
	onChange func(state domain.SubmissionState, subErr string)
}

// NewLifecycle starts in editing. timeout bounds the collaborator call;
// zero means no deadline. onChange may be nil.
func NewLifecycle(collab Collaborator, timeout time.Duration, onChange func(domain.SubmissionState, string)) *Lifecycle {
	return &Lifecycle{
		state:    domain.StateEditing,
		collab:   collab,
		timeout:  timeout,
		onChange: onChange,
	}
}

func (l *Lifecycle) State() domain.SubmissionState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Finalized returns the confirmed record, if any.
func (l *Lifecycle) Finalized() (domain.Record, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.finalized == nil {
		return domain.Record{}, false
	}
	return *l.finalized, true
}

// SubmissionError returns the banner message from the last failed
// collaborator call, empty once a new submit starts.
func (l *Lifecycle) SubmissionError() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.subErr
}

// Submit moves editing -> submitting and hands the record to the
// collaborator asynchronously. The record passes through unmodified.
func (l *Lifecycle) Submit(rec domain.Record) error {
	l.mu.Lock()
	switch l.state {
	case domain.StateSubmitting:
		l.mu.Unlock()
		return ErrSubmissionInFlight
	case domain.StateConfirmed:
		l.mu.Unlock()
		return ErrAlreadyConfirmed
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if l.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	l.state = domain.StateSubmitting
	l.subErr = ""
	l.cancel = cancel
	l.mu.Unlock()

	l.notify(domain.StateSubmitting, "")
	go l.run(ctx, cancel, rec)
	return nil
}

func (l *Lifecycle) run(ctx context.Context, cancel context.CancelFunc, rec domain.Record) {
	defer cancel()

	final, err := l.collab.Submit(ctx, rec)

	l.mu.Lock()
	if l.state != domain.StateSubmitting {
		// Torn down while in flight; the completion is stale.
		l.mu.Unlock()
		return
	}
	l.cancel = nil

	if err != nil {
		l.state = domain.StateEditing
		if errors.Is(err, context.Canceled) {
			// Cancelled teardown: never confirm, and nobody is left to
			// read a banner.
			l.mu.Unlock()
			return
		}
		if errors.Is(err, context.DeadlineExceeded) {
			l.subErr = MsgSubmitTimeout
		} else {
			l.subErr = MsgSubmitFailed
		}
		subErr := l.subErr
		l.mu.Unlock()
		l.notify(domain.StateEditing, subErr)
		return
	}

	l.state = domain.StateConfirmed
	l.finalized = &final
	l.mu.Unlock()
	l.notify(domain.StateConfirmed, "")
}

// Dismiss moves confirmed -> editing and discards the finalized record.
func (l *Lifecycle) Dismiss() error {
	l.mu.Lock()
	if l.state != domain.StateConfirmed {
		l.mu.Unlock()
		return ErrNotConfirmed
	}
	l.state = domain.StateEditing
	l.finalized = nil
	l.subErr = ""
	l.mu.Unlock()

	l.notify(domain.StateEditing, "")
	return nil
}

// Teardown cancels any in-flight collaborator call. A cancelled call can
// never reach confirmed.
func (l *Lifecycle) Teardown() {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (l *Lifecycle) notify(state domain.SubmissionState, subErr string) {
	if l.onChange != nil {
		l.onChange(state, subErr)
	}
}
