package booking

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"termine/internal/domain"
	"termine/internal/modules/catalog"
)

// session is one client's booking widget: a form controller plus the
// lifecycle of its submission.
type session struct {
	id        string
	mu        sync.Mutex
	form      *Form
	lifecycle *Lifecycle
	lastTouch time.Time
}

// Service owns the draft sessions. Each session is created on demand,
// lives in memory only and is pruned by the janitor once idle.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*session

	catalog  *catalog.Service
	collab   Collaborator
	notifier TransitionNotifier
	timeout  time.Duration
	now      func() time.Time
}

// NewService wires the session service. notifier may be nil when nothing
// subscribes to transitions (tests, simulation). submitTimeout bounds each
// collaborator call; expiry is surfaced as a recoverable submission error.
func NewService(cat *catalog.Service, collab Collaborator, notifier TransitionNotifier, submitTimeout time.Duration) *Service {
	return &Service{
		sessions: make(map[string]*session),
		catalog:  cat,
		collab:   collab,
		notifier: notifier,
		timeout:  submitTimeout,
		now:      time.Now,
	}
}

// CreateDraft opens a fresh session in editing with an empty draft.
func (s *Service) CreateDraft() DraftSnapshot {
	id := uuid.NewString()

	sess := &session{
		id:        id,
		form:      NewForm(),
		lastTouch: s.now(),
	}
	sess.lifecycle = NewLifecycle(s.collab, s.timeout, func(state domain.SubmissionState, subErr string) {
		if s.notifier != nil {
			s.notifier.NotifyTransition(TransitionEvent{
				DraftID:         id,
				State:           state,
				SubmissionError: subErr,
			})
		}
	})

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.snapshotLocked(sess)
}

func (s *Service) GetDraft(id string) (DraftSnapshot, error) {
	sess, err := s.getSession(id)
	if err != nil {
		return DraftSnapshot{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastTouch = s.now()
	return s.snapshotLocked(sess), nil
}

// SetField updates one draft field and clears only that field's error.
func (s *Service) SetField(id, field, value string) (DraftSnapshot, error) {
	sess, err := s.getSession(id)
	if err != nil {
		return DraftSnapshot{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastTouch = s.now()

	if err := sess.form.SetField(field, value); err != nil {
		return DraftSnapshot{}, err
	}
	return s.snapshotLocked(sess), nil
}

// SubmitDraft validates the draft and, when clean, hands the promoted
// record to the lifecycle. While a submission is in flight or confirmed the
// call is rejected without touching the form, so a hammered submit button
// can never issue a second collaborator call.
func (s *Service) SubmitDraft(id string) (DraftSnapshot, map[string]string, error) {
	sess, err := s.getSession(id)
	if err != nil {
		return DraftSnapshot{}, nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastTouch = s.now()

	switch sess.lifecycle.State() {
	case domain.StateSubmitting:
		return s.snapshotLocked(sess), nil, ErrSubmissionInFlight
	case domain.StateConfirmed:
		return s.snapshotLocked(sess), nil, ErrAlreadyConfirmed
	}

	rec, fieldErrs := sess.form.Submit(s.catalog, s.now())
	if len(fieldErrs) > 0 {
		return s.snapshotLocked(sess), fieldErrs, ErrValidation
	}

	if err := sess.lifecycle.Submit(rec); err != nil {
		return s.snapshotLocked(sess), nil, err
	}
	return s.snapshotLocked(sess), nil, nil
}

// DismissDraft closes the confirmation: the finalized record is discarded
// and the form starts over blank.
func (s *Service) DismissDraft(id string) (DraftSnapshot, error) {
	sess, err := s.getSession(id)
	if err != nil {
		return DraftSnapshot{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastTouch = s.now()

	if err := sess.lifecycle.Dismiss(); err != nil {
		return DraftSnapshot{}, err
	}
	sess.form.Reset()
	return s.snapshotLocked(sess), nil
}

// TeardownDraft removes the session, cancelling any in-flight submission.
func (s *Service) TeardownDraft(id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if !ok {
		return ErrDraftNotFound
	}

	sess.lifecycle.Teardown()
	if s.notifier != nil {
		s.notifier.CloseDraft(id)
	}
	return nil
}

// Count returns the number of live sessions.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// PruneIdle tears down sessions untouched for at least idleFor and reports
// how many were removed.
func (s *Service) PruneIdle(idleFor time.Duration) int {
	cutoff := s.now().Add(-idleFor)

	s.mu.RLock()
	var stale []string
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastTouch.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			stale = append(stale, id)
		}
	}
	s.mu.RUnlock()

	pruned := 0
	for _, id := range stale {
		if err := s.TeardownDraft(id); err == nil {
			pruned++
		}
	}
	return pruned
}

// RunJanitor prunes idle sessions every interval until ctx is done.
func (s *Service) RunJanitor(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.PruneIdle(ttl); n > 0 {
				log.Printf("janitor pruned_sessions=%d live_sessions=%d", n, s.Count())
			}
		}
	}
}

func (s *Service) getSession(id string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrDraftNotFound
	}
	return sess, nil
}

// snapshotLocked builds the wire view; the caller holds sess.mu.
func (s *Service) snapshotLocked(sess *session) DraftSnapshot {
	snap := DraftSnapshot{
		ID:              sess.id,
		State:           sess.lifecycle.State(),
		Draft:           sess.form.Draft(),
		SubmissionError: sess.lifecycle.SubmissionError(),
	}
	if errs := sess.form.FieldErrors(); len(errs) > 0 {
		snap.FieldErrors = errs
	}
	if rec, ok := sess.lifecycle.Finalized(); ok {
		conf := BuildConfirmation(rec, s.catalog)
		snap.Confirmation = &conf
	}
	return snap
}
