package booking

import (
	"context"

	"termine/internal/domain"
)

// Collaborator is the external booking backend a validated record is handed
// to. The stub in this repo answers with a fixed delay; a real platform
// adapter can replace it without the lifecycle changing shape.
type Collaborator interface {
	Submit(ctx context.Context, rec domain.Record) (domain.Record, error)
}

// TransitionNotifier receives lifecycle state changes for a draft so the
// client UI can follow submit progress without polling. CloseDraft tells the
// notifier the draft is gone and any subscription to it should be dropped.
type TransitionNotifier interface {
	NotifyTransition(ev TransitionEvent)
	CloseDraft(draftID string)
}

// TransitionEvent describes one lifecycle state change of a draft.
type TransitionEvent struct {
	DraftID         string                 `json:"draft_id"`
	State           domain.SubmissionState `json:"state"`
	SubmissionError string                 `json:"submission_error,omitempty"`
}
