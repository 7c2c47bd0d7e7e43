package booking

import "termine/internal/domain"

type SetFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=name email service_id date time"`
	Value string `json:"value"`
}

// DraftSnapshot is the wire view of one draft session.
type DraftSnapshot struct {
	ID              string                 `json:"id"`
	State           domain.SubmissionState `json:"state"`
	Draft           domain.Draft           `json:"draft"`
	FieldErrors     map[string]string      `json:"field_errors,omitempty"`
	SubmissionError string                 `json:"submission_error,omitempty"`
	Confirmation    *Confirmation          `json:"confirmation,omitempty"`
}
