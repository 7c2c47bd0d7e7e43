package booking

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrDraftNotFound      = errors.New("draft not found")
	ErrUnknownField       = errors.New("unknown draft field")
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrAlreadyConfirmed   = errors.New("booking already confirmed")
	ErrNotConfirmed       = errors.New("no confirmed booking to dismiss")
)
