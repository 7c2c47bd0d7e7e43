package booking

import (
	"time"

	"termine/internal/domain"
	"termine/internal/modules/catalog"
)

// Form owns the mutable draft and the field errors from the last failed
// submit attempt. It is not safe for concurrent use; the session service
// serializes access.
type Form struct {
	draft  domain.Draft
	errors map[string]string
}

func NewForm() *Form {
	return &Form{errors: make(map[string]string)}
}

func (f *Form) Draft() domain.Draft {
	return f.draft
}

// FieldErrors returns a copy of the current error map.
func (f *Form) FieldErrors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// SetField updates one draft field by its wire name. If that field carries
// an error from a previous submit, only that error is cleared; errors on
// other fields stay until the next submit revalidates the whole draft.
func (f *Form) SetField(field, value string) error {
	switch field {
	case domain.FieldName:
		f.draft.Name = value
	case domain.FieldEmail:
		f.draft.Email = value
	case domain.FieldServiceID:
		f.draft.ServiceID = value
	case domain.FieldDate:
		f.draft.Date = value
	case domain.FieldTime:
		f.draft.Time = value
	default:
		return ErrUnknownField
	}
	delete(f.errors, field)
	return nil
}

// Submit revalidates the whole draft. On failure the errors are stored and
// returned and no record is produced; on success the errors are cleared and
// the draft is promoted to an immutable record.
func (f *Form) Submit(cat *catalog.Service, today time.Time) (domain.Record, map[string]string) {
	errs := Validate(f.draft, cat, today)
	if len(errs) > 0 {
		f.errors = errs
		return domain.Record{}, f.FieldErrors()
	}
	f.errors = make(map[string]string)
	return f.draft.Snapshot(), nil
}

// Reset discards the draft and all errors, returning the form to a fresh state.
func (f *Form) Reset() {
	f.draft = domain.Draft{}
	f.errors = make(map[string]string)
}
