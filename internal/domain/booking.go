package domain

type SubmissionState string

const (
	StateEditing    SubmissionState = "editing"
	StateSubmitting SubmissionState = "submitting"
	StateConfirmed  SubmissionState = "confirmed"
)

// Wire names of the draft fields; validation error maps are keyed by these.
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldServiceID = "service_id"
	FieldDate      = "date"
	FieldTime      = "time"
)

// Draft is the in-progress booking form state. Fields may be blank or
// invalid while editing; validity is only enforced at submit time.
type Draft struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	ServiceID string `json:"service_id"`
	Date      string `json:"date"` // calendar date, 2006-01-02
	Time      string `json:"time"` // time of day, 15:04
}

// Record is an immutable snapshot of a draft that passed validation.
type Record struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	ServiceID string `json:"service_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// Snapshot promotes the draft to a record. Callers must validate first.
func (d Draft) Snapshot() Record {
	return Record(d)
}
