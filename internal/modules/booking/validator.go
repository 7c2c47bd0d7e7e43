package booking

import (
	"regexp"
	"strings"
	"time"

	"termine/internal/domain"
	"termine/internal/modules/catalog"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Field error messages shown next to the offending input.
const (
	MsgNameRequired    = "Vollständiger Name ist erforderlich"
	MsgEmailRequired   = "E-Mail ist erforderlich"
	MsgEmailInvalid    = "E-Mail ist ungültig"
	MsgServiceRequired = "Dienstleistung ist erforderlich"
	MsgServiceUnknown  = "Dienstleistung ist ungültig"
	MsgDateRequired    = "Datum ist erforderlich"
	MsgDateInvalid     = "Datum ist ungültig"
	MsgDateInPast      = "Datum darf nicht in der Vergangenheit liegen"
	MsgTimeRequired    = "Uhrzeit ist erforderlich"
	MsgTimeInvalid     = "Uhrzeit ist ungültig"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Validate checks a draft against the booking rules and returns a map of
// field name to message containing only the failing fields. Rules are
// evaluated independently; one failing field never short-circuits the rest.
// The date rule compares against the start of today's calendar day, so a
// booking for today is valid regardless of time of day.
func Validate(d domain.Draft, cat *catalog.Service, today time.Time) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(d.Name) == "" {
		errs[domain.FieldName] = MsgNameRequired
	}

	if email := strings.TrimSpace(d.Email); email == "" {
		errs[domain.FieldEmail] = MsgEmailRequired
	} else if !emailPattern.MatchString(email) {
		errs[domain.FieldEmail] = MsgEmailInvalid
	}

	if serviceID := strings.TrimSpace(d.ServiceID); serviceID == "" {
		errs[domain.FieldServiceID] = MsgServiceRequired
	} else if !cat.Contains(serviceID) {
		errs[domain.FieldServiceID] = MsgServiceUnknown
	}

	if d.Date == "" {
		errs[domain.FieldDate] = MsgDateRequired
	} else if day, err := time.Parse(DateLayout, d.Date); err != nil {
		errs[domain.FieldDate] = MsgDateInvalid
	} else if day.Before(startOfDay(today)) {
		errs[domain.FieldDate] = MsgDateInPast
	}

	if d.Time == "" {
		errs[domain.FieldTime] = MsgTimeRequired
	} else if _, err := time.Parse(TimeLayout, d.Time); err != nil {
		errs[domain.FieldTime] = MsgTimeInvalid
	}

	return errs
}

// startOfDay truncates t to midnight UTC so the comparison against the
// parsed draft date (also midnight UTC) is a pure calendar-date comparison.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
