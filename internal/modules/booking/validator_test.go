package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termine/internal/domain"
	"termine/internal/modules/catalog"
)

var testToday = time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)

func validDraft() domain.Draft {
	return domain.Draft{
		Name:      "Anna Muster",
		Email:     "anna@example.com",
		ServiceID: "consultation",
		Date:      "2030-01-10",
		Time:      "09:30",
	}
}

func TestValidate_ValidDraft(t *testing.T) {
	errs := Validate(validDraft(), catalog.NewService(), testToday)
	assert.Empty(t, errs)
}

func TestValidate_BlankFields(t *testing.T) {
	errs := Validate(domain.Draft{}, catalog.NewService(), testToday)

	require.Len(t, errs, 5)
	assert.Equal(t, MsgNameRequired, errs[domain.FieldName])
	assert.Equal(t, MsgEmailRequired, errs[domain.FieldEmail])
	assert.Equal(t, MsgServiceRequired, errs[domain.FieldServiceID])
	assert.Equal(t, MsgDateRequired, errs[domain.FieldDate])
	assert.Equal(t, MsgTimeRequired, errs[domain.FieldTime])
}

func TestValidate_WhitespaceOnlyCountsAsBlank(t *testing.T) {
	d := validDraft()
	d.Name = "   "
	d.Email = " \t "

	errs := Validate(d, catalog.NewService(), testToday)
	assert.Equal(t, MsgNameRequired, errs[domain.FieldName])
	assert.Equal(t, MsgEmailRequired, errs[domain.FieldEmail])
}

func TestValidate_EmailFormat(t *testing.T) {
	cases := map[string]bool{
		"anna@example.com":   true,
		"a@b.c":              true,
		"not-an-email":       false,
		"bad":                false,
		"missing@dot":        false,
		"@example.com":       false,
		"zwei worte@mail.de": false,
	}

	for email, ok := range cases {
		d := validDraft()
		d.Email = email
		errs := Validate(d, catalog.NewService(), testToday)
		if ok {
			assert.NotContains(t, errs, domain.FieldEmail, "email %q", email)
		} else {
			assert.Equal(t, MsgEmailInvalid, errs[domain.FieldEmail], "email %q", email)
		}
	}
}

func TestValidate_EmailErrorHasNoSpuriousSiblings(t *testing.T) {
	d := validDraft()
	d.Email = "bad"

	errs := Validate(d, catalog.NewService(), testToday)
	require.Len(t, errs, 1)
	assert.Equal(t, MsgEmailInvalid, errs[domain.FieldEmail])
}

func TestValidate_ServiceMembership(t *testing.T) {
	d := validDraft()
	d.ServiceID = "massage"

	errs := Validate(d, catalog.NewService(), testToday)
	assert.Equal(t, MsgServiceUnknown, errs[domain.FieldServiceID])
}

func TestValidate_DateRules(t *testing.T) {
	yesterday := testToday.AddDate(0, 0, -1).Format(DateLayout)
	today := testToday.Format(DateLayout)
	tomorrow := testToday.AddDate(0, 0, 1).Format(DateLayout)

	d := validDraft()
	d.Date = yesterday
	errs := Validate(d, catalog.NewService(), testToday)
	assert.Equal(t, MsgDateInPast, errs[domain.FieldDate])

	// A booking for today is valid regardless of current time of day.
	d.Date = today
	errs = Validate(d, catalog.NewService(), testToday)
	assert.NotContains(t, errs, domain.FieldDate)

	d.Date = tomorrow
	errs = Validate(d, catalog.NewService(), testToday)
	assert.NotContains(t, errs, domain.FieldDate)

	d.Date = "10.01.2030"
	errs = Validate(d, catalog.NewService(), testToday)
	assert.Equal(t, MsgDateInvalid, errs[domain.FieldDate])
}

func TestValidate_TimeFormat(t *testing.T) {
	d := validDraft()
	d.Time = "25:99"

	errs := Validate(d, catalog.NewService(), testToday)
	assert.Equal(t, MsgTimeInvalid, errs[domain.FieldTime])
}

func TestValidate_RulesDoNotShortCircuit(t *testing.T) {
	d := domain.Draft{
		Name:      "",
		Email:     "bad",
		ServiceID: "massage",
		Date:      "2001-01-01",
		Time:      "",
	}

	errs := Validate(d, catalog.NewService(), testToday)
	require.Len(t, errs, 5)
	assert.Equal(t, MsgNameRequired, errs[domain.FieldName])
	assert.Equal(t, MsgEmailInvalid, errs[domain.FieldEmail])
	assert.Equal(t, MsgServiceUnknown, errs[domain.FieldServiceID])
	assert.Equal(t, MsgDateInPast, errs[domain.FieldDate])
	assert.Equal(t, MsgTimeRequired, errs[domain.FieldTime])
}

func TestValidate_Idempotent(t *testing.T) {
	d := validDraft()
	d.Email = "bad"
	cat := catalog.NewService()

	first := Validate(d, cat, testToday)
	second := Validate(d, cat, testToday)
	assert.Equal(t, first, second)
}
