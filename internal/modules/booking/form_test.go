package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termine/internal/domain"
	"termine/internal/modules/catalog"
)

func TestForm_SetFieldUpdatesDraft(t *testing.T) {
	f := NewForm()

	require.NoError(t, f.SetField(domain.FieldName, "Anna Muster"))
	require.NoError(t, f.SetField(domain.FieldEmail, "anna@example.com"))

	d := f.Draft()
	assert.Equal(t, "Anna Muster", d.Name)
	assert.Equal(t, "anna@example.com", d.Email)
}

func TestForm_SetFieldUnknownField(t *testing.T) {
	f := NewForm()
	assert.ErrorIs(t, f.SetField("phone", "123"), ErrUnknownField)
}

func TestForm_SubmitStoresErrors(t *testing.T) {
	f := NewForm()
	cat := catalog.NewService()

	_, errs := f.Submit(cat, testToday)
	require.Len(t, errs, 5)
	assert.Equal(t, errs, f.FieldErrors())
}

func TestForm_SetFieldClearsOnlyThatError(t *testing.T) {
	f := NewForm()
	cat := catalog.NewService()

	_, errs := f.Submit(cat, testToday)
	require.Len(t, errs, 5)

	require.NoError(t, f.SetField(domain.FieldName, "Anna Muster"))

	remaining := f.FieldErrors()
	assert.NotContains(t, remaining, domain.FieldName)
	// Errors on untouched fields stay stale until the next submit.
	assert.Len(t, remaining, 4)
	assert.Equal(t, MsgEmailRequired, remaining[domain.FieldEmail])
}

func TestForm_EditClearsErrorEvenIfStillInvalid(t *testing.T) {
	f := NewForm()
	cat := catalog.NewService()

	_, _ = f.Submit(cat, testToday)
	require.NoError(t, f.SetField(domain.FieldEmail, "still-bad"))

	// Clearing on edit is a responsiveness optimization, not a revalidation.
	assert.NotContains(t, f.FieldErrors(), domain.FieldEmail)

	_, errs := f.Submit(cat, testToday)
	assert.Equal(t, MsgEmailInvalid, errs[domain.FieldEmail])
}

func TestForm_SubmitPromotesValidDraft(t *testing.T) {
	f := NewForm()
	cat := catalog.NewService()

	for field, value := range map[string]string{
		domain.FieldName:      "Anna Muster",
		domain.FieldEmail:     "anna@example.com",
		domain.FieldServiceID: "consultation",
		domain.FieldDate:      "2030-01-10",
		domain.FieldTime:      "09:30",
	} {
		require.NoError(t, f.SetField(field, value))
	}

	rec, errs := f.Submit(cat, testToday)
	require.Nil(t, errs)
	assert.Equal(t, domain.Record{
		Name:      "Anna Muster",
		Email:     "anna@example.com",
		ServiceID: "consultation",
		Date:      "2030-01-10",
		Time:      "09:30",
	}, rec)
	assert.Empty(t, f.FieldErrors())
}

func TestForm_Reset(t *testing.T) {
	f := NewForm()
	require.NoError(t, f.SetField(domain.FieldName, "Anna Muster"))
	_, _ = f.Submit(catalog.NewService(), testToday)

	f.Reset()

	assert.Equal(t, domain.Draft{}, f.Draft())
	assert.Empty(t, f.FieldErrors())
}
