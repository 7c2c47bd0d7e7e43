package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"termine/internal/domain"
	"termine/internal/modules/catalog"
)

func TestBuildConfirmation(t *testing.T) {
	conf := BuildConfirmation(testRecord(), catalog.NewService())

	// Raw record fields pass through unmodified.
	assert.Equal(t, "Anna Muster", conf.Name)
	assert.Equal(t, "anna@example.com", conf.Email)
	assert.Equal(t, "consultation", conf.ServiceID)
	assert.Equal(t, "2030-01-10", conf.Date)
	assert.Equal(t, "09:30", conf.Time)

	assert.Equal(t, "Erstberatung", conf.ServiceName)
	assert.Equal(t, "Donnerstag, 10. Januar 2030", conf.FormattedDate)
	assert.Equal(t, "09:30 Uhr", conf.FormattedTime)
}

func TestBuildConfirmation_UnknownServiceFallsBack(t *testing.T) {
	rec := testRecord()
	rec.ServiceID = "retired-service"

	conf := BuildConfirmation(rec, catalog.NewService())
	assert.Equal(t, catalog.UnknownServiceName, conf.ServiceName)
}

func TestBuildConfirmation_UnparseableValuesShownAsIs(t *testing.T) {
	rec := domain.Record{Name: "Anna", Date: "sometime", Time: "later"}

	conf := BuildConfirmation(rec, catalog.NewService())
	assert.Equal(t, "sometime", conf.FormattedDate)
	assert.Equal(t, "later", conf.FormattedTime)
}

func TestBuildConfirmation_GermanMonths(t *testing.T) {
	rec := testRecord()
	rec.Date = "2030-03-04"

	conf := BuildConfirmation(rec, catalog.NewService())
	assert.Equal(t, "Montag, 4. März 2030", conf.FormattedDate)
}
