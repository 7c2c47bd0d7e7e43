package booking

import (
	"fmt"
	"time"

	"termine/internal/domain"
	"termine/internal/modules/catalog"
)

// Confirmation is the presentation of a finalized booking. The raw record
// fields pass through unmodified; the formatted fields add the de-DE
// rendering the confirmation card shows.
type Confirmation struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	ServiceID     string `json:"service_id"`
	ServiceName   string `json:"service_name"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	FormattedDate string `json:"formatted_date"`
	FormattedTime string `json:"formatted_time"`
}

var germanWeekdays = [7]string{
	"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
}

var germanMonths = [12]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// BuildConfirmation resolves the service display name via the catalog and
// formats date and time for display. It never fails: an unresolvable
// service id falls back to a placeholder and unparseable values are shown
// as-is.
func BuildConfirmation(rec domain.Record, cat *catalog.Service) Confirmation {
	conf := Confirmation{
		Name:          rec.Name,
		Email:         rec.Email,
		ServiceID:     rec.ServiceID,
		ServiceName:   cat.DisplayName(rec.ServiceID),
		Date:          rec.Date,
		Time:          rec.Time,
		FormattedDate: rec.Date,
		FormattedTime: rec.Time,
	}

	if day, err := time.Parse(DateLayout, rec.Date); err == nil {
		conf.FormattedDate = fmt.Sprintf("%s, %d. %s %d",
			germanWeekdays[day.Weekday()], day.Day(), germanMonths[day.Month()-1], day.Year())
	}
	if t, err := time.Parse(TimeLayout, rec.Time); err == nil {
		conf.FormattedTime = t.Format(TimeLayout) + " Uhr"
	}

	return conf
}
