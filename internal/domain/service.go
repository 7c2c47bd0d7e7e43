package domain

// Service is one offerable service from the static catalog.
// Defined once at startup, never mutated.
type Service struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
}
