package catalog

import (
	"termine/internal/domain"
)

// UnknownServiceName is what the confirmation shows when a record references
// a service id that is no longer in the catalog.
const UnknownServiceName = "N/A"

// defaultServices is the full offering. Order is display order.
var defaultServices = []domain.Service{
	{ID: "consultation", Name: "Erstberatung", DurationMinutes: 30},
	{ID: "checkup", Name: "Routineuntersuchung", DurationMinutes: 45},
	{ID: "specialist", Name: "Spezialistensitzung", DurationMinutes: 60},
	{ID: "followup", Name: "Folgetermin", DurationMinutes: 20},
}

// Service exposes the static, ordered catalog of offerable services.
type Service struct {
	services []domain.Service
	byID     map[string]domain.Service
}

func NewService() *Service {
	return NewServiceWith(defaultServices)
}

// NewServiceWith builds a catalog over the given entries.
func NewServiceWith(services []domain.Service) *Service {
	s := &Service{
		services: make([]domain.Service, len(services)),
		byID:     make(map[string]domain.Service, len(services)),
	}
	copy(s.services, services)
	for _, svc := range s.services {
		s.byID[svc.ID] = svc
	}
	return s
}

// Services returns the catalog in display order. The returned slice is a copy.
func (s *Service) Services() []domain.Service {
	out := make([]domain.Service, len(s.services))
	copy(out, s.services)
	return out
}

func (s *Service) FindByID(id string) (domain.Service, bool) {
	svc, ok := s.byID[id]
	return svc, ok
}

// Contains reports whether id references a catalog entry.
func (s *Service) Contains(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// DisplayName resolves a service id to its display label, tolerating
// unknown ids with a placeholder instead of failing.
func (s *Service) DisplayName(id string) string {
	if svc, ok := s.byID[id]; ok {
		return svc.Name
	}
	return UnknownServiceName
}
