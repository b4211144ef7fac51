package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service is a bookable offering (haircut, manicure, ...).
type Service struct {
	ID              uuid.UUID
	Name            string
	DurationMinutes int
	Price           *float64 // nil when the business does not publish a price
	CreatedAt       time.Time
}

// HasPrice returns true if a price is published for the service
func (s *Service) HasPrice() bool {
	return s.Price != nil
}
