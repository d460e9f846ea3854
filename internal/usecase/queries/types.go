package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	CondoID         uuid.UUID `json:"condo_id"`
	AmenityID       uuid.UUID `json:"amenity_id"`
	AmenityName     string    `json:"amenity_name"`
	UserID          uuid.UUID `json:"user_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AmenityView struct {
	ID              uuid.UUID `json:"id"`
	CondoID         uuid.UUID `json:"condo_id"`
	Name            string    `json:"name"`
	MaxCapacity     int       `json:"max_capacity"`
	IsReservable    bool      `json:"is_reservable"`
	RequiresPayment bool      `json:"requires_payment"`
	Timezone        string    `json:"timezone"`
}

// AvailabilityView keys dates as "YYYY-MM-DD" and slot starts as "HH:MM",
// the shapes the boundary serves directly.
type AvailabilityView struct {
	Availability    map[string][]string `json:"availability"`
	UserLimitByDate map[string]bool     `json:"userLimitByDate"`
}
