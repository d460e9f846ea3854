package response

import (
	"time"

	"condo-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	CondoID         uuid.UUID `json:"condoId"`
	AmenityID       uuid.UUID `json:"amenityId"`
	AmenityName     string    `json:"amenityName"`
	UserID          uuid.UUID `json:"userId"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:              rm.ID,
		CondoID:         rm.CondoID,
		AmenityID:       rm.AmenityID,
		AmenityName:     rm.AmenityName,
		UserID:          rm.UserID,
		StartTime:       rm.StartTime,
		EndTime:         rm.EndTime,
		DurationMinutes: rm.DurationMinutes,
		Status:          rm.Status,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}
