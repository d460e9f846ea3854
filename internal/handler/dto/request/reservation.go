package request

import (
	"time"

	"condo-reserve/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	AmenityID uuid.UUID  `json:"amenityId" binding:"required"`
	StartTime time.Time  `json:"startTime" binding:"required"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	// Used only when the amenity's rule carries no slot duration and no
	// end time was given.
	ReservationDurationMinutes *int `json:"reservationDurationMinutes,omitempty" binding:"omitempty,gt=0"`
}

func (r CreateReservationRequest) ToParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		AmenityID:       r.AmenityID,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DurationMinutes: r.ReservationDurationMinutes,
	}
}
