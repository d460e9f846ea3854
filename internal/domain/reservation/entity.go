package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is one resident's claim on one amenity slot. Created by the
// booking operation; every later transition happens outside the engine.
type Reservation struct {
	id              uuid.UUID
	condoID         uuid.UUID
	amenityID       uuid.UUID
	userID          uuid.UUID
	slot            TimeSlot
	durationMinutes int
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

// NewReservation builds the row the booking operation persists. The slot has
// already passed rule validation; this constructor only fixes identity,
// duration bookkeeping and the initial status.
func NewReservation(
	condoID, amenityID, userID uuid.UUID,
	slot TimeSlot,
	requiresPayment bool,
) *Reservation {
	return &Reservation{
		id:              uuid.New(),
		condoID:         condoID,
		amenityID:       amenityID,
		userID:          userID,
		slot:            slot,
		durationMinutes: int(slot.Duration() / time.Minute),
		status:          InitialStatus(requiresPayment),
	}
}

func Reconstruct(
	id, condoID, amenityID, userID uuid.UUID,
	slot TimeSlot,
	durationMinutes int,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		condoID:         condoID,
		amenityID:       amenityID,
		userID:          userID,
		slot:            slot,
		durationMinutes: durationMinutes,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) CondoID() uuid.UUID   { return r.condoID }
func (r *Reservation) AmenityID() uuid.UUID { return r.amenityID }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) Slot() TimeSlot       { return r.slot }
func (r *Reservation) DurationMinutes() int { return r.durationMinutes }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}
