//go:build unit || e2e

package builder

import (
	"time"

	reqdto "condo-reserve/internal/handler/dto/request"
	"condo-reserve/internal/usecase/queries"
	"condo-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID              uuid.UUID
	CondoID         uuid.UUID
	AmenityID       uuid.UUID
	AmenityName     string
	UserID          uuid.UUID
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	start := now.Add(24 * time.Hour).Truncate(time.Hour)
	return &ReservationBuilder{
		ID:              uuid.New(),
		CondoID:         uuid.New(),
		AmenityID:       uuid.New(),
		AmenityName:     "Party Room",
		UserID:          uuid.New(),
		StartTime:       start,
		EndTime:         start.Add(time.Hour),
		DurationMinutes: 60,
		Status:          "confirmed",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	b.UserID = id
	return b
}

func (b *ReservationBuilder) WithSlot(start, end time.Time) *ReservationBuilder {
	b.StartTime = start
	b.EndTime = end
	b.DurationMinutes = int(end.Sub(start) / time.Minute)
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		AmenityID: b.AmenityID,
		StartTime: b.StartTime,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:              b.ID,
		CondoID:         b.CondoID,
		AmenityID:       b.AmenityID,
		AmenityName:     b.AmenityName,
		UserID:          b.UserID,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		DurationMinutes: b.DurationMinutes,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildBookingSnapshot() shared.BookingSnapshot {
	return shared.BookingSnapshot{
		ID:        b.ID,
		AmenityID: b.AmenityID,
		UserID:    b.UserID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    b.Status,
	}
}
