// Package shared holds the persistence ports the use cases consume and the
// flat snapshot types crossing that boundary. Write-side snapshots keep the
// use cases free of driver types.
package shared

import (
	"context"
	"time"

	"condo-reserve/internal/domain/reservation"
	"condo-reserve/internal/pkg/timex"

	"github.com/google/uuid"
)

type AmenitySnapshot struct {
	ID              uuid.UUID
	CondoID         uuid.UUID
	Name            string
	MaxCapacity     int
	IsReservable    bool
	RequiresPayment bool
	Timezone        string
}

type RuleSnapshot struct {
	ID                     uuid.UUID
	AmenityID              uuid.UUID
	DayOfWeek              int
	OpenTime               string
	CloseTime              string
	SlotDurationMinutes    int
	MinLeadTimeHours       int
	MaxLeadTimeDays        int
	ReservationsPerUserDay int
}

type BookingSnapshot struct {
	ID        uuid.UUID
	AmenityID uuid.UUID
	UserID    uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Status    string
}

// ScheduleSnapshot is one consistent read of everything availability needs.
type ScheduleSnapshot struct {
	Amenity  AmenitySnapshot
	Rules    []RuleSnapshot
	Bookings []BookingSnapshot
}

// AmenityReads serves single-row amenity lookups for the booking path and
// the amenity detail view.
type AmenityReads interface {
	AmenityByID(ctx context.Context, condoID, amenityID uuid.UUID) (*AmenitySnapshot, error)
	RulesByAmenity(ctx context.Context, condoID, amenityID uuid.UUID) ([]RuleSnapshot, error)
}

// ScheduleReads loads amenity, rules and the reservations intersecting
// [from, to) as a single repeatable-read snapshot, so availability never
// sees rules and reservations from different points in time.
type ScheduleReads interface {
	AmenitySchedule(ctx context.Context, condoID, amenityID uuid.UUID, from, to time.Time) (*ScheduleSnapshot, error)
}

// BookingTx is the slice of the repository visible inside the booking
// transaction, after the per-(amenity, day) lock is held.
type BookingTx interface {
	DayBookings(ctx context.Context, condoID, amenityID uuid.UUID, dayStart, dayEnd time.Time) ([]BookingSnapshot, error)
	Insert(ctx context.Context, res *reservation.Reservation) (*InsertedReservation, error)
}

type InsertedReservation struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingUnitOfWork runs fn in one transaction holding an advisory lock
// keyed by (amenityID, day). Two concurrent bookings for the same amenity
// and calendar day serialize on that lock, which makes the recount-then-
// insert sequence inside fn linearizable.
type BookingUnitOfWork interface {
	WithinAmenityDay(ctx context.Context, amenityID uuid.UUID, day timex.Date, fn func(ctx context.Context, tx BookingTx) error) error
}
