package commands

import (
	"context"
	"time"

	"condo-reserve/internal/domain/amenity"
	"condo-reserve/internal/domain/reservation"
	"condo-reserve/internal/infra"
	"condo-reserve/internal/pkg/clock"
	"condo-reserve/internal/pkg/errs"
	"condo-reserve/internal/pkg/timex"
	"condo-reserve/internal/usecase/queries"
	"condo-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

// defaultDurationMinutes applies only when neither the rule nor the caller
// fixes a duration.
const defaultDurationMinutes = 60

type CreateReservationParams struct {
	AmenityID       uuid.UUID
	StartTime       time.Time
	EndTime         *time.Time
	DurationMinutes *int
}

type BookingCommands interface {
	CreateReservation(ctx context.Context, condoID, userID uuid.UUID, params CreateReservationParams) (*queries.ReservationView, error)
}

type bookingCommandsImpl struct {
	amenityReads shared.AmenityReads
	uow          shared.BookingUnitOfWork
	clock        clock.Clock
}

func NewBookingCommands(
	amenityReads shared.AmenityReads,
	uow shared.BookingUnitOfWork,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		amenityReads: amenityReads,
		uow:          uow,
		clock:        clock,
	}
}

// CreateReservation admits one candidate booking. Checks run in a fixed
// order and short-circuit; nothing is written until every check inside the
// locked transaction has passed, so no failure path leaves a row behind.
func (c *bookingCommandsImpl) CreateReservation(
	ctx context.Context,
	condoID, userID uuid.UUID,
	params CreateReservationParams,
) (*queries.ReservationView, error) {
	am, rules, err := c.loadAmenity(ctx, condoID, params.AmenityID)
	if err != nil {
		return nil, err
	}

	if !am.IsReservable() {
		return nil, errs.ErrAmenityNotReservable
	}

	loc := am.Location()
	day := timex.DateOf(params.StartTime, loc)

	rule, ok := rules.RuleFor(day)
	if !ok {
		return nil, errs.ErrNoRuleForDay
	}

	slot, err := resolveSlot(params, rule)
	if err != nil {
		return nil, err
	}

	startTod := timex.TimeOfDayOf(slot.Start(), loc)
	endTod := startTod.AddMinutes(int(slot.Duration() / time.Minute))
	if !rule.ContainsHours(startTod, endTod) {
		return nil, errs.ErrOutsideHours
	}

	if !rule.WithinLeadTime(c.clock.Now(), slot.Start(), loc) {
		return nil, errs.ErrLeadTimeViolation
	}

	res := reservation.NewReservation(condoID, am.ID(), userID, slot, am.RequiresPayment())

	var inserted *shared.InsertedReservation
	err = c.uow.WithinAmenityDay(ctx, am.ID(), day, func(ctx context.Context, tx shared.BookingTx) error {
		dayStart := day.Midnight(loc)
		dayEnd := day.AddDays(1).Midnight(loc)

		bookings, err := tx.DayBookings(ctx, condoID, am.ID(), dayStart, dayEnd)
		if err != nil {
			return errs.Mark(err, errs.ErrPersistence)
		}

		if countOverlapping(bookings, slot) >= am.MaxCapacity() {
			return errs.ErrSlotFull
		}

		if rule.HasUserDailyLimit() {
			if countUserOnDay(bookings, userID, day, loc) >= rule.ReservationsPerUserDay() {
				return errs.ErrDailyLimitReached
			}
		}

		inserted, err = tx.Insert(ctx, res)
		if err != nil {
			// A conflict reported by the store surfaces as a full slot,
			// never as a raw persistence failure.
			if infra.IsKind(err, infra.KindConflict) {
				return errs.ErrSlotFull
			}
			return errs.Mark(err, errs.ErrPersistence)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &queries.ReservationView{
		ID:              inserted.ID,
		CondoID:         condoID,
		AmenityID:       am.ID(),
		AmenityName:     am.Name(),
		UserID:          userID,
		StartTime:       slot.Start(),
		EndTime:         slot.End(),
		DurationMinutes: res.DurationMinutes(),
		Status:          res.Status().String(),
		CreatedAt:       inserted.CreatedAt,
		UpdatedAt:       inserted.UpdatedAt,
	}, nil
}

func (c *bookingCommandsImpl) loadAmenity(
	ctx context.Context,
	condoID, amenityID uuid.UUID,
) (*amenity.Amenity, amenity.RuleSet, error) {
	snap, err := c.amenityReads.AmenityByID(ctx, condoID, amenityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, amenity.RuleSet{}, errs.Mark(err, errs.ErrAmenityNotFound)
		}
		return nil, amenity.RuleSet{}, errs.Mark(err, errs.ErrPersistence)
	}

	am, err := shared.ToDomainAmenity(snap)
	if err != nil {
		return nil, amenity.RuleSet{}, errs.Mark(err, errs.ErrPersistence)
	}

	ruleSnaps, err := c.amenityReads.RulesByAmenity(ctx, condoID, amenityID)
	if err != nil {
		return nil, amenity.RuleSet{}, errs.Mark(err, errs.ErrPersistence)
	}
	rules, err := shared.ToDomainRules(ruleSnaps)
	if err != nil {
		return nil, amenity.RuleSet{}, errs.Mark(err, errs.ErrPersistence)
	}

	return am, rules, nil
}

// resolveSlot fixes the candidate's end: an explicit end time wins, then the
// rule's slot duration, then the requested duration, then the default.
func resolveSlot(params CreateReservationParams, rule amenity.Rule) (reservation.TimeSlot, error) {
	end := params.StartTime.Add(time.Duration(defaultDurationMinutes) * time.Minute)
	switch {
	case params.EndTime != nil:
		end = *params.EndTime
	case rule.SlotDurationMinutes() > 0:
		end = params.StartTime.Add(time.Duration(rule.SlotDurationMinutes()) * time.Minute)
	case params.DurationMinutes != nil && *params.DurationMinutes > 0:
		end = params.StartTime.Add(time.Duration(*params.DurationMinutes) * time.Minute)
	}

	slot, err := reservation.NewTimeSlot(params.StartTime, end)
	if err != nil {
		return reservation.TimeSlot{}, errs.Mark(err, errs.ErrInvalidRange)
	}
	return slot, nil
}

func countOverlapping(bookings []shared.BookingSnapshot, slot reservation.TimeSlot) int {
	n := 0
	for _, b := range bookings {
		if !reservation.Status(b.Status).CountsTowardCapacity() {
			continue
		}
		if b.StartTime.Before(slot.End()) && slot.Start().Before(b.EndTime) {
			n++
		}
	}
	return n
}

func countUserOnDay(bookings []shared.BookingSnapshot, userID uuid.UUID, day timex.Date, loc *time.Location) int {
	n := 0
	for _, b := range bookings {
		if b.UserID != userID || !reservation.Status(b.Status).CountsTowardCapacity() {
			continue
		}
		if timex.DateOf(b.StartTime, loc) == day {
			n++
		}
	}
	return n
}
