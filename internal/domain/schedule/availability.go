package schedule

import (
	"time"

	"condo-reserve/internal/domain/amenity"
	"condo-reserve/internal/domain/reservation"
	"condo-reserve/internal/pkg/timex"

	"github.com/google/uuid"
)

// Booking is the slice of a reservation the calculator needs: who holds it,
// when, and whether it still counts.
type Booking struct {
	UserID uuid.UUID
	Slot   reservation.TimeSlot
	Status reservation.Status
}

// Request is one availability computation over the half-open date range
// [From, To). Bookings must cover every reservation intersecting the range;
// cancelled rows may be included, they are ignored. UserID is optional and
// only drives the advisory per-date limit flags.
type Request struct {
	Amenity  *amenity.Amenity
	Rules    amenity.RuleSet
	Bookings []Booking
	From     timex.Date
	To       timex.Date
	Now      time.Time
	UserID   *uuid.UUID
}

// Result maps each date with at least one bookable slot to the ascending
// slot start times. UserLimitByDate marks dates where the requesting user
// already reached the rule's daily quota; it never removes slots, so the UI
// can show them disabled instead of hidden.
type Result struct {
	SlotsByDate     map[timex.Date][]timex.TimeOfDay
	UserLimitByDate map[timex.Date]bool
}

// ComputeAvailability applies, per date: rule resolution, slot generation,
// the lead-time window and the capacity filter. A non-reservable amenity
// short-circuits the whole range.
func ComputeAvailability(req Request) Result {
	result := Result{
		SlotsByDate:     make(map[timex.Date][]timex.TimeOfDay),
		UserLimitByDate: make(map[timex.Date]bool),
	}
	if !req.Amenity.IsReservable() {
		return result
	}

	loc := req.Amenity.Location()
	for date := req.From; date.Before(req.To); date = date.AddDays(1) {
		rule, ok := req.Rules.RuleFor(date)
		if !ok {
			continue
		}

		var starts []timex.TimeOfDay
		for _, slot := range GenerateSlots(rule) {
			slotStart := date.At(slot.Start, loc)
			slotEnd := date.At(slot.End, loc)

			if !rule.WithinLeadTime(req.Now, slotStart, loc) {
				continue
			}
			if countOverlapping(req.Bookings, slotStart, slotEnd) >= req.Amenity.MaxCapacity() {
				continue
			}
			starts = append(starts, slot.Start)
		}
		if len(starts) > 0 {
			result.SlotsByDate[date] = starts
		}

		if req.UserID != nil && rule.HasUserDailyLimit() {
			if countUserOnDate(req.Bookings, *req.UserID, date, loc) >= rule.ReservationsPerUserDay() {
				result.UserLimitByDate[date] = true
			}
		}
	}
	return result
}

func countOverlapping(bookings []Booking, start, end time.Time) int {
	n := 0
	for _, b := range bookings {
		if !b.Status.CountsTowardCapacity() {
			continue
		}
		if b.Slot.Start().Before(end) && start.Before(b.Slot.End()) {
			n++
		}
	}
	return n
}

func countUserOnDate(bookings []Booking, userID uuid.UUID, date timex.Date, loc *time.Location) int {
	n := 0
	for _, b := range bookings {
		if b.UserID != userID || !b.Status.CountsTowardCapacity() {
			continue
		}
		if timex.DateOf(b.Slot.Start(), loc) == date {
			n++
		}
	}
	return n
}
