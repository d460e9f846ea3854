package queries

import (
	"context"
	"time"

	"condo-reserve/internal/domain/schedule"
	"condo-reserve/internal/infra"
	"condo-reserve/internal/pkg/clock"
	"condo-reserve/internal/pkg/errs"
	"condo-reserve/internal/pkg/timex"
	"condo-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

// MaxWindowDays bounds one availability query; the dashboard calendar never
// asks for more than a month at a time.
const MaxWindowDays = 62

// Window is the requested availability range: either a start date plus a
// day count, or two instants that get widened to whole condo-local days.
type Window struct {
	StartDate *timex.Date
	Days      int
	From      *time.Time
	To        *time.Time
}

type AvailabilityQueries interface {
	ForAmenity(ctx context.Context, condoID, amenityID uuid.UUID, window Window, userID *uuid.UUID) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	reads shared.ScheduleReads
	clock clock.Clock
}

func NewAvailabilityQueries(reads shared.ScheduleReads, clock clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{reads: reads, clock: clock}
}

func (q *availabilityQueriesImpl) ForAmenity(
	ctx context.Context,
	condoID, amenityID uuid.UUID,
	window Window,
	userID *uuid.UUID,
) (*AvailabilityView, error) {
	now := q.clock.Now()

	// A rough instant range is enough for the snapshot read; exact date
	// bounds need the condo zone, which arrives with the snapshot.
	readFrom, readTo, err := window.instantBounds()
	if err != nil {
		return nil, err
	}

	snap, err := q.reads.AmenitySchedule(ctx, condoID, amenityID, readFrom, readTo)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrAmenityNotFound)
		}
		return nil, errs.Mark(err, errs.ErrPersistence)
	}

	am, err := shared.ToDomainAmenity(&snap.Amenity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	rules, err := shared.ToDomainRules(snap.Rules)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	bookings, err := shared.ToScheduleBookings(snap.Bookings)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}

	from, to, err := window.dateBounds(am.Location())
	if err != nil {
		return nil, err
	}

	result := schedule.ComputeAvailability(schedule.Request{
		Amenity:  am,
		Rules:    rules,
		Bookings: bookings,
		From:     from,
		To:       to,
		Now:      now,
		UserID:   userID,
	})

	return toAvailabilityView(result), nil
}

func (w Window) instantBounds() (time.Time, time.Time, error) {
	if w.From != nil && w.To != nil {
		if !w.To.After(*w.From) {
			return time.Time{}, time.Time{}, errs.Mark(errs.New("availability window is empty"), errs.ErrValidation)
		}
		// Widen by a day on each side so day-spanning reservations at the
		// edges still land in the snapshot.
		return w.From.Add(-24 * time.Hour), w.To.Add(24 * time.Hour), nil
	}
	if w.StartDate == nil || w.Days <= 0 || w.Days > MaxWindowDays {
		return time.Time{}, time.Time{}, errs.Mark(errs.New("availability window requires a start date and a day count"), errs.ErrValidation)
	}
	start := w.StartDate.Midnight(time.UTC).Add(-24 * time.Hour)
	end := w.StartDate.AddDays(w.Days).Midnight(time.UTC).Add(24 * time.Hour)
	return start, end, nil
}

func (w Window) dateBounds(loc *time.Location) (timex.Date, timex.Date, error) {
	if w.From != nil && w.To != nil {
		from := timex.DateOf(*w.From, loc)
		to := timex.DateOf(*w.To, loc).AddDays(1)
		if timex.DaysBetween(from, to) > MaxWindowDays {
			return timex.Date{}, timex.Date{}, errs.Mark(errs.New("availability window too wide"), errs.ErrValidation)
		}
		return from, to, nil
	}
	return *w.StartDate, w.StartDate.AddDays(w.Days), nil
}

func toAvailabilityView(result schedule.Result) *AvailabilityView {
	view := &AvailabilityView{
		Availability:    make(map[string][]string, len(result.SlotsByDate)),
		UserLimitByDate: make(map[string]bool, len(result.UserLimitByDate)),
	}
	for date, starts := range result.SlotsByDate {
		times := make([]string, len(starts))
		for i, s := range starts {
			times[i] = s.String()
		}
		view.Availability[date.String()] = times
	}
	for date, limited := range result.UserLimitByDate {
		view.UserLimitByDate[date.String()] = limited
	}
	return view
}
