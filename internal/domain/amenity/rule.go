package amenity

import (
	"errors"
	"time"

	"condo-reserve/internal/pkg/timex"

	"github.com/google/uuid"
)

var (
	ErrInvalidOpeningHours = errors.New("close time must be after open time")
	ErrInvalidSlotDuration = errors.New("slot duration must be positive")
	ErrInvalidLeadTime     = errors.New("lead time bounds must not be negative")
)

// Rule is the recurring weekly availability template for one amenity on one
// weekday: opening hours, slot width, lead-time window and per-user quota.
type Rule struct {
	id                     uuid.UUID
	amenityID              uuid.UUID
	dayOfWeek              time.Weekday
	open                   timex.TimeOfDay
	close                  timex.TimeOfDay
	slotDurationMinutes    int
	minLeadTimeHours       int
	maxLeadTimeDays        int
	reservationsPerUserDay int
}

func NewRule(
	id, amenityID uuid.UUID,
	dayOfWeek time.Weekday,
	open, close timex.TimeOfDay,
	slotDurationMinutes, minLeadTimeHours, maxLeadTimeDays, reservationsPerUserDay int,
) (Rule, error) {
	if !open.Before(close) {
		return Rule{}, ErrInvalidOpeningHours
	}
	if slotDurationMinutes <= 0 {
		return Rule{}, ErrInvalidSlotDuration
	}
	if minLeadTimeHours < 0 || maxLeadTimeDays < 0 || reservationsPerUserDay < 0 {
		return Rule{}, ErrInvalidLeadTime
	}
	return Rule{
		id:                     id,
		amenityID:              amenityID,
		dayOfWeek:              dayOfWeek,
		open:                   open,
		close:                  close,
		slotDurationMinutes:    slotDurationMinutes,
		minLeadTimeHours:       minLeadTimeHours,
		maxLeadTimeDays:        maxLeadTimeDays,
		reservationsPerUserDay: reservationsPerUserDay,
	}, nil
}

func (r Rule) ID() uuid.UUID              { return r.id }
func (r Rule) AmenityID() uuid.UUID       { return r.amenityID }
func (r Rule) DayOfWeek() time.Weekday    { return r.dayOfWeek }
func (r Rule) Open() timex.TimeOfDay      { return r.open }
func (r Rule) Close() timex.TimeOfDay     { return r.close }
func (r Rule) SlotDurationMinutes() int   { return r.slotDurationMinutes }
func (r Rule) MinLeadTimeHours() int      { return r.minLeadTimeHours }
func (r Rule) MaxLeadTimeDays() int       { return r.maxLeadTimeDays }
func (r Rule) ReservationsPerUserDay() int { return r.reservationsPerUserDay }

// HasUserDailyLimit reports whether the per-user quota applies (0 = unlimited).
func (r Rule) HasUserDailyLimit() bool {
	return r.reservationsPerUserDay > 0
}

// ContainsHours reports whether the wall-clock span [start, end] lies within
// opening hours. end is compared inclusively: a slot ending exactly at close
// time is allowed.
func (r Rule) ContainsHours(start, end timex.TimeOfDay) bool {
	return !start.Before(r.open) && !end.After(r.close)
}

// WithinLeadTime applies both bounds of the lead-time window in loc:
// at least minLeadTimeHours whole hours (floored) between now and start, and
// at most maxLeadTimeDays calendar days between now's day and start's day.
func (r Rule) WithinLeadTime(now, start time.Time, loc *time.Location) bool {
	if timex.FloorHours(start.Sub(now)) < r.minLeadTimeHours {
		return false
	}
	return timex.DaysBetween(timex.DateOf(now, loc), timex.DateOf(start, loc)) <= r.maxLeadTimeDays
}

// RuleSet holds an amenity's weekly rules in storage order.
type RuleSet struct {
	rules []Rule
}

func NewRuleSet(rules []Rule) RuleSet {
	return RuleSet{rules: rules}
}

// RuleFor resolves the single applicable rule for a calendar date. When the
// source data carries more than one rule for a weekday the last one in input
// order wins; the schema does not promise uniqueness.
func (s RuleSet) RuleFor(date timex.Date) (Rule, bool) {
	var (
		found bool
		match Rule
	)
	for _, r := range s.rules {
		if r.dayOfWeek == date.Weekday() {
			match = r
			found = true
		}
	}
	return match, found
}

func (s RuleSet) Len() int {
	return len(s.rules)
}
