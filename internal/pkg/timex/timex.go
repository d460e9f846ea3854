// Package timex models wall-clock values the booking engine reasons about:
// a calendar Date and a TimeOfDay, both distinct from instants. Every
// instant<->wall-clock conversion goes through one condo-local zone here so
// the same comparison never mixes UTC and local time.
package timex

import (
	"fmt"
	"time"
)

// TimeOfDay is a zone-less wall-clock time, minutes precision.
type TimeOfDay struct {
	hour   int
	minute int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %02d:%02d", hour, minute)
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

// ParseTimeOfDay accepts "HH:MM" and "HH:MM:SS" (seconds are dropped,
// matching how time columns come back from postgres).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if len(s) >= 8 {
		var sec int
		if _, err := fmt.Sscanf(s, "%02d:%02d:%02d", &h, &m, &sec); err != nil {
			return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
		}
	} else {
		if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
			return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
		}
	}
	return NewTimeOfDay(h, m)
}

func TimeOfDayOf(t time.Time, loc *time.Location) TimeOfDay {
	lt := t.In(loc)
	return TimeOfDay{hour: lt.Hour(), minute: lt.Minute()}
}

func (t TimeOfDay) Hour() int    { return t.hour }
func (t TimeOfDay) Minute() int  { return t.minute }
func (t TimeOfDay) Minutes() int { return t.hour*60 + t.minute }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes may step past midnight; the result is reported as minutes from
// the same day's midnight so close-time comparisons (e.g. 23:30+60 > 24:00)
// stay meaningful. Accessors on an overflowed value are not used.
func (t TimeOfDay) AddMinutes(n int) TimeOfDay {
	total := t.Minutes() + n
	return TimeOfDay{hour: total / 60, minute: total % 60}
}

// Date is a calendar day, meaningful only relative to a zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func DateOf(t time.Time, loc *time.Location) Date {
	lt := t.In(loc)
	return Date{Year: lt.Year(), Month: lt.Month(), Day: lt.Day()}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// At pins a wall-clock time on this date to an instant in loc.
func (d Date) At(tod TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, tod.hour, tod.minute, 0, 0, loc)
}

// Midnight is the start of the day in loc, the lower bound of the day's
// half-open reservation window.
func (d Date) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// DaysBetween returns to minus from in whole calendar days.
func DaysBetween(from, to Date) int {
	a := time.Date(from.Year, from.Month, from.Day, 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year, to.Month, to.Day, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

// FloorHours is the whole-hour floor of d, negative durations included
// (-30m floors to -1, not 0). Lead-time checks depend on this rounding.
func FloorHours(d time.Duration) int {
	h := d / time.Hour
	if d%time.Hour != 0 && d < 0 {
		h--
	}
	return int(h)
}
