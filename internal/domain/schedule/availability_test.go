//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"condo-reserve/internal/domain/amenity"
	"condo-reserve/internal/domain/reservation"
	"condo-reserve/internal/domain/schedule"
	"condo-reserve/internal/pkg/timex"
	"condo-reserve/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2025-06-02 in the condo's zone anchors every case below.
var monday = timex.NewDate(2025, 6, 2)

type availabilityFixture struct {
	amenity *amenity.Amenity
	rules   amenity.RuleSet
	loc     *time.Location
}

func newAvailabilityFixture(t *testing.T, capacity int, ruleBuilders ...*builder.RuleBuilder) availabilityFixture {
	t.Helper()

	am, err := builder.NewAmenityBuilder().WithCapacity(capacity).BuildDomain()
	require.NoError(t, err)

	rules := make([]amenity.Rule, 0, len(ruleBuilders))
	for _, rb := range ruleBuilders {
		rule, err := rb.BuildDomain()
		require.NoError(t, err)
		rules = append(rules, rule)
	}

	return availabilityFixture{
		amenity: am,
		rules:   amenity.NewRuleSet(rules),
		loc:     am.Location(),
	}
}

func (f availabilityFixture) booking(userID uuid.UUID, date timex.Date, start, end string, status reservation.Status) schedule.Booking {
	st, _ := timex.ParseTimeOfDay(start)
	en, _ := timex.ParseTimeOfDay(end)
	slot, err := reservation.NewTimeSlot(date.At(st, f.loc), date.At(en, f.loc))
	if err != nil {
		panic(err)
	}
	return schedule.Booking{UserID: userID, Slot: slot, Status: status}
}

func slotStrings(tods []timex.TimeOfDay) []string {
	if len(tods) == 0 {
		return nil
	}
	out := make([]string, len(tods))
	for i, v := range tods {
		out[i] = v.String()
	}
	return out
}

func TestComputeAvailability(t *testing.T) {
	t.Run("lead time hides near slots, capacity hides taken ones", func(t *testing.T) {
		// Monday rule 09:00-12:00, 60-minute slots, booking requires two
		// whole hours of notice. At 08:00 the same morning only 10:00 and
		// 11:00 remain; a third party then books 10:00, leaving 11:00.
		f := newAvailabilityFixture(t, 1,
			builder.NewRuleBuilder().
				WithDay(time.Monday).
				WithHours("09:00", "12:00").
				WithSlotDuration(60).
				WithLeadTime(2, 30),
		)
		now := monday.At(mustTod(t, "08:00"), f.loc)

		result := schedule.ComputeAvailability(schedule.Request{
			Amenity: f.amenity,
			Rules:   f.rules,
			From:    monday,
			To:      monday.AddDays(1),
			Now:     now,
		})
		assert.Equal(t, []string{"10:00", "11:00"}, slotStrings(result.SlotsByDate[monday]))

		other := uuid.New()
		result = schedule.ComputeAvailability(schedule.Request{
			Amenity:  f.amenity,
			Rules:    f.rules,
			Bookings: []schedule.Booking{f.booking(other, monday, "10:00", "11:00", reservation.StatusConfirmed)},
			From:     monday,
			To:       monday.AddDays(1),
			Now:      now,
		})
		assert.Equal(t, []string{"11:00"}, slotStrings(result.SlotsByDate[monday]))
	})

	t.Run("cancelled bookings free their slot", func(t *testing.T) {
		f := newAvailabilityFixture(t, 1,
			builder.NewRuleBuilder().WithDay(time.Monday).WithHours("09:00", "12:00").WithLeadTime(0, 30),
		)
		now := monday.AddDays(-1).At(mustTod(t, "12:00"), f.loc)

		result := schedule.ComputeAvailability(schedule.Request{
			Amenity:  f.amenity,
			Rules:    f.rules,
			Bookings: []schedule.Booking{f.booking(uuid.New(), monday, "10:00", "11:00", reservation.StatusCancelled)},
			From:     monday,
			To:       monday.AddDays(1),
			Now:      now,
		})
		assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slotStrings(result.SlotsByDate[monday]))
	})

	t.Run("pending bookings occupy capacity", func(t *testing.T) {
		f := newAvailabilityFixture(t, 1,
			builder.NewRuleBuilder().WithDay(time.Monday).WithHours("09:00", "12:00").WithLeadTime(0, 30),
		)
		now := monday.AddDays(-1).At(mustTod(t, "12:00"), f.loc)

		result := schedule.ComputeAvailability(schedule.Request{
			Amenity:  f.amenity,
			Rules:    f.rules,
			Bookings: []schedule.Booking{f.booking(uuid.New(), monday, "09:00", "10:00", reservation.StatusPending)},
			From:     monday,
			To:       monday.AddDays(1),
			Now:      now,
		})
		assert.Equal(t, []string{"10:00", "11:00"}, slotStrings(result.SlotsByDate[monday]))
	})

	t.Run("capacity above one keeps partially booked slots", func(t *testing.T) {
		f := newAvailabilityFixture(t, 2,
			builder.NewRuleBuilder().WithDay(time.Monday).WithHours("09:00", "11:00").WithLeadTime(0, 30),
		)
		now := monday.AddDays(-1).At(mustTod(t, "12:00"), f.loc)

		result := schedule.ComputeAvailability(schedule.Request{
			Amenity:  f.amenity,
			Rules:    f.rules,
			Bookings: []schedule.Booking{f.booking(uuid.New(), monday, "09:00", "10:00", reservation.StatusConfirmed)},
			From:     monday,
			To:       monday.AddDays(1),
			Now:      now,
		})
		assert.Equal(t, []string{"09:00", "10:00"}, slotStrings(result.SlotsByDate[monday]))
	})

	t.Run("days without rules or without free slots are omitted", func(t *testing.T) {
		f := newAvailabilityFixture(t, 1,
			builder.NewRuleBuilder().WithDay(time.Monday).WithHours("09:00", "10:00").WithLeadTime(0, 30),
		)
		now := monday.AddDays(-1).At(mustTod(t, "12:00"), f.loc)

		result := schedule.ComputeAvailability(schedule.Request{
			Amenity:  f.amenity,
			Rules:    f.rules,
			Bookings: []schedule.Booking{f.booking(uuid.New(), monday, "09:00", "10:00", reservation.StatusConfirmed)},
			From:     monday,
			To:       monday.AddDays(7),
			Now:      now,
		})
		// Monday's only slot is taken and no other weekday has a rule.
		assert.Empty(t, result.SlotsByDate)
	})

	t.Run("non-reservable amenity yields no slots at all", func(t *testing.T) {
		am, err := builder.NewAmenityBuilder().WithReservable(false).BuildDomain()
		require.NoError(t, err)
		rule, err := builder.NewRuleBuilder().WithDay(time.Monday).WithLeadTime(0, 30).BuildDomain()
		require.NoError(t, err)

		result := schedule.ComputeAvailability(schedule.Request{
			Amenity: am,
			Rules:   amenity.NewRuleSet([]amenity.Rule{rule}),
			From:    monday,
			To:      monday.AddDays(7),
			Now:     monday.AddDays(-1).Midnight(am.Location()),
		})
		assert.Empty(t, result.SlotsByDate)
		assert.Empty(t, result.UserLimitByDate)
	})

	t.Run("user daily limit flags but never hides", func(t *testing.T) {
		f := newAvailabilityFixture(t, 5,
			builder.NewRuleBuilder().
				WithDay(time.Monday).
				WithHours("09:00", "12:00").
				WithLeadTime(0, 30).
				WithUserDailyLimit(1),
		)
		now := monday.AddDays(-1).At(mustTod(t, "12:00"), f.loc)
		user := uuid.New()

		result := schedule.ComputeAvailability(schedule.Request{
			Amenity:  f.amenity,
			Rules:    f.rules,
			Bookings: []schedule.Booking{f.booking(user, monday, "09:00", "10:00", reservation.StatusConfirmed)},
			From:     monday,
			To:       monday.AddDays(1),
			Now:      now,
			UserID:   &user,
		})
		// Capacity 5: every slot stays offered even though the user is
		// already at their quota.
		assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slotStrings(result.SlotsByDate[monday]))
		assert.True(t, result.UserLimitByDate[monday])
	})

	t.Run("other users never trip the limit flag", func(t *testing.T) {
		f := newAvailabilityFixture(t, 5,
			builder.NewRuleBuilder().
				WithDay(time.Monday).
				WithHours("09:00", "12:00").
				WithLeadTime(0, 30).
				WithUserDailyLimit(1),
		)
		now := monday.AddDays(-1).At(mustTod(t, "12:00"), f.loc)
		user := uuid.New()

		result := schedule.ComputeAvailability(schedule.Request{
			Amenity:  f.amenity,
			Rules:    f.rules,
			Bookings: []schedule.Booking{f.booking(uuid.New(), monday, "09:00", "10:00", reservation.StatusConfirmed)},
			From:     monday,
			To:       monday.AddDays(1),
			Now:      now,
			UserID:   &user,
		})
		assert.False(t, result.UserLimitByDate[monday])
	})

	t.Run("raising capacity never removes slots", func(t *testing.T) {
		// The same booked morning computed at growing capacity: each step
		// may only reveal slots, never take them away.
		bookingsFor := func(f availabilityFixture) []schedule.Booking {
			return []schedule.Booking{
				f.booking(uuid.New(), monday, "09:00", "10:00", reservation.StatusConfirmed),
				f.booking(uuid.New(), monday, "09:00", "10:00", reservation.StatusConfirmed),
				f.booking(uuid.New(), monday, "10:00", "11:00", reservation.StatusConfirmed),
			}
		}

		prevCount := -1
		for capacity := 1; capacity <= 4; capacity++ {
			f := newAvailabilityFixture(t, capacity,
				builder.NewRuleBuilder().WithDay(time.Monday).WithHours("09:00", "12:00").WithLeadTime(0, 30),
			)
			result := schedule.ComputeAvailability(schedule.Request{
				Amenity:  f.amenity,
				Rules:    f.rules,
				Bookings: bookingsFor(f),
				From:     monday,
				To:       monday.AddDays(1),
				Now:      monday.AddDays(-1).At(mustTod(t, "12:00"), f.loc),
			})
			count := len(result.SlotsByDate[monday])
			assert.GreaterOrEqual(t, count, prevCount, "capacity %d", capacity)
			prevCount = count
		}
		// Two confirmed 09:00 bookings plus one at 10:00: capacity 4 must
		// have surfaced the whole morning again.
		assert.Equal(t, 3, prevCount)
	})

	t.Run("same input computes the same result", func(t *testing.T) {
		f := newAvailabilityFixture(t, 2,
			builder.NewRuleBuilder().WithDay(time.Monday).WithHours("09:00", "12:00").WithLeadTime(0, 30),
			builder.NewRuleBuilder().WithDay(time.Wednesday).WithHours("14:00", "18:00").WithSlotDuration(120).WithLeadTime(0, 30),
		)
		req := schedule.Request{
			Amenity: f.amenity,
			Rules:   f.rules,
			Bookings: []schedule.Booking{
				f.booking(uuid.New(), monday, "09:00", "10:00", reservation.StatusConfirmed),
				f.booking(uuid.New(), monday, "09:00", "10:00", reservation.StatusConfirmed),
			},
			From: monday,
			To:   monday.AddDays(7),
			Now:  monday.AddDays(-1).At(mustTod(t, "12:00"), f.loc),
		}

		first := schedule.ComputeAvailability(req)
		second := schedule.ComputeAvailability(req)
		if diff := cmp.Diff(first, second, cmp.AllowUnexported(timex.TimeOfDay{})); diff != "" {
			t.Errorf("availability not deterministic (-first +second):\n%s", diff)
		}
	})
}

func mustTod(t *testing.T, s string) timex.TimeOfDay {
	t.Helper()
	tod, err := timex.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}
