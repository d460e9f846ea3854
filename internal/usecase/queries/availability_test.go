//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"condo-reserve/internal/infra"
	"condo-reserve/internal/pkg/clock"
	"condo-reserve/internal/pkg/errs"
	"condo-reserve/internal/pkg/timex"
	"condo-reserve/internal/usecase/queries"
	"condo-reserve/internal/usecase/shared"
	"condo-reserve/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduleReads struct {
	snapshot *shared.ScheduleSnapshot
	err      error

	gotFrom time.Time
	gotTo   time.Time
}

func (f *fakeScheduleReads) AmenitySchedule(_ context.Context, _, _ uuid.UUID, from, to time.Time) (*shared.ScheduleSnapshot, error) {
	f.gotFrom, f.gotTo = from, to
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

func TestAvailabilityForAmenity(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// Monday 2025-06-02.
	monday := timex.NewDate(2025, 6, 2)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, loc)

	newFixture := func(t *testing.T) (*fakeScheduleReads, queries.AvailabilityQueries, uuid.UUID, uuid.UUID) {
		t.Helper()
		amenityBuilder := builder.NewAmenityBuilder().WithCapacity(1)
		ruleBuilder := builder.NewRuleBuilder().
			WithDay(time.Monday).
			WithHours("09:00", "12:00").
			WithSlotDuration(60).
			WithLeadTime(0, 30)
		ruleBuilder.AmenityID = amenityBuilder.ID

		reads := &fakeScheduleReads{
			snapshot: &shared.ScheduleSnapshot{
				Amenity: *amenityBuilder.BuildSnapshot(),
				Rules:   []shared.RuleSnapshot{ruleBuilder.BuildSnapshot()},
			},
		}
		q := queries.NewAvailabilityQueries(reads, clock.NewMockClock(now))
		return reads, q, amenityBuilder.CondoID, amenityBuilder.ID
	}

	window := queries.Window{StartDate: &monday, Days: 7}

	t.Run("success: slots keyed by date and hour strings", func(t *testing.T) {
		_, q, condoID, amenityID := newFixture(t)

		view, err := q.ForAmenity(context.Background(), condoID, amenityID, window, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00", "11:00"}, view.Availability["2025-06-02"])
		assert.Len(t, view.Availability, 1)
		assert.Empty(t, view.UserLimitByDate)
	})

	t.Run("success: ongoing booking hides its slot", func(t *testing.T) {
		reads, q, condoID, amenityID := newFixture(t)
		reads.snapshot.Bookings = []shared.BookingSnapshot{
			{
				ID:        uuid.New(),
				AmenityID: amenityID,
				UserID:    uuid.New(),
				StartTime: monday.At(mustParseTod(t, "10:00"), loc),
				EndTime:   monday.At(mustParseTod(t, "11:00"), loc),
				Status:    "confirmed",
			},
		}

		view, err := q.ForAmenity(context.Background(), condoID, amenityID, window, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "11:00"}, view.Availability["2025-06-02"])
	})

	t.Run("success: snapshot read range is widened past the window", func(t *testing.T) {
		reads, q, condoID, amenityID := newFixture(t)

		_, err := q.ForAmenity(context.Background(), condoID, amenityID, window, nil)
		require.NoError(t, err)
		assert.True(t, reads.gotFrom.Before(monday.Midnight(time.UTC)))
		assert.True(t, reads.gotTo.After(monday.AddDays(7).Midnight(time.UTC)))
	})

	t.Run("error: unknown amenity", func(t *testing.T) {
		reads, q, condoID, amenityID := newFixture(t)
		reads.err = infra.WrapRepoErr("amenity not found", nil, infra.KindNotFound)

		_, err := q.ForAmenity(context.Background(), condoID, amenityID, window, nil)
		assert.True(t, errs.Is(err, errs.ErrAmenityNotFound), "got %v", err)
	})

	t.Run("error: db failure", func(t *testing.T) {
		reads, q, condoID, amenityID := newFixture(t)
		reads.err = infra.WrapRepoErr("connection lost", errs.New("broken"))

		_, err := q.ForAmenity(context.Background(), condoID, amenityID, window, nil)
		assert.True(t, errs.Is(err, errs.ErrPersistence), "got %v", err)
	})

	t.Run("error: window validation", func(t *testing.T) {
		_, q, condoID, amenityID := newFixture(t)

		from := monday.Midnight(loc)
		backwards := from.Add(-time.Hour)
		tooWide := queries.Window{StartDate: &monday, Days: queries.MaxWindowDays + 1}

		cases := []struct {
			name   string
			window queries.Window
		}{
			{name: "empty window", window: queries.Window{}},
			{name: "zero days", window: queries.Window{StartDate: &monday}},
			{name: "too many days", window: tooWide},
			{name: "to before from", window: queries.Window{From: &from, To: &backwards}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := q.ForAmenity(context.Background(), condoID, amenityID, tc.window, nil)
				assert.True(t, errs.Is(err, errs.ErrValidation), "got %v", err)
			})
		}
	})

	t.Run("success: instant window covers condo-local days at the edges", func(t *testing.T) {
		_, q, condoID, amenityID := newFixture(t)

		// 2025-06-03 01:00 UTC is still Monday 22:00 in Sao Paulo, so the
		// Monday rule must be part of the answer.
		from := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
		to := time.Date(2025, 6, 3, 1, 0, 0, 0, time.UTC)

		view, err := q.ForAmenity(context.Background(), condoID, amenityID, queries.Window{From: &from, To: &to}, nil)
		require.NoError(t, err)
		assert.Contains(t, view.Availability, "2025-06-02")
	})
}

func mustParseTod(t *testing.T, s string) timex.TimeOfDay {
	t.Helper()
	tod, err := timex.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}
