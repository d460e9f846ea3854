//go:build unit

package timex_test

import (
	"testing"
	"time"

	"condo-reserve/internal/pkg/timex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOfDay(t *testing.T) {
	t.Run("new rejects out-of-range values", func(t *testing.T) {
		cases := []struct {
			name   string
			hour   int
			minute int
			ok     bool
		}{
			{name: "midnight", hour: 0, minute: 0, ok: true},
			{name: "end of day", hour: 23, minute: 59, ok: true},
			{name: "negative hour", hour: -1, minute: 0, ok: false},
			{name: "hour 24", hour: 24, minute: 0, ok: false},
			{name: "minute 60", hour: 10, minute: 60, ok: false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := timex.NewTimeOfDay(tc.hour, tc.minute)
				if tc.ok {
					assert.NoError(t, err)
				} else {
					assert.Error(t, err)
				}
			})
		}
	})

	t.Run("parse accepts HH:MM and HH:MM:SS", func(t *testing.T) {
		tod, err := timex.ParseTimeOfDay("09:30")
		require.NoError(t, err)
		assert.Equal(t, "09:30", tod.String())

		tod, err = timex.ParseTimeOfDay("09:30:00")
		require.NoError(t, err)
		assert.Equal(t, "09:30", tod.String())

		_, err = timex.ParseTimeOfDay("9h30")
		assert.Error(t, err)
	})

	t.Run("ordering", func(t *testing.T) {
		a, _ := timex.NewTimeOfDay(9, 0)
		b, _ := timex.NewTimeOfDay(12, 0)
		assert.True(t, a.Before(b))
		assert.True(t, b.After(a))
		assert.False(t, a.Before(a))
		assert.False(t, a.After(a))
	})

	t.Run("add minutes may pass midnight", func(t *testing.T) {
		a, _ := timex.NewTimeOfDay(23, 30)
		end := a.AddMinutes(60)
		close, _ := timex.NewTimeOfDay(23, 59)
		// The overflowed value compares after any same-day close time, so a
		// slot spilling into the next day never fits opening hours.
		assert.True(t, end.After(close))
	})
}

func TestDate(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	t.Run("date of instant uses the given zone", func(t *testing.T) {
		// 2025-06-03 01:00 UTC is still 2025-06-02 in Sao Paulo (UTC-3).
		instant := time.Date(2025, 6, 3, 1, 0, 0, 0, time.UTC)
		assert.Equal(t, timex.NewDate(2025, 6, 2), timex.DateOf(instant, loc))
		assert.Equal(t, timex.NewDate(2025, 6, 3), timex.DateOf(instant, time.UTC))
	})

	t.Run("at composes date and time of day", func(t *testing.T) {
		d := timex.NewDate(2025, 6, 2)
		tod, _ := timex.NewTimeOfDay(10, 0)
		got := d.At(tod, loc)
		assert.Equal(t, time.Date(2025, 6, 2, 10, 0, 0, 0, loc), got)
	})

	t.Run("add days crosses month boundaries", func(t *testing.T) {
		d := timex.NewDate(2025, 1, 31)
		assert.Equal(t, timex.NewDate(2025, 2, 1), d.AddDays(1))
	})

	t.Run("weekday", func(t *testing.T) {
		// 2025-06-02 is a Monday.
		assert.Equal(t, time.Monday, timex.NewDate(2025, 6, 2).Weekday())
	})

	t.Run("days between", func(t *testing.T) {
		a := timex.NewDate(2025, 6, 2)
		assert.Equal(t, 0, timex.DaysBetween(a, a))
		assert.Equal(t, 30, timex.DaysBetween(a, a.AddDays(30)))
		assert.Equal(t, -1, timex.DaysBetween(a, a.AddDays(-1)))
	})

	t.Run("parse", func(t *testing.T) {
		d, err := timex.ParseDate("2025-06-02")
		require.NoError(t, err)
		assert.Equal(t, timex.NewDate(2025, 6, 2), d)

		_, err = timex.ParseDate("02/06/2025")
		assert.Error(t, err)
	})
}

func TestFloorHours(t *testing.T) {
	cases := []struct {
		name string
		d    time.Duration
		want int
	}{
		{name: "exact hours", d: 2 * time.Hour, want: 2},
		{name: "fraction floors down", d: 2*time.Hour + 59*time.Minute, want: 2},
		{name: "just under threshold", d: time.Hour + 59*time.Minute, want: 1},
		{name: "zero", d: 0, want: 0},
		{name: "sub hour", d: 30 * time.Minute, want: 0},
		{name: "negative floors away from zero", d: -30 * time.Minute, want: -1},
		{name: "negative exact", d: -1 * time.Hour, want: -1},
		{name: "negative fraction", d: -90 * time.Minute, want: -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, timex.FloorHours(tc.d))
		})
	}
}
