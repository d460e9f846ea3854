//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"condo-reserve/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlot(t *testing.T) {
	base := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	t.Run("end must be after start", func(t *testing.T) {
		_, err := reservation.NewTimeSlot(base, base)
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)

		_, err = reservation.NewTimeSlot(base, base.Add(-time.Hour))
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)
	})

	t.Run("duration", func(t *testing.T) {
		slot, err := reservation.NewTimeSlot(base, base.Add(90*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 90*time.Minute, slot.Duration())
	})

	t.Run("overlap is half-open", func(t *testing.T) {
		slot := func(startH, endH int) reservation.TimeSlot {
			s, err := reservation.NewTimeSlot(
				time.Date(2025, 6, 2, startH, 0, 0, 0, time.UTC),
				time.Date(2025, 6, 2, endH, 0, 0, 0, time.UTC),
			)
			require.NoError(t, err)
			return s
		}

		cases := []struct {
			name string
			a, b reservation.TimeSlot
			want bool
		}{
			{name: "identical", a: slot(10, 11), b: slot(10, 11), want: true},
			{name: "partial overlap", a: slot(10, 12), b: slot(11, 13), want: true},
			{name: "contained", a: slot(10, 14), b: slot(11, 12), want: true},
			{name: "back to back does not overlap", a: slot(10, 11), b: slot(11, 12), want: false},
			{name: "disjoint", a: slot(8, 9), b: slot(10, 11), want: false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
				assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
			})
		}
	})
}

func TestStatus(t *testing.T) {
	t.Run("initial status follows payment requirement", func(t *testing.T) {
		assert.Equal(t, reservation.StatusPending, reservation.InitialStatus(true))
		assert.Equal(t, reservation.StatusConfirmed, reservation.InitialStatus(false))
	})

	t.Run("capacity counting", func(t *testing.T) {
		assert.True(t, reservation.StatusPending.CountsTowardCapacity())
		assert.True(t, reservation.StatusConfirmed.CountsTowardCapacity())
		assert.False(t, reservation.StatusCancelled.CountsTowardCapacity())
	})

	t.Run("validity", func(t *testing.T) {
		assert.True(t, reservation.StatusPending.IsValid())
		assert.True(t, reservation.StatusConfirmed.IsValid())
		assert.True(t, reservation.StatusCancelled.IsValid())
		assert.False(t, reservation.Status("expired").IsValid())
	})
}

func TestNewReservation(t *testing.T) {
	condoID := uuid.New()
	amenityID := uuid.New()
	userID := uuid.New()

	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	slot, err := reservation.NewTimeSlot(start, start.Add(time.Hour))
	require.NoError(t, err)

	t.Run("free amenity starts confirmed", func(t *testing.T) {
		res := reservation.NewReservation(condoID, amenityID, userID, slot, false)
		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Equal(t, 60, res.DurationMinutes())
		assert.False(t, res.IsCancelled())
	})

	t.Run("paid amenity starts pending", func(t *testing.T) {
		res := reservation.NewReservation(condoID, amenityID, userID, slot, true)
		assert.Equal(t, reservation.StatusPending, res.Status())
	})
}
