//go:build e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestRule mirrors one amenity_rules row; zero values fall back to a plain
// always-bookable weekday rule.
type TestRule struct {
	DayOfWeek              time.Weekday
	OpenTime               string
	CloseTime              string
	SlotDurationMinutes    int
	MinLeadTimeHours       int
	MaxLeadTimeDays        int
	ReservationsPerUserDay int
}

func CreateTestCondo(t *testing.T, pool *pgxpool.Pool, name, timezone string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO condos (name, timezone) VALUES ($1, $2) RETURNING id`,
		name, timezone,
	).Scan(&id)
	require.NoError(t, err, "failed to create test condo")
	return id
}

func CreateTestAmenity(t *testing.T, pool *pgxpool.Pool, condoID uuid.UUID, name string, maxCapacity int, isReservable, requiresPayment bool) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO amenities (condo_id, name, max_capacity, is_reservable, requires_payment)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		condoID, name, maxCapacity, isReservable, requiresPayment,
	).Scan(&id)
	require.NoError(t, err, "failed to create test amenity")
	return id
}

func CreateTestRule(t *testing.T, pool *pgxpool.Pool, condoID, amenityID uuid.UUID, rule TestRule) uuid.UUID {
	t.Helper()

	if rule.OpenTime == "" {
		rule.OpenTime = "09:00"
	}
	if rule.CloseTime == "" {
		rule.CloseTime = "18:00"
	}
	if rule.SlotDurationMinutes == 0 {
		rule.SlotDurationMinutes = 60
	}
	if rule.MaxLeadTimeDays == 0 {
		rule.MaxLeadTimeDays = 30
	}

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO amenity_rules
		   (condo_id, amenity_id, day_of_week, open_time, close_time,
		    slot_duration_minutes, min_lead_time_hours, max_lead_time_days, reservations_per_user_day)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		condoID, amenityID, int(rule.DayOfWeek), rule.OpenTime, rule.CloseTime,
		rule.SlotDurationMinutes, rule.MinLeadTimeHours, rule.MaxLeadTimeDays, rule.ReservationsPerUserDay,
	).Scan(&id)
	require.NoError(t, err, "failed to create test rule")
	return id
}

func CreateTestReservation(t *testing.T, pool *pgxpool.Pool, condoID, amenityID, userID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO reservations (id, condo_id, amenity_id, user_id, start_time, end_time, duration_minutes, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, condoID, amenityID, userID, start, end, int(end.Sub(start)/time.Minute), status,
	)
	require.NoError(t, err, "failed to create test reservation")
	return id
}

func CountReservations(t *testing.T, pool *pgxpool.Pool, amenityID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM reservations WHERE amenity_id = $1`, amenityID,
	).Scan(&n)
	require.NoError(t, err, "failed to count reservations")
	return n
}

// ResetDB truncates all engine tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(),
		`TRUNCATE reservations, amenity_rules, amenities, condos CASCADE`)
	return err
}
