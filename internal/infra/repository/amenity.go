package repository

import (
	"context"
	"errors"

	"condo-reserve/internal/infra"
	"condo-reserve/internal/infra/db"
	"condo-reserve/internal/pkg/config"
	"condo-reserve/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const amenityByIDQuery = `
SELECT a.id, a.condo_id, a.name, a.max_capacity, a.is_reservable, a.requires_payment,
       COALESCE(NULLIF(c.timezone, ''), $3)
FROM amenities a
JOIN condos c ON c.id = a.condo_id
WHERE a.condo_id = $1 AND a.id = $2`

// Rules come back in creation order; the resolver's last-match tie-break
// depends on it.
const rulesByAmenityQuery = `
SELECT id, amenity_id, day_of_week, to_char(open_time, 'HH24:MI'), to_char(close_time, 'HH24:MI'),
       slot_duration_minutes, min_lead_time_hours, max_lead_time_days, reservations_per_user_day
FROM amenity_rules
WHERE condo_id = $1 AND amenity_id = $2
ORDER BY created_at, id`

type AmenityRepository struct {
	db        db.DBTX
	defaultTZ string
}

func NewAmenityRepository(dbtx db.DBTX, cfg config.Config) *AmenityRepository {
	return &AmenityRepository{db: dbtx, defaultTZ: cfg.Engine.DefaultTimezone}
}

func (r *AmenityRepository) AmenityByID(ctx context.Context, condoID, amenityID uuid.UUID) (*shared.AmenitySnapshot, error) {
	return scanAmenity(ctx, r.db, condoID, amenityID, r.defaultTZ)
}

func (r *AmenityRepository) RulesByAmenity(ctx context.Context, condoID, amenityID uuid.UUID) ([]shared.RuleSnapshot, error) {
	return scanRules(ctx, r.db, condoID, amenityID)
}

func scanAmenity(ctx context.Context, dbtx db.DBTX, condoID, amenityID uuid.UUID, defaultTZ string) (*shared.AmenitySnapshot, error) {
	var snap shared.AmenitySnapshot
	err := dbtx.QueryRow(ctx, amenityByIDQuery, condoID, amenityID, defaultTZ).Scan(
		&snap.ID,
		&snap.CondoID,
		&snap.Name,
		&snap.MaxCapacity,
		&snap.IsReservable,
		&snap.RequiresPayment,
		&snap.Timezone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("amenity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find amenity by ID", err)
	}
	return &snap, nil
}

func scanRules(ctx context.Context, dbtx db.DBTX, condoID, amenityID uuid.UUID) ([]shared.RuleSnapshot, error) {
	rows, err := dbtx.Query(ctx, rulesByAmenityQuery, condoID, amenityID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list amenity rules", err)
	}
	defer rows.Close()

	var snaps []shared.RuleSnapshot
	for rows.Next() {
		var s shared.RuleSnapshot
		if err := rows.Scan(
			&s.ID,
			&s.AmenityID,
			&s.DayOfWeek,
			&s.OpenTime,
			&s.CloseTime,
			&s.SlotDurationMinutes,
			&s.MinLeadTimeHours,
			&s.MaxLeadTimeDays,
			&s.ReservationsPerUserDay,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan amenity rule", err)
		}
		snaps = append(snaps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate amenity rules", err)
	}
	return snaps, nil
}
