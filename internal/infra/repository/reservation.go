package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"condo-reserve/internal/domain/reservation"
	"condo-reserve/internal/infra"
	"condo-reserve/internal/pkg/config"
	"condo-reserve/internal/pkg/errs"
	"condo-reserve/internal/pkg/timex"
	"condo-reserve/internal/usecase/queries"
	"condo-reserve/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeExclusionViolation = "23P01"
)

const dayBookingsQuery = `
SELECT id, amenity_id, user_id, start_time, end_time, status
FROM reservations
WHERE condo_id = $1 AND amenity_id = $2
  AND status <> 'cancelled'
  AND start_time < $4 AND end_time > $3
ORDER BY start_time`

const insertReservationQuery = `
INSERT INTO reservations (id, condo_id, amenity_id, user_id, start_time, end_time, duration_minutes, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, created_at, updated_at`

const reservationViewQuery = `
SELECT r.id, r.condo_id, r.amenity_id, a.name, r.user_id, r.start_time, r.end_time,
       r.duration_minutes, r.status, r.created_at, r.updated_at
FROM reservations r
JOIN amenities a ON a.id = r.amenity_id`

const reservationByIDQuery = reservationViewQuery + `
WHERE r.condo_id = $1 AND r.id = $2`

const reservationsByUserQuery = reservationViewQuery + `
WHERE r.condo_id = $1 AND r.user_id = $2
ORDER BY r.start_time DESC
LIMIT $3`

// ReservationRepository covers both sides of the reservation table: the
// locked write path used by booking and the read-side views.
type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

// WithinAmenityDay wraps fn in a transaction holding pg_advisory_xact_lock
// keyed by (amenity, calendar day). The lock releases with the transaction,
// so the recount-then-insert inside fn is linearizable across bookers.
func (r *ReservationRepository) WithinAmenityDay(
	ctx context.Context,
	amenityID uuid.UUID,
	day timex.Date,
	fn func(ctx context.Context, tx shared.BookingTx) error,
) error {
	pgxTx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return infra.WrapRepoErr("failed to begin booking transaction", err)
	}
	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback booking transaction", "error", rollbackErr.Error())
			}
		}
	}()

	dayKey := int32(day.Year*10000 + int(day.Month)*100 + day.Day)
	if _, err := pgxTx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1::text), $2)`, amenityID, dayKey); err != nil {
		return infra.WrapRepoErr("failed to acquire amenity day lock", err)
	}

	if err := fn(ctx, &bookingTx{tx: pgxTx}); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit booking transaction", err)
	}
	return nil
}

type bookingTx struct {
	tx pgx.Tx
}

func (t *bookingTx) DayBookings(ctx context.Context, condoID, amenityID uuid.UUID, dayStart, dayEnd time.Time) ([]shared.BookingSnapshot, error) {
	rows, err := t.tx.Query(ctx, dayBookingsQuery, condoID, amenityID, dayStart, dayEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list day reservations", err)
	}
	defer rows.Close()

	var snaps []shared.BookingSnapshot
	for rows.Next() {
		var s shared.BookingSnapshot
		if err := rows.Scan(&s.ID, &s.AmenityID, &s.UserID, &s.StartTime, &s.EndTime, &s.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan day reservation", err)
		}
		snaps = append(snaps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate day reservations", err)
	}
	return snaps, nil
}

func (t *bookingTx) Insert(ctx context.Context, res *reservation.Reservation) (*shared.InsertedReservation, error) {
	var inserted shared.InsertedReservation
	err := t.tx.QueryRow(ctx, insertReservationQuery,
		res.ID(),
		res.CondoID(),
		res.AmenityID(),
		res.UserID(),
		res.Slot().Start(),
		res.Slot().End(),
		res.DurationMinutes(),
		res.Status().String(),
	).Scan(&inserted.ID, &inserted.CreatedAt, &inserted.UpdatedAt)
	if err != nil {
		// The shipped schema carries no range constraint; the advisory lock
		// is the concurrency guard. Conflict SQLSTATEs from operator-added
		// constraints still normalize to KindConflict instead of leaking a
		// raw pg error.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeUniqueViolation, pgErrCodeExclusionViolation:
				return nil, infra.WrapRepoErr("reservation conflicts with an existing one", err, infra.KindConflict)
			}
		}
		return nil, infra.WrapRepoErr("failed to insert reservation", err)
	}
	return &inserted, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, condoID, id uuid.UUID) (*queries.ReservationView, error) {
	view, err := scanReservationView(r.pool.QueryRow(ctx, reservationByIDQuery, condoID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (r *ReservationRepository) FindByUser(ctx context.Context, condoID, userID uuid.UUID, limit int) ([]*queries.ReservationView, error) {
	rows, err := r.pool.Query(ctx, reservationsByUserQuery, condoID, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return views, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var v queries.ReservationView
	err := row.Scan(
		&v.ID,
		&v.CondoID,
		&v.AmenityID,
		&v.AmenityName,
		&v.UserID,
		&v.StartTime,
		&v.EndTime,
		&v.DurationMinutes,
		&v.Status,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ScheduleReadStore serves the availability snapshot: amenity, rules and the
// reservations intersecting the window, all read inside one repeatable-read
// transaction so the calculator never sees a torn state.
type ScheduleReadStore struct {
	pool      *pgxpool.Pool
	defaultTZ string
}

func NewScheduleReadStore(pool *pgxpool.Pool, cfg config.Config) *ScheduleReadStore {
	return &ScheduleReadStore{pool: pool, defaultTZ: cfg.Engine.DefaultTimezone}
}

func (s *ScheduleReadStore) AmenitySchedule(
	ctx context.Context,
	condoID, amenityID uuid.UUID,
	from, to time.Time,
) (*shared.ScheduleSnapshot, error) {
	pgxTx, err := s.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin snapshot transaction", err)
	}
	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback snapshot transaction", "error", rollbackErr.Error())
			}
		}
	}()

	amenitySnap, err := scanAmenity(ctx, pgxTx, condoID, amenityID, s.defaultTZ)
	if err != nil {
		return nil, err
	}
	rules, err := scanRules(ctx, pgxTx, condoID, amenityID)
	if err != nil {
		return nil, err
	}

	rows, err := pgxTx.Query(ctx, dayBookingsQuery, condoID, amenityID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations in range", err)
	}
	defer rows.Close()

	var bookings []shared.BookingSnapshot
	for rows.Next() {
		var b shared.BookingSnapshot
		if err := rows.Scan(&b.ID, &b.AmenityID, &b.UserID, &b.StartTime, &b.EndTime, &b.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation in range", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations in range", err)
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return nil, errs.Wrap(err, "failed to commit snapshot transaction")
	}

	return &shared.ScheduleSnapshot{
		Amenity:  *amenitySnap,
		Rules:    rules,
		Bookings: bookings,
	}, nil
}
