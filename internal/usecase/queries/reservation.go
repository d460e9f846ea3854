package queries

import (
	"context"

	"condo-reserve/internal/infra"
	"condo-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, condoID, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, condoID, userID uuid.UUID, limit int) ([]*ReservationView, error)
}

type AmenityQueries interface {
	GetByID(ctx context.Context, condoID, id uuid.UUID) (*AmenityView, error)
}

// ReservationReadStore is the read-side port; rows come back already shaped
// as views.
type ReservationReadStore interface {
	FindByID(ctx context.Context, condoID, id uuid.UUID) (*ReservationView, error)
	FindByUser(ctx context.Context, condoID, userID uuid.UUID, limit int) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, condoID, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, condoID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, condoID, userID uuid.UUID, limit int) ([]*ReservationView, error) {
	if limit <= 0 {
		limit = 50
	}
	views, err := q.store.FindByUser(ctx, condoID, userID, limit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	return views, nil
}
