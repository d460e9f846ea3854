package queries

import (
	"context"

	"condo-reserve/internal/infra"
	"condo-reserve/internal/pkg/errs"
	"condo-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type amenityQueriesImpl struct {
	reads shared.AmenityReads
}

func NewAmenityQueries(reads shared.AmenityReads) AmenityQueries {
	return &amenityQueriesImpl{reads: reads}
}

func (q *amenityQueriesImpl) GetByID(ctx context.Context, condoID, id uuid.UUID) (*AmenityView, error) {
	snap, err := q.reads.AmenityByID(ctx, condoID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrAmenityNotFound)
		}
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	return &AmenityView{
		ID:              snap.ID,
		CondoID:         snap.CondoID,
		Name:            snap.Name,
		MaxCapacity:     snap.MaxCapacity,
		IsReservable:    snap.IsReservable,
		RequiresPayment: snap.RequiresPayment,
		Timezone:        snap.Timezone,
	}, nil
}
