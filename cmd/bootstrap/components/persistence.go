package components

import (
	"condo-reserve/internal/infra/db"
	"condo-reserve/internal/infra/repository"
	"condo-reserve/internal/usecase/queries"
	"condo-reserve/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewAmenityRepository,
			fx.As(new(shared.AmenityReads)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(shared.BookingUnitOfWork)),
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			repository.NewScheduleReadStore,
			fx.As(new(shared.ScheduleReads)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
