package components

import (
	"salon-reserve/internal/infra/db"
	"salon-reserve/internal/infra/readstore"
	"salon-reserve/internal/infra/uow"
	"salon-reserve/internal/pkg/config"
	"salon-reserve/internal/usecase/queries"
	"salon-reserve/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		NewUnitOfWork,
		NewScheduleReadStore,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewPassReadStore,
			fx.As(new(queries.PassReadStore)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceCatalog)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewUnitOfWork(pool *pgxpool.Pool, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, cfg.Booking)
}

func NewScheduleReadStore(dbtx db.DBTX, cfg config.Config) queries.ScheduleReadStore {
	return readstore.NewScheduleReadStore(dbtx, cfg.Booking.SlotGranularity)
}
