package components

import (
	"salon-reserve/internal/pkg/clock"
	"salon-reserve/internal/pkg/config"
	"salon-reserve/internal/usecase"
	"salon-reserve/internal/usecase/commands"
	"salon-reserve/internal/usecase/queries"
	"salon-reserve/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(uow shared.UnitOfWork, cfg config.Config, clk clock.Clock) commands.BookingCommands {
			return commands.NewBookingUseCase(uow, cfg.Booking, clk)
		},
		func(uow shared.UnitOfWork, cfg config.Config, clk clock.Clock) commands.RescheduleCommands {
			return commands.NewRescheduleUseCase(uow, cfg.Booking, clk)
		},
		commands.NewPassUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewPassQueries,
		queries.NewSlotQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
