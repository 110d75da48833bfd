package components

import (
	"rental-admin/internal/domain/pricing"
	"rental-admin/internal/pkg/clock"
	"rental-admin/internal/usecase"
	"rental-admin/internal/usecase/commands"
	"rental-admin/internal/usecase/queries"

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
	fx.Annotate(
		pricing.NewDefaultResolver,
		fx.As(new(pricing.Resolver)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewPropertyCommands,
		commands.NewCouponCommands,
		commands.NewCustomerCommands,
		commands.NewBookingCommands,
		commands.NewPaymentCommands,
		commands.NewCancellationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewPropertyQueries,
		queries.NewCouponQueries,
		queries.NewCustomerQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
