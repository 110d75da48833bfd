package components

import (
	"rental-admin/internal/infra/readstore"
	sqlc "rental-admin/internal/infra/sqlc/generated"
	"rental-admin/internal/infra/uow"
	"rental-admin/internal/usecase/queries"
	"rental-admin/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write repositories are built per transaction by the unit of work, so only read stores are provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		func(q *sqlc.Queries) readstore.UserReadQueries { return q },
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Property
		func(q *sqlc.Queries) readstore.PropertyViewQueries { return q },
		fx.Annotate(
			readstore.NewPropertyReadStore,
			fx.As(new(queries.PropertyReadStore)),
		),
		// Coupon
		func(q *sqlc.Queries) readstore.CouponViewQueries { return q },
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		// Customer
		func(q *sqlc.Queries) readstore.CustomerViewQueries { return q },
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		// Booking
		func(q *sqlc.Queries) readstore.BookingViewQueries { return q },
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		func(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
			return uow.NewPostgresUoW(pool, q)
		},
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
