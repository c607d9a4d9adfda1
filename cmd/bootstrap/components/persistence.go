package components

import (
	"spark-bytes/internal/infra/readstore"
	sqlc "spark-bytes/internal/infra/sqlc/generated"
	"spark-bytes/internal/infra/uow"
	"spark-bytes/internal/usecase/queries"
	"spark-bytes/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Post
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PostReadQueries)),
		),
		fx.Annotate(
			readstore.NewPostReadStore,
			fx.As(new(queries.PostReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Profile
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProfileReadQueries)),
		),
		fx.Annotate(
			readstore.NewProfileReadStore,
			fx.As(new(queries.ProfileReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		shared.NewRetryPolicy,
		fx.Annotate(
			NewUoWPool,
			fx.As(new(uow.Pool)),
		),
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewUoWPool(pool *pgxpool.Pool) *pgxpool.Pool {
	return pool
}
