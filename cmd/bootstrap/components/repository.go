package components

import (
	"cusco-tours/internal/domain/coupon"
	"cusco-tours/internal/infra"
	"cusco-tours/internal/infra/kvstore"
	"cusco-tours/internal/infra/readstore"
	repo_impl "cusco-tours/internal/infra/repository"
	"cusco-tours/internal/infra/uow"
	"cusco-tours/internal/pkg/config"
	"cusco-tours/internal/usecase/commands"
	"cusco-tours/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUnitOfWork,
		NewCouponResolver,
		fx.Annotate(
			kvstore.NewPostgresStore,
			fx.As(new(kvstore.Store)),
		),
		fx.Annotate(
			repo_impl.NewTourRepository,
			fx.As(new(commands.TourRepository)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewTourReadStore,
			fx.As(new(queries.TourReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}

// NewCouponResolver picks the coupon source: the embedded catalog by default,
// the coupons table when configured.
func NewCouponResolver(cfg config.Config, db infra.DBTX) coupon.Resolver {
	if cfg.Pricing.CouponSource == "postgres" {
		return repo_impl.NewPostgresCouponResolver(db)
	}
	return coupon.NewStaticCatalog()
}
