package components

import (
	"cusco-tours/internal/handler"
	"cusco-tours/internal/handler/api"
	"cusco-tours/internal/handler/middleware"
	"cusco-tours/internal/pkg/config"
	"cusco-tours/internal/usecase/commands"
	"cusco-tours/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewTourHandler,
		api.NewCartHandler,
		api.NewFavoriteHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(
	authCommands commands.AuthCommands,
	userQueries queries.UserQueries,
	cfg config.Config,
) *api.AuthHandler {
	return api.NewAuthHandler(authCommands, userQueries, cfg.Cookie, cfg.JWT)
}
