package components

import (
	"booking-engine/internal/handler"
	"booking-engine/internal/handler/api"
	"booking-engine/internal/handler/middleware"
	"booking-engine/internal/infra/cache"
	"booking-engine/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewDiningRoomHandler,
		api.NewRestaurantHandler,
		NewHealthHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)

func NewHealthHandler(pool *pgxpool.Pool, rdb redis.UniversalClient) *api.HealthHandler {
	return api.NewHealthHandler(map[string]api.Pinger{
		"postgres": pool,
		"redis":    cache.NewPinger(rdb),
	})
}
