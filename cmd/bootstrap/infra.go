package bootstrap

import (
	"context"
	"log/slog"

	"booking-engine/internal/infra/broker"
	"booking-engine/internal/infra/cache"
	"booking-engine/internal/infra/notify"
	"booking-engine/internal/infra/telemetry"
	"booking-engine/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (redis.UniversalClient, error) {
	client, err := cache.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		telemetry.NewMetrics,
	),
	fx.Invoke(startTracing),
)

func startTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	shutdown, err := telemetry.InitTracing(context.Background(), cfg.Telemetry)
	if err != nil {
		return err
	}
	if cfg.Telemetry.OTLPEndpoint != "" {
		logger.Info("tracing enabled", "endpoint", cfg.Telemetry.OTLPEndpoint)
	}
	lc.Append(fx.Hook{
		OnStop: shutdown,
	})
	return nil
}

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewPublisher,
	),
)

// NewPublisher returns the RabbitMQ publisher, or a logging publisher when
// the broker is disabled.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) notify.Publisher {
	if !cfg.Broker.Enabled {
		return broker.NewLogPublisher(logger)
	}
	p := broker.NewRabbitPublisher(cfg.Broker, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}
