package components

import (
	"context"
	"log/slog"

	"booking-engine/internal/domain/notification"
	"booking-engine/internal/infra/cache"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/infra/notify"
	"booking-engine/internal/infra/telemetry"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var NotificationModule = fx.Module("notification",
	fx.Provide(
		NewDispatcher,
		func(d *notify.Dispatcher) notification.Emitter { return d },
		func(m *telemetry.Metrics) notify.DeliveryObserver { return m },
		func(m *telemetry.Metrics) shared.ReservationObserver { return m },
		fx.Annotate(
			notify.NewLogSMSSender,
			fx.As(new(shared.SMSSender)),
		),
		fx.Annotate(
			func(rdb redis.UniversalClient) *cache.VerificationStore {
				return cache.NewVerificationStore(rdb)
			},
			fx.As(new(shared.CodeStore)),
		),
	),
)

// NewDispatcher starts the delivery worker with the app and drains it on stop.
func NewDispatcher(
	lc fx.Lifecycle,
	cfg config.Config,
	publisher notify.Publisher,
	deadLetters shared.NotificationRepository,
	dbtx db.DBTX,
	observer notify.DeliveryObserver,
	logger *slog.Logger,
) *notify.Dispatcher {
	d := notify.NewDispatcher(cfg.Notification, publisher, deadLetters, dbtx, observer, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: d.Stop,
	})
	return d
}
