package bootstrap

import (
	"booking-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	TelemetryModule,
	BrokerModule,
	AuthModule,
	components.PersistenceModule,
	components.NotificationModule,
	components.UseCaseModule,
	components.HandlerModule,
)
