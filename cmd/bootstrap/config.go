package bootstrap

import (
	"booking-engine/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule fails startup on settings that envconfig accepts but the server cannot run with.
var ConfigModule = fx.Module("config",
	fx.Provide(
		loadValidatedConfig,
	),
)

func loadValidatedConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
