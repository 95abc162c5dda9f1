package bootstrap

import (
	"fmt"

	"booking-engine/internal/pkg/config"
	"booking-engine/internal/pkg/jwt"
	"booking-engine/internal/pkg/password"

	"go.uber.org/fx"
)

var AuthModule = fx.Module("auth",
	fx.Provide(
		NewJWTService,
		NewPasswordHasher,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	if cfg.JWT.AccessTokenDuration <= 0 || cfg.JWT.RefreshTokenDuration <= cfg.JWT.AccessTokenDuration {
		return nil, fmt.Errorf("invalid token lifetimes: access %s, refresh %s",
			cfg.JWT.AccessTokenDuration, cfg.JWT.RefreshTokenDuration)
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenDuration, cfg.JWT.RefreshTokenDuration), nil
}

func NewPasswordHasher(cfg config.Config) (*password.Hasher, error) {
	h, err := password.NewHasher(cfg.Password.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}
	return h, nil
}
