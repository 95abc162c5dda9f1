package bootstrap

import (
	"context"
	"log/slog"

	"booking-engine/internal/infra/db"
	"booking-engine/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// DBModule exposes the pool both as itself (UoW, health) and as db.DBTX (read stores).
var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
		func(pool *pgxpool.Pool) db.DBTX { return pool },
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	// startup must not hang on an unreachable database
	ctx, cancel := context.WithTimeout(context.Background(), 10*cfg.DB.TxTimeout)
	defer cancel()

	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected",
		slog.String("host", cfg.DB.Host),
		slog.String("database", cfg.DB.DBName),
		slog.Int("max_conns", int(cfg.DB.MaxConns)),
	)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("closing database pool",
				slog.Int("acquired_conns", int(stat.AcquiredConns())),
				slog.Int64("total_acquires", stat.AcquireCount()),
			)
			pool.Close()
			return nil
		},
	})

	return pool, nil
}
