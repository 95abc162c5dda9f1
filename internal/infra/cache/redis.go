package cache

import (
	"context"
	"time"

	"booking-engine/internal/pkg/config"
	"booking-engine/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// NewClient connects to Redis and verifies the connection with a short ping.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to ping redis")
	}
	return client, nil
}

// Pinger adapts a redis client to the health check interface.
type Pinger struct {
	rdb redis.UniversalClient
}

func NewPinger(rdb redis.UniversalClient) *Pinger {
	return &Pinger{rdb: rdb}
}

func (p *Pinger) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}
