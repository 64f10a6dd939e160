package persistence

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type Config struct {
	RedisURL string
}

func Provide(lc fx.Lifecycle, cfg Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
