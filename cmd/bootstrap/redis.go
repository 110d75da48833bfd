package bootstrap

import (
	"context"

	"rental-admin/internal/infra/session"
	"rental-admin/internal/pkg/config"
	"rental-admin/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// SessionModule needs a redis.UniversalClient; tests supply one backed by miniredis.
var SessionModule = fx.Module("session",
	fx.Provide(
		fx.Annotate(
			session.NewStore,
			fx.As(new(commands.SessionStore)),
		),
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (redis.UniversalClient, error) {
	client, cleanup, err := session.Connect(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client, nil
}
