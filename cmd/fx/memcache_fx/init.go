package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripwise/internal/config"
	"tripwise/internal/infra"
	mem "tripwise/pkg/memcache"
)

const purgeInterval = time.Minute

var Module = fx.Provide(provideStore)

// provideStore uses redis when REDIS_URL is set and reachable, otherwise an
// in-process store purged once a minute.
func provideStore(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) mem.Store {
	if cfg.RedisURL != "" {
		client, err := infra.InitRedis(context.Background(), cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB, logger)
		if err == nil {
			lc.Append(fx.Hook{
				OnStop: func(context.Context) error { return client.Close() },
			})
			return mem.NewRedisStore(client, "tripwise:")
		}
		logger.Warn("redis unavailable, falling back to in-memory cache", zap.Error(err))
	}

	store := mem.NewMemoryStore()
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ticker := time.NewTicker(purgeInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := store.Purge(); n > 0 {
							logger.Debug("purged expired cache entries", zap.Int("count", n))
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			close(done)
			return nil
		},
	})
	return store
}
