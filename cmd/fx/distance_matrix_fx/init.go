package distance_matrix_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripwise/internal/services"
)

const purgeInterval = 10 * time.Minute

var Module = fx.Options(
	fx.Provide(
		services.NewInMemoryPairCache,
		providePairCache,
		provideMapService,
	),
	fx.Invoke(schedulePurge),
)

func providePairCache(cache *services.InMemoryPairCache) services.MatrixPairCache {
	return cache
}

func provideMapService(activities services.ActivityServiceInterface, cache services.MatrixPairCache, logger *zap.Logger) services.MapServiceInterface {
	return services.NewMapService(activities, cache, logger)
}

// schedulePurge drops expired distance pairs while the app runs.
func schedulePurge(lc fx.Lifecycle, cache *services.InMemoryPairCache, logger *zap.Logger) {
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ticker := time.NewTicker(purgeInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := cache.Purge(); n > 0 {
							logger.Debug("purged expired distance pairs", zap.Int("count", n), zap.Int("remaining", cache.Len()))
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
}
