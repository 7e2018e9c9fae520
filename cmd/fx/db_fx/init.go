package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripwise/internal/config"
	"tripwise/internal/infra"
	"tripwise/internal/repositories"
)

var Module = fx.Provide(provideItineraryRepository)

// Without POSTGRES_URL itineraries live in process memory.
func provideItineraryRepository(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (repositories.ItineraryRepository, error) {
	if cfg.PostgresURL == "" {
		logger.Warn("POSTGRES_URL not set, saved itineraries are kept in memory")
		return repositories.NewMemoryItineraryRepository(), nil
	}

	db, err := infra.InitPostgresql(cfg.PostgresURL, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
	return repositories.NewItineraryRepository(db), nil
}
