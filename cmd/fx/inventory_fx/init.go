package inventory_fx

import (
	"go.uber.org/fx"
	"tripwise/internal/config"
	"tripwise/internal/services"
)

var Module = fx.Options(
	fx.Provide(services.NewFlightService),
	fx.Provide(services.NewHotelService),
	fx.Provide(services.NewActivityService),
	fx.Provide(services.NewWeatherService),
	fx.Provide(provideInventoryOptions),
	fx.Provide(services.NewInventoryService),
)

func provideInventoryOptions(cfg config.Config) services.InventoryOptions {
	return services.InventoryOptions{
		CacheTTL:      cfg.CacheTTL,
		DefaultOrigin: cfg.DefaultOrigin,
	}
}
