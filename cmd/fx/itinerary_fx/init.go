package itinerary_fx

import (
	"go.uber.org/fx"
	"tripwise/internal/services"
)

var Module = fx.Options(
	fx.Provide(services.NewItineraryAssembler),
	fx.Provide(services.NewBudgetOptimizer),
	fx.Provide(services.NewExportService),
	fx.Provide(services.NewItineraryService),
)
