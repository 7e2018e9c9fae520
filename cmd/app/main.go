package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"tripwise/cmd/fx/config_fx"
	"tripwise/cmd/fx/controllers_fx"
	"tripwise/cmd/fx/db_fx"
	"tripwise/cmd/fx/distance_matrix_fx"
	"tripwise/cmd/fx/inventory_fx"
	"tripwise/cmd/fx/itinerary_fx"
	"tripwise/cmd/fx/memcache_fx"
	"tripwise/internal/api/controllers"
	"tripwise/internal/config"
	"tripwise/pkg/middleware"
)

const (
	limiterSweepInterval = 5 * time.Minute
	limiterIdleTimeout   = 10 * time.Minute
)

func main() {
	app := fx.New(
		config_fx.Module,
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Invoke(func(logger *zap.Logger) { zap.ReplaceGlobals(logger) }),

		db_fx.Module,
		memcache_fx.Module,
		inventory_fx.Module,
		distance_matrix_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideLimiterStore),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideLimiterStore(lc fx.Lifecycle, cfg config.Config) *middleware.LimiterStore {
	store := middleware.NewLimiterStore(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ticker := time.NewTicker(limiterSweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						store.Sweep(limiterIdleTimeout)
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

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, logger *zap.Logger) {
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg config.Config,
	logger *zap.Logger,
	limiter *middleware.LimiterStore,
	itineraryController *controllers.ItineraryController,
	inventoryController *controllers.InventoryController,
	healthController *controllers.HealthController) *gin.Engine {

	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware(cfg.AllowOrigins))

	RegisterRoutes(r, limiter, itineraryController, inventoryController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	limiter *middleware.LimiterStore,
	itineraryController *controllers.ItineraryController,
	inventoryController *controllers.InventoryController,
	healthController *controllers.HealthController) {

	api := r.Group("/api")
	api.GET("/health", healthController.Health)

	limited := api.Group("")
	limited.Use(middleware.RateLimit(limiter))

	itineraries := limited.Group("/itineraries")
	itineraries.POST("/generate", itineraryController.GenerateItinerary)
	itineraries.POST("/optimize", itineraryController.OptimizeItinerary)
	itineraries.GET("", itineraryController.ListItineraries)
	itineraries.GET("/:id", itineraryController.GetItinerary)
	itineraries.GET("/:id/pdf", itineraryController.ExportItineraryPDF)

	inventory := limited.Group("/inventory")
	inventory.GET("/flights", inventoryController.SearchFlights)
	inventory.GET("/hotels", inventoryController.SearchHotels)
	inventory.GET("/activities", inventoryController.SearchActivities)
	inventory.GET("/weather", inventoryController.GetWeather)
	inventory.GET("/map", inventoryController.GetMap)
}
