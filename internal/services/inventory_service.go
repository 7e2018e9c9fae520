package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	mem "tripwise/pkg/memcache"
	"tripwise/pkg/utils"
)

type InventoryServiceInterface interface {
	Gather(ctx context.Context, request request_models.TripRequest) response_models.Inventory
}

type InventoryService struct {
	flights       FlightServiceInterface
	hotels        HotelServiceInterface
	activities    ActivityServiceInterface
	weather       WeatherServiceInterface
	cache         mem.Store
	ttl           time.Duration
	defaultOrigin string
	logger        *zap.Logger
}

type InventoryOptions struct {
	CacheTTL      time.Duration
	DefaultOrigin string
}

func NewInventoryService(
	flights FlightServiceInterface,
	hotels HotelServiceInterface,
	activities ActivityServiceInterface,
	weather WeatherServiceInterface,
	cache mem.Store,
	opts InventoryOptions,
	logger *zap.Logger,
) InventoryServiceInterface {
	return &InventoryService{
		flights:       flights,
		hotels:        hotels,
		activities:    activities,
		weather:       weather,
		cache:         cache,
		ttl:           opts.CacheTTL,
		defaultOrigin: opts.DefaultOrigin,
		logger:        logger,
	}
}

// InventoryCacheKey identifies every input that shapes the inventory bundle.
func InventoryCacheKey(request request_models.TripRequest, origin string) string {
	parts := []string{
		strings.ToUpper(strings.TrimSpace(origin)),
		strings.TrimSpace(request.Destination),
		request.StartDate,
		request.EndDate,
		fmt.Sprint(request.TravelerCount),
		string(request.AccommodationType),
		strings.Join(request.NormalizedInterests(), ","),
	}
	raw := strings.Join(parts, "|")
	return fmt.Sprintf("inventory:%d:%d", utils.HashString(raw), len(raw))
}

// Gather runs the four generators concurrently. Generators never fail, so the
// group only carries cancellation; a cache error is logged and skipped.
func (s *InventoryService) Gather(ctx context.Context, request request_models.TripRequest) response_models.Inventory {
	origin := strings.TrimSpace(request.Origin)
	if origin == "" {
		origin = s.defaultOrigin
	}
	key := InventoryCacheKey(request, origin)

	if inv, ok := s.fromCache(ctx, key); ok {
		return inv
	}

	var inv response_models.Inventory
	days := 0
	if start, err := utils.ParseDate(request.StartDate); err == nil {
		if end, err := utils.ParseDate(request.EndDate); err == nil {
			days = utils.DayCount(start, end)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		inv.Flights = s.flights.SearchFlights(gctx, request_models.FlightQuery{
			Origin:      origin,
			Destination: request.Destination,
			DepartDate:  request.StartDate,
			ReturnDate:  request.EndDate,
			Passengers:  request.TravelerCount,
		})
		return nil
	})
	g.Go(func() error {
		inv.Hotels = s.hotels.SearchHotels(gctx, request_models.HotelQuery{
			Destination: request.Destination,
			CheckIn:     request.StartDate,
			CheckOut:    request.EndDate,
			Guests:      request.TravelerCount,
			Type:        request.AccommodationType,
		})
		return nil
	})
	g.Go(func() error {
		inv.Activities = s.activities.SearchActivities(gctx, request_models.ActivityQuery{
			Destination:      request.Destination,
			Interests:        request.NormalizedInterests(),
			TripDurationDays: days,
		})
		return nil
	})
	g.Go(func() error {
		inv.Weather = s.weather.Forecast(gctx, request_models.WeatherQuery{
			Location:  request.Destination,
			StartDate: request.StartDate,
			EndDate:   request.EndDate,
		})
		return nil
	})
	_ = g.Wait()

	s.toCache(ctx, key, inv)
	return inv
}

func (s *InventoryService) fromCache(ctx context.Context, key string) (response_models.Inventory, bool) {
	var inv response_models.Inventory
	if s.cache == nil {
		return inv, false
	}
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("inventory cache read failed", zap.String("key", key), zap.Error(err))
		return inv, false
	}
	if !ok {
		return inv, false
	}
	if err := json.Unmarshal(raw, &inv); err != nil {
		s.logger.Warn("inventory cache entry corrupt", zap.String("key", key), zap.Error(err))
		return inv, false
	}
	return inv, true
}

func (s *InventoryService) toCache(ctx context.Context, key string, inv response_models.Inventory) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(inv)
	if err != nil {
		s.logger.Warn("inventory encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		s.logger.Warn("inventory cache write failed", zap.String("key", key), zap.Error(err))
	}
}
