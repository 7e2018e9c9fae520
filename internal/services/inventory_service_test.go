package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	mem "tripwise/pkg/memcache"
)

type countingFlights struct {
	calls     atomic.Int32
	lastQuery request_models.FlightQuery
}

func (f *countingFlights) SearchFlights(_ context.Context, q request_models.FlightQuery) []response_models.Flight {
	f.calls.Add(1)
	f.lastQuery = q
	return []response_models.Flight{{ID: "FL-1", Airline: "Test Air", Price: 420}}
}

type countingHotels struct{ calls atomic.Int32 }

func (h *countingHotels) SearchHotels(context.Context, request_models.HotelQuery) []response_models.HotelOption {
	h.calls.Add(1)
	return []response_models.HotelOption{{ID: "HT-1", Name: "Test Inn", PricePerNight: 90}}
}

type panickingActivities struct{}

func (panickingActivities) SearchActivities(context.Context, request_models.ActivityQuery) []response_models.ActivityOption {
	return failSoft(zap.NewNop(), "activities", nil, func() []response_models.ActivityOption {
		panic("listing source offline")
	})
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}
func (brokenStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}
func (brokenStore) Delete(context.Context, string) error { return nil }

func TestGather_UsesCache(t *testing.T) {
	flights := &countingFlights{}
	hotels := &countingHotels{}
	logger := zap.NewNop()
	svc := NewInventoryService(flights, hotels, NewActivityService(logger), NewWeatherService(logger),
		mem.NewMemoryStore(), InventoryOptions{CacheTTL: time.Minute, DefaultOrigin: "SFO"}, logger)

	req := tripRequest()
	req.Origin = ""

	first := svc.Gather(context.Background(), req)
	second := svc.Gather(context.Background(), req)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), flights.calls.Load())
	assert.Equal(t, int32(1), hotels.calls.Load())
	assert.Equal(t, "SFO", flights.lastQuery.Origin)
	assert.Equal(t, req.EndDate, flights.lastQuery.ReturnDate)
	assert.Equal(t, req.TravelerCount, flights.lastQuery.Passengers)
	assert.Len(t, first.Weather, 4)
	assert.NotEmpty(t, first.Activities)

	other := req
	other.TravelerCount = 5
	svc.Gather(context.Background(), other)
	assert.Equal(t, int32(2), flights.calls.Load(), "different traveler count is a cache miss")
}

func TestGather_FailSoft(t *testing.T) {
	logger := zap.NewNop()
	svc := NewInventoryService(&countingFlights{}, &countingHotels{}, panickingActivities{}, NewWeatherService(logger),
		brokenStore{}, InventoryOptions{}, logger)

	inv := svc.Gather(context.Background(), tripRequest())

	require.Len(t, inv.Flights, 1)
	require.Len(t, inv.Hotels, 1)
	assert.NotNil(t, inv.Activities)
	assert.Empty(t, inv.Activities)
	assert.Len(t, inv.Weather, 4)
}

func TestInventoryCacheKey(t *testing.T) {
	req := tripRequest()
	a := InventoryCacheKey(req, "nyc")

	req.Interests = []string{" FOOD ", "beach", "food"}
	assert.Equal(t, a, InventoryCacheKey(req, "NYC "), "normalized inputs share a key")

	req.StartDate = "2025-07-02"
	assert.NotEqual(t, a, InventoryCacheKey(req, "NYC"))
}
