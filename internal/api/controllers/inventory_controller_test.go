package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"tripwise/internal/models/response_models"
	"tripwise/internal/services"
)

func newInventoryRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	activities := services.NewActivityService(logger)
	ctrl := NewInventoryController(
		services.NewFlightService(logger),
		services.NewHotelService(logger),
		activities,
		services.NewWeatherService(logger),
		services.NewMapService(activities, services.NewInMemoryPairCache(), logger),
	)

	r := gin.New()
	r.GET("/api/inventory/flights", ctrl.SearchFlights)
	r.GET("/api/inventory/hotels", ctrl.SearchHotels)
	r.GET("/api/inventory/activities", ctrl.SearchActivities)
	r.GET("/api/inventory/weather", ctrl.GetWeather)
	r.GET("/api/inventory/map", ctrl.GetMap)
	r.GET("/api/health", NewHealthController().Health)
	return r
}

func decodeData[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var body struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body.Data
}

func TestInventoryEndpoints(t *testing.T) {
	r := newInventoryRouter()

	w := doRequest(r, http.MethodGet, "/api/inventory/flights?origin=JFK&destination=Rome&depart_date=2025-05-01", "")
	require.Equal(t, http.StatusOK, w.Code)
	flights := decodeData[[]response_models.Flight](t, w.Body.Bytes())
	require.NotEmpty(t, flights, "passengers defaults to 1")
	assert.Equal(t, flights[0].PricePerPassenger, flights[0].Price)

	w = doRequest(r, http.MethodGet, "/api/inventory/hotels?destination=Rome&check_in=2025-05-01&check_out=2025-05-04&guests=4&type=hostel", "")
	require.Equal(t, http.StatusOK, w.Code)
	hotels := decodeData[[]response_models.HotelOption](t, w.Body.Bytes())
	require.NotEmpty(t, hotels)
	assert.Equal(t, "hostel", hotels[0].Type)
	assert.Equal(t, 2, hotels[0].Rooms)

	w = doRequest(r, http.MethodGet, "/api/inventory/activities?destination=Rome&interests=food,history&days=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.GreaterOrEqual(t, len(decodeData[[]response_models.ActivityOption](t, w.Body.Bytes())), 8)

	w = doRequest(r, http.MethodGet, "/api/inventory/weather?location=Rome&start_date=2025-05-01&end_date=2025-05-07", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeData[[]response_models.WeatherDay](t, w.Body.Bytes()), 7)

	w = doRequest(r, http.MethodGet, "/api/inventory/map?destination=Rome&days=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	view := decodeData[response_models.MapView](t, w.Body.Bytes())
	assert.Len(t, view.Distances, len(view.Markers))

	w = doRequest(r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInventoryEndpoints_MissingParams(t *testing.T) {
	r := newInventoryRouter()

	for _, path := range []string{
		"/api/inventory/flights?origin=JFK",
		"/api/inventory/hotels?destination=Rome",
		"/api/inventory/activities",
		"/api/inventory/weather?location=Rome",
		"/api/inventory/map",
	} {
		w := doRequest(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestSplitInterests(t *testing.T) {
	assert.Equal(t, []string{"food", "history", "art"}, splitInterests([]string{"Food, history", "art", "food"}))
	assert.Empty(t, splitInterests(nil))
}
