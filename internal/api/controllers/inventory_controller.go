package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"tripwise/internal/models/request_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type InventoryController struct {
	flights    services.FlightServiceInterface
	hotels     services.HotelServiceInterface
	activities services.ActivityServiceInterface
	weather    services.WeatherServiceInterface
	maps       services.MapServiceInterface
}

func NewInventoryController(
	flights services.FlightServiceInterface,
	hotels services.HotelServiceInterface,
	activities services.ActivityServiceInterface,
	weather services.WeatherServiceInterface,
	maps services.MapServiceInterface,
) *InventoryController {
	return &InventoryController{
		flights:    flights,
		hotels:     hotels,
		activities: activities,
		weather:    weather,
		maps:       maps,
	}
}

// SearchFlights godoc
// @Summary Search flights
// @Tags Inventory
// @Produce json
// @Param origin query string false "Origin airport or city"
// @Param destination query string true "Destination"
// @Param depart_date query string true "Departure date (YYYY-MM-DD)"
// @Param return_date query string false "Return date (YYYY-MM-DD)"
// @Param passengers query int false "Passengers" default(1)
// @Success 200 {array} response_models.Flight
// @Router /api/inventory/flights [get]
func (i *InventoryController) SearchFlights(c *gin.Context) {
	var query request_models.FlightQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid flight query: "+err.Error())
		return
	}

	utils.RespondSuccess(c, i.flights.SearchFlights(c.Request.Context(), query), "Flights fetched successfully")
}

// SearchHotels godoc
// @Summary Search hotels
// @Tags Inventory
// @Produce json
// @Param destination query string true "Destination"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param guests query int false "Guests" default(1)
// @Param type query string false "Accommodation type"
// @Success 200 {array} response_models.HotelOption
// @Router /api/inventory/hotels [get]
func (i *InventoryController) SearchHotels(c *gin.Context) {
	var query request_models.HotelQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid hotel query: "+err.Error())
		return
	}

	utils.RespondSuccess(c, i.hotels.SearchHotels(c.Request.Context(), query), "Hotels fetched successfully")
}

// SearchActivities godoc
// @Summary Search activities
// @Tags Inventory
// @Produce json
// @Param destination query string true "Destination"
// @Param interests query string false "Comma separated interests"
// @Param days query int false "Trip duration in days" default(1)
// @Success 200 {array} response_models.ActivityOption
// @Router /api/inventory/activities [get]
func (i *InventoryController) SearchActivities(c *gin.Context) {
	var query request_models.ActivityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity query: "+err.Error())
		return
	}
	query.Interests = splitInterests(query.Interests)

	utils.RespondSuccess(c, i.activities.SearchActivities(c.Request.Context(), query), "Activities fetched successfully")
}

// GetWeather godoc
// @Summary Weather forecast for a date range
// @Tags Inventory
// @Produce json
// @Param location query string true "Location"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} response_models.WeatherDay
// @Router /api/inventory/weather [get]
func (i *InventoryController) GetWeather(c *gin.Context) {
	var query request_models.WeatherQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid weather query: "+err.Error())
		return
	}

	utils.RespondSuccess(c, i.weather.Forecast(c.Request.Context(), query), "Forecast fetched successfully")
}

// GetMap godoc
// @Summary Activity map with pairwise distances
// @Tags Inventory
// @Produce json
// @Param destination query string true "Destination"
// @Param interests query string false "Comma separated interests"
// @Param days query int false "Trip duration in days" default(1)
// @Success 200 {object} response_models.MapView
// @Router /api/inventory/map [get]
func (i *InventoryController) GetMap(c *gin.Context) {
	var query request_models.MapQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid map query: "+err.Error())
		return
	}
	query.Interests = splitInterests(query.Interests)

	utils.RespondSuccess(c, i.maps.BuildMap(c.Request.Context(), query), "Map fetched successfully")
}

// splitInterests accepts both ?interests=a&interests=b and ?interests=a,b.
func splitInterests(raw []string) []string {
	var out []string
	for _, v := range raw {
		out = append(out, strings.Split(v, ",")...)
	}
	return request_models.NormalizeTags(out)
}
