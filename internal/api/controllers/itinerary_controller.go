package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripwise/internal/models/request_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate an itinerary
// @Description Build a day-by-day plan for the trip and fit it to the budget
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Trip request"
// @Success 200 {object} response_models.GenerationResult
// @Failure 400 {object} utils.APIResponse
// @Router /api/itineraries/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var request request_models.TripRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip request: "+err.Error())
		return
	}

	result, err := i.itineraryService.Generate(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary generated successfully")
}

// OptimizeItinerary godoc
// @Summary Optimize an itinerary against a budget
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.OptimizeRequest true "Itinerary and budget"
// @Success 200 {object} response_models.OptimizeResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/itineraries/optimize [post]
func (i *ItineraryController) OptimizeItinerary(c *gin.Context) {
	var request request_models.OptimizeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid optimize request: "+err.Error())
		return
	}

	result, err := i.itineraryService.Optimize(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary optimized successfully")
}

// ListItineraries godoc
// @Summary List saved itineraries
// @Tags Itinerary
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} response_models.ItineraryPage
// @Router /api/itineraries [get]
func (i *ItineraryController) ListItineraries(c *gin.Context) {
	var query request_models.ListItinerariesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page parameters")
		return
	}

	page, err := i.itineraryService.List(c.Request.Context(), query.Page, query.PageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Itineraries fetched successfully")
}

// GetItinerary godoc
// @Summary Get a saved itinerary
// @Tags Itinerary
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} response_models.GenerationResult
// @Failure 404 {object} utils.APIResponse
// @Router /api/itineraries/{id} [get]
func (i *ItineraryController) GetItinerary(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	result, err := i.itineraryService.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary fetched successfully")
}

// ExportItineraryPDF godoc
// @Summary Download a saved itinerary as PDF
// @Tags Itinerary
// @Produce application/pdf
// @Param id path string true "Itinerary ID"
// @Success 200 {file} binary
// @Failure 404 {object} utils.APIResponse
// @Router /api/itineraries/{id}/pdf [get]
func (i *ItineraryController) ExportItineraryPDF(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	doc, filename, err := i.itineraryService.ExportPDF(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
