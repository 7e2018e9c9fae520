package request_models

import "tripwise/internal/models/response_models"

type OptimizeRequest struct {
	Itinerary response_models.Itinerary `json:"itinerary" binding:"required"`
	Budget    float64                   `json:"budget" binding:"required,gt=0"`
}

type ListItinerariesQuery struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"pageSize,default=10"`
}
