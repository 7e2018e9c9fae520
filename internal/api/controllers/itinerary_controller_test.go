package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type fakeItineraryService struct {
	generated request_models.TripRequest
	page      int
	pageSize  int
}

func (f *fakeItineraryService) Generate(_ context.Context, r request_models.TripRequest) (*response_models.GenerationResult, error) {
	if err := services.ValidateTripRequest(r); err != nil {
		return nil, err
	}
	f.generated = r
	return &response_models.GenerationResult{ID: "abc", Itinerary: response_models.Itinerary{Destination: r.Destination}}, nil
}

func (f *fakeItineraryService) Optimize(_ context.Context, r request_models.OptimizeRequest) (*response_models.OptimizeResponse, error) {
	return &response_models.OptimizeResponse{Itinerary: r.Itinerary}, nil
}

func (f *fakeItineraryService) Get(_ context.Context, id string) (*response_models.GenerationResult, error) {
	if id != "abc" {
		return nil, utils.ErrItineraryNotFound
	}
	return &response_models.GenerationResult{ID: id}, nil
}

func (f *fakeItineraryService) List(_ context.Context, page, pageSize int) (*response_models.ItineraryPage, error) {
	f.page, f.pageSize = page, pageSize
	if pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	return &response_models.ItineraryPage{Items: []response_models.SavedItinerarySummary{}, Page: page, PageSize: pageSize}, nil
}

func (f *fakeItineraryService) ExportPDF(_ context.Context, id string) ([]byte, string, error) {
	if id != "abc" {
		return nil, "", utils.ErrItineraryNotFound
	}
	return []byte("%PDF-1.3 test"), "itinerary-rome.pdf", nil
}

func newItineraryRouter(svc services.ItineraryServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	zap.ReplaceGlobals(zap.NewNop())
	r := gin.New()
	ctrl := NewItineraryController(svc)
	r.POST("/api/itineraries/generate", ctrl.GenerateItinerary)
	r.POST("/api/itineraries/optimize", ctrl.OptimizeItinerary)
	r.GET("/api/itineraries", ctrl.ListItineraries)
	r.GET("/api/itineraries/:id", ctrl.GetItinerary)
	r.GET("/api/itineraries/:id/pdf", ctrl.ExportItineraryPDF)
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateItinerary(t *testing.T) {
	svc := &fakeItineraryService{}
	r := newItineraryRouter(svc)

	w := doRequest(r, http.MethodPost, "/api/itineraries/generate", `{
		"destination": "Rome, Italy",
		"start_date": "2025-05-01",
		"end_date": "2025-05-03",
		"budget": 900,
		"traveler_count": 2,
		"interests": ["history", "food"],
		"transportation_type": "taxi"
	}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body struct {
		Data response_models.GenerationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "abc", body.Data.ID)
	assert.Equal(t, "Rome, Italy", svc.generated.Destination)
	assert.Equal(t, request_models.TransportationTaxi, svc.generated.TransportationType)
}

func TestGenerateItinerary_BadRequests(t *testing.T) {
	r := newItineraryRouter(&fakeItineraryService{})

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"destination":`},
		{"missing budget", `{"destination":"Rome","start_date":"2025-05-01","end_date":"2025-05-03","traveler_count":1}`},
		{"reversed dates", `{"destination":"Rome","start_date":"2025-05-03","end_date":"2025-05-01","budget":10,"traveler_count":1}`},
		{"bad date", `{"destination":"Rome","start_date":"May 1","end_date":"2025-05-03","budget":10,"traveler_count":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/api/itineraries/generate", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"status":"error"`)
		})
	}
}

func TestOptimizeItinerary(t *testing.T) {
	r := newItineraryRouter(&fakeItineraryService{})

	w := doRequest(r, http.MethodPost, "/api/itineraries/optimize", `{"itinerary":{"destination":"Rome","total_cost":"$10.00","days":[]},"budget":5}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodPost, "/api/itineraries/optimize", `{"itinerary":{"destination":"Rome"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAndGetItineraries(t *testing.T) {
	svc := &fakeItineraryService{}
	r := newItineraryRouter(svc)

	w := doRequest(r, http.MethodGet, "/api/itineraries", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.page)
	assert.Equal(t, 10, svc.pageSize)

	w = doRequest(r, http.MethodGet, "/api/itineraries?page=2&pageSize=500", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodGet, "/api/itineraries?page=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodGet, "/api/itineraries/abc", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/itineraries/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportItineraryPDF(t *testing.T) {
	r := newItineraryRouter(&fakeItineraryService{})

	w := doRequest(r, http.MethodGet, "/api/itineraries/abc/pdf", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "itinerary-rome.pdf")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))

	w = doRequest(r, http.MethodGet, "/api/itineraries/missing/pdf", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
