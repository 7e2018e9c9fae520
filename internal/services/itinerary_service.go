package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"tripwise/internal/models/db_models"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

const (
	maxTripDays          = 90
	maxPageSize          = 100
	maxTravelers         = 50
	exportFilenameFormat = "itinerary-%s.pdf"
)

var filenameUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, request request_models.TripRequest) (*response_models.GenerationResult, error)
	Optimize(ctx context.Context, request request_models.OptimizeRequest) (*response_models.OptimizeResponse, error)
	Get(ctx context.Context, id string) (*response_models.GenerationResult, error)
	List(ctx context.Context, page int, pageSize int) (*response_models.ItineraryPage, error)
	ExportPDF(ctx context.Context, id string) ([]byte, string, error)
}

type ItineraryService struct {
	inventory InventoryServiceInterface
	assembler ItineraryAssemblerInterface
	optimizer BudgetOptimizerInterface
	exporter  ExportServiceInterface
	repo      repositories.ItineraryRepository
	logger    *zap.Logger
}

func NewItineraryService(
	inventory InventoryServiceInterface,
	assembler ItineraryAssemblerInterface,
	optimizer BudgetOptimizerInterface,
	exporter ExportServiceInterface,
	repo repositories.ItineraryRepository,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		inventory: inventory,
		assembler: assembler,
		optimizer: optimizer,
		exporter:  exporter,
		repo:      repo,
		logger:    logger,
	}
}

// ValidateTripRequest rejects requests the generators cannot plan for.
func ValidateTripRequest(request request_models.TripRequest) error {
	if strings.TrimSpace(request.Destination) == "" {
		return fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
	}
	start, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return err
	}
	end, err := utils.ParseDate(request.EndDate)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return utils.ErrInvalidDateRange
	}
	if utils.DayCount(start, end) > maxTripDays {
		return fmt.Errorf("%w: trips are limited to %d days", utils.ErrInvalidDateRange, maxTripDays)
	}
	if math.IsNaN(request.Budget) || math.IsInf(request.Budget, 0) || request.Budget <= 0 {
		return utils.ErrInvalidBudget
	}
	if request.TravelerCount < 1 || request.TravelerCount > maxTravelers {
		return fmt.Errorf("%w: traveler_count must be between 1 and %d", utils.ErrInvalidInput, maxTravelers)
	}
	if request.AccommodationType != request_models.AccommodationAny && !IsKnownAccommodationType(request.AccommodationType) {
		return fmt.Errorf("%w: unknown accommodation_type %q", utils.ErrInvalidInput, request.AccommodationType)
	}
	switch request.TransportationType {
	case "", request_models.TransportationPublic, request_models.TransportationRental, request_models.TransportationTaxi:
	default:
		return fmt.Errorf("%w: unknown transportation_type %q", utils.ErrInvalidInput, request.TransportationType)
	}
	switch request.MealPreference {
	case request_models.MealAny, request_models.MealStreetFood, request_models.MealLocalCuisine,
		request_models.MealFineDining, request_models.MealSelfCatering:
	default:
		return fmt.Errorf("%w: unknown meal_preference %q", utils.ErrInvalidInput, request.MealPreference)
	}
	return nil
}

func (s *ItineraryService) Generate(ctx context.Context, request request_models.TripRequest) (*response_models.GenerationResult, error) {
	if err := ValidateTripRequest(request); err != nil {
		return nil, err
	}
	request.Destination = strings.TrimSpace(request.Destination)

	inventory := s.inventory.Gather(ctx, request)
	draft := s.assembler.Assemble(request, inventory)
	itinerary, report := s.optimizer.OptimizeWithReport(draft, request.Budget)
	if !report.WithinBudget {
		itinerary.TravelTips = append(itinerary.TravelTips, OverBudgetTip(report))
	}

	saved, err := s.persist(ctx, request, draft.TotalCost, itinerary, report)
	if err != nil {
		return nil, err
	}

	s.logger.Info("itinerary generated",
		zap.String("id", saved.ID.String()),
		zap.String("destination", request.Destination),
		zap.Int("days", len(itinerary.Days)),
		zap.String("draft_total", draft.TotalCost),
		zap.String("total_cost", itinerary.TotalCost),
		zap.Bool("optimized", report.Applied))

	return &response_models.GenerationResult{
		ID:         saved.ID.String(),
		Itinerary:  itinerary,
		DraftTotal: draft.TotalCost,
		Report:     report,
	}, nil
}

func (s *ItineraryService) persist(
	ctx context.Context,
	request request_models.TripRequest,
	draftTotal string,
	itinerary response_models.Itinerary,
	report response_models.OptimizationReport,
) (*db_models.SavedItinerary, error) {
	itineraryJSON, err := json.Marshal(itinerary)
	if err != nil {
		return nil, fmt.Errorf("%w: encode itinerary: %v", utils.ErrDatabaseError, err)
	}
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("%w: encode report: %v", utils.ErrDatabaseError, err)
	}

	saved := &db_models.SavedItinerary{
		Destination:        request.Destination,
		StartDate:          request.StartDate,
		EndDate:            request.EndDate,
		TravelerCount:      request.TravelerCount,
		Budget:             request.Budget,
		AccommodationType:  string(request.AccommodationType),
		TransportationType: string(request.TransportationType),
		MealPreference:     string(request.MealPreference),
		Interests:          request.NormalizedInterests(),
		DraftTotal:         draftTotal,
		TotalCost:          itinerary.TotalCost,
		Optimized:          report.Applied,
		Itinerary:          itineraryJSON,
		Report:             reportJSON,
	}
	if err := s.repo.Create(ctx, saved); err != nil {
		s.logger.Error("failed to save itinerary", zap.String("destination", request.Destination), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return saved, nil
}

func (s *ItineraryService) Optimize(_ context.Context, request request_models.OptimizeRequest) (*response_models.OptimizeResponse, error) {
	if math.IsNaN(request.Budget) || math.IsInf(request.Budget, 0) || request.Budget <= 0 {
		return nil, utils.ErrInvalidBudget
	}
	itinerary, report := s.optimizer.OptimizeWithReport(request.Itinerary, request.Budget)
	return &response_models.OptimizeResponse{Itinerary: itinerary, Report: report}, nil
}

func (s *ItineraryService) Get(ctx context.Context, id string) (*response_models.GenerationResult, error) {
	saved, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &response_models.GenerationResult{ID: saved.ID.String(), DraftTotal: saved.DraftTotal}
	if err := json.Unmarshal(saved.Itinerary, &result.Itinerary); err != nil {
		return nil, fmt.Errorf("%w: decode itinerary %s: %v", utils.ErrDatabaseError, id, err)
	}
	if len(saved.Report) > 0 {
		if err := json.Unmarshal(saved.Report, &result.Report); err != nil {
			return nil, fmt.Errorf("%w: decode report %s: %v", utils.ErrDatabaseError, id, err)
		}
	}
	return result, nil
}

func (s *ItineraryService) load(ctx context.Context, id string) (*db_models.SavedItinerary, error) {
	saved, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if saved == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return saved, nil
}

func (s *ItineraryService) List(ctx context.Context, page int, pageSize int) (*response_models.ItineraryPage, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return nil, utils.ErrInvalidPageSize
	}

	items, total, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := &response_models.ItineraryPage{
		Items:    make([]response_models.SavedItinerarySummary, 0, len(items)),
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}
	for _, it := range items {
		interests := []string(it.Interests)
		if interests == nil {
			interests = []string{}
		}
		out.Items = append(out.Items, response_models.SavedItinerarySummary{
			ID:            it.ID.String(),
			Destination:   it.Destination,
			StartDate:     it.StartDate,
			EndDate:       it.EndDate,
			TravelerCount: it.TravelerCount,
			Budget:        it.Budget,
			TotalCost:     it.TotalCost,
			Interests:     interests,
			Optimized:     it.Optimized,
			CreatedAt:     it.CreatedAt,
		})
	}
	return out, nil
}

func (s *ItineraryService) ExportPDF(ctx context.Context, id string) ([]byte, string, error) {
	result, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	doc, err := s.exporter.RenderPDF(result.Itinerary)
	if err != nil {
		s.logger.Error("pdf export failed", zap.String("id", id), zap.Error(err))
		return nil, "", err
	}

	slug := strings.Trim(filenameUnsafe.ReplaceAllString(strings.ToLower(cityName(result.Itinerary.Destination)), "-"), "-")
	if slug == "" {
		slug = result.ID
	}
	return doc, fmt.Sprintf(exportFilenameFormat, slug), nil
}
