package response_models

type BudgetCategory string

const (
	CategoryNone           BudgetCategory = ""
	CategoryAccommodation  BudgetCategory = "accommodation"
	CategoryActivities     BudgetCategory = "activities"
	CategoryTransportation BudgetCategory = "transportation"
)

type CategoryTotals struct {
	Accommodation  float64 `json:"accommodation"`
	Activities     float64 `json:"activities"`
	Transportation float64 `json:"transportation"`
}

type OptimizationReport struct {
	Applied             bool           `json:"applied"`
	TargetBudget        float64        `json:"target_budget"`
	OriginalTotal       float64        `json:"original_total"`
	FinalTotal          float64        `json:"final_total"`
	SavingsNeeded       float64        `json:"savings_needed"`
	SavingsAchieved     float64        `json:"savings_achieved"`
	DominantCategory    BudgetCategory `json:"dominant_category,omitempty"`
	ReductionPercentage float64        `json:"reduction_percentage"`
	Totals              CategoryTotals `json:"category_totals"`
	WithinBudget        bool           `json:"within_budget"`
}

type OptimizeResponse struct {
	Itinerary Itinerary          `json:"itinerary"`
	Report    OptimizationReport `json:"report"`
}

type GenerationResult struct {
	ID         string             `json:"id"`
	Itinerary  Itinerary          `json:"itinerary"`
	DraftTotal string             `json:"draft_total"`
	Report     OptimizationReport `json:"report"`
}

type SavedItinerarySummary struct {
	ID            string   `json:"id"`
	Destination   string   `json:"destination"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	TravelerCount int      `json:"traveler_count"`
	Budget        float64  `json:"budget"`
	TotalCost     string   `json:"total_cost"`
	Interests     []string `json:"interests"`
	Optimized     bool     `json:"optimized"`
	CreatedAt     int64    `json:"created_at"`
}

type ItineraryPage struct {
	Items    []SavedItinerarySummary `json:"items"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
	Total    int64                   `json:"total"`
}
