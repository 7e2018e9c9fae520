package services

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
	"tripwise/internal/models/response_models"
	"tripwise/pkg/utils"
)

const (
	accommodationReductionCap  = 0.5
	activitiesReductionCap     = 0.4
	transportationReductionCap = 0.45

	// the most expensive activity of each day takes 20% more of the cut
	topActivityBoost = 1.2

	alternativeCostFactor = 0.6
	alternativeNamePrefix = "Budget "
)

type BudgetOptimizerInterface interface {
	Optimize(itinerary response_models.Itinerary, targetBudget float64) response_models.Itinerary
	OptimizeWithReport(itinerary response_models.Itinerary, targetBudget float64) (response_models.Itinerary, response_models.OptimizationReport)
}

type BudgetOptimizer struct {
	logger *zap.Logger
}

func NewBudgetOptimizer(logger *zap.Logger) BudgetOptimizerInterface {
	return &BudgetOptimizer{logger: logger}
}

// ReductionCap is the largest fraction a single pass may take off category.
func ReductionCap(category response_models.BudgetCategory) float64 {
	switch category {
	case response_models.CategoryAccommodation:
		return accommodationReductionCap
	case response_models.CategoryActivities:
		return activitiesReductionCap
	case response_models.CategoryTransportation:
		return transportationReductionCap
	default:
		return 0
	}
}

// DominantCategory picks the category to cut. Accommodation wins when it is
// at least as large as both others; otherwise activities win when at least as
// large as transportation.
func DominantCategory(totals response_models.CategoryTotals) (response_models.BudgetCategory, float64) {
	switch {
	case totals.Accommodation >= totals.Activities && totals.Accommodation >= totals.Transportation:
		return response_models.CategoryAccommodation, totals.Accommodation
	case totals.Activities >= totals.Transportation:
		return response_models.CategoryActivities, totals.Activities
	default:
		return response_models.CategoryTransportation, totals.Transportation
	}
}

func dayCostCents(day response_models.Day) int64 {
	cents := utils.ToCents(utils.ParseCurrency(day.Accommodation.Cost)) +
		utils.ToCents(utils.ParseCurrency(day.Transportation.Cost))
	for _, a := range day.Activities {
		cents += utils.ToCents(utils.ParseCurrency(a.Cost))
	}
	return cents
}

// DayCost is accommodation + transportation + every activity of the day.
func DayCost(day response_models.Day) float64 {
	return utils.FromCents(dayCostCents(day))
}

// ItineraryTotal sums DayCost over all days.
func ItineraryTotal(itinerary response_models.Itinerary) float64 {
	var cents int64
	for _, d := range itinerary.Days {
		cents += dayCostCents(d)
	}
	return utils.FromCents(cents)
}

func CategoryTotalsOf(itinerary response_models.Itinerary) response_models.CategoryTotals {
	var acc, act, trans int64
	for _, d := range itinerary.Days {
		acc += utils.ToCents(utils.ParseCurrency(d.Accommodation.Cost))
		trans += utils.ToCents(utils.ParseCurrency(d.Transportation.Cost))
		for _, a := range d.Activities {
			act += utils.ToCents(utils.ParseCurrency(a.Cost))
		}
	}
	return response_models.CategoryTotals{
		Accommodation:  utils.FromCents(acc),
		Activities:     utils.FromCents(act),
		Transportation: utils.FromCents(trans),
	}
}

func (b *BudgetOptimizer) Optimize(itinerary response_models.Itinerary, targetBudget float64) response_models.Itinerary {
	out, _ := b.OptimizeWithReport(itinerary, targetBudget)
	return out
}

// OptimizeWithReport makes one capped reduction pass over the dominant cost
// category when the itinerary is over budget, then attaches cheaper
// alternative activities to every day. A plan still over budget after the
// cap is returned as is. Any internal failure returns the input untouched.
func (b *BudgetOptimizer) OptimizeWithReport(
	itinerary response_models.Itinerary,
	targetBudget float64,
) (out response_models.Itinerary, report response_models.OptimizationReport) {
	total := utils.ParseCurrency(itinerary.TotalCost)
	unchanged := response_models.OptimizationReport{
		TargetBudget:  targetBudget,
		OriginalTotal: total,
		FinalTotal:    total,
		WithinBudget:  total <= targetBudget,
	}

	defer func() {
		if r := recover(); r != nil {
			b.logger.Warn("budget optimization failed, keeping original itinerary",
				zap.String("destination", itinerary.Destination), zap.Any("panic", r))
			out, report = itinerary, unchanged
		}
	}()

	unchanged.Totals = CategoryTotalsOf(itinerary)

	if len(itinerary.Days) == 0 || targetBudget <= 0 || total <= targetBudget {
		return itinerary, unchanged
	}

	savingsNeeded := total - targetBudget
	category, categoryTotal := DominantCategory(unchanged.Totals)
	if categoryTotal <= 0 {
		return itinerary, unchanged
	}

	pct := math.Min(savingsNeeded/categoryTotal, ReductionCap(category))
	if math.IsNaN(pct) || pct <= 0 {
		return itinerary, unchanged
	}

	optimized := itinerary.Clone()
	for i := range optimized.Days {
		day := &optimized.Days[i]
		switch category {
		case response_models.CategoryAccommodation:
			day.Accommodation.Cost = reduceCost(day.Accommodation.Cost, pct)
		case response_models.CategoryTransportation:
			day.Transportation.Cost = reduceCost(day.Transportation.Cost, pct)
		case response_models.CategoryActivities:
			reduceActivities(day.Activities, pct)
		}
	}

	finalTotal := ItineraryTotal(optimized)
	optimized.TotalCost = utils.FormatCurrency(finalTotal)

	for i := range optimized.Days {
		optimized.Days[i].AlternativeActivities = budgetAlternatives(optimized.Days[i].Activities)
	}

	b.logger.Info("itinerary optimized",
		zap.String("destination", itinerary.Destination),
		zap.String("category", string(category)),
		zap.Float64("reduction", pct),
		zap.Float64("original_total", total),
		zap.Float64("final_total", finalTotal),
		zap.Float64("target_budget", targetBudget))

	return optimized, response_models.OptimizationReport{
		Applied:             true,
		TargetBudget:        targetBudget,
		OriginalTotal:       total,
		FinalTotal:          finalTotal,
		SavingsNeeded:       utils.RoundToCents(savingsNeeded),
		SavingsAchieved:     utils.RoundToCents(total - finalTotal),
		DominantCategory:    category,
		ReductionPercentage: pct,
		Totals:              unchanged.Totals,
		WithinBudget:        finalTotal <= targetBudget,
	}
}

func reduceCost(cost string, pct float64) string {
	return utils.FormatCurrency(utils.ParseCurrency(cost) * (1 - pct))
}

// reduceActivities orders the day by cost, most expensive first, and cuts
// every activity by pct; the first one by pct × 1.2.
func reduceActivities(activities []response_models.Activity, pct float64) {
	sort.SliceStable(activities, func(i, j int) bool {
		return utils.ParseCurrency(activities[i].Cost) > utils.ParseCurrency(activities[j].Cost)
	})
	for i := range activities {
		cut := pct
		if i == 0 {
			cut = math.Min(pct*topActivityBoost, 1)
		}
		activities[i].Cost = reduceCost(activities[i].Cost, cut)
	}
}

func budgetAlternatives(activities []response_models.Activity) []response_models.Activity {
	alternatives := make([]response_models.Activity, 0, len(activities))
	for _, a := range activities {
		alt := a
		alt.Name = alternativeNamePrefix + a.Name
		alt.Description = fmt.Sprintf("A lower-cost take on %s. %s", a.Name, a.Description)
		alt.Cost = utils.FormatCurrency(utils.ParseCurrency(a.Cost) * alternativeCostFactor)
		alternatives = append(alternatives, alt)
	}
	return alternatives
}
