package services

import (
	"fmt"

	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/pkg/utils"
)

func BuildTravelTips(
	request request_models.TripRequest,
	inventory response_models.Inventory,
	itinerary response_models.Itinerary,
) []string {
	tips := []string{}

	if n := len(itinerary.Days); n > 0 && request.Budget > 0 {
		tips = append(tips, fmt.Sprintf("Plan on about %s per day to stay within your %s budget.",
			utils.FormatCurrency(request.Budget/float64(n)), utils.FormatCurrency(request.Budget)))
	}

	switch request.TransportationType {
	case request_models.TransportationRental:
		tips = append(tips, "Book the rental car early and check parking costs near your accommodation.")
	case request_models.TransportationTaxi:
		tips = append(tips, "Compare rideshare apps with local taxis before each ride.")
	default:
		tips = append(tips, "A transit day pass is usually cheaper than buying single tickets.")
	}

	var wet, snowy, hot int
	for _, w := range inventory.Weather {
		switch w.Condition {
		case ConditionRainy, ConditionStormy:
			wet++
		case ConditionSnowy:
			snowy++
		}
		if w.MaxTempC >= 30 {
			hot++
		}
	}
	if wet > 0 {
		tips = append(tips, fmt.Sprintf("Pack rain gear: rain or storms are expected on %d day(s).", wet))
	}
	if snowy > 0 {
		tips = append(tips, fmt.Sprintf("Snow is expected on %d day(s); bring warm layers.", snowy))
	}
	if hot > 0 {
		tips = append(tips, fmt.Sprintf("Temperatures reach 30°C or more on %d day(s); carry water.", hot))
	}

	if itinerary.Flight != nil {
		tips = append(tips, fmt.Sprintf("Cheapest airfare found: %s with %s (not included in daily costs).",
			itinerary.Flight.Price, itinerary.Flight.Airline))
	}

	switch request.MealPreference {
	case request_models.MealStreetFood:
		tips = append(tips, "Street food stalls and markets keep meal costs low.")
	case request_models.MealLocalCuisine:
		tips = append(tips, "Look for set lunch menus at local restaurants.")
	case request_models.MealFineDining:
		tips = append(tips, "Reserve fine-dining spots early; lunch menus are often cheaper than dinner.")
	case request_models.MealSelfCatering:
		tips = append(tips, "Pick accommodation with a kitchenette so you can self-cater.")
	}

	if len(inventory.Activities) == 0 {
		tips = append(tips, "Activity listings were unavailable, so days include free time to explore.")
	}
	if len(inventory.Hotels) == 0 {
		tips = append(tips, "No accommodation listings were available; arrange a stay before you travel.")
	}
	return tips
}

// OverBudgetTip is added when the optimized plan still exceeds the budget.
func OverBudgetTip(report response_models.OptimizationReport) string {
	over := report.FinalTotal - report.TargetBudget
	return fmt.Sprintf("This plan is still about %s over budget; the budget alternatives listed for each day can close the gap.",
		utils.FormatCurrency(over))
}
