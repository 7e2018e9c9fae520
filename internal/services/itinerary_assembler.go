package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/pkg/utils"
)

type ItineraryAssemblerInterface interface {
	Assemble(request request_models.TripRequest, inventory response_models.Inventory) response_models.Itinerary
}

type ItineraryAssembler struct {
	logger *zap.Logger
}

func NewItineraryAssembler(logger *zap.Logger) ItineraryAssemblerInterface {
	return &ItineraryAssembler{logger: logger}
}

const (
	minActivitiesPerDay = 2
	maxActivitiesPerDay = 4
)

// Assemble builds the draft plan: one accommodation, one transportation and
// two to four activities per calendar day. Empty inventory yields zero-cost
// placeholders so every day keeps its full shape.
func (a *ItineraryAssembler) Assemble(request request_models.TripRequest, inventory response_models.Inventory) response_models.Itinerary {
	destination := strings.TrimSpace(request.Destination)
	itinerary := response_models.Itinerary{
		Destination: destination,
		TotalCost:   utils.FormatCurrency(0),
		Duration:    utils.DurationLabel(0),
		Days:        []response_models.Day{},
		TravelTips:  []string{},
	}

	start, errStart := utils.ParseDate(request.StartDate)
	end, errEnd := utils.ParseDate(request.EndDate)
	if errStart != nil || errEnd != nil {
		a.logger.Warn("cannot assemble itinerary without valid dates",
			zap.String("start_date", request.StartDate), zap.String("end_date", request.EndDate))
		return itinerary
	}

	dates := utils.DaysInclusive(start, end, maxTripDays)
	travelers := request.TravelerCount
	if travelers < 1 {
		travelers = 1
	}

	seed := utils.HashString(destination + "-" + utils.FormatDate(start) + "-" + utils.FormatDate(end))
	hotels := hotelsForPreference(inventory.Hotels, request.AccommodationType)
	ranked := RankActivities(inventory.Activities, request.NormalizedInterests())

	weatherByDate := make(map[string]response_models.WeatherDay, len(inventory.Weather))
	for _, w := range inventory.Weather {
		weatherByDate[w.Date] = w
	}

	cursor := 0
	for i, d := range dates {
		date := utils.FormatDate(d)
		day := response_models.Day{
			Date:           date,
			Accommodation:  accommodationFor(hotels, i, travelers, destination),
			Transportation: TransportationFor(request.TransportationType, travelers, seed+i*7, destination),
		}

		if len(ranked) == 0 {
			day.Activities = []response_models.Activity{placeholderActivity(destination)}
		} else {
			count := minActivitiesPerDay + (seed+i*3)%(maxActivitiesPerDay-minActivitiesPerDay+1)
			if count > len(ranked) {
				count = len(ranked)
			}
			day.Activities = make([]response_models.Activity, 0, count)
			for k := 0; k < count; k++ {
				day.Activities = append(day.Activities, activityFromOption(ranked[cursor%len(ranked)], travelers))
				cursor++
			}
		}

		if w, ok := weatherByDate[date]; ok {
			day.Weather = &w
		}
		itinerary.Days = append(itinerary.Days, day)
	}

	if len(inventory.Flights) > 0 {
		f := inventory.Flights[0]
		itinerary.Flight = &response_models.FlightSummary{
			Airline:      f.Airline,
			FlightNumber: f.FlightNumber,
			Departure:    f.DepartureTime,
			Price:        utils.FormatCurrency(f.Price),
		}
	}

	itinerary.TotalCost = utils.FormatCurrency(ItineraryTotal(itinerary))
	itinerary.Duration = utils.DurationLabel(len(itinerary.Days))
	itinerary.TravelTips = BuildTravelTips(request, inventory, itinerary)
	return itinerary
}

// RankActivities orders activities by interest overlap, keeping the incoming
// order for equal scores.
func RankActivities(activities []response_models.ActivityOption, interests []string) []response_models.ActivityOption {
	ranked := append([]response_models.ActivityOption(nil), activities...)
	if len(interests) == 0 || len(ranked) == 0 {
		return ranked
	}

	wantedTags := make(map[string]bool, len(interests))
	for _, tag := range interests {
		wantedTags[tag] = true
	}
	wantedCategories := make(map[string]bool)
	for _, c := range CategoriesForInterests(interests) {
		wantedCategories[c] = true
	}

	score := func(a response_models.ActivityOption) int {
		s := 0
		if wantedCategories[a.Category] {
			s += 2
		}
		for _, t := range a.Tags {
			if wantedTags[strings.ToLower(t)] {
				s++
			}
		}
		return s
	}

	scores := make(map[string]int, len(ranked))
	for _, a := range ranked {
		scores[a.ID] = score(a)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].ID] > scores[ranked[j].ID]
	})
	return ranked
}

func hotelsForPreference(hotels []response_models.HotelOption, preferred request_models.AccommodationType) []response_models.HotelOption {
	if !IsKnownAccommodationType(preferred) {
		return hotels
	}
	var matching []response_models.HotelOption
	for _, h := range hotels {
		if h.Type == string(preferred) {
			matching = append(matching, h)
		}
	}
	if len(matching) == 0 {
		return hotels
	}
	return matching
}

func accommodationFor(hotels []response_models.HotelOption, dayIndex, travelers int, destination string) response_models.Accommodation {
	if len(hotels) == 0 {
		return response_models.Accommodation{
			Name:     "Accommodation to be arranged",
			Location: destination,
			Cost:     utils.FormatCurrency(0),
		}
	}
	h := hotels[dayIndex%len(hotels)]
	return response_models.Accommodation{
		Name:     h.Name,
		Location: h.Address,
		Cost:     utils.FormatCurrency(h.PricePerNight * float64(RoomsForGuests(travelers))),
	}
}

// TransportationFor prices one day of local transport. Unknown preferences
// fall back to public transit.
func TransportationFor(pref request_models.TransportationType, travelers, seed int, destination string) response_models.Transportation {
	city := cityName(destination)
	if seed < 0 {
		seed = -seed
	}

	switch pref {
	case request_models.TransportationRental:
		return response_models.Transportation{
			Type:    "Rental car",
			Details: fmt.Sprintf("Compact rental car with basic insurance for getting around %s", city),
			Cost:    utils.FormatCurrency(float64(40 + seed%31)),
		}
	case request_models.TransportationTaxi:
		vehicles := (travelers + 3) / 4
		return response_models.Transportation{
			Type:    "Taxi / rideshare",
			Details: fmt.Sprintf("Point-to-point rides between stops in %s", city),
			Cost:    utils.FormatCurrency(float64((25 + seed%21) * vehicles)),
		}
	default:
		return response_models.Transportation{
			Type:    "Public transit",
			Details: fmt.Sprintf("Day pass for metro and buses in %s", city),
			Cost:    utils.FormatCurrency(float64((5 + seed%11) * travelers)),
		}
	}
}

func activityFromOption(a response_models.ActivityOption, travelers int) response_models.Activity {
	return response_models.Activity{
		Name:        a.Name,
		Description: a.Description,
		Cost:        utils.FormatCurrency(a.Price * float64(travelers)),
		Category:    a.Category,
		Location:    a.Location,
		Duration:    FormatHours(a.DurationHours),
	}
}

func placeholderActivity(destination string) response_models.Activity {
	return response_models.Activity{
		Name:        "Free time to explore",
		Description: fmt.Sprintf("Wander %s at your own pace.", cityName(destination)),
		Cost:        utils.FormatCurrency(0),
		Category:    "leisure",
		Location:    destination,
		Duration:    "flexible",
	}
}

// FormatHours renders 1 as "1 hour" and 2.5 as "2.5 hours".
func FormatHours(h float64) string {
	if h == 1 {
		return "1 hour"
	}
	return strconv.FormatFloat(h, 'f', -1, 64) + " hours"
}
