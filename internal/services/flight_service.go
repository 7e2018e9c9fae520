package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/pkg/utils"
)

type FlightServiceInterface interface {
	SearchFlights(ctx context.Context, query request_models.FlightQuery) []response_models.Flight
}

type FlightService struct {
	logger *zap.Logger
}

func NewFlightService(logger *zap.Logger) FlightServiceInterface {
	return &FlightService{logger: logger}
}

type airline struct {
	name string
	code string
}

var airlines = []airline{
	{"Delta Air Lines", "DL"},
	{"United Airlines", "UA"},
	{"American Airlines", "AA"},
	{"JetBlue", "B6"},
	{"Southwest Airlines", "WN"},
	{"Alaska Airlines", "AS"},
	{"Spirit Airlines", "NK"},
	{"Frontier Airlines", "F9"},
}

// SearchFlights returns 3-7 synthetic offers sorted by total price. The
// result is fully determined by origin, destination and departure date.
func (s *FlightService) SearchFlights(_ context.Context, query request_models.FlightQuery) []response_models.Flight {
	return failSoft(s.logger, "flights",
		[]zap.Field{zap.String("destination", query.Destination), zap.String("depart_date", query.DepartDate)},
		func() []response_models.Flight { return generateFlights(query) })
}

func generateFlights(query request_models.FlightQuery) []response_models.Flight {
	destination := strings.TrimSpace(query.Destination)
	origin := strings.ToUpper(strings.TrimSpace(query.Origin))
	if destination == "" || query.Passengers <= 0 {
		return nil
	}

	depart, err := utils.ParseDate(query.DepartDate)
	if err != nil {
		return nil
	}

	var ret *time.Time
	if query.ReturnDate != "" {
		if r, err := utils.ParseDate(query.ReturnDate); err == nil && !r.Before(depart) {
			ret = &r
		}
	}

	seed := utils.HashString(origin + "-" + destination + "-" + utils.FormatDate(depart))
	count := 3 + seed%5

	flights := make([]response_models.Flight, 0, count)
	for i := 0; i < count; i++ {
		carrier := utils.Pick(airlines, seed+i*17)
		durationHours := 2 + (seed+i*31)%10
		stops := (seed + i*13) % 3
		variance := (seed+i*37)%60 - 30

		perPassenger := float64(150 + durationHours*70 + variance)

		hour := 5 + (seed+i*23)%17
		minute := ((seed + i*29) % 4) * 15
		departure := depart.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
		arrival := departure.Add(time.Duration(durationHours) * time.Hour)

		number := fmt.Sprintf("%s%d", carrier.code, 100+(seed+i*41)%900)

		f := response_models.Flight{
			ID:                fmt.Sprintf("FL-%d-%02d", seed%100000, i+1),
			Airline:           carrier.name,
			FlightNumber:      number,
			Origin:            origin,
			Destination:       destination,
			DepartureTime:     departure.Format(time.RFC3339),
			ArrivalTime:       arrival.Format(time.RFC3339),
			DurationHours:     durationHours,
			Stops:             stops,
			Cabin:             "economy",
			PricePerPassenger: utils.RoundToCents(perPassenger),
			Price:             utils.RoundToCents(perPassenger * float64(query.Passengers)),
			Currency:          currencyUSD,
		}

		if ret != nil {
			retHour := 7 + (seed+i*43)%14
			retDeparture := ret.Add(time.Duration(retHour) * time.Hour)
			f.ReturnDepartureTime = retDeparture.Format(time.RFC3339)
			f.ReturnArrivalTime = retDeparture.Add(time.Duration(durationHours) * time.Hour).Format(time.RFC3339)
		}

		flights = append(flights, f)
	}

	sort.SliceStable(flights, func(a, b int) bool {
		if flights[a].Price != flights[b].Price {
			return flights[a].Price < flights[b].Price
		}
		return flights[a].ID < flights[b].ID
	})
	return flights
}
