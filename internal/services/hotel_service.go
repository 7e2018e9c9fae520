package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/pkg/utils"
)

type HotelServiceInterface interface {
	SearchHotels(ctx context.Context, query request_models.HotelQuery) []response_models.HotelOption
}

type HotelService struct {
	logger *zap.Logger
}

func NewHotelService(logger *zap.Logger) HotelServiceInterface {
	return &HotelService{logger: logger}
}

var hotelTypes = []request_models.AccommodationType{
	request_models.AccommodationHostel,
	request_models.AccommodationHotel,
	request_models.AccommodationApartment,
	request_models.AccommodationResort,
	request_models.AccommodationVilla,
	request_models.AccommodationGuesthouse,
}

var hotelTypeMultipliers = map[request_models.AccommodationType]float64{
	request_models.AccommodationHostel:     0.4,
	request_models.AccommodationHotel:      1.0,
	request_models.AccommodationApartment:  1.2,
	request_models.AccommodationResort:     1.8,
	request_models.AccommodationVilla:      2.5,
	request_models.AccommodationGuesthouse: 0.7,
}

var hotelTypeLabels = map[request_models.AccommodationType]string{
	request_models.AccommodationHostel:     "Hostel",
	request_models.AccommodationHotel:      "Hotel",
	request_models.AccommodationApartment:  "Apartments",
	request_models.AccommodationResort:     "Resort",
	request_models.AccommodationVilla:      "Villa",
	request_models.AccommodationGuesthouse: "Guesthouse",
}

// len(hotelAmenities) must stay coprime with amenityStep so picks are unique.
var hotelAmenities = []string{
	"Free WiFi", "Breakfast included", "Pool", "Fitness center", "Air conditioning", "Kitchenette",
	"Airport shuttle", "Parking", "Spa", "24h reception", "Laundry", "Rooftop terrace",
}

const amenityStep = 5

var roomTypes = []string{"Dorm bed", "Standard double", "Twin room", "Deluxe king", "Family suite", "Studio"}

var streetNames = []string{
	"Main Street", "Market Road", "Harbor Lane", "Station Avenue", "Park Boulevard",
	"Church Street", "River Walk", "Old Town Square", "Hillside Drive", "Garden Row",
}

var hotelNamePrefixes = []string{
	"Grand", "Royal", "Cozy", "Central", "Harbor View", "Garden", "Sunset", "Riverside", "Old Town", "Skyline",
}

// IsKnownAccommodationType reports whether t names one of the priced types.
func IsKnownAccommodationType(t request_models.AccommodationType) bool {
	_, ok := hotelTypeMultipliers[t]
	return ok
}

// NightlyRate is the per-room price for one night: 100 × type multiplier ×
// 1.3^(rating-3).
func NightlyRate(t request_models.AccommodationType, rating float64) float64 {
	mult, ok := hotelTypeMultipliers[t]
	if !ok {
		mult = 1.0
	}
	return utils.RoundToCents(100 * mult * math.Pow(1.3, rating-3))
}

// RoomsForGuests is ceil(guests/2).
func RoomsForGuests(guests int) int {
	if guests <= 0 {
		return 0
	}
	return (guests + 1) / 2
}

// SearchHotels returns 8-15 synthetic stays sorted by total price. Guests or
// nights of zero yield an empty list.
func (s *HotelService) SearchHotels(_ context.Context, query request_models.HotelQuery) []response_models.HotelOption {
	return failSoft(s.logger, "hotels",
		[]zap.Field{zap.String("destination", query.Destination), zap.String("check_in", query.CheckIn)},
		func() []response_models.HotelOption { return generateHotels(query) })
}

func generateHotels(query request_models.HotelQuery) []response_models.HotelOption {
	destination := strings.TrimSpace(query.Destination)
	if destination == "" || query.Guests <= 0 {
		return nil
	}

	checkIn, err := utils.ParseDate(query.CheckIn)
	if err != nil {
		return nil
	}
	checkOut, err := utils.ParseDate(query.CheckOut)
	if err != nil {
		return nil
	}
	nights := utils.NightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return nil
	}

	seed := utils.HashString(destination + "-" + utils.FormatDate(checkIn) + "-" + utils.FormatDate(checkOut))
	count := 8 + seed%8
	rooms := RoomsForGuests(query.Guests)
	city := cityName(destination)

	hotels := make([]response_models.HotelOption, 0, count)
	for i := 0; i < count; i++ {
		htype := query.Type
		if !IsKnownAccommodationType(htype) {
			htype = utils.Pick(hotelTypes, seed+i*11)
		}

		rating := roundTo(3.0+float64((seed+i*19)%21)/10, 1)
		nightly := NightlyRate(htype, rating)

		amenityCount := 3 + (seed+i*7)%4
		amenities := make([]string, 0, amenityCount)
		for k := 0; k < amenityCount; k++ {
			amenities = append(amenities, utils.Pick(hotelAmenities, seed+i*amenityStep+k*amenityStep))
		}

		hotels = append(hotels, response_models.HotelOption{
			ID:                   fmt.Sprintf("HT-%d-%02d", seed%100000, i+1),
			Name:                 fmt.Sprintf("%s %s %s", utils.Pick(hotelNamePrefixes, seed+i*31), city, hotelTypeLabels[htype]),
			Type:                 string(htype),
			Address:              fmt.Sprintf("%d %s, %s", 1+(seed+i*43)%200, utils.Pick(streetNames, seed+i*29), city),
			Rating:               rating,
			Amenities:            amenities,
			RoomType:             utils.Pick(roomTypes, seed+i*23),
			DistanceFromCenterKm: float64((seed+i*47)%150) / 10,
			PricePerNight:        nightly,
			Rooms:                rooms,
			Nights:               nights,
			Price:                utils.RoundToCents(nightly * float64(nights) * float64(rooms)),
			Currency:             currencyUSD,
		})
	}

	sort.SliceStable(hotels, func(a, b int) bool {
		if hotels[a].Price != hotels[b].Price {
			return hotels[a].Price < hotels[b].Price
		}
		return hotels[a].ID < hotels[b].ID
	})
	return hotels
}
