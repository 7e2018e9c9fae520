package request_models

import "strings"

type AccommodationType string

const (
	AccommodationAny        AccommodationType = ""
	AccommodationHostel     AccommodationType = "hostel"
	AccommodationHotel      AccommodationType = "hotel"
	AccommodationApartment  AccommodationType = "apartment"
	AccommodationResort     AccommodationType = "resort"
	AccommodationVilla      AccommodationType = "villa"
	AccommodationGuesthouse AccommodationType = "guesthouse"
)

type TransportationType string

const (
	TransportationPublic TransportationType = "public"
	TransportationRental TransportationType = "rental"
	TransportationTaxi   TransportationType = "taxi"
)

type MealPreference string

const (
	MealAny          MealPreference = ""
	MealStreetFood   MealPreference = "street-food"
	MealLocalCuisine MealPreference = "local-cuisine"
	MealFineDining   MealPreference = "fine-dining"
	MealSelfCatering MealPreference = "self-catering"
)

// TripRequest is one itinerary generation request. Dates are ISO calendar
// dates (YYYY-MM-DD); budget is USD.
type TripRequest struct {
	Origin             string             `json:"origin"`
	Destination        string             `json:"destination" binding:"required"`
	StartDate          string             `json:"start_date" binding:"required"`
	EndDate            string             `json:"end_date" binding:"required"`
	Budget             float64            `json:"budget" binding:"required,gt=0"`
	TravelerCount      int                `json:"traveler_count" binding:"required,min=1"`
	Interests          []string           `json:"interests"`
	AccommodationType  AccommodationType  `json:"accommodation_type"`
	TransportationType TransportationType `json:"transportation_type"`
	MealPreference     MealPreference     `json:"meal_preference"`
}

// NormalizedInterests lower-cases, trims and de-duplicates interest tags,
// keeping first-seen order.
func (r TripRequest) NormalizedInterests() []string {
	return NormalizeTags(r.Interests)
}

func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

type FlightQuery struct {
	Origin      string `form:"origin" json:"origin"`
	Destination string `form:"destination" json:"destination" binding:"required"`
	DepartDate  string `form:"depart_date" json:"depart_date" binding:"required"`
	ReturnDate  string `form:"return_date" json:"return_date"`
	Passengers  int    `form:"passengers,default=1" json:"passengers"`
}

type HotelQuery struct {
	Destination string            `form:"destination" json:"destination" binding:"required"`
	CheckIn     string            `form:"check_in" json:"check_in" binding:"required"`
	CheckOut    string            `form:"check_out" json:"check_out" binding:"required"`
	Guests      int               `form:"guests,default=1" json:"guests"`
	Type        AccommodationType `form:"type" json:"type"`
}

type ActivityQuery struct {
	Destination      string   `form:"destination" json:"destination" binding:"required"`
	Interests        []string `form:"interests" json:"interests"`
	TripDurationDays int      `form:"days,default=1" json:"trip_duration_days"`
}

type WeatherQuery struct {
	Location  string `form:"location" json:"location" binding:"required"`
	StartDate string `form:"start_date" json:"start_date" binding:"required"`
	EndDate   string `form:"end_date" json:"end_date" binding:"required"`
}

type MapQuery struct {
	Destination string   `form:"destination" json:"destination" binding:"required"`
	Interests   []string `form:"interests" json:"interests"`
	Days        int      `form:"days,default=1" json:"days"`
}
