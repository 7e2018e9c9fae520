package response_models

// Cost fields are display strings ("$1,234.56"). Only the optimizer rewrites
// them after generation.

type Activity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        string `json:"cost"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Duration    string `json:"duration"`
}

type Accommodation struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Cost     string `json:"cost"`
}

type Transportation struct {
	Type    string `json:"type"`
	Details string `json:"details"`
	Cost    string `json:"cost"`
}

type Day struct {
	Date                  string         `json:"date"`
	Activities            []Activity     `json:"activities"`
	Accommodation         Accommodation  `json:"accommodation"`
	Transportation        Transportation `json:"transportation"`
	AlternativeActivities []Activity     `json:"alternative_activities,omitempty"`
	Weather               *WeatherDay    `json:"weather,omitempty"`
}

type Itinerary struct {
	Destination string         `json:"destination"`
	TotalCost   string         `json:"total_cost"`
	Duration    string         `json:"duration"`
	Days        []Day          `json:"days"`
	TravelTips  []string       `json:"travel_tips"`
	Flight      *FlightSummary `json:"flight,omitempty"`
}

// FlightSummary is informational; airfare is not part of TotalCost.
type FlightSummary struct {
	Airline      string `json:"airline"`
	FlightNumber string `json:"flight_number"`
	Departure    string `json:"departure"`
	Price        string `json:"price"`
}

func cloneActivities(in []Activity) []Activity {
	if in == nil {
		return nil
	}
	out := make([]Activity, len(in))
	copy(out, in)
	return out
}

func (d Day) Clone() Day {
	out := d
	out.Activities = cloneActivities(d.Activities)
	out.AlternativeActivities = cloneActivities(d.AlternativeActivities)
	if d.Weather != nil {
		w := *d.Weather
		out.Weather = &w
	}
	return out
}

// Clone returns a structural copy sharing no slices or pointers with i.
func (i Itinerary) Clone() Itinerary {
	out := i
	if i.Days != nil {
		out.Days = make([]Day, len(i.Days))
		for idx, d := range i.Days {
			out.Days[idx] = d.Clone()
		}
	}
	if i.TravelTips != nil {
		out.TravelTips = make([]string, len(i.TravelTips))
		copy(out.TravelTips, i.TravelTips)
	}
	if i.Flight != nil {
		f := *i.Flight
		out.Flight = &f
	}
	return out
}
