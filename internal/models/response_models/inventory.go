package response_models

type Flight struct {
	ID                  string  `json:"id"`
	Airline             string  `json:"airline"`
	FlightNumber        string  `json:"flight_number"`
	Origin              string  `json:"origin"`
	Destination         string  `json:"destination"`
	DepartureTime       string  `json:"departure_time"`
	ArrivalTime         string  `json:"arrival_time"`
	DurationHours       int     `json:"duration_hours"`
	Stops               int     `json:"stops"`
	Cabin               string  `json:"cabin"`
	PricePerPassenger   float64 `json:"price_per_passenger"`
	Price               float64 `json:"price"`
	Currency            string  `json:"currency"`
	ReturnDepartureTime string  `json:"return_departure_time,omitempty"`
	ReturnArrivalTime   string  `json:"return_arrival_time,omitempty"`
}

type HotelOption struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Type                 string   `json:"type"`
	Address              string   `json:"address"`
	Rating               float64  `json:"rating"`
	Amenities            []string `json:"amenities"`
	RoomType             string   `json:"room_type"`
	DistanceFromCenterKm float64  `json:"distance_from_center_km"`
	PricePerNight        float64  `json:"price_per_night"`
	Rooms                int      `json:"rooms"`
	Nights               int      `json:"nights"`
	Price                float64  `json:"price"`
	Currency             string   `json:"currency"`
}

type ActivityOption struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Location      string   `json:"location"`
	DurationHours float64  `json:"duration_hours"`
	Rating        float64  `json:"rating"`
	Price         float64  `json:"price"`
	Currency      string   `json:"currency"`
	Tags          []string `json:"tags"`
}

type WeatherDay struct {
	Date                string  `json:"date"`
	Condition           string  `json:"condition"`
	MinTempC            float64 `json:"min_temp_c"`
	MaxTempC            float64 `json:"max_temp_c"`
	PrecipitationChance int     `json:"precipitation_chance"`
	Humidity            int     `json:"humidity"`
	WindKph             int     `json:"wind_kph"`
}

type MapMarker struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

type MapView struct {
	Destination string                    `json:"destination"`
	CenterLat   float64                   `json:"center_lat"`
	CenterLng   float64                   `json:"center_lng"`
	Markers     []MapMarker               `json:"markers"`
	Distances   map[string]map[string]int `json:"distances_m"`
}

// Inventory is the joined output of the generators for one request.
type Inventory struct {
	Flights    []Flight         `json:"flights"`
	Hotels     []HotelOption    `json:"hotels"`
	Activities []ActivityOption `json:"activities"`
	Weather    []WeatherDay     `json:"weather"`
}
