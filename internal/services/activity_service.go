package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/pkg/utils"
)

type ActivityServiceInterface interface {
	SearchActivities(ctx context.Context, query request_models.ActivityQuery) []response_models.ActivityOption
}

type ActivityService struct {
	logger *zap.Logger
}

func NewActivityService(logger *zap.Logger) ActivityServiceInterface {
	return &ActivityService{logger: logger}
}

const maxActivities = 50

var activityCategories = []string{
	"sightseeing", "culture", "adventure", "food", "nature", "nightlife", "shopping", "relaxation",
}

var activityCategoryMultipliers = map[string]float64{
	"sightseeing": 1.0,
	"culture":     1.2,
	"adventure":   1.8,
	"food":        0.9,
	"nature":      0.5,
	"nightlife":   1.3,
	"shopping":    0.7,
	"relaxation":  1.5,
}

// interestCategories maps free-text interest tags onto activity categories.
var interestCategories = map[string]string{
	"sightseeing":  "sightseeing",
	"landmarks":    "sightseeing",
	"architecture": "sightseeing",
	"photography":  "sightseeing",
	"culture":      "culture",
	"history":      "culture",
	"museums":      "culture",
	"art":          "culture",
	"adventure":    "adventure",
	"sports":       "adventure",
	"hiking":       "nature",
	"nature":       "nature",
	"outdoors":     "nature",
	"parks":        "nature",
	"food":         "food",
	"cuisine":      "food",
	"dining":       "food",
	"nightlife":    "nightlife",
	"bars":         "nightlife",
	"music":        "nightlife",
	"shopping":     "shopping",
	"markets":      "shopping",
	"relaxation":   "relaxation",
	"wellness":     "relaxation",
	"spa":          "relaxation",
	"beach":        "relaxation",
}

type activityTemplate struct {
	name        string
	description string
	tags        []string
}

var activityTemplates = map[string][]activityTemplate{
	"sightseeing": {
		{"City Highlights Walking Tour", "A guided walk past the landmarks every first-time visitor should see.", []string{"walking", "guided"}},
		{"Panoramic Viewpoint Visit", "Take in the skyline from the best lookout in town.", []string{"views", "photography"}},
		{"Hop-On Hop-Off Bus Loop", "Ride the open-top loop and stop wherever you like.", []string{"bus", "flexible"}},
		{"Historic Bridges Photo Walk", "Follow the river and its bridges with a local photographer.", []string{"photography", "walking"}},
	},
	"culture": {
		{"National Museum Visit", "Explore the country's story through its main collection.", []string{"museums", "history"}},
		{"Old Quarter Heritage Tour", "Narrow lanes, old facades and the stories behind them.", []string{"history", "walking"}},
		{"Local Art Gallery Circuit", "Contemporary and traditional work from local artists.", []string{"art"}},
		{"Traditional Craft Workshop", "Learn a local craft from a resident artisan.", []string{"hands-on", "art"}},
	},
	"adventure": {
		{"Guided Kayak Excursion", "Paddle the coastline or river with an experienced guide.", []string{"water", "outdoors"}},
		{"Zipline Canopy Course", "A series of lines high above the treetops.", []string{"outdoors", "thrill"}},
		{"Rock Climbing Intro Session", "Beginner-friendly climbing with all gear included.", []string{"sports", "outdoors"}},
		{"Mountain Bike Trail Ride", "Singletrack and fire roads just outside the city.", []string{"cycling", "outdoors"}},
	},
	"food": {
		{"Street Food Tasting Tour", "Sample the dishes locals actually queue for.", []string{"street-food", "walking"}},
		{"Market Cooking Class", "Shop the market, then cook a regional meal.", []string{"hands-on", "cuisine"}},
		{"Regional Dinner Experience", "A multi-course dinner built on regional produce.", []string{"dining", "local-cuisine"}},
		{"Coffee and Pastry Crawl", "The best cafés and bakeries in one morning.", []string{"cafes"}},
	},
	"nature": {
		{"Botanical Garden Stroll", "Gardens, greenhouses and quiet paths.", []string{"parks", "walking"}},
		{"Sunrise Hill Hike", "An early hike to catch the sunrise over the city.", []string{"hiking", "views"}},
		{"Lakeside Picnic Afternoon", "A relaxed afternoon by the water.", []string{"parks", "relaxed"}},
		{"Wildlife Reserve Visit", "Spot native wildlife with a park ranger.", []string{"wildlife", "outdoors"}},
	},
	"nightlife": {
		{"Live Music Bar Hop", "Three venues, three styles of local music.", []string{"music", "bars"}},
		{"Night Market Wander", "Food stalls, crafts and neon after dark.", []string{"markets", "evening"}},
		{"Rooftop Cocktail Evening", "Cocktails with a view of the lights.", []string{"bars", "views"}},
		{"Evening Comedy Show", "Stand-up from the local circuit.", []string{"shows", "evening"}},
	},
	"shopping": {
		{"Artisan Market Browse", "Handmade goods straight from the makers.", []string{"markets", "crafts"}},
		{"Vintage Shop Trail", "Second-hand finds across the creative district.", []string{"vintage"}},
		{"Design District Walk", "Boutiques and local designers in one neighbourhood.", []string{"design", "walking"}},
		{"Souvenir Bazaar Visit", "A covered bazaar with everything to take home.", []string{"markets"}},
	},
	"relaxation": {
		{"Thermal Spa Session", "Pools, saunas and steam rooms.", []string{"spa", "wellness"}},
		{"Beach Afternoon", "Loungers, swimming and nothing on the schedule.", []string{"beach"}},
		{"Sunset River Cruise", "A slow cruise as the sun goes down.", []string{"water", "views"}},
		{"Yoga in the Park", "An open-air class suitable for all levels.", []string{"wellness", "parks"}},
	},
}

var districts = []string{
	"Old Town", "Harbor District", "City Center", "Riverside", "Arts Quarter",
	"Market District", "University Hill", "Waterfront", "Garden Quarter", "North End",
}

// ActivityBasePrice is 20 × duration hours × category multiplier.
func ActivityBasePrice(category string, durationHours float64) float64 {
	mult, ok := activityCategoryMultipliers[category]
	if !ok {
		mult = 1.0
	}
	return 20 * durationHours * mult
}

// CategoriesForInterests maps interest tags to activity categories, keeping
// first-seen order and dropping tags with no category.
func CategoriesForInterests(interests []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tag := range request_models.NormalizeTags(interests) {
		cat, ok := interestCategories[tag]
		if !ok || seen[cat] {
			continue
		}
		seen[cat] = true
		out = append(out, cat)
	}
	return out
}

// SearchActivities returns up to 50 activities sorted by rating descending,
// then price ascending.
func (s *ActivityService) SearchActivities(_ context.Context, query request_models.ActivityQuery) []response_models.ActivityOption {
	return failSoft(s.logger, "activities",
		[]zap.Field{zap.String("destination", query.Destination), zap.Int("days", query.TripDurationDays)},
		func() []response_models.ActivityOption { return generateActivities(query) })
}

func generateActivities(query request_models.ActivityQuery) []response_models.ActivityOption {
	destination := strings.TrimSpace(query.Destination)
	if destination == "" || query.TripDurationDays <= 0 {
		return nil
	}

	interests := request_models.NormalizeTags(query.Interests)
	seedTags := append([]string(nil), interests...)
	sort.Strings(seedTags)

	seed := utils.HashString(destination + "-" + strings.Join(seedTags, ","))
	days := query.TripDurationDays
	if days > maxActivities {
		days = maxActivities
	}
	count := days*4 + seed%6
	if count > maxActivities {
		count = maxActivities
	}

	preferred := CategoriesForInterests(interests)
	city := cityName(destination)
	usedNames := make(map[string]bool, count)

	activities := make([]response_models.ActivityOption, 0, count)
	for i := 0; i < count; i++ {
		category := utils.Pick(activityCategories, seed+i*13)
		if len(preferred) > 0 && i%3 != 2 {
			category = utils.Pick(preferred, seed+i*13)
		}

		durationHours := 1 + float64((seed+i*17)%7)*0.5
		perturb := 1 + float64((seed+i*23)%41-20)/100
		price := utils.RoundToCents(ActivityBasePrice(category, durationHours) * perturb)

		tmpl := utils.Pick(activityTemplates[category], seed+i*31)
		district := utils.Pick(districts, seed+i*37)

		name := tmpl.name
		if usedNames[name] {
			name = fmt.Sprintf("%s (%s)", tmpl.name, district)
		}
		if usedNames[name] {
			name = fmt.Sprintf("%s #%d", name, i+1)
		}
		usedNames[name] = true

		tags := append([]string{category}, tmpl.tags...)

		activities = append(activities, response_models.ActivityOption{
			ID:            fmt.Sprintf("AC-%d-%02d", seed%100000, i+1),
			Name:          name,
			Description:   tmpl.description,
			Category:      category,
			Location:      fmt.Sprintf("%s, %s", district, city),
			DurationHours: durationHours,
			Rating:        roundTo(3.5+float64((seed+i*29)%16)/10, 1),
			Price:         price,
			Currency:      currencyUSD,
			Tags:          tags,
		})
	}

	sort.SliceStable(activities, func(a, b int) bool {
		if activities[a].Rating != activities[b].Rating {
			return activities[a].Rating > activities[b].Rating
		}
		if activities[a].Price != activities[b].Price {
			return activities[a].Price < activities[b].Price
		}
		return activities[a].ID < activities[b].ID
	})
	return activities
}
