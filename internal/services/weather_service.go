package services

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/pkg/utils"
)

const (
	ConditionSunny        = "sunny"
	ConditionPartlyCloudy = "partly-cloudy"
	ConditionCloudy       = "cloudy"
	ConditionRainy        = "rainy"
	ConditionSnowy        = "snowy"
	ConditionStormy       = "stormy"
)

// forecasts longer than this are truncated
const maxForecastDays = 366

type WeatherServiceInterface interface {
	Forecast(ctx context.Context, query request_models.WeatherQuery) []response_models.WeatherDay
}

type WeatherService struct {
	logger *zap.Logger
}

func NewWeatherService(logger *zap.Logger) WeatherServiceInterface {
	return &WeatherService{logger: logger}
}

// ClassifyCondition maps a precipitation chance onto a condition. Lower
// bounds are inclusive: 20 partly-cloudy, 40 cloudy, 70 rainy, 90 stormy.
// Rain with a maximum below 2°C falls as snow.
func ClassifyCondition(precipitationChance int, maxTempC float64) string {
	switch {
	case precipitationChance >= 90:
		return ConditionStormy
	case precipitationChance >= 70:
		if maxTempC < 2 {
			return ConditionSnowy
		}
		return ConditionRainy
	case precipitationChance >= 40:
		return ConditionCloudy
	case precipitationChance >= 20:
		return ConditionPartlyCloudy
	default:
		return ConditionSunny
	}
}

// SeasonalOffset is a northern-hemisphere temperature swing in °C: +10 in
// July, -10 in January.
func SeasonalOffset(month int) float64 {
	return 10 * math.Cos(2*math.Pi*float64(month-7)/12)
}

// PrecipitationChance combines the location's rain propensity, the day seed
// and a winter-wet seasonal adjustment, clamped to 0..100.
func PrecipitationChance(locationSeed, daySeed, month int) int {
	propensity := locationSeed % 50
	seasonal := int(math.Round(10 * math.Cos(2*math.Pi*float64(month-1)/12)))
	return clampInt(propensity+daySeed%61-15+seasonal, 0, 100)
}

func (s *WeatherService) Forecast(_ context.Context, query request_models.WeatherQuery) []response_models.WeatherDay {
	return failSoft(s.logger, "weather",
		[]zap.Field{zap.String("location", query.Location), zap.String("start_date", query.StartDate)},
		func() []response_models.WeatherDay { return generateForecast(query) })
}

func generateForecast(query request_models.WeatherQuery) []response_models.WeatherDay {
	location := strings.ToLower(strings.TrimSpace(query.Location))
	if location == "" {
		return nil
	}

	start, err := utils.ParseDate(query.StartDate)
	if err != nil {
		return nil
	}
	end, err := utils.ParseDate(query.EndDate)
	if err != nil {
		return nil
	}

	days := utils.DaysInclusive(start, end, maxForecastDays)

	locationSeed := utils.HashString(location)
	baseTemp := float64(5 + locationSeed%25)

	forecast := make([]response_models.WeatherDay, 0, len(days))
	for _, d := range days {
		date := utils.FormatDate(d)
		daySeed := utils.HashString(location + "-" + date)
		month := int(d.Month())

		noise := float64(daySeed%7 - 3)
		maxTemp := roundTo(baseTemp+SeasonalOffset(month)+noise+4, 1)
		minTemp := roundTo(maxTemp-float64(6+daySeed%5), 1)

		chance := PrecipitationChance(locationSeed, daySeed, month)
		condition := ClassifyCondition(chance, maxTemp)

		wind := 5 + (daySeed/7)%30
		if condition == ConditionStormy {
			wind += 20
		}

		forecast = append(forecast, response_models.WeatherDay{
			Date:                date,
			Condition:           condition,
			MinTempC:            minTemp,
			MaxTempC:            maxTemp,
			PrecipitationChance: chance,
			Humidity:            clampInt(40+chance/2+daySeed%10, 0, 100),
			WindKph:             wind,
		})
	}
	return forecast
}
