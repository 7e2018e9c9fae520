package services

import (
	"math"
	"strings"

	"go.uber.org/zap"
)

const currencyUSD = "USD"

// failSoft runs a generator and turns a panic into an empty result so a
// broken data source degrades the itinerary instead of aborting it.
func failSoft[T any](logger *zap.Logger, generator string, fields []zap.Field, fn func() []T) (out []T) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("generator failed, returning empty result",
				append(fields, zap.String("generator", generator), zap.Any("panic", r))...)
			out = []T{}
		}
	}()

	out = fn()
	if out == nil {
		out = []T{}
	}
	return out
}

// cityName returns the city part of "City, Country".
func cityName(destination string) string {
	city, _, _ := strings.Cut(destination, ",")
	return strings.TrimSpace(city)
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
