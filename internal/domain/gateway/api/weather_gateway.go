package api

import (
	"encoding/json"
	"time"
)

// WeatherGateway defines the calls made to the external forecast provider
type WeatherGateway interface {
	// GetForecast requests the forecast for location covering startDate..endDate inclusive,
	// with air quality data. It returns the raw provider body or a *model.ProviderError.
	GetForecast(location string, startDate time.Time, endDate time.Time) (json.RawMessage, error)
}

// ForecastDaySpan is the inclusive number of calendar days between startDate and endDate.
func ForecastDaySpan(startDate time.Time, endDate time.Time) int {
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}
