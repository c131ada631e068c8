package external

import "encoding/json"

// ForecastResponse is the subset of the WeatherAPI.com forecast.json body the service reads.
type ForecastResponse struct {
	Forecast *ForecastDTO `json:"forecast"`
}

// ForecastDTO holds the ordered forecast days. A nil ForecastDay means the list was absent or null.
type ForecastDTO struct {
	ForecastDay []ForecastDayDTO `json:"forecastday"`
}

// ForecastDayDTO represents a single forecast day; hourly entries are ignored.
type ForecastDayDTO struct {
	Date *string        `json:"date"`
	Day  *DaySummaryDTO `json:"day"`
}

// DaySummaryDTO is the day summary of a forecast day.
type DaySummaryDTO struct {
	MaxTempC    *float64        `json:"maxtemp_c"`
	MinTempC    *float64        `json:"mintemp_c"`
	Condition   *ConditionDTO   `json:"condition"`
	AvgHumidity *float64        `json:"avghumidity"`
	MaxWindKph  *float64        `json:"maxwind_kph"`
	AirQuality  json.RawMessage `json:"air_quality"`
}

type ConditionDTO struct {
	Text *string `json:"text"`
}

// APIErrorResponse represents error bodies returned by WeatherAPI.com
type APIErrorResponse struct {
	Error *APIErrorDTO `json:"error"`
}

type APIErrorDTO struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
