package entity

import "encoding/json"

// AirQualityNotAvailable marks a day the provider returned without air quality data.
const AirQualityNotAvailable = "N/A"

// DayForecast is the normalized subset of one provider forecast day.
// Fields the provider left out are kept as JSON null.
type DayForecast struct {
	Date        *string         `json:"date"`
	MaxTempC    *float64        `json:"maxtemp_c"`
	MinTempC    *float64        `json:"mintemp_c"`
	Condition   *string         `json:"condition"`
	AvgHumidity *float64        `json:"avghumidity"`
	MaxWindKph  *float64        `json:"maxwind_kph"`
	AirQuality  json.RawMessage `json:"air_quality"`
}

// ForecastBlob is the stored shape of WeatherRequest.WeatherInfo.
type ForecastBlob struct {
	Forecast []DayForecast `json:"forecast"`
}

// SerializeForecast encodes days into the stored blob.
func SerializeForecast(days []DayForecast) (string, error) {
	if days == nil {
		days = []DayForecast{}
	}
	content, err := json.Marshal(ForecastBlob{Forecast: days})
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// ParseForecast decodes a stored blob. Empty, malformed or foreign blobs yield an empty, non-nil slice.
func ParseForecast(blob string) []DayForecast {
	if blob == "" {
		return []DayForecast{}
	}

	var parsed ForecastBlob
	if err := json.Unmarshal([]byte(blob), &parsed); err != nil || parsed.Forecast == nil {
		return []DayForecast{}
	}
	return parsed.Forecast
}
