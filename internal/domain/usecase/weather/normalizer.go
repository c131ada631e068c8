package weather

import (
	"encoding/json"
	"errors"
	"strconv"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/msg"
)

var airQualityNotAvailable = json.RawMessage(strconv.Quote(entity.AirQualityNotAvailable))

// NormalizeForecast extracts the stored per-day fields from a forecast.json body. Fields the
// provider left out stay nil; a day without air_quality gets "N/A", an explicit null is kept.
func NormalizeForecast(raw []byte) ([]entity.DayForecast, error) {
	var response external.ForecastResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, extractionError(err)
	}
	if response.Forecast == nil || response.Forecast.ForecastDay == nil {
		return nil, extractionError(errors.New("forecast.forecastday is missing"))
	}

	days := make([]entity.DayForecast, 0, len(response.Forecast.ForecastDay))
	for i, forecastDay := range response.Forecast.ForecastDay {
		if forecastDay.Day == nil {
			return nil, extractionError(errors.New("forecast.forecastday[" + strconv.Itoa(i) + "].day is missing"))
		}
		summary := forecastDay.Day

		day := entity.DayForecast{
			Date:        forecastDay.Date,
			MaxTempC:    summary.MaxTempC,
			MinTempC:    summary.MinTempC,
			AvgHumidity: summary.AvgHumidity,
			MaxWindKph:  summary.MaxWindKph,
			AirQuality:  summary.AirQuality,
		}
		if summary.Condition != nil {
			day.Condition = summary.Condition.Text
		}
		if day.AirQuality == nil {
			day.AirQuality = airQualityNotAvailable
		}
		days = append(days, day)
	}
	return days, nil
}

func extractionError(cause error) *model.ExtractionError {
	return &model.ExtractionError{
		Message: msg.GetMessage("weather-request.error.extraction"),
		Cause:   cause,
	}
}
