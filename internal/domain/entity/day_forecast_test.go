package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseForecastDegradesToEmpty(t *testing.T) {
	blobs := []string{
		"",
		"not json",
		"{",
		"[1,2,3]",
		`{"forecast": "oops"}`,
		`{"forecast": null}`,
		`{"other": []}`,
		`{"forecast": [{"maxtemp_c": "hot"}]}`,
	}

	for _, blob := range blobs {
		days := ParseForecast(blob)
		assert.NotNil(t, days, blob)
		assert.Empty(t, days, blob)
	}
}

func TestSerializeForecastRoundTrip(t *testing.T) {
	date := "2024-01-01"
	maxTemp := 10.5
	condition := "Sunny"
	days := []DayForecast{{
		Date:       &date,
		MaxTempC:   &maxTemp,
		Condition:  &condition,
		AirQuality: json.RawMessage(`"N/A"`),
	}}

	blob, err := SerializeForecast(days)
	require.NoError(t, err)
	assert.JSONEq(t, `{"forecast":[{"date":"2024-01-01","maxtemp_c":10.5,"mintemp_c":null,"condition":"Sunny","avghumidity":null,"maxwind_kph":null,"air_quality":"N/A"}]}`, blob)

	parsed := ParseForecast(blob)
	require.Len(t, parsed, 1)
	assert.Equal(t, "2024-01-01", *parsed[0].Date)
	assert.Nil(t, parsed[0].MinTempC)
	assert.JSONEq(t, `"N/A"`, string(parsed[0].AirQuality))
}

func TestSerializeForecastEmpty(t *testing.T) {
	blob, err := SerializeForecast(nil)
	require.NoError(t, err)
	assert.Equal(t, `{"forecast":[]}`, blob)
}

func TestWeatherRequestForecast(t *testing.T) {
	request := WeatherRequest{WeatherInfo: "garbage"}
	assert.Empty(t, request.Forecast())
}
