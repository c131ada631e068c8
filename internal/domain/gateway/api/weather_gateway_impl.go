package api

import (
	"encoding/json"
	"strconv"
	"time"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
	"go-weather/pkg/msg"
)

const forecastPath = "/forecast.json"

// WeatherGatewayConfig carries everything the gateway needs to reach WeatherAPI.com
type WeatherGatewayConfig struct {
	BaseURL       string
	APIKey        string
	ClientOptions http.ClientOptions
}

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	apiKey     string
	httpClient *http.Client
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(config WeatherGatewayConfig) WeatherGateway {
	options := config.ClientOptions
	options.RedactedQueryParams = append(options.RedactedQueryParams, "key")

	return &weatherGatewayImpl{
		apiKey:     config.APIKey,
		httpClient: http.NewHttpClient(config.BaseURL, options),
	}
}

// GetForecast calls forecast.json once, asking for as many days as the range covers
func (w *weatherGatewayImpl) GetForecast(location string, startDate time.Time, endDate time.Time) (json.RawMessage, error) {
	days := ForecastDaySpan(startDate, endDate)

	successResp, errResp, _, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath(forecastPath).
		WithHeaders(map[string]string{"Accept": "application/json"}).
		WithQueryParams(map[string]string{
			"key":  w.apiKey,
			"q":    location,
			"days": strconv.Itoa(days),
			"aqi":  "yes",
		}).
		WithSuccessResp(&json.RawMessage{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		body := *successResp.(*json.RawMessage)
		if providerErr := embeddedError(body); providerErr != nil {
			return nil, providerErr
		}
		return body, nil
	}

	if errResp != nil {
		if errorResponse := errResp.(*external.APIErrorResponse); errorResponse.Error != nil {
			return nil, newReportedError(errorResponse.Error.Message)
		}
	}

	return nil, &model.ProviderError{
		Message: msg.GetMessage("weather-api.error.transport", err),
		Cause:   err,
	}
}

// embeddedError detects an error object inside a successful response
func embeddedError(body json.RawMessage) error {
	var errorResponse external.APIErrorResponse
	if err := json.Unmarshal(body, &errorResponse); err != nil || errorResponse.Error == nil {
		return nil
	}
	return newReportedError(errorResponse.Error.Message)
}

func newReportedError(reason string) *model.ProviderError {
	if reason == "" {
		reason = msg.GetMessage("weather-api.error.unknown")
	}
	return &model.ProviderError{
		Message: msg.GetMessage("weather-api.error.provider", reason),
		Reason:  reason,
	}
}
