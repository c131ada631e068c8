package api

import (
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-weather/internal/domain/model"
	"go-weather/pkg/http"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.DateOnly, value)
	require.NoError(t, err)
	return parsed
}

func newTestGateway(serverURL string) WeatherGateway {
	return NewWeatherGateway(WeatherGatewayConfig{
		BaseURL:       serverURL + "/v1",
		APIKey:        "secret",
		ClientOptions: http.ClientOptions{},
	})
}

func TestForecastDaySpan(t *testing.T) {
	assert.Equal(t, 1, ForecastDaySpan(date(t, "2024-01-01"), date(t, "2024-01-01")))
	assert.Equal(t, 3, ForecastDaySpan(date(t, "2024-01-01"), date(t, "2024-01-03")))
	assert.Equal(t, 2, ForecastDaySpan(date(t, "2024-02-28"), date(t, "2024-02-29")))
	assert.Equal(t, 366, ForecastDaySpan(date(t, "2024-01-01"), date(t, "2024-12-31")))
	assert.Equal(t, 3, ForecastDaySpan(date(t, "2024-03-30"), date(t, "2024-04-01")))
}

func TestGetForecastSendsDaySpanAndAirQuality(t *testing.T) {
	var query url.Values
	var path, accept string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		path = r.URL.Path
		accept = r.Header.Get("Accept")
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"forecast":{"forecastday":[]}}`))
	}))
	defer server.Close()

	body, err := newTestGateway(server.URL).GetForecast("New York", date(t, "2024-01-01"), date(t, "2024-01-03"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"forecast":{"forecastday":[]}}`, string(body))
	assert.Equal(t, "/v1/forecast.json", path)
	assert.Equal(t, "application/json", accept)
	assert.Equal(t, "secret", query.Get("key"))
	assert.Equal(t, "New York", query.Get("q"))
	assert.Equal(t, "3", query.Get("days"))
	assert.Equal(t, "yes", query.Get("aqi"))
}

func TestGetForecastProviderErrorStatus(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
	}))
	defer server.Close()

	_, err := newTestGateway(server.URL).GetForecast("Nowhere", date(t, "2024-01-01"), date(t, "2024-01-01"))

	var providerErr *model.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.False(t, providerErr.Transport())
	assert.Equal(t, "No matching location found.", providerErr.Reason)
	assert.Equal(t, "Error from WeatherAPI: No matching location found.", providerErr.Error())
}

func TestGetForecastProviderErrorInSuccessBody(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":{"code":9999}}`))
	}))
	defer server.Close()

	_, err := newTestGateway(server.URL).GetForecast("London", date(t, "2024-01-01"), date(t, "2024-01-01"))

	var providerErr *model.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, "Error from WeatherAPI: Unknown error", providerErr.Error())
}

func TestGetForecastTransportFailure(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {}))
	serverURL := server.URL
	server.Close()

	_, err := newTestGateway(serverURL).GetForecast("London", date(t, "2024-01-01"), date(t, "2024-01-01"))

	var providerErr *model.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.True(t, providerErr.Transport())
	assert.Contains(t, providerErr.Error(), "Error retrieving weather data:")
}

func TestGetForecastUnreadableBody(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer server.Close()

	_, err := newTestGateway(server.URL).GetForecast("London", date(t, "2024-01-01"), date(t, "2024-01-01"))

	var providerErr *model.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.True(t, providerErr.Transport())
}
