package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/db"
	"go-weather/internal/domain/model"
)

type forecastCall struct {
	location string
	days     int
}

type fakeWeatherGateway struct {
	calls []forecastCall
	body  json.RawMessage
	err   error
}

func (f *fakeWeatherGateway) GetForecast(location string, startDate time.Time, endDate time.Time) (json.RawMessage, error) {
	f.calls = append(f.calls, forecastCall{location: location, days: api.ForecastDaySpan(startDate, endDate)})
	if f.err != nil {
		return nil, f.err
	}
	if f.body != nil {
		return f.body, nil
	}
	return forecastBody(startDate, api.ForecastDaySpan(startDate, endDate)), nil
}

type fakeSender struct {
	destinations []string
	events       []model.WeatherRequestEvent
	err          error
}

func (f *fakeSender) SendMessage(_ context.Context, destination string, body any) error {
	f.destinations = append(f.destinations, destination)
	f.events = append(f.events, body.(model.WeatherRequestEvent))
	return f.err
}

// forecastBody builds a forecast.json body with one entry per day starting at start
func forecastBody(start time.Time, days int) json.RawMessage {
	entries := make([]string, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format(time.DateOnly)
		entries = append(entries, fmt.Sprintf(`{"date":%q,"day":{"maxtemp_c":%d.5,"mintemp_c":1.0,"condition":{"text":"Cloudy"},"avghumidity":80,"maxwind_kph":20.2}}`, date, 10+i))
	}
	return json.RawMessage(`{"location":{"name":"London"},"forecast":{"forecastday":[` + strings.Join(entries, ",") + `]}}`)
}

func newStore(t *testing.T) db.WeatherRequestGateway {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	store := db.NewGormWeatherRequestGateway(gormDB)
	require.NoError(t, store.Migrate())
	return store
}

type fixture struct {
	useCase UseCase
	weather *fakeWeatherGateway
	sender  *fakeSender
	store   db.WeatherRequestGateway
}

func newFixture(t *testing.T) fixture {
	weather := &fakeWeatherGateway{}
	sender := &fakeSender{}
	store := newStore(t)
	return fixture{
		useCase: NewWeatherRequestUseCase("weather-request-events", sender, weather, store),
		weather: weather,
		sender:  sender,
		store:   store,
	}
}

func londonRequest() model.WeatherRequestDTO {
	return model.WeatherRequestDTO{Location: "London", StartDate: "2024-01-01", EndDate: "2024-01-03"}
}

func TestCreateLondonExample(t *testing.T) {
	f := newFixture(t)

	created, err := f.useCase.Create(londonRequest())
	require.NoError(t, err)

	require.Len(t, f.weather.calls, 1)
	assert.Equal(t, forecastCall{location: "London", days: 3}, f.weather.calls[0])

	detail, err := f.useCase.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "London", detail.Request.Location)
	assert.Equal(t, "2024-01-01", detail.Request.StartDate)
	assert.Equal(t, "2024-01-03", detail.Request.EndDate)
	require.Len(t, detail.Forecast, 3)
	assert.Equal(t, "2024-01-01", *detail.Forecast[0].Date)
	assert.Equal(t, 10.5, *detail.Forecast[0].MaxTempC)
	assert.Equal(t, "Cloudy", *detail.Forecast[0].Condition)
	assert.JSONEq(t, `"N/A"`, string(detail.Forecast[0].AirQuality))
	assert.Equal(t, "https://www.youtube.com/results?search_query=London+travel", detail.YoutubeSearchURL)
	assert.Equal(t, "https://www.google.com/maps/search/London", detail.GoogleMapsURL)

	require.Len(t, f.sender.events, 1)
	assert.Equal(t, "weather-request-events", f.sender.destinations[0])
	assert.Equal(t, model.EventWeatherRequestCreated, f.sender.events[0].Type)
	assert.Equal(t, created.ID, f.sender.events[0].RequestID)
	assert.NotEmpty(t, f.sender.events[0].ID)
}

func TestCreatePassesDaySpanToFetch(t *testing.T) {
	cases := []struct {
		start string
		end   string
		days  int
	}{
		{"2024-01-01", "2024-01-01", 1},
		{"2024-02-27", "2024-03-01", 4},
		{"2023-12-30", "2024-01-02", 4},
	}

	for _, tc := range cases {
		f := newFixture(t)
		_, err := f.useCase.Create(model.WeatherRequestDTO{Location: "Oslo", StartDate: tc.start, EndDate: tc.end})
		require.NoError(t, err)
		require.Len(t, f.weather.calls, 1)
		assert.Equal(t, tc.days, f.weather.calls[0].days, tc.start+".."+tc.end)
	}
}

func TestCreateRejectsInvalidInputBeforeFetch(t *testing.T) {
	cases := []struct {
		name    string
		dto     model.WeatherRequestDTO
		message string
	}{
		{"reversed dates", model.WeatherRequestDTO{Location: "London", StartDate: "2024-02-05", EndDate: "2024-02-01"}, "Start date must be on or before end date."},
		{"bad start", model.WeatherRequestDTO{Location: "London", StartDate: "2024/01/01", EndDate: "2024-01-03"}, "Invalid date format. Please use YYYY-MM-DD."},
		{"missing end", model.WeatherRequestDTO{Location: "London", StartDate: "2024-01-01"}, "Invalid date format. Please use YYYY-MM-DD."},
		{"impossible day", model.WeatherRequestDTO{Location: "London", StartDate: "2024-02-30", EndDate: "2024-03-01"}, "Invalid date format. Please use YYYY-MM-DD."},
		{"blank location", model.WeatherRequestDTO{Location: "   ", StartDate: "2024-01-01", EndDate: "2024-01-03"}, "Location cannot be empty."},
		{"empty location", model.WeatherRequestDTO{StartDate: "2024-01-01", EndDate: "2024-01-03"}, "Location cannot be empty."},
		{"long location", model.WeatherRequestDTO{Location: strings.Repeat("a", 101), StartDate: "2024-01-01", EndDate: "2024-01-03"}, "Location must be at most 100 characters."},
		{"date before location", model.WeatherRequestDTO{StartDate: "nope", EndDate: "2024-01-03"}, "Invalid date format. Please use YYYY-MM-DD."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.useCase.Create(tc.dto)

			var validationErr *model.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.message, validationErr.Error())
			assert.Empty(t, f.weather.calls)
			assert.Empty(t, f.sender.events)

			all, err := f.store.FindAll()
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestCreateProviderAndExtractionFailuresStoreNothing(t *testing.T) {
	t.Run("provider", func(t *testing.T) {
		f := newFixture(t)
		f.weather.err = &model.ProviderError{Message: "Error from WeatherAPI: No matching location found."}

		_, err := f.useCase.Create(londonRequest())

		var providerErr *model.ProviderError
		require.True(t, errors.As(err, &providerErr))
		all, _ := f.store.FindAll()
		assert.Empty(t, all)
	})

	t.Run("extraction", func(t *testing.T) {
		f := newFixture(t)
		f.weather.body = json.RawMessage(`{"location":{"name":"London"}}`)

		_, err := f.useCase.Create(londonRequest())

		var extractionErr *model.ExtractionError
		require.True(t, errors.As(err, &extractionErr))
		all, _ := f.store.FindAll()
		assert.Empty(t, all)
		assert.Empty(t, f.sender.events)
	})
}

func TestCreateSucceedsWhenPublishFails(t *testing.T) {
	f := newFixture(t)
	f.sender.err = errors.New("broker down")

	created, err := f.useCase.Create(londonRequest())

	require.NoError(t, err)
	found, err := f.store.FindByID(created.ID)
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)
	created, err := f.useCase.Create(londonRequest())
	require.NoError(t, err)

	updated, err := f.useCase.Update(created.ID, model.WeatherRequestDTO{Location: "New York", StartDate: "2024-05-01", EndDate: "2024-05-02"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.Equal(t, "New York", updated.Location)
	assert.Len(t, updated.Forecast(), 2)
	assert.Equal(t, forecastCall{location: "New York", days: 2}, f.weather.calls[1])
	assert.Equal(t, model.EventWeatherRequestUpdated, f.sender.events[1].Type)

	detail, err := f.useCase.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/results?search_query=New+York+travel", detail.YoutubeSearchURL)
	assert.Equal(t, "https://www.google.com/maps/search/New+York", detail.GoogleMapsURL)
}

func TestUpdateFailureLeavesRecordUnchanged(t *testing.T) {
	f := newFixture(t)
	created, err := f.useCase.Create(londonRequest())
	require.NoError(t, err)

	_, err = f.useCase.Update(created.ID, model.WeatherRequestDTO{Location: "Paris", StartDate: "2024-02-05", EndDate: "2024-02-01"})
	var validationErr *model.ValidationError
	require.True(t, errors.As(err, &validationErr))

	f.weather.err = &model.ProviderError{Message: "Error from WeatherAPI: Unknown error"}
	_, err = f.useCase.Update(created.ID, model.WeatherRequestDTO{Location: "Paris", StartDate: "2024-02-01", EndDate: "2024-02-05"})
	var providerErr *model.ProviderError
	require.True(t, errors.As(err, &providerErr))

	found, err := f.store.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "London", found.Location)
	assert.Equal(t, created.WeatherInfo, found.WeatherInfo)
	assert.Len(t, f.sender.events, 1)
}

func TestUpdateUnknownIDIsNotFoundBeforeValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.useCase.Update(999, model.WeatherRequestDTO{})

	var notFoundErr *model.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
	assert.Equal(t, int64(999), notFoundErr.ID)
	assert.Empty(t, f.weather.calls)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	created, err := f.useCase.Create(londonRequest())
	require.NoError(t, err)

	require.NoError(t, f.useCase.Delete(created.ID))

	_, err = f.useCase.FindByID(created.ID)
	var notFoundErr *model.NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
	assert.Equal(t, model.EventWeatherRequestDeleted, f.sender.events[1].Type)
	assert.Equal(t, "London", f.sender.events[1].Location)
}

func TestDeleteUnknownID(t *testing.T) {
	f := newFixture(t)
	created, err := f.useCase.Create(londonRequest())
	require.NoError(t, err)

	err = f.useCase.Delete(999)

	var notFoundErr *model.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
	assert.Equal(t, "Weather request 999 not found", notFoundErr.Error())
	all, err := f.useCase.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
}

func TestFindByIDMalformedBlobDegradesToEmptyForecast(t *testing.T) {
	f := newFixture(t)
	stored, err := f.store.Create(entity.WeatherRequest{
		Location:    "Rome",
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-02",
		WeatherInfo: "{not json",
	})
	require.NoError(t, err)

	detail, err := f.useCase.FindByID(stored.ID)

	require.NoError(t, err)
	assert.NotNil(t, detail.Forecast)
	assert.Empty(t, detail.Forecast)
}

func TestFindAllMostRecentFirst(t *testing.T) {
	f := newFixture(t)
	first, err := f.useCase.Create(londonRequest())
	require.NoError(t, err)
	second, err := f.useCase.Create(model.WeatherRequestDTO{Location: "Paris", StartDate: "2024-01-01", EndDate: "2024-01-01"})
	require.NoError(t, err)

	all, err := f.useCase.FindAll()

	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestExportIsIdempotent(t *testing.T) {
	f := newFixture(t)
	_, err := f.useCase.Create(londonRequest())
	require.NoError(t, err)
	_, err = f.useCase.Create(model.WeatherRequestDTO{Location: "Paris, France", StartDate: "2024-01-01", EndDate: "2024-01-01"})
	require.NoError(t, err)

	for _, format := range []model.ExportFormat{model.ExportJSON, model.ExportCSV} {
		first, err := f.useCase.Export(format)
		require.NoError(t, err)
		second, err := f.useCase.Export(format)
		require.NoError(t, err)
		assert.Equal(t, first.Content, second.Content, string(format))
	}
}

func TestExportJSON(t *testing.T) {
	f := newFixture(t)
	created, err := f.useCase.Create(londonRequest())
	require.NoError(t, err)

	file, err := f.useCase.Export(model.ExportJSON)
	require.NoError(t, err)

	assert.Equal(t, "application/json", file.ContentType)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(file.Content, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, float64(created.ID), rows[0]["id"])
	assert.Equal(t, "London", rows[0]["location"])
	assert.Equal(t, "2024-01-01", rows[0]["start_date"])
	assert.Equal(t, "2024-01-03", rows[0]["end_date"])
	assert.Equal(t, created.WeatherInfo, rows[0]["weather_info"])
	assert.Equal(t, created.CreatedAt.UTC().Format("2006-01-02 15:04:05"), rows[0]["created_at"])
}

func TestExportCSV(t *testing.T) {
	f := newFixture(t)
	_, err := f.useCase.Create(model.WeatherRequestDTO{Location: "Paris, France", StartDate: "2024-01-01", EndDate: "2024-01-01"})
	require.NoError(t, err)

	file, err := f.useCase.Export(model.ExportCSV)
	require.NoError(t, err)

	assert.Equal(t, "weather_data.csv", file.Filename)
	lines := strings.Split(strings.TrimSpace(string(file.Content)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Location,Start Date,End Date,Weather Info,Created At", lines[0])
	assert.Contains(t, lines[1], `"Paris, France",2024-01-01,2024-01-01,`)
}

func TestExportUnknownFormat(t *testing.T) {
	f := newFixture(t)

	_, err := f.useCase.Export("xml")

	var validationErr *model.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "Unsupported export format xml. Use json or csv.", validationErr.Error())
}

func TestPreviewForecastDoesNotStore(t *testing.T) {
	f := newFixture(t)

	body, err := f.useCase.PreviewForecast(londonRequest())

	require.NoError(t, err)
	assert.Contains(t, string(body), `"forecastday"`)
	all, err := f.store.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Empty(t, f.sender.events)

	_, err = f.useCase.PreviewForecast(model.WeatherRequestDTO{Location: "London", StartDate: "2024-02-05", EndDate: "2024-02-01"})
	var validationErr *model.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Len(t, f.weather.calls, 1)
}
