package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/db"
	"go-weather/internal/domain/gateway/queue"
	"go-weather/internal/domain/model"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

const publishTimeout = 5 * time.Second

type weatherRequestUseCase struct {
	eventsDestination string
	apiGateway        api.WeatherGateway
	dbGateway         db.WeatherRequestGateway
	queueSender       queue.Sender
}

func NewWeatherRequestUseCase(eventsDestination string, queueSender queue.Sender, apiGateway api.WeatherGateway, dbGateway db.WeatherRequestGateway) UseCase {
	if queueSender == nil {
		queueSender = queue.NoopSender{}
	}
	return &weatherRequestUseCase{
		eventsDestination: eventsDestination,
		queueSender:       queueSender,
		apiGateway:        apiGateway,
		dbGateway:         dbGateway,
	}
}

func (uc *weatherRequestUseCase) Create(dto model.WeatherRequestDTO) (*entity.WeatherRequest, error) {
	weatherInfo, err := uc.fetchNormalizedForecast(dto)
	if err != nil {
		return nil, err
	}

	created, err := uc.dbGateway.Create(entity.WeatherRequest{
		Location:    dto.Location,
		StartDate:   dto.StartDate,
		EndDate:     dto.EndDate,
		WeatherInfo: weatherInfo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save weather request: %w", err)
	}

	log.Info(msg.GetMessage("weather-request.log.created", created.ID, created.Location, created.StartDate, created.EndDate))
	uc.publish(model.EventWeatherRequestCreated, *created)
	return created, nil
}

func (uc *weatherRequestUseCase) Update(id int64, dto model.WeatherRequestDTO) (*entity.WeatherRequest, error) {
	if _, err := uc.findExisting(id); err != nil {
		return nil, err
	}

	weatherInfo, err := uc.fetchNormalizedForecast(dto)
	if err != nil {
		return nil, err
	}

	updated, err := uc.dbGateway.UpdateByID(id, entity.WeatherRequest{
		Location:    dto.Location,
		StartDate:   dto.StartDate,
		EndDate:     dto.EndDate,
		WeatherInfo: weatherInfo,
	})
	if errors.Is(err, db.ErrNotFound) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update weather request %d: %w", id, err)
	}

	log.Info(msg.GetMessage("weather-request.log.updated", updated.ID, updated.Location, updated.StartDate, updated.EndDate))
	uc.publish(model.EventWeatherRequestUpdated, *updated)
	return updated, nil
}

func (uc *weatherRequestUseCase) Delete(id int64) error {
	existing, err := uc.findExisting(id)
	if err != nil {
		return err
	}

	err = uc.dbGateway.DeleteByID(id)
	if errors.Is(err, db.ErrNotFound) {
		return notFound(id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete weather request %d: %w", id, err)
	}

	log.Info(msg.GetMessage("weather-request.log.deleted", id))
	uc.publish(model.EventWeatherRequestDeleted, *existing)
	return nil
}

func (uc *weatherRequestUseCase) FindByID(id int64) (*model.WeatherRequestDetailDTO, error) {
	request, err := uc.findExisting(id)
	if err != nil {
		return nil, err
	}

	return &model.WeatherRequestDetailDTO{
		Request:          *request,
		Forecast:         request.Forecast(),
		YoutubeSearchURL: youtubeSearchURL(request.Location),
		GoogleMapsURL:    googleMapsURL(request.Location),
	}, nil
}

func (uc *weatherRequestUseCase) FindAll() ([]entity.WeatherRequest, error) {
	requests, err := uc.dbGateway.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list weather requests: %w", err)
	}
	return requests, nil
}

func (uc *weatherRequestUseCase) Export(format model.ExportFormat) (*model.ExportFile, error) {
	if format != model.ExportJSON && format != model.ExportCSV {
		return nil, model.NewValidationError(msg.GetMessage("weather-request.error.export-format", string(format)))
	}

	requests, err := uc.dbGateway.FindAllForExport()
	if err != nil {
		return nil, fmt.Errorf("failed to load weather requests for export: %w", err)
	}

	rows := toExportRows(requests)
	if format == model.ExportCSV {
		return renderCSV(rows)
	}
	return renderJSON(rows)
}

func (uc *weatherRequestUseCase) PreviewForecast(dto model.WeatherRequestDTO) (json.RawMessage, error) {
	startDate, endDate, err := validateRequest(dto)
	if err != nil {
		return nil, err
	}
	return uc.apiGateway.GetForecast(dto.Location, startDate, endDate)
}

// fetchNormalizedForecast runs validation, the provider call and normalization, returning the blob to store
func (uc *weatherRequestUseCase) fetchNormalizedForecast(dto model.WeatherRequestDTO) (string, error) {
	startDate, endDate, err := validateRequest(dto)
	if err != nil {
		return "", err
	}

	raw, err := uc.apiGateway.GetForecast(dto.Location, startDate, endDate)
	if err != nil {
		return "", err
	}

	days, err := NormalizeForecast(raw)
	if err != nil {
		return "", err
	}

	weatherInfo, err := entity.SerializeForecast(days)
	if err != nil {
		return "", extractionError(err)
	}
	return weatherInfo, nil
}

func (uc *weatherRequestUseCase) findExisting(id int64) (*entity.WeatherRequest, error) {
	request, err := uc.dbGateway.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find weather request %d: %w", id, err)
	}
	if request == nil {
		return nil, notFound(id)
	}
	return request, nil
}

// publish sends the change event once the store has committed. Failures are only logged.
func (uc *weatherRequestUseCase) publish(eventType model.EventType, request entity.WeatherRequest) {
	event := model.WeatherRequestEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		RequestID:  request.ID,
		Location:   request.Location,
		StartDate:  request.StartDate,
		EndDate:    request.EndDate,
		OccurredAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := uc.queueSender.SendMessage(ctx, uc.eventsDestination, event); err != nil {
		log.Warn(msg.GetMessage("weather-request.log.event-failed", string(eventType), request.ID),
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
	}
}

func notFound(id int64) *model.NotFoundError {
	return &model.NotFoundError{
		ID:      id,
		Message: msg.GetMessage("weather-request.error.not-found", id),
	}
}

func youtubeSearchURL(location string) string {
	return "https://www.youtube.com/results?search_query=" + url.QueryEscape(location) + "+travel"
}

func googleMapsURL(location string) string {
	return "https://www.google.com/maps/search/" + url.QueryEscape(location)
}
