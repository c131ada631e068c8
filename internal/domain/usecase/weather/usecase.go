package weather

import (
	"encoding/json"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

type UseCase interface {
	// Create validates the input, fetches and normalizes the forecast and stores a new request
	Create(dto model.WeatherRequestDTO) (*entity.WeatherRequest, error)

	// Update replaces location, dates and forecast of a stored request, keeping id and creation time
	Update(id int64, dto model.WeatherRequestDTO) (*entity.WeatherRequest, error)

	// Delete removes a stored request
	Delete(id int64) error

	// FindByID returns a stored request with its parsed forecast and travel links
	FindByID(id int64) (*model.WeatherRequestDetailDTO, error)

	// FindAll returns every stored request, most recently created first
	FindAll() ([]entity.WeatherRequest, error)

	// Export renders every stored request as json or csv, in creation order
	Export(format model.ExportFormat) (*model.ExportFile, error)

	// PreviewForecast validates the input and returns the provider forecast without storing it
	PreviewForecast(dto model.WeatherRequestDTO) (json.RawMessage, error)
}
