package db

import (
	"errors"

	"go-weather/internal/domain/entity"
)

// ErrNotFound is returned by writes that target an unknown identity.
var ErrNotFound = errors.New("weather request not found")

// WeatherRequestGateway is the record store. Every method is its own unit of work.
type WeatherRequestGateway interface {
	// FindAll returns every request, most recently created first
	FindAll() ([]entity.WeatherRequest, error)
	// FindAllForExport returns every request in creation order
	FindAllForExport() ([]entity.WeatherRequest, error)
	// FindByID returns nil without error when the identity is unknown
	FindByID(id int64) (*entity.WeatherRequest, error)

	// Create assigns the identity and the creation timestamp
	Create(request entity.WeatherRequest) (*entity.WeatherRequest, error)
	// UpdateByID replaces location, dates and forecast, keeping identity and creation timestamp
	UpdateByID(id int64, updated entity.WeatherRequest) (*entity.WeatherRequest, error)
	DeleteByID(id int64) error

	// Migrate creates the weather_requests table when missing
	Migrate() error
}
