package health

import "go-weather/internal/domain/model"

type UseCase interface {
	// CheckHealth reports the database and the events broker
	CheckHealth() model.HealthResponse
}
