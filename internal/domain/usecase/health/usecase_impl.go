package health

import (
	"go-weather/internal/domain/gateway/db"
	"go-weather/internal/domain/gateway/queue"
	"go-weather/internal/domain/model"
)

type healthUseCase struct {
	dbGateway     db.HealthDBGateway
	eventsGateway queue.HealthGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, eventsGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:     dbGateway,
		eventsGateway: eventsGateway,
	}
}

// CheckHealth is DOWN when the database is down or a configured broker is down.
// An events broker in UNKNOWN state (disabled) does not affect the overall status.
func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	dbHealth := useCase.dbGateway.Health()
	eventsHealth := useCase.eventsGateway.Health()

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp || eventsHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Events:   eventsHealth,
	}
}
