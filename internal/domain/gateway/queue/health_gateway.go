package queue

import "go-weather/internal/domain/model"

type HealthGateway interface {
	Health() model.ComponentHealthStatus
}

// DisabledHealthGateway reports events as unknown when no broker is configured.
type DisabledHealthGateway struct {
	Message string
}

func (gateway DisabledHealthGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUnknown,
		Details: map[string]string{
			"driver":  "none",
			"message": gateway.Message,
		},
	}
}
