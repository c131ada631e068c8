package redis

import (
	"context"
	"time"

	"go-weather/internal/domain/gateway/queue"
	"go-weather/internal/domain/model"
	"go-weather/pkg/redis"
)

// PublisherAdapter publishes domain messages on Redis pub/sub channels
type PublisherAdapter struct {
	client *redis.Client
}

var (
	_ queue.Sender        = (*PublisherAdapter)(nil)
	_ queue.HealthGateway = (*PublisherAdapter)(nil)
)

func NewPublisherAdapter(client *redis.Client) *PublisherAdapter {
	return &PublisherAdapter{client: client}
}

func (adapter *PublisherAdapter) SendMessage(ctx context.Context, channel string, body any) error {
	return adapter.client.PublishJSON(ctx, channel, body)
}

func (adapter *PublisherAdapter) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	check := adapter.client.HealthCheck(ctx)
	details := map[string]string{"driver": "redis"}
	for key, value := range check.Details {
		details[key] = value
	}

	status := model.StatusDown
	if check.Healthy {
		status = model.StatusUp
	}
	return model.ComponentHealthStatus{Status: status, Details: details}
}
