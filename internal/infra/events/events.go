package events

import (
	"context"
	"errors"

	"go-weather/internal/domain/gateway/queue"
	"go-weather/internal/infra/aws"
	redisadapter "go-weather/internal/infra/redis"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"
	"go-weather/pkg/resource"
)

const (
	DriverNone  = "none"
	DriverRedis = "redis"
	DriverSQS   = "sqs"
)

// Config selects the broker weather request events go to
type Config struct {
	Driver      string
	Destination string
	Redis       *redis.Config
	Cloud       aws.Config
}

// Events bundles the sender, its health check and the cleanup of the underlying client
type Events struct {
	Sender      queue.Sender
	Health      queue.HealthGateway
	Destination string
	Close       func() error
}

// ConfigFromProperties reads app.events.*, app.redis.* and app.cloud.*
func ConfigFromProperties() Config {
	redisConfig := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.redis.host", "localhost")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))
	if port := resource.GetInt("app.redis.port"); port != 0 {
		redisConfig.WithPort(port)
	}

	return Config{
		Driver:      resource.GetStringOrDefault("app.events.driver", DriverNone),
		Destination: resource.GetStringOrDefault("app.events.destination", "weather-request-events"),
		Redis:       redisConfig,
		Cloud: aws.Config{
			Region:          resource.GetString("app.cloud.aws-region"),
			Endpoint:        resource.GetString("app.cloud.aws-endpoint"),
			AccessKeyID:     resource.GetString("app.cloud.aws-access-key-id"),
			SecretAccessKey: resource.GetString("app.cloud.aws-secret-access-key"),
		},
	}
}

// New builds the configured events sender. The none driver drops events.
func New(ctx context.Context, config Config) (*Events, error) {
	switch config.Driver {
	case "", DriverNone:
		log.Info(msg.GetMessage("events.disabled"))
		return &Events{
			Sender:      queue.NoopSender{},
			Health:      queue.DisabledHealthGateway{Message: msg.GetMessage("events.disabled")},
			Destination: config.Destination,
			Close:       func() error { return nil },
		}, nil

	case DriverRedis:
		client, err := redis.NewClient(config.Redis)
		if err != nil {
			return nil, err
		}
		adapter := redisadapter.NewPublisherAdapter(client)
		return &Events{
			Sender:      adapter,
			Health:      adapter,
			Destination: config.Destination,
			Close:       client.Close,
		}, nil

	case DriverSQS:
		cfg, err := aws.LoadConfig(ctx, config.Cloud)
		if err != nil {
			return nil, err
		}
		adapter := aws.NewSQSSenderAdapter(aws.NewSqsClient(cfg, config.Cloud.Endpoint), config.Destination)
		return &Events{
			Sender:      adapter,
			Health:      adapter,
			Destination: config.Destination,
			Close:       func() error { return nil },
		}, nil

	default:
		return nil, errors.New(msg.GetMessage("events.unknown-driver", config.Driver))
	}
}
