package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, NewRedisConfig().Validate())
	assert.Error(t, NewRedisConfig().WithHost("").Validate())
	assert.Error(t, NewRedisConfig().WithPort(0).Validate())
	assert.Error(t, NewRedisConfig().WithDatabase(16).Validate())
	assert.Equal(t, "cache:6380", NewRedisConfig().WithHost("cache").WithPort(6380).Addr())
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	_, err := NewClient(NewRedisConfig().WithPort(70000))
	assert.Error(t, err)
}

func TestHealthCheckDownWhenUnreachable(t *testing.T) {
	config := NewRedisConfig().WithHost("127.0.0.1").WithPort(1)
	config.DialTimeout = 200 * time.Millisecond
	client, err := NewClient(config)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	health := client.HealthCheck(context.Background())

	assert.False(t, health.Healthy)
	assert.Equal(t, "127.0.0.1:1", health.Details["address"])
	assert.NotEmpty(t, health.Details["error"])
}
