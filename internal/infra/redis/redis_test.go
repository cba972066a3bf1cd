package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rbb-weather/internal/domain/model"
	"rbb-weather/pkg/redis"
)

type staticHealth redis.HealthCheck

func (h staticHealth) HealthCheck() redis.HealthCheck {
	return redis.HealthCheck(h)
}

func TestHealthIndicator(t *testing.T) {
	indicator := NewHealthIndicator(map[string]RedisHealth{
		"connection": staticHealth{Status: redis.StatusUp, Details: map[string]string{"address": "localhost:6379"}},
	})

	health := indicator.Health()
	assert.Equal(t, model.StatusUp, health.Status)
	assert.Equal(t, "localhost:6379", health.Details["connection_address"])

	indicator.components["subscriber"] = staticHealth{Status: redis.StatusDown}
	assert.Equal(t, model.StatusDown, indicator.Health().Status)
}

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient()

	if assert.NoError(t, err) {
		defer client.Close()
		assert.Equal(t, "localhost:6379", client.GetConfig().Addr())
	}
}
