package redis

import (
	"rbb-weather/internal/domain/model"
	"rbb-weather/pkg/redis"
	"rbb-weather/pkg/resource"
)

// NewClient creates the Redis client from app.redis.* properties
func NewClient() (*redis.Client, error) {
	config := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.redis.host", "localhost")).
		WithPort(resource.GetIntOrDefault("app.redis.port", 6379)).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetIntOrDefault("app.redis.database", 0))

	return redis.NewClient(config)
}

// NewPubSubConfig reads the channel namespace from app.redis.namespace
func NewPubSubConfig() *redis.PubSubConfig {
	return redis.NewPubSubConfig().WithChannelNamespace(resource.GetString("app.redis.namespace"))
}

// RedisHealth is implemented by Redis components that report their state
type RedisHealth interface {
	HealthCheck() redis.HealthCheck
}

type HealthIndicator struct {
	components map[string]RedisHealth
}

// NewHealthIndicator reports DOWN when any of the components is down
func NewHealthIndicator(components map[string]RedisHealth) *HealthIndicator {
	return &HealthIndicator{components: components}
}

func (indicator *HealthIndicator) Health() model.ComponentHealthStatus {
	status := model.StatusUp
	details := make(map[string]string)

	for name, component := range indicator.components {
		health := component.HealthCheck()
		if health.Status != redis.StatusUp {
			status = model.StatusDown
		}

		details[name+"_status"] = string(health.Status)
		for key, value := range health.Details {
			details[name+"_"+key] = value
		}
	}

	return model.ComponentHealthStatus{Status: status, Details: details}
}
