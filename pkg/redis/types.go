package redis

// HealthStatus represents the health status
type HealthStatus string

const (
	// StatusUp indicates the service is healthy and running
	StatusUp HealthStatus = "UP"
	// StatusDown indicates the service is not healthy or not running
	StatusDown HealthStatus = "DOWN"
	// StatusUnknown indicates the service status cannot be determined
	StatusUnknown HealthStatus = "UNKNOWN"
)

// HealthCheck represents the health check response of a Redis component
type HealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}
