package queue

import (
	"rbb-weather/internal/domain/model"
	"rbb-weather/pkg/sqs"
)

type HealthGateway interface {
	Health() model.ComponentHealthStatus
	RegisterWorker(name string, worker WorkerHealth)
	UnregisterWorker(name string)
}

// WorkerHealth is implemented by queue consumers that report their state
type WorkerHealth interface {
	HealthCheck() sqs.WorkerHealthCheck
}
