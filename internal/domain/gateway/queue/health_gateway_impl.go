package queue

import (
	"strconv"
	"sync"

	"rbb-weather/internal/domain/model"
	"rbb-weather/pkg/sqs"
)

type queueHealthGateway struct {
	workers map[string]WorkerHealth
	mutex   sync.RWMutex
}

func NewQueueHealthGateway() HealthGateway {
	return &queueHealthGateway{
		workers: make(map[string]WorkerHealth),
	}
}

func (gateway *queueHealthGateway) RegisterWorker(name string, worker WorkerHealth) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	gateway.workers[name] = worker
}

func (gateway *queueHealthGateway) UnregisterWorker(name string) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	delete(gateway.workers, name)
}

func (gateway *queueHealthGateway) Health() model.ComponentHealthStatus {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	if len(gateway.workers) == 0 {
		return model.ComponentHealthStatus{
			Status: model.StatusUnknown,
			Details: map[string]string{
				"message":       "No workers registered",
				"workers_count": "0",
			},
		}
	}

	overallStatus := model.StatusUp
	details := make(map[string]string)
	workersUp := 0

	for name, worker := range gateway.workers {
		workerHealth := worker.HealthCheck()

		if workerHealth.Status == sqs.StatusUp {
			workersUp++
		} else {
			overallStatus = model.StatusDown
		}
		details[name+"_status"] = string(workerHealth.Status)

		for key, value := range workerHealth.Details {
			details[name+"_"+key] = value
		}
	}

	details["workers_total"] = strconv.Itoa(len(gateway.workers))
	details["workers_up"] = strconv.Itoa(workersUp)
	details["workers_down"] = strconv.Itoa(len(gateway.workers) - workersUp)

	return model.ComponentHealthStatus{
		Status:  overallStatus,
		Details: details,
	}
}
