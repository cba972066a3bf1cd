package health

import (
	"sync"

	"rbb-weather/internal/domain/model"
)

type healthUseCase struct {
	indicators map[string]Indicator
}

// NewHealthUseCase aggregates the given indicators by component name
func NewHealthUseCase(indicators map[string]Indicator) UseCase {
	return &healthUseCase{
		indicators: indicators,
	}
}

// CheckHealth queries every indicator in parallel. The application is UP when no component
// is DOWN; components that cannot tell yet (UNKNOWN) do not bring it down.
func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	components := make(map[string]model.ComponentHealthStatus, len(useCase.indicators))

	var mutex sync.Mutex
	var wg sync.WaitGroup
	for name, indicator := range useCase.indicators {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status := indicator.Health()

			mutex.Lock()
			components[name] = status
			mutex.Unlock()
		}()
	}
	wg.Wait()

	overallStatus := model.StatusUp
	for _, component := range components {
		if component.Status == model.StatusDown {
			overallStatus = model.StatusDown
		}
	}

	return model.HealthResponse{
		Status:     overallStatus,
		Components: components,
	}
}
