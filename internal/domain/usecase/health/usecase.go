package health

import "rbb-weather/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}

// Indicator reports the health of one application component
type Indicator interface {
	Health() model.ComponentHealthStatus
}

// IndicatorFunc adapts a function to Indicator
type IndicatorFunc func() model.ComponentHealthStatus

func (f IndicatorFunc) Health() model.ComponentHealthStatus {
	return f()
}
