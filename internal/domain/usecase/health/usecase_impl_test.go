package health

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rbb-weather/internal/domain/model"
)

func status(s model.HealthStatus) Indicator {
	return IndicatorFunc(func() model.ComponentHealthStatus {
		return model.ComponentHealthStatus{Status: s}
	})
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name       string
		indicators map[string]Indicator
		want       model.HealthStatus
	}{
		{"no indicators", map[string]Indicator{}, model.StatusUp},
		{"all up", map[string]Indicator{"forecast": status(model.StatusUp), "redis": status(model.StatusUp)}, model.StatusUp},
		{"unknown is not down", map[string]Indicator{"forecast": status(model.StatusUnknown)}, model.StatusUp},
		{"one down", map[string]Indicator{"forecast": status(model.StatusUp), "queue": status(model.StatusDown)}, model.StatusDown},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			response := NewHealthUseCase(test.indicators).CheckHealth()

			assert.Equal(t, test.want, response.Status)
			assert.Len(t, response.Components, len(test.indicators))
		})
	}
}
