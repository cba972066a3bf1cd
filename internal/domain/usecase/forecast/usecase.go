package forecast

import (
	"context"
	"errors"

	"rbb-weather/internal/domain/entity"
	"rbb-weather/internal/domain/model"
)

// ErrNoData is returned by Load when a cycle failed and no earlier forecast is cached
var ErrNoData = errors.New("no forecast data available")

type UseCase interface {
	// Load fetches days 0..config.Days for config.LocationID in parallel.
	// A complete result replaces the cached forecast and is delivered. When any day fails the
	// cached forecast is delivered instead, or ErrNoData is returned when nothing is cached.
	// Every delivery is published as DATA_LOADED.
	Load(ctx context.Context, config entity.LoadConfig) (*model.ForecastDelivery, error)

	// Latest returns a copy of the cached forecast, false when no cycle succeeded yet
	Latest() (*model.ForecastDelivery, bool)

	// Health reports the outcome of the last cycle
	Health() model.ComponentHealthStatus
}
