package model

import (
	"time"

	"rbb-weather/internal/domain/entity"
)

// ForecastDelivery is the result handed to the presentation layer after a load cycle
type ForecastDelivery struct {
	RequestID  string             `json:"requestId"`
	LocationID string             `json:"id"`
	Days       int                `json:"days"`
	Forecast   entity.ForecastSet `json:"forecast"`
	// Cached is true when the cycle failed and the last good forecast is delivered instead
	Cached   bool      `json:"cached"`
	LoadedAt time.Time `json:"loadedAt"`
}

// Clone returns a deep copy of the delivery.
func (d *ForecastDelivery) Clone() *ForecastDelivery {
	if d == nil {
		return nil
	}

	clone := *d
	clone.Forecast = d.Forecast.Clone()
	return &clone
}
