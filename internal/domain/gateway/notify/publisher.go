package notify

import (
	"context"

	"rbb-weather/internal/domain/model"
)

// DataLoaded is the DATA_LOADED notification name
const DataLoaded = "DATA_LOADED"

// Publisher delivers DATA_LOADED notifications to the presentation layer
type Publisher interface {
	PublishDataLoaded(ctx context.Context, delivery *model.ForecastDelivery) error
}

// ChannelPublisher publishes JSON messages on a named pub/sub channel
type ChannelPublisher interface {
	PublishJSON(ctx context.Context, channel string, message any) error
}

// DataLoadedMessage is the payload of a DATA_LOADED notification
type DataLoadedMessage struct {
	Type string `json:"type"`
	*model.ForecastDelivery
}
