package notify

import (
	"context"
	"errors"
	"fmt"

	"rbb-weather/internal/domain/gateway/queue"
	"rbb-weather/internal/domain/model"
)

type channelPublisherImpl struct {
	publisher ChannelPublisher
	channel   string
}

// NewChannelPublisher publishes DATA_LOADED on a pub/sub channel
func NewChannelPublisher(publisher ChannelPublisher, channel string) Publisher {
	if channel == "" {
		channel = DataLoaded
	}
	return &channelPublisherImpl{publisher: publisher, channel: channel}
}

func (p *channelPublisherImpl) PublishDataLoaded(ctx context.Context, delivery *model.ForecastDelivery) error {
	if err := p.publisher.PublishJSON(ctx, p.channel, newDataLoadedMessage(delivery)); err != nil {
		return fmt.Errorf("failed to publish on channel %s: %w", p.channel, err)
	}
	return nil
}

type queuePublisherImpl struct {
	sender    queue.Sender
	queueName string
}

// NewQueuePublisher sends DATA_LOADED to a queue
func NewQueuePublisher(sender queue.Sender, queueName string) Publisher {
	return &queuePublisherImpl{sender: sender, queueName: queueName}
}

func (p *queuePublisherImpl) PublishDataLoaded(ctx context.Context, delivery *model.ForecastDelivery) error {
	if err := p.sender.SendMessage(ctx, p.queueName, newDataLoadedMessage(delivery)); err != nil {
		return fmt.Errorf("failed to send to queue %s: %w", p.queueName, err)
	}
	return nil
}

type multiPublisher []Publisher

// NewMultiPublisher publishes to every publisher and joins their errors
func NewMultiPublisher(publishers ...Publisher) Publisher {
	return multiPublisher(publishers)
}

func (m multiPublisher) PublishDataLoaded(ctx context.Context, delivery *model.ForecastDelivery) error {
	var errs []error
	for _, publisher := range m {
		if err := publisher.PublishDataLoaded(ctx, delivery); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func newDataLoadedMessage(delivery *model.ForecastDelivery) DataLoadedMessage {
	return DataLoadedMessage{Type: DataLoaded, ForecastDelivery: delivery}
}
