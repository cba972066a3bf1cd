package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rbb-weather/internal/domain/entity"
	"rbb-weather/internal/domain/model"
)

type recordingChannel struct {
	channel string
	message any
	err     error
}

func (r *recordingChannel) PublishJSON(_ context.Context, channel string, message any) error {
	r.channel = channel
	r.message = message
	return r.err
}

type recordingSender struct {
	queueName string
	body      any
	err       error
}

func (r *recordingSender) SendMessage(_ context.Context, queueName string, body any) error {
	r.queueName = queueName
	r.body = body
	return r.err
}

func delivery() *model.ForecastDelivery {
	return &model.ForecastDelivery{
		RequestID:  "req",
		LocationID: "10381",
		Days:       1,
		Forecast:   entity.ForecastSet{{"id": "10381"}, {"id": "10381", "temp": "18;7"}},
	}
}

func TestChannelPublisher(t *testing.T) {
	channel := &recordingChannel{}

	require.NoError(t, NewChannelPublisher(channel, "").PublishDataLoaded(context.Background(), delivery()))

	assert.Equal(t, DataLoaded, channel.channel)
	payload, err := json.Marshal(channel.message)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"DATA_LOADED","requestId":"req","id":"10381","days":1,"cached":false,
		"loadedAt":"0001-01-01T00:00:00Z","forecast":[{"id":"10381"},{"id":"10381","temp":"18;7"}]}`, string(payload))
}

func TestQueuePublisher(t *testing.T) {
	sender := &recordingSender{err: errors.New("queue down")}

	err := NewQueuePublisher(sender, "rbb-data-loaded").PublishDataLoaded(context.Background(), delivery())

	assert.ErrorContains(t, err, "rbb-data-loaded")
	assert.Equal(t, "rbb-data-loaded", sender.queueName)
	assert.IsType(t, DataLoadedMessage{}, sender.body)
}

func TestMultiPublisherPublishesToAll(t *testing.T) {
	failing := &recordingChannel{err: errors.New("redis down")}
	sender := &recordingSender{}

	err := NewMultiPublisher(NewChannelPublisher(failing, "DATA_LOADED"), NewQueuePublisher(sender, "q")).
		PublishDataLoaded(context.Background(), delivery())

	assert.ErrorContains(t, err, "redis down")
	assert.Equal(t, "q", sender.queueName)
	assert.NoError(t, NewMultiPublisher().PublishDataLoaded(context.Background(), delivery()))
}
