package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableClient(t *testing.T) *Client {
	t.Helper()

	config := NewRedisConfig().WithHost("127.0.0.1").WithPort(1)
	config.DialTimeout = 100 * time.Millisecond
	config.MaxRetries = 0

	client, err := NewClient(config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, NewRedisConfig().Validate())
	assert.Error(t, NewRedisConfig().WithHost("").Validate())
	assert.Error(t, NewRedisConfig().WithPort(0).Validate())
	assert.Error(t, NewRedisConfig().WithDatabase(16).Validate())
	assert.Equal(t, "cache:6380", NewRedisConfig().WithHost("cache").WithPort(6380).Addr())
}

func TestNewClientInvalidConfig(t *testing.T) {
	_, err := NewClient(NewRedisConfig().WithPort(70000))

	assert.Error(t, err)
}

func TestHealthCheckDown(t *testing.T) {
	checker := NewHealthChecker(unreachableClient(t))

	health := checker.HealthCheck()

	assert.Equal(t, StatusDown, health.Status)
	assert.Equal(t, "127.0.0.1:1", health.Details["address"])
	assert.Contains(t, health.Details["last_error"], "ping failed")
}

func TestPublishUnreachable(t *testing.T) {
	publisher := NewPublisher(unreachableClient(t), NewPubSubConfig().WithChannelNamespace("rbb"))

	err := publisher.PublishJSON(context.Background(), "DATA_LOADED", map[string]string{"id": "1"})

	assert.Error(t, err)
}

func TestPublishJSONInvalidBody(t *testing.T) {
	publisher := NewPublisher(unreachableClient(t), nil)

	err := publisher.PublishJSON(context.Background(), "DATA_LOADED", make(chan int))

	assert.ErrorContains(t, err, "failed to marshal")
}

func TestNewSubscriberValidation(t *testing.T) {
	client := unreachableClient(t)
	handler := HandlerFunc(func(context.Context, string, string) error { return nil })

	_, err := NewSubscriber(client, handler, nil)
	assert.Error(t, err)

	subscriber, err := NewSubscriber(client, handler, NewPubSubConfig().WithChannelNamespace("rbb"), "LOAD_DATA")
	require.NoError(t, err)
	assert.Equal(t, []string{"rbb::LOAD_DATA"}, subscriber.channels)

	health := subscriber.HealthCheck()
	assert.Equal(t, StatusDown, health.Status)
	assert.Equal(t, "false", health.Details["is_running"])
}

func TestSubscriberStopsOnCancel(t *testing.T) {
	subscriber, err := NewSubscriber(unreachableClient(t),
		HandlerFunc(func(context.Context, string, string) error { return nil }),
		&PubSubConfig{ReconnectDelay: 10 * time.Millisecond}, "LOAD_DATA")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		subscriber.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber did not stop after context cancellation")
	}
	assert.False(t, subscriber.isRunning.Load())
}
