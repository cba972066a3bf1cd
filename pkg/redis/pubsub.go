package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"rbb-weather/pkg/log"
)

// MessageHandler defines an interface that processes Redis pub/sub messages
type MessageHandler interface {
	HandleMessage(ctx context.Context, channel string, message string) error
}

// HandlerFunc defines a function that handles Redis pub/sub messages
type HandlerFunc func(ctx context.Context, channel string, message string) error

var _ MessageHandler = HandlerFunc(nil)

// HandleMessage implements the MessageHandler interface for HandlerFunc
func (f HandlerFunc) HandleMessage(ctx context.Context, channel string, message string) error {
	return f(ctx, channel, message)
}

// PubSubConfig defines the configuration options for Redis pub/sub
type PubSubConfig struct {
	// PoolSize is the number of concurrent message handlers
	PoolSize int
	// ReconnectDelay is the delay between reconnection attempts
	ReconnectDelay time.Duration
	// ChannelNamespace prefixes every channel as namespace::channel
	ChannelNamespace string
}

// NewPubSubConfig creates a new pub/sub configuration with default values
func NewPubSubConfig() *PubSubConfig {
	return &PubSubConfig{
		PoolSize:       1,
		ReconnectDelay: 1 * time.Second,
	}
}

// WithPoolSize sets the number of concurrent message handlers
func (psc *PubSubConfig) WithPoolSize(poolSize int) *PubSubConfig {
	psc.PoolSize = poolSize
	return psc
}

// WithChannelNamespace sets the namespace for organizing channels
func (psc *PubSubConfig) WithChannelNamespace(namespace string) *PubSubConfig {
	psc.ChannelNamespace = namespace
	return psc
}

func buildChannelName(namespace string, channel string) string {
	if namespace != "" {
		return namespace + "::" + channel
	}
	return channel
}

// Publisher handles Redis publishing operations
type Publisher struct {
	client    *redis.Client
	namespace string
}

// NewPublisher creates a new publisher
func NewPublisher(client *Client, config *PubSubConfig) *Publisher {
	if config == nil {
		config = NewPubSubConfig()
	}
	return &Publisher{
		client:    client.GetClient(),
		namespace: config.ChannelNamespace,
	}
}

// Publish publishes a raw message to a channel
func (p *Publisher) Publish(ctx context.Context, channel string, message any) error {
	return p.client.Publish(ctx, buildChannelName(p.namespace, channel), message).Err()
}

// PublishJSON publishes a JSON message to a channel
func (p *Publisher) PublishJSON(ctx context.Context, channel string, message any) error {
	jsonData, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message to JSON: %w", err)
	}
	return p.Publish(ctx, channel, jsonData)
}

// Subscriber listens to Redis pub/sub channels and dispatches messages to a handler pool
type Subscriber struct {
	client            *redis.Client
	handler           MessageHandler
	poolSize          int
	reconnectDelay    time.Duration
	namespace         string
	channels          []string
	isRunning         atomic.Bool
	messagesProcessed atomic.Int64
	messagesFailed    atomic.Int64
}

// NewSubscriber creates and returns a new Subscriber.
//
// If the provided PubSubConfig is nil or its fields are zero,
// PoolSize defaults to 1 and ReconnectDelay to 1 second.
func NewSubscriber(client *Client, handler MessageHandler, config *PubSubConfig, channels ...string) (*Subscriber, error) {
	poolSize := 1
	reconnectDelay := 1 * time.Second
	var namespace string

	if config != nil {
		if config.PoolSize != 0 {
			poolSize = config.PoolSize
		}
		if config.ReconnectDelay != 0 {
			reconnectDelay = config.ReconnectDelay
		}
		namespace = config.ChannelNamespace
	}

	if poolSize < 1 {
		return nil, fmt.Errorf("pool size must be greater than 0")
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("at least one channel is required")
	}

	namespaced := make([]string, len(channels))
	for i, channel := range channels {
		namespaced[i] = buildChannelName(namespace, channel)
	}

	return &Subscriber{
		client:         client.GetClient(),
		handler:        handler,
		poolSize:       poolSize,
		reconnectDelay: reconnectDelay,
		namespace:      namespace,
		channels:       namespaced,
	}, nil
}

// Start subscribes to the channels and processes messages until ctx is canceled.
// A dropped subscription is re-established after ReconnectDelay.
func (s *Subscriber) Start(ctx context.Context) {
	s.isRunning.Store(true)
	defer s.isRunning.Store(false)

	log.Info("Redis subscriber started", zap.Strings("channels", s.channels), zap.Int("pool_size", s.poolSize))

	for {
		s.listen(ctx)

		select {
		case <-ctx.Done():
			log.Info("Redis subscriber stopped", zap.Strings("channels", s.channels))
			return
		case <-time.After(s.reconnectDelay):
			log.Warn("Redis subscription closed, reconnecting", zap.Strings("channels", s.channels))
		}
	}
}

// listen consumes one subscription until it is closed or ctx is canceled
func (s *Subscriber) listen(ctx context.Context) {
	sub := s.client.Subscribe(ctx, s.channels...)
	defer sub.Close()

	messages := sub.Channel()
	var wg sync.WaitGroup

	for i := 0; i < s.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case msg, ok := <-messages:
					if !ok {
						return
					}
					s.handleMessage(ctx, msg)
				}
			}
		}()
	}

	wg.Wait()
}

func (s *Subscriber) handleMessage(ctx context.Context, msg *redis.Message) {
	if msg == nil {
		return
	}

	channel := strings.TrimPrefix(msg.Channel, buildChannelName(s.namespace, ""))
	if err := s.handler.HandleMessage(ctx, channel, msg.Payload); err != nil {
		s.messagesFailed.Add(1)
		log.Error("Error processing Redis message", zap.String("channel", msg.Channel), zap.Error(err))
		return
	}

	s.messagesProcessed.Add(1)
	log.Debug("Processed Redis message", zap.String("channel", msg.Channel))
}

// HealthCheck returns the health status and details of the subscriber
func (s *Subscriber) HealthCheck() HealthCheck {
	running := s.isRunning.Load()

	status := StatusDown
	if running {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if s.client.Ping(ctx).Err() == nil {
			status = StatusUp
		}
	}

	return HealthCheck{
		Status: status,
		Details: map[string]string{
			"channels":           strings.Join(s.channels, ","),
			"pool_size":          strconv.Itoa(s.poolSize),
			"is_running":         strconv.FormatBool(running),
			"messages_processed": strconv.FormatInt(s.messagesProcessed.Load(), 10),
			"messages_failed":    strconv.FormatInt(s.messagesFailed.Load(), 10),
		},
	}
}
