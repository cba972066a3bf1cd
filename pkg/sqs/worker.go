package sqs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"rbb-weather/pkg/log"
)

// HealthStatus represents the health status of a worker
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// WorkerHealthCheck represents the health check response for a worker
type WorkerHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HandlerFunc defines a function that handles a SQS Message
type HandlerFunc func(msg *types.Message) error

// HandleMessage implements the Handler interface for HandlerFunc
func (f HandlerFunc) HandleMessage(msg *types.Message) error {
	return f(msg)
}

// Handler defines an interface that processes a SQS Message
type Handler interface {
	HandleMessage(msg *types.Message) error
}

// WorkerConfig defines the configuration options for a Worker
type WorkerConfig struct {
	MaxNumberOfMessages int32
	WaitTimeSeconds     int32
	PoolSize            int
	// ErrorDelay is the pause after a failed receive
	ErrorDelay time.Duration
}

// Worker polls and processes messages from a SQS queue
type Worker struct {
	sqsClient           SQSClient
	queueName           string
	queueURL            string
	maxNumberOfMessages int32
	waitTimeSeconds     int32
	poolSize            int
	errorDelay          time.Duration
	handler             Handler
	isRunning           atomic.Bool
	messagesProcessed   atomic.Int64
	messagesFailed      atomic.Int64
}

// NewWorker creates and returns a new Worker.
//
// If the provided WorkerConfig is nil or its fields are zero,
// the following defaults will be used:
//   - MaxNumberOfMessages: 10
//   - WaitTimeSeconds: 20
//   - PoolSize: 1
//   - ErrorDelay: 5s
//
// Validations:
//   - MaxNumberOfMessages must be between 1 and 10.
//   - WaitTimeSeconds must be between 1 and 20.
//   - PoolSize must be greater than 0.
func NewWorker(ctx context.Context, sqsClient SQSClient, queueName string, handler Handler, config *WorkerConfig) (*Worker, error) {
	var maxMessages int32 = 10
	var waitTime int32 = 20
	poolSize := 1
	errorDelay := 5 * time.Second

	if config != nil {
		if config.MaxNumberOfMessages != 0 {
			maxMessages = config.MaxNumberOfMessages
		}
		if config.WaitTimeSeconds != 0 {
			waitTime = config.WaitTimeSeconds
		}
		if config.PoolSize != 0 {
			poolSize = config.PoolSize
		}
		if config.ErrorDelay != 0 {
			errorDelay = config.ErrorDelay
		}
	}

	if maxMessages < 1 || maxMessages > 10 {
		return nil, errors.New("maxNumberOfMessages must be between 1 and 10")
	}
	if waitTime < 1 || waitTime > 20 {
		return nil, errors.New("waitTimeSeconds must be between 1 and 20")
	}
	if poolSize < 1 {
		return nil, errors.New("poolSize must be greater than 0")
	}

	queueURL, err := resolveQueueURL(ctx, sqsClient, queueName)
	if err != nil {
		return nil, fmt.Errorf("unable to get queue URL: %w", err)
	}

	return &Worker{
		sqsClient:           sqsClient,
		queueName:           queueName,
		queueURL:            queueURL,
		maxNumberOfMessages: maxMessages,
		waitTimeSeconds:     waitTime,
		poolSize:            poolSize,
		errorDelay:          errorDelay,
		handler:             handler,
	}, nil
}

// Start begins polling messages and processing them concurrently.
// It will spawn PoolSize number of pollers that keep polling messages
// until the provided context is canceled.
func (w *Worker) Start(ctx context.Context) {
	w.isRunning.Store(true)
	defer w.isRunning.Store(false)

	log.Info("SQS worker started", zap.String("queue", w.queueName), zap.Int("pool_size", w.poolSize))

	var wg sync.WaitGroup
	for i := 0; i < w.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.pollMessages(ctx)
		}()
	}
	wg.Wait()

	log.Info("SQS worker stopped", zap.String("queue", w.queueName))
}

func (w *Worker) pollMessages(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		output, err := w.sqsClient.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            &w.queueURL,
			MaxNumberOfMessages: w.maxNumberOfMessages,
			WaitTimeSeconds:     w.waitTimeSeconds,
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error("Failed to receive SQS messages", zap.String("queue", w.queueName), zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.errorDelay):
			}
			continue
		}

		for i := range output.Messages {
			w.handleMessage(ctx, &output.Messages[i])
		}
	}
}

// handleMessage runs the handler and deletes the message on success; failed messages are
// left on the queue for redelivery
func (w *Worker) handleMessage(ctx context.Context, msg *types.Message) {
	messageID := safeMessageID(msg)

	if err := w.handler.HandleMessage(msg); err != nil {
		w.messagesFailed.Add(1)
		log.Error("Error processing SQS message",
			zap.String("queue", w.queueName),
			zap.String("message_id", messageID),
			zap.Error(err))
		return
	}
	w.messagesProcessed.Add(1)

	_, err := w.sqsClient.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      &w.queueURL,
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		log.Error("Failed to delete SQS message",
			zap.String("queue", w.queueName),
			zap.String("message_id", messageID),
			zap.Error(err))
		return
	}
	log.Debug("Deleted SQS message", zap.String("queue", w.queueName), zap.String("message_id", messageID))
}

// HealthCheck returns the health status and details of the worker
func (w *Worker) HealthCheck() WorkerHealthCheck {
	running := w.isRunning.Load()

	status := StatusDown
	if running {
		status = StatusUp
	}

	return WorkerHealthCheck{
		Status: status,
		Details: map[string]string{
			"queue":              w.queueName,
			"pool_size":          strconv.Itoa(w.poolSize),
			"is_running":         strconv.FormatBool(running),
			"messages_processed": strconv.FormatInt(w.messagesProcessed.Load(), 10),
			"messages_failed":    strconv.FormatInt(w.messagesFailed.Load(), 10),
		},
	}
}

func safeMessageID(msg *types.Message) string {
	if msg == nil || msg.MessageId == nil {
		return ""
	}
	return *msg.MessageId
}
