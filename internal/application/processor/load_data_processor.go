package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"rbb-weather/internal/domain/model"
	"rbb-weather/internal/domain/usecase/forecast"
	"rbb-weather/pkg/log"
	"rbb-weather/pkg/msg"
)

// LoadData is the LOAD_DATA notification name
const LoadData = "LOAD_DATA"

// LoadDataProcessor runs a load cycle for every LOAD_DATA notification, whether it arrives on
// a queue or on a pub/sub channel
type LoadDataProcessor struct {
	forecastUseCase forecast.UseCase
	defaultDays     int
	cycleTimeout    time.Duration
}

func NewLoadDataProcessor(forecastUseCase forecast.UseCase, defaultDays int, cycleTimeout time.Duration) *LoadDataProcessor {
	if cycleTimeout <= 0 {
		cycleTimeout = 30 * time.Second
	}
	return &LoadDataProcessor{
		forecastUseCase: forecastUseCase,
		defaultDays:     defaultDays,
		cycleTimeout:    cycleTimeout,
	}
}

// HandleMessage implements the sqs.Handler interface
func (p *LoadDataProcessor) HandleMessage(message *types.Message) error {
	if message == nil || message.Body == nil {
		return fmt.Errorf("received nil message or message body")
	}

	return p.process(context.Background(), "sqs", *message.Body)
}

// HandleNotification processes a LOAD_DATA message received on a pub/sub channel
func (p *LoadDataProcessor) HandleNotification(ctx context.Context, channel string, payload string) error {
	return p.process(ctx, channel, payload)
}

func (p *LoadDataProcessor) process(ctx context.Context, source string, payload string) error {
	var dto model.LoadDataDTO
	if err := json.Unmarshal([]byte(payload), &dto); err != nil {
		return fmt.Errorf("failed to unmarshal LOAD_DATA payload: %w", err)
	}
	if dto.ID == "" {
		return fmt.Errorf("LOAD_DATA payload without id")
	}

	config := dto.ToLoadConfig(p.defaultDays)
	log.Info(msg.GetMessage("forecast.load.start", config.LocationID, config.Days),
		zap.String("source", source),
		zap.String("location_id", config.LocationID),
		zap.Int("days", config.Days))

	ctx, cancel := context.WithTimeout(ctx, p.cycleTimeout)
	defer cancel()

	if _, err := p.forecastUseCase.Load(ctx, config); err != nil {
		// nothing to deliver is a final outcome, redelivery would not change it
		if errors.Is(err, forecast.ErrNoData) {
			return nil
		}
		return fmt.Errorf("failed to load forecast for %s: %w", config.LocationID, err)
	}

	return nil
}
