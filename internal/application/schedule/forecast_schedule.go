package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"rbb-weather/internal/domain/entity"
	"rbb-weather/internal/domain/usecase/forecast"
	"rbb-weather/pkg/log"
	"rbb-weather/pkg/msg"
)

// ForecastSchedulerConfig holds configuration for the forecast scheduler
type ForecastSchedulerConfig struct {
	CronExpression string
	LoadConfig     entity.LoadConfig
	CycleTimeout   time.Duration
	// RunOnStart triggers one cycle as soon as the scheduler starts
	RunOnStart bool
}

// ForecastScheduler refreshes the forecast of the configured city on a cron expression
type ForecastScheduler struct {
	cron    *cron.Cron
	useCase forecast.UseCase
	config  ForecastSchedulerConfig
	ctx     context.Context
	cancel  context.CancelFunc
	// initialRun tracks the run on start, which executes outside the cron
	initialRun sync.WaitGroup
}

func NewForecastScheduler(useCase forecast.UseCase, config ForecastSchedulerConfig) *ForecastScheduler {
	if config.CycleTimeout <= 0 {
		config.CycleTimeout = 30 * time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &ForecastScheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		useCase: useCase,
		config:  config,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// InitForecastScheduleTasks registers the refresh task and starts the cron
func (s *ForecastScheduler) InitForecastScheduleTasks() error {
	if _, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask); err != nil {
		return fmt.Errorf("invalid forecast cron expression %q: %w", s.config.CronExpression, err)
	}

	s.cron.Start()
	log.Info("Forecast scheduler started",
		zap.String("cron", s.config.CronExpression),
		zap.String("location_id", s.config.LoadConfig.LocationID),
		zap.Int("days", s.config.LoadConfig.Days))

	if s.config.RunOnStart {
		s.initialRun.Add(1)
		go func() {
			defer s.initialRun.Done()
			s.ExecuteScheduledTask()
		}()
	}
	return nil
}

// ExecuteScheduledTask runs one load cycle bounded by the cycle timeout
func (s *ForecastScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()
	config := s.config.LoadConfig

	log.Info(msg.GetMessage("forecast.load.start", config.LocationID, config.Days),
		zap.String("request_id", requestID),
		zap.String("location_id", config.LocationID))

	ctx, cancel := context.WithTimeout(s.ctx, s.config.CycleTimeout)
	defer cancel()

	delivery, err := s.useCase.Load(ctx, config)
	if err != nil {
		if errors.Is(err, forecast.ErrNoData) {
			log.Warn(msg.GetMessage("forecast.error.no-data"), zap.String("request_id", requestID), zap.Error(err))
			return
		}
		log.Error("Scheduled forecast load failed", zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info("Scheduled forecast load finished",
		zap.String("request_id", requestID),
		zap.String("cycle_request_id", delivery.RequestID),
		zap.Bool("cached", delivery.Cached))
}

// Stop cancels running cycles and waits for them, the run on start included
func (s *ForecastScheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
	s.initialRun.Wait()
}
