package forecast

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"rbb-weather/internal/domain/entity"
	"rbb-weather/internal/domain/gateway/api"
	"rbb-weather/internal/domain/gateway/notify"
	"rbb-weather/internal/domain/model"
	"rbb-weather/pkg/log"
)

type cycleOutcome struct {
	status     model.HealthStatus
	finishedAt time.Time
	err        error
}

type forecastUseCase struct {
	apiGateway api.ForecastGateway
	publisher  notify.Publisher
	now        func() time.Time

	// cycle holds one token while a load cycle runs
	cycle chan struct{}

	mu          sync.RWMutex
	cache       *model.ForecastDelivery
	lastOutcome cycleOutcome
}

func NewForecastUseCase(apiGateway api.ForecastGateway, publisher notify.Publisher) UseCase {
	if publisher == nil {
		publisher = notify.NewMultiPublisher()
	}

	return &forecastUseCase{
		apiGateway:  apiGateway,
		publisher:   publisher,
		now:         time.Now,
		cycle:       make(chan struct{}, 1),
		lastOutcome: cycleOutcome{status: model.StatusUnknown},
	}
}

// Load runs one load cycle. Cycles of the same use case never overlap.
func (uc *forecastUseCase) Load(ctx context.Context, config entity.LoadConfig) (*model.ForecastDelivery, error) {
	select {
	case uc.cycle <- struct{}{}:
	case <-ctx.Done():
		return nil, fmt.Errorf("load cycle not started: %w", ctx.Err())
	}
	defer func() { <-uc.cycle }()

	config = config.Normalize()
	requestID := uuid.NewString()

	log.Info("Starting forecast load cycle",
		zap.String("request_id", requestID),
		zap.String("location_id", config.LocationID),
		zap.Int("days", config.Days))

	forecast, err := uc.fetchAll(ctx, requestID, config)
	if err != nil {
		return uc.fallback(ctx, requestID, err)
	}

	delivery := &model.ForecastDelivery{
		RequestID:  requestID,
		LocationID: config.LocationID,
		Days:       config.Days,
		Forecast:   forecast,
		LoadedAt:   uc.now(),
	}

	uc.mu.Lock()
	uc.cache = delivery.Clone()
	uc.lastOutcome = cycleOutcome{status: model.StatusUp, finishedAt: delivery.LoadedAt}
	uc.mu.Unlock()

	log.Info("Forecast load cycle completed",
		zap.String("request_id", requestID),
		zap.String("location_id", config.LocationID),
		zap.Int("days", config.Days))

	uc.publish(ctx, delivery)
	return delivery, nil
}

// fetchAll fetches every day of the config and waits for all of them. Each result is stored
// at its day offset, so the set is ordered regardless of completion order.
func (uc *forecastUseCase) fetchAll(ctx context.Context, requestID string, config entity.LoadConfig) (entity.ForecastSet, error) {
	forecast := make(entity.ForecastSet, config.Days+1)

	var group errgroup.Group
	for day := 0; day <= config.Days; day++ {
		group.Go(func() error {
			record, err := uc.apiGateway.FetchDay(ctx, day, config.LocationID)
			if err != nil {
				log.Warn("Failed to fetch forecast day",
					zap.String("request_id", requestID),
					zap.String("location_id", config.LocationID),
					zap.Int("day", day),
					zap.Error(err))
				return err
			}

			forecast[day] = record
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return forecast, nil
}

// fallback delivers the cached forecast after a failed cycle, leaving the cache untouched
func (uc *forecastUseCase) fallback(ctx context.Context, requestID string, cause error) (*model.ForecastDelivery, error) {
	uc.mu.Lock()
	uc.lastOutcome = cycleOutcome{status: model.StatusDown, finishedAt: uc.now(), err: cause}
	cached := uc.cache.Clone()
	uc.mu.Unlock()

	if cached == nil {
		log.Error("Forecast load cycle failed and no cached forecast is available",
			zap.String("request_id", requestID),
			zap.Error(cause))
		return nil, fmt.Errorf("%w: %w", ErrNoData, cause)
	}

	cached.RequestID = requestID
	cached.Cached = true

	log.Warn("Forecast load cycle failed, delivering cached forecast",
		zap.String("request_id", requestID),
		zap.String("location_id", cached.LocationID),
		zap.Time("loaded_at", cached.LoadedAt),
		zap.Error(cause))

	uc.publish(ctx, cached)
	return cached, nil
}

// publish notifies DATA_LOADED; failures are logged and never change the cycle result
func (uc *forecastUseCase) publish(ctx context.Context, delivery *model.ForecastDelivery) {
	if err := uc.publisher.PublishDataLoaded(ctx, delivery.Clone()); err != nil {
		log.Error("Failed to publish DATA_LOADED",
			zap.String("request_id", delivery.RequestID),
			zap.Error(err))
	}
}

func (uc *forecastUseCase) Latest() (*model.ForecastDelivery, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.cache == nil {
		return nil, false
	}
	return uc.cache.Clone(), true
}

func (uc *forecastUseCase) Health() model.ComponentHealthStatus {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	details := map[string]string{
		"cached": strconv.FormatBool(uc.cache != nil),
	}
	if uc.cache != nil {
		details["location_id"] = uc.cache.LocationID
		details["loaded_at"] = uc.cache.LoadedAt.Format(time.RFC3339)
	}
	if !uc.lastOutcome.finishedAt.IsZero() {
		details["last_cycle"] = uc.lastOutcome.finishedAt.Format(time.RFC3339)
	}
	if uc.lastOutcome.err != nil {
		details["last_error"] = uc.lastOutcome.err.Error()
	}

	return model.ComponentHealthStatus{
		Status:  uc.lastOutcome.status,
		Details: details,
	}
}
