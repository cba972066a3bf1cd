package forecast

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rbb-weather/internal/domain/entity"
	"rbb-weather/internal/domain/gateway/api"
	"rbb-weather/internal/domain/model"
)

type fakeGateway struct {
	mu       sync.Mutex
	calls    []int
	fetchDay func(ctx context.Context, day int, locationID string) (entity.DayRecord, error)
}

func (f *fakeGateway) FetchDay(ctx context.Context, day int, locationID string) (entity.DayRecord, error) {
	f.mu.Lock()
	f.calls = append(f.calls, day)
	f.mu.Unlock()
	return f.fetchDay(ctx, day, locationID)
}

func (f *fakeGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakePublisher struct {
	mu         sync.Mutex
	deliveries []*model.ForecastDelivery
	err        error
}

func (f *fakePublisher) PublishDataLoaded(_ context.Context, delivery *model.ForecastDelivery) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deliveries = append(f.deliveries, delivery)
	return f.err
}

func (f *fakePublisher) published() []*model.ForecastDelivery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*model.ForecastDelivery(nil), f.deliveries...)
}

func okGateway() *fakeGateway {
	return &fakeGateway{fetchDay: func(_ context.Context, day int, locationID string) (entity.DayRecord, error) {
		return entity.DayRecord{"id": locationID, "day": strconv.Itoa(day)}, nil
	}}
}

func failingGateway(failDay int) *fakeGateway {
	return &fakeGateway{fetchDay: func(_ context.Context, day int, locationID string) (entity.DayRecord, error) {
		if day == failDay {
			return nil, &api.NetworkError{Day: day, Err: errors.New("connection refused")}
		}
		return entity.DayRecord{"id": locationID, "day": strconv.Itoa(day)}, nil
	}}
}

func newUseCase(gateway api.ForecastGateway, publisher *fakePublisher) *forecastUseCase {
	uc := NewForecastUseCase(gateway, publisher).(*forecastUseCase)
	uc.now = func() time.Time { return time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC) }
	return uc
}

func TestLoadFetchesEveryDayInOrder(t *testing.T) {
	gateway := &fakeGateway{fetchDay: func(_ context.Context, day int, locationID string) (entity.DayRecord, error) {
		// later days finish first
		time.Sleep(time.Duration(4-day) * 5 * time.Millisecond)
		return entity.DayRecord{"id": locationID, "day": strconv.Itoa(day)}, nil
	}}
	publisher := &fakePublisher{}
	uc := newUseCase(gateway, publisher)

	delivery, err := uc.Load(context.Background(), entity.LoadConfig{LocationID: "2a", Days: 3})

	require.NoError(t, err)
	require.Len(t, delivery.Forecast, 4)
	for day, record := range delivery.Forecast {
		assert.Equal(t, strconv.Itoa(day), record["day"])
	}
	assert.False(t, delivery.Cached)
	assert.Equal(t, "2a", delivery.LocationID)
	assert.Equal(t, 3, delivery.Days)
	assert.NotEmpty(t, delivery.RequestID)
	assert.Equal(t, model.StatusUp, uc.Health().Status)

	latest, ok := uc.Latest()
	require.True(t, ok)
	assert.Equal(t, delivery.Forecast, latest.Forecast)

	published := publisher.published()
	require.Len(t, published, 1)
	assert.Equal(t, delivery.Forecast, published[0].Forecast)
}

func TestLoadBerlinTwoDays(t *testing.T) {
	gateway := &fakeGateway{fetchDay: func(_ context.Context, day int, _ string) (entity.DayRecord, error) {
		records := []entity.DayRecord{
			{"id": "10381", "name": "Berlin", "temp": "12"},
			{"id": "10381", "name": "Berlin", "temp": "18;7"},
		}
		return records[day], nil
	}}
	uc := newUseCase(gateway, &fakePublisher{})

	delivery, err := uc.Load(context.Background(), entity.LoadConfig{LocationID: "10381", Days: 1})

	require.NoError(t, err)
	assert.Equal(t, entity.ForecastSet{
		{"id": "10381", "name": "Berlin", "temp": "12"},
		{"id": "10381", "name": "Berlin", "temp": "18;7"},
	}, delivery.Forecast)
}

func TestLoadClampsDays(t *testing.T) {
	tests := []struct {
		days  int
		calls int
	}{
		{days: 12, calls: 8},
		{days: 0, calls: 1},
		{days: -3, calls: 1},
	}

	for _, test := range tests {
		gateway := okGateway()
		uc := newUseCase(gateway, &fakePublisher{})

		delivery, err := uc.Load(context.Background(), entity.LoadConfig{LocationID: "1", Days: test.days})

		require.NoError(t, err)
		assert.Len(t, delivery.Forecast, test.calls)
		assert.Equal(t, test.calls, gateway.callCount())
	}
}

func TestLoadFallsBackToCache(t *testing.T) {
	publisher := &fakePublisher{}
	uc := newUseCase(okGateway(), publisher)

	first, err := uc.Load(context.Background(), entity.LoadConfig{LocationID: "10381", Days: 2})
	require.NoError(t, err)

	uc.apiGateway = failingGateway(1)
	second, err := uc.Load(context.Background(), entity.LoadConfig{LocationID: "2a", Days: 4})

	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Forecast, second.Forecast)
	assert.Equal(t, "10381", second.LocationID)
	assert.NotEqual(t, first.RequestID, second.RequestID)

	latest, ok := uc.Latest()
	require.True(t, ok)
	assert.Equal(t, first.Forecast, latest.Forecast)
	assert.False(t, latest.Cached)

	health := uc.Health()
	assert.Equal(t, model.StatusDown, health.Status)
	assert.Contains(t, health.Details["last_error"], "day 1")
	assert.Len(t, publisher.published(), 2)
}

func TestLoadWithoutCacheReturnsErrNoData(t *testing.T) {
	publisher := &fakePublisher{}
	uc := newUseCase(failingGateway(0), publisher)

	delivery, err := uc.Load(context.Background(), entity.LoadConfig{LocationID: "1", Days: 2})

	assert.Nil(t, delivery)
	assert.ErrorIs(t, err, ErrNoData)
	var networkErr *api.NetworkError
	require.ErrorAs(t, err, &networkErr)
	assert.Equal(t, 0, networkErr.Day)
	assert.Empty(t, publisher.published())

	_, ok := uc.Latest()
	assert.False(t, ok)
}

func TestLoadPublishFailureDoesNotChangeResult(t *testing.T) {
	uc := newUseCase(okGateway(), &fakePublisher{err: errors.New("redis down")})

	delivery, err := uc.Load(context.Background(), entity.LoadConfig{LocationID: "1", Days: 1})

	require.NoError(t, err)
	assert.Len(t, delivery.Forecast, 2)
}

func TestLoadEmptyRecordIsSuccess(t *testing.T) {
	gateway := &fakeGateway{fetchDay: func(context.Context, int, string) (entity.DayRecord, error) {
		return entity.DayRecord{}, nil
	}}
	uc := newUseCase(gateway, &fakePublisher{})

	delivery, err := uc.Load(context.Background(), entity.LoadConfig{LocationID: "missing", Days: 1})

	require.NoError(t, err)
	assert.Equal(t, entity.ForecastSet{{}, {}}, delivery.Forecast)
}

func TestCachedDeliveryIsIsolated(t *testing.T) {
	uc := newUseCase(okGateway(), &fakePublisher{})

	delivery, err := uc.Load(context.Background(), entity.LoadConfig{LocationID: "1", Days: 0})
	require.NoError(t, err)
	delivery.Forecast[0]["id"] = "changed"

	latest, _ := uc.Latest()
	assert.Equal(t, "1", latest.Forecast[0]["id"])
}

func TestLoadCyclesDoNotOverlap(t *testing.T) {
	var running, maxRunning atomic.Int32
	gateway := &fakeGateway{fetchDay: func(_ context.Context, day int, _ string) (entity.DayRecord, error) {
		if day == 0 {
			current := running.Add(1)
			for {
				seen := maxRunning.Load()
				if current <= seen || maxRunning.CompareAndSwap(seen, current) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			running.Add(-1)
		}
		return entity.DayRecord{}, nil
	}}
	uc := newUseCase(gateway, &fakePublisher{})

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Load(context.Background(), entity.LoadConfig{LocationID: "1", Days: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxRunning.Load())
}

func TestLoadWaitingCycleHonorsContext(t *testing.T) {
	release := make(chan struct{})
	gateway := &fakeGateway{fetchDay: func(context.Context, int, string) (entity.DayRecord, error) {
		<-release
		return entity.DayRecord{}, nil
	}}
	uc := newUseCase(gateway, &fakePublisher{})

	go func() {
		_, _ = uc.Load(context.Background(), entity.LoadConfig{LocationID: "1", Days: 0})
	}()
	require.Eventually(t, func() bool { return gateway.callCount() == 1 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := uc.Load(ctx, entity.LoadConfig{LocationID: "1", Days: 0})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	close(release)
}

func TestHealthBeforeFirstCycle(t *testing.T) {
	uc := newUseCase(okGateway(), &fakePublisher{})

	health := uc.Health()

	assert.Equal(t, model.StatusUnknown, health.Status)
	assert.Equal(t, "false", health.Details["cached"])
}

func TestLoadWaitsForEveryDayBeforeFallingBack(t *testing.T) {
	publisher := &fakePublisher{}
	uc := newUseCase(okGateway(), publisher)
	first, err := uc.Load(context.Background(), entity.LoadConfig{LocationID: "10381", Days: 1})
	require.NoError(t, err)

	release := make(chan struct{})
	var slowDayCanceled atomic.Bool
	gateway := &fakeGateway{fetchDay: func(ctx context.Context, day int, locationID string) (entity.DayRecord, error) {
		if day == 0 {
			return nil, &api.NetworkError{Day: day, Err: errors.New("connection refused")}
		}
		<-release
		slowDayCanceled.Store(ctx.Err() != nil)
		return entity.DayRecord{"id": locationID, "day": "fresh"}, nil
	}}
	uc.apiGateway = gateway

	type result struct {
		delivery *model.ForecastDelivery
		err      error
	}
	done := make(chan result, 1)
	go func() {
		delivery, err := uc.Load(context.Background(), entity.LoadConfig{LocationID: "10381", Days: 1})
		done <- result{delivery, err}
	}()

	require.Eventually(t, func() bool { return gateway.callCount() == 2 }, time.Second, 5*time.Millisecond)
	select {
	case <-done:
		t.Fatal("load returned before every day finished")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	loaded := <-done

	require.NoError(t, loaded.err)
	assert.True(t, loaded.delivery.Cached)
	assert.Equal(t, first.Forecast, loaded.delivery.Forecast)
	assert.False(t, slowDayCanceled.Load())
	assert.Equal(t, 2, gateway.callCount())

	latest, ok := uc.Latest()
	require.True(t, ok)
	assert.Equal(t, first.Forecast, latest.Forecast)
}
