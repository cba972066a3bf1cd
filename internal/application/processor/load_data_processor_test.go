package processor

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rbb-weather/internal/domain/entity"
	"rbb-weather/internal/domain/model"
	"rbb-weather/internal/domain/usecase/forecast"
)

type fakeForecastUseCase struct {
	configs   []entity.LoadConfig
	deadlines []time.Time
	err       error
}

func (f *fakeForecastUseCase) Load(ctx context.Context, config entity.LoadConfig) (*model.ForecastDelivery, error) {
	f.configs = append(f.configs, config)
	deadline, _ := ctx.Deadline()
	f.deadlines = append(f.deadlines, deadline)
	if f.err != nil {
		return nil, f.err
	}
	return &model.ForecastDelivery{LocationID: config.LocationID, Days: config.Days}, nil
}

func (f *fakeForecastUseCase) Latest() (*model.ForecastDelivery, bool) {
	return nil, false
}

func (f *fakeForecastUseCase) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusUnknown}
}

func TestHandleMessage(t *testing.T) {
	useCase := &fakeForecastUseCase{}
	processor := NewLoadDataProcessor(useCase, 4, time.Second)

	require.NoError(t, processor.HandleMessage(&types.Message{Body: aws.String(`{"id":"2a","days":9}`)}))
	require.NoError(t, processor.HandleMessage(&types.Message{Body: aws.String(`{"id":"10381"}`)}))

	assert.Equal(t, []entity.LoadConfig{
		{LocationID: "2a", Days: 7},
		{LocationID: "10381", Days: 4},
	}, useCase.configs)
}

func TestHandleMessageInvalid(t *testing.T) {
	processor := NewLoadDataProcessor(&fakeForecastUseCase{}, 4, time.Second)

	assert.Error(t, processor.HandleMessage(nil))
	assert.Error(t, processor.HandleMessage(&types.Message{}))
	assert.Error(t, processor.HandleMessage(&types.Message{Body: aws.String("not json")}))
	assert.Error(t, processor.HandleMessage(&types.Message{Body: aws.String(`{"days":2}`)}))
}

func TestHandleNotification(t *testing.T) {
	noData := fmt.Errorf("%w: %w", forecast.ErrNoData, errors.New("timeout"))
	processor := NewLoadDataProcessor(&fakeForecastUseCase{err: noData}, 4, time.Second)

	assert.NoError(t, processor.HandleNotification(context.Background(), LoadData, `{"id":"1","days":1}`))

	processor = NewLoadDataProcessor(&fakeForecastUseCase{err: context.Canceled}, 4, time.Second)
	assert.ErrorIs(t, processor.HandleNotification(context.Background(), LoadData, `{"id":"1"}`), context.Canceled)
}

func TestLoadIsBoundedByCycleTimeout(t *testing.T) {
	useCase := &fakeForecastUseCase{}
	processor := NewLoadDataProcessor(useCase, 4, 5*time.Second)

	started := time.Now()
	require.NoError(t, processor.HandleMessage(&types.Message{Body: aws.String(`{"id":"10381"}`)}))
	require.NoError(t, processor.HandleNotification(context.Background(), LoadData, `{"id":"10381"}`))

	require.Len(t, useCase.deadlines, 2)
	for _, deadline := range useCase.deadlines {
		assert.False(t, deadline.IsZero())
		assert.WithinDuration(t, started.Add(5*time.Second), deadline, time.Second)
	}
}
