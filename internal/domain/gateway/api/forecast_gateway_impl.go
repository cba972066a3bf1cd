package api

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"rbb-weather/internal/domain/entity"
	"rbb-weather/pkg/http"
	"rbb-weather/pkg/log"
)

// forecastGatewayImpl implements the ForecastGateway interface
type forecastGatewayImpl struct {
	httpClient *http.Client
}

// NewForecastGateway creates a new instance of ForecastGateway with HTTP client
func NewForecastGateway(baseUrl string, clientOptions http.ClientOptions) ForecastGateway {
	return &forecastGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// FetchDay fetches the RBB document for the day and parses the city record
func (g *forecastGatewayImpl) FetchDay(ctx context.Context, day int, locationID string) (entity.DayRecord, error) {
	log.Debug("Fetch data for day", zap.Int("day", day), zap.String("location_id", locationID))

	resp, err := g.httpClient.Request().
		WithContext(ctx).
		WithPath(fmt.Sprintf(DayDataPath, day)).
		Execute()
	var statusErr *http.StatusError
	if errors.As(err, &statusErr) && resp != nil {
		// the document arrived, its content decides the record
		log.Warn("RBB answered with an error status",
			zap.Int("day", day),
			zap.Int("status", statusErr.StatusCode),
			zap.String("location_id", locationID))
		return ParseCity(resp.Body, day, locationID), nil
	}
	if err != nil {
		return nil, &NetworkError{Day: day, Err: err}
	}

	return ParseCity(resp.Body, day, locationID), nil
}
