package api

import (
	"context"

	"rbb-weather/internal/domain/entity"
)

// DayDataPath is the RBB document path of one day, formatted with the day offset (0..7).
const DayDataPath = "/include/wetter/data/data_bb_%d.xml"

// ForecastGateway defines the RBB weather document calls
type ForecastGateway interface {
	// FetchDay downloads the document of the given day offset and extracts the city record.
	// day: 0 for the current conditions, 1..7 for the forecast days
	// Returns *NetworkError when the document could not be retrieved. A document without the
	// city, or one that does not parse, yields an empty record and no error.
	FetchDay(ctx context.Context, day int, locationID string) (entity.DayRecord, error)
}
