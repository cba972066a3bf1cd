package model

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"rbb-weather/internal/domain/entity"
	"rbb-weather/pkg/log"
)

// RBB field names
const (
	fieldIcon            = "nww"
	fieldTemperature     = "temp"
	fieldDescription     = "wwtext"
	fieldWindSpeed       = "ffkmh"
	fieldWindDegrees     = "dd"
	fieldRainProbability = "prr"
)

// ForecastResponse is the widget-ready view of a delivery
type ForecastResponse struct {
	RequestID  string             `json:"requestId"`
	LocationID string             `json:"id"`
	Cached     bool               `json:"cached"`
	LoadedAt   time.Time          `json:"loadedAt"`
	Current    *CurrentView       `json:"current,omitempty"`
	Forecast   []ForecastDayView  `json:"forecast"`
	Raw        entity.ForecastSet `json:"raw"`
}

// CurrentView holds the current conditions of day 0
type CurrentView struct {
	Temperature   string `json:"temperature"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	WindSpeed     string `json:"windSpeed"`
	WindDegrees   string `json:"windDegrees"`
	WindDirection string `json:"windDirection"`
}

// ForecastDayView holds one forecast row
type ForecastDayView struct {
	Day             int    `json:"day"`
	Date            string `json:"date"`
	Icon            string `json:"icon"`
	MaxTemperature  string `json:"maxTemperature"`
	MinTemperature  string `json:"minTemperature"`
	WindSpeed       string `json:"windSpeed"`
	WindDegrees     string `json:"windDegrees"`
	RainProbability string `json:"rainProbability"`
}

// NewForecastResponse builds the view of a delivery. Forecast day 1 is the day the data was loaded.
func NewForecastResponse(delivery *ForecastDelivery) ForecastResponse {
	response := ForecastResponse{
		RequestID:  delivery.RequestID,
		LocationID: delivery.LocationID,
		Cached:     delivery.Cached,
		LoadedAt:   delivery.LoadedAt,
		Forecast:   []ForecastDayView{},
		Raw:        delivery.Forecast,
	}

	for day, record := range delivery.Forecast {
		if day == 0 {
			response.Current = newCurrentView(record)
			continue
		}
		response.Forecast = append(response.Forecast, newForecastDayView(day, record, delivery.LoadedAt))
	}

	return response
}

func newCurrentView(record entity.DayRecord) *CurrentView {
	return &CurrentView{
		Temperature:   record[fieldTemperature],
		Description:   record[fieldDescription],
		Icon:          iconOf(record),
		WindSpeed:     record[fieldWindSpeed],
		WindDegrees:   record[fieldWindDegrees],
		WindDirection: WindDirectionKey(record[fieldWindDegrees]),
	}
}

func newForecastDayView(day int, record entity.DayRecord, loadedAt time.Time) ForecastDayView {
	maxTemp, minTemp, _ := strings.Cut(record[fieldTemperature], ";")

	return ForecastDayView{
		Day:             day,
		Date:            loadedAt.AddDate(0, 0, day-1).Format(time.DateOnly),
		Icon:            iconOf(record),
		MaxTemperature:  strings.TrimSpace(maxTemp),
		MinTemperature:  strings.TrimSpace(minTemp),
		WindSpeed:       record[fieldWindSpeed],
		WindDegrees:     record[fieldWindDegrees],
		RainProbability: record[fieldRainProbability],
	}
}

func iconOf(record entity.DayRecord) string {
	code, ok := record[fieldIcon]
	if !ok {
		return ""
	}

	icon, found := IconName(code)
	if !found {
		log.Warn("No mapping found for RBB icon", zap.String("nww", code))
	}
	return icon
}
