package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"rbb-weather/internal/domain/model"
	"rbb-weather/internal/domain/usecase/forecast"
	"rbb-weather/pkg/msg"
	"rbb-weather/pkg/util/numberutils"
)

type ForecastController struct {
	api          *echo.Group
	useCase      forecast.UseCase
	defaultID    string
	defaultDays  int
	cycleTimeout time.Duration
}

func NewForecastController(api *echo.Group, useCase forecast.UseCase, defaultID string, defaultDays int, cycleTimeout time.Duration) *ForecastController {
	return &ForecastController{
		api:          api,
		useCase:      useCase,
		defaultID:    defaultID,
		defaultDays:  defaultDays,
		cycleTimeout: cycleTimeout,
	}
}

// InitForecastRoutes initializes forecast routes
func (controller *ForecastController) InitForecastRoutes() {
	controller.api.GET("/forecast", controller.FindLatestForecast)
	controller.api.POST("/forecast/load", controller.LoadForecast)
}

// FindLatestForecast godoc
// @Summary Get the latest forecast
// @Description Last successfully loaded forecast with the widget views of the current conditions and forecast days
// @Tags forecast
// @Produce json
// @Success 200 {object} model.ForecastResponse "Latest forecast"
// @Failure 404 {object} map[string]string "No forecast loaded yet"
// @Router /forecast [get]
func (controller *ForecastController) FindLatestForecast(c echo.Context) error {
	delivery, ok := controller.useCase.Latest()
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("forecast.error.no-data")})
	}
	return c.JSON(http.StatusOK, model.NewForecastResponse(delivery))
}

// LoadForecast godoc
// @Summary Load the forecast (LOAD_DATA)
// @Description Runs a load cycle for a city. The id and days may be sent in the body or as query parameters, and default to the configured city.
// @Tags forecast
// @Accept json
// @Produce json
// @Param request body model.LoadDataDTO false "City id and number of forecast days (0..7)"
// @Param id query string false "RBB city id"
// @Param days query int false "Number of forecast days (0..7)"
// @Success 200 {object} model.ForecastResponse "Loaded or cached forecast"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 503 {object} map[string]string "No forecast data available"
// @Router /forecast/load [post]
func (controller *ForecastController) LoadForecast(c echo.Context) error {
	var dto model.LoadDataDTO
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&dto); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		}
	}
	if dto.ID == "" {
		dto.ID = c.QueryParam("id")
	}
	if dto.ID == "" {
		dto.ID = controller.defaultID
	}
	if dto.Days == nil {
		dto.Days = numberutils.ToIntPointer(c.QueryParam("days"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), controller.cycleTimeout)
	defer cancel()

	delivery, err := controller.useCase.Load(ctx, dto.ToLoadConfig(controller.defaultDays))
	if err != nil {
		if errors.Is(err, forecast.ErrNoData) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": msg.GetMessage("forecast.error.no-data")})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, model.NewForecastResponse(delivery))
}
