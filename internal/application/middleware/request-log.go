package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"rbb-weather/pkg/log"
	"rbb-weather/pkg/msg"
)

// loadParams are the LOAD_DATA query parameters logged with each request
var loadParams = []string{"id", "days"}

// SetupRequestLogger logs every request under contextPath except health checks and the swagger UI.
func SetupRequestLogger(e *echo.Echo, contextPath string) {
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:         true,
		LogStatus:      true,
		LogMethod:      true,
		LogLatency:     true,
		LogError:       true,
		LogRequestID:   true,
		LogQueryParams: loadParams,
		Skipper:        requestLogSkipper(contextPath),
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if id := firstValue(v.QueryParams, "id"); id != "" {
				fields = append(fields, zap.String("location_id", id))
			}
			if days := firstValue(v.QueryParams, "days"); days != "" {
				fields = append(fields, zap.String("days", days))
			}

			if v.Error != nil {
				log.Error(msg.GetMessage("app.req-fail", v.Method, v.URI, v.Status, v.Latency, v.RequestID, v.Error),
					append(fields, zap.Error(v.Error))...)
				return nil
			}
			log.Info(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status, v.Latency, v.RequestID), fields...)
			return nil
		},
	}))
}

// requestLogSkipper skips {contextPath}/health and {contextPath}/swagger/*
func requestLogSkipper(contextPath string) func(c echo.Context) bool {
	contextPath = strings.TrimRight(contextPath, "/")
	healthPath := contextPath + "/health"
	swaggerPrefix := contextPath + "/swagger/"

	return func(c echo.Context) bool {
		path := c.Request().URL.Path
		return path == healthPath || strings.HasPrefix(path, swaggerPrefix)
	}
}

func firstValue(values map[string][]string, key string) string {
	if len(values[key]) == 0 {
		return ""
	}
	return values[key][0]
}
