package http

import (
	"time"

	"go.uber.org/zap"

	"rbb-weather/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent
	LogRequest(method, url string)

	// LogResponseSuccess is called after a 2xx response body has been read
	LogResponseSuccess(method, url string, httpStatus int, latency time.Duration, bodySize int)

	// LogResponseError is called on transport errors and non 2xx responses, httpStatus is 0 when no response arrived
	LogResponseError(method, url string, httpStatus int, latency time.Duration, err error)
}

type zapHTTPLogger struct{}

// NewZapHTTPLogger returns an HTTPLogger writing debug entries for requests and warnings for failures
func NewZapHTTPLogger() HTTPLogger {
	return zapHTTPLogger{}
}

func (zapHTTPLogger) LogRequest(method, url string) {
	log.Debug("HTTP request", zap.String("method", method), zap.String("url", url))
}

func (zapHTTPLogger) LogResponseSuccess(method, url string, httpStatus int, latency time.Duration, bodySize int) {
	log.Debug("HTTP response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency),
		zap.Int("body_size", bodySize))
}

func (zapHTTPLogger) LogResponseError(method, url string, httpStatus int, latency time.Duration, err error) {
	log.Warn("HTTP request failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency),
		zap.Error(err))
}
