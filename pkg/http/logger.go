package http

import (
	"go.uber.org/zap"

	"go-weather/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure or an error HTTP status
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

// NopHTTPLogger discards everything.
type NopHTTPLogger struct{}

func (NopHTTPLogger) LogRequest(string, string, map[string]string, string) {}

func (NopHTTPLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {
}

func (NopHTTPLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}

// ZapHTTPLogger writes outbound calls to the application logger. Bodies are only logged at debug level.
type ZapHTTPLogger struct {
	Name string
}

var _ HTTPLogger = ZapHTTPLogger{}

func (l ZapHTTPLogger) LogRequest(method, url string, _ map[string]string, body string) {
	log.Debug("Outbound request",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.String("body", body),
	)
}

func (l ZapHTTPLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64) {
	log.Info("Outbound request finished",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
	)
	log.Debug("Outbound response body", zap.String("client", l.Name), zap.String("body", responseBody))
}

func (l ZapHTTPLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("Outbound request failed",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("body", responseBody),
		zap.Error(err),
	)
}
