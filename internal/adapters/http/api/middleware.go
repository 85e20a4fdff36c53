package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/okian/tradecalc/pkg/logger"
	"github.com/okian/tradecalc/pkg/metrics"
)

// HTTP status code constants.
const (
	statusBadRequest      = 400
	statusNotFound        = 404
	statusConflict        = 409
	statusPayloadTooLarge = 413
	statusUnprocessable   = 422
	statusInternalError   = 500
)

// errorClass is how a failed status is reported in the error metrics.
type errorClass struct {
	kind     string
	severity string
}

// Client mistakes the forms expect routinely (missing fields, stale quiz
// steps) are low severity.
var errorClasses = map[int]errorClass{
	statusBadRequest:      {"bad_request", "medium"},
	statusNotFound:        {"not_found", "medium"},
	statusConflict:        {"conflict", "low"},
	statusPayloadTooLarge: {"payload_too_large", "medium"},
	statusUnprocessable:   {"not_ready", "low"},
}

// MetricsMiddleware wraps HTTP handlers to record Prometheus metrics.
func MetricsMiddleware(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		ctx := logger.ContextWith(r.Context(), logger.String("endpoint", endpoint), logger.String("method", r.Method))

		next.ServeHTTP(wrapped, r.WithContext(ctx))

		durationMs := float64(time.Since(start).Microseconds()) / 1000
		code := strconv.Itoa(wrapped.statusCode)

		metrics.RecordHTTPRequest(endpoint, r.Method, code)
		metrics.RecordHTTPRequestDuration(endpoint, r.Method, code, durationMs)

		if wrapped.statusCode >= statusBadRequest {
			class := classify(wrapped.statusCode)
			metrics.RecordErrorByEndpoint(endpoint, r.Method, class.kind)
			metrics.RecordErrorByType(class.kind, class.severity)
			metrics.RecordErrorLatency("http", class.kind, durationMs)
		}
	}
}

func classify(statusCode int) errorClass {
	if c, ok := errorClasses[statusCode]; ok {
		return c
	}
	if statusCode >= statusInternalError {
		return errorClass{"server_error", "high"}
	}
	return errorClass{"client_error", "medium"}
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
