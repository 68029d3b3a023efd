// Package observability provides request logging middleware.
package observability

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/gaurikolhe/roman-numeral-converter/internal/services/shared/httpx"
)

// StatusRecorder captures the status code and body size written by a handler.
type StatusRecorder struct {
	http.ResponseWriter
	Status int
	Bytes  int
}

// NewStatusRecorder wraps w with an implicit 200 status.
func NewStatusRecorder(w http.ResponseWriter) *StatusRecorder {
	return &StatusRecorder{ResponseWriter: w, Status: http.StatusOK}
}

// WriteHeader records the status before forwarding it.
func (r *StatusRecorder) WriteHeader(status int) {
	r.Status = status
	r.ResponseWriter.WriteHeader(status)
}

// Write counts body bytes.
func (r *StatusRecorder) Write(p []byte) (int, error) {
	n, err := r.ResponseWriter.Write(p)
	r.Bytes += n
	return n, err
}

// Unwrap exposes the wrapped writer to http.ResponseController.
func (r *StatusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// RequestLogger logs one line per request after the handler returns.
// Server errors log at error level, client errors at warn.
func RequestLogger(logger zerolog.Logger) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := NewStatusRecorder(w)
			next.ServeHTTP(rec, r)

			event := logger.Info()
			switch {
			case rec.Status >= http.StatusInternalServerError:
				event = logger.Error()
			case rec.Status >= http.StatusBadRequest:
				event = logger.Warn()
			}
			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("query", r.URL.RawQuery).
				Int("status", rec.Status).
				Int("bytes", rec.Bytes).
				Dur("latency", time.Since(start)).
				Str("request_id", httpx.RequestIDFrom(r)).
				Str("remote", r.RemoteAddr).
				Msg("http request")
		})
	}
}
