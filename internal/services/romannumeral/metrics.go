package romannumeral

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/gaurikolhe/roman-numeral-converter/internal/platform/errors"
	"github.com/gaurikolhe/roman-numeral-converter/internal/services/shared/httpx"
)

// Conversion outcome label values.
const (
	OutcomeOK            = "ok"
	OutcomeInvalidNumber = "invalid_number"
	OutcomeOutOfRange    = "out_of_range"
)

// Metrics owns the service's Prometheus registry.
type Metrics struct {
	registry    *prometheus.Registry
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	conversions *prometheus.CounterVec
}

// NewMetrics registers runtime collectors and the service's own metrics on a
// private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		}, []string{"route", "code", "method"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "code", "method"}),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roman_conversions_total",
			Help: "Roman numeral conversions by outcome",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
		m.conversions,
	)
	for _, outcome := range []string{OutcomeOK, OutcomeInvalidNumber, OutcomeOutOfRange} {
		m.conversions.WithLabelValues(outcome)
	}
	return m
}

// Registry exposes the underlying registry for gathering in tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Instrument counts and times requests served under route.
func (m *Metrics) Instrument(route string) httpx.Middleware {
	labels := prometheus.Labels{"route": route}
	requests := m.requests.MustCurryWith(labels)
	duration := m.duration.MustCurryWith(labels)
	return func(next http.Handler) http.Handler {
		return promhttp.InstrumentHandlerDuration(duration,
			promhttp.InstrumentHandlerCounter(requests, next))
	}
}

// ObserveConversion records the outcome of one conversion attempt.
func (m *Metrics) ObserveConversion(err error) {
	m.conversions.WithLabelValues(outcomeOf(err)).Inc()
}

func outcomeOf(err error) string {
	if err == nil {
		return OutcomeOK
	}
	if apperrors.CodeOf(err) == apperrors.CodeNumeralOutOfRange {
		return OutcomeOutOfRange
	}
	return OutcomeInvalidNumber
}
