package romannumeral

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	apperrors "github.com/gaurikolhe/roman-numeral-converter/internal/platform/errors"
)

func TestObserveConversionCountsOutcomes(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.ObserveConversion(nil)
	m.ObserveConversion(nil)
	m.ObserveConversion(apperrors.New(apperrors.CodeNumeralOutOfRange, MessageOutOfRange))
	m.ObserveConversion(apperrors.New(apperrors.CodeInvalidNumber, MessageInvalidNumber))
	m.ObserveConversion(errors.New("untyped"))

	tests := map[string]float64{
		OutcomeOK:            2,
		OutcomeOutOfRange:    1,
		OutcomeInvalidNumber: 2,
	}
	for outcome, want := range tests {
		if got := testutil.ToFloat64(m.conversions.WithLabelValues(outcome)); got != want {
			t.Fatalf("conversions{%s} = %v, want %v", outcome, got, want)
		}
	}
}

func TestInstrumentCountsRequestsByCode(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	h := m.Instrument(RouteConvert)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	for i := 0; i < 3; i++ {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, RouteConvert, nil))
	}

	got := testutil.ToFloat64(m.requests.WithLabelValues(RouteConvert, "400", "get"))
	if got != 3 {
		t.Fatalf("http_requests_total = %v, want 3", got)
	}
}

func TestHandlerExposesRegistry(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.ObserveConversion(nil)
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, RouteMetrics, nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{`roman_conversions_total{outcome="ok"} 1`, "go_goroutines"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("metrics body missing %q", marker)
		}
	}
}
