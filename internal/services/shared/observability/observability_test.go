package observability

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	return entry
}

func TestRequestLoggerLogsMethodPathAndStatus(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	h := RequestLogger(zerolog.New(&buffer))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/romannumeral?query=9", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}

	entry := decodeLogLine(t, &buffer)
	want := map[string]any{
		"method":     "GET",
		"path":       "/romannumeral",
		"query":      "query=9",
		"status":     float64(http.StatusNoContent),
		"request_id": "req-123",
		"level":      "info",
	}
	for key, value := range want {
		if entry[key] != value {
			t.Fatalf("log %s = %v, want %v (line %v)", key, entry[key], value, entry)
		}
	}
}

func TestRequestLoggerCapturesImplicitStatusOKAndBytes(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	h := RequestLogger(zerolog.New(&buffer))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("OK"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	entry := decodeLogLine(t, &buffer)
	if entry["status"] != float64(http.StatusOK) {
		t.Fatalf("status = %v, want 200", entry["status"])
	}
	if entry["bytes"] != float64(2) {
		t.Fatalf("bytes = %v, want 2", entry["bytes"])
	}
	if _, ok := entry["latency"]; !ok {
		t.Fatalf("expected latency field, got %v", entry)
	}
}

func TestRequestLoggerLevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "info"},
		{http.StatusBadRequest, "warn"},
		{http.StatusInternalServerError, "error"},
	}
	for _, tc := range tests {
		var buffer bytes.Buffer
		h := RequestLogger(zerolog.New(&buffer))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		if got := decodeLogLine(t, &buffer)["level"]; got != tc.level {
			t.Fatalf("status %d level = %v, want %s", tc.status, got, tc.level)
		}
	}
}
