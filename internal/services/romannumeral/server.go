package romannumeral

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/gaurikolhe/roman-numeral-converter/internal/platform/timeouts"
	"github.com/gaurikolhe/roman-numeral-converter/internal/services/shared/httpx"
	"github.com/gaurikolhe/roman-numeral-converter/internal/services/shared/observability"
)

// Route paths served by the API.
const (
	RouteConvert = "/romannumeral"
	RouteMetrics = "/metrics"
	RouteHealth  = "/health"
)

// Config defines startup inputs for the API service.
type Config struct {
	HTTPAddr    string
	CORSOrigins []string
	Logger      zerolog.Logger
	// Metrics defaults to a fresh registry when nil.
	Metrics *Metrics
}

// Server hosts the API HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     zerolog.Logger
}

// NewHandler builds the root handler with middleware applied.
func NewHandler(cfg Config) http.Handler {
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}

	mux := http.NewServeMux()
	mux.Handle(RouteConvert, httpx.Chain(
		convertHandler{logger: cfg.Logger, metrics: metrics},
		httpx.RequireMethod(http.MethodGet),
		metrics.Instrument(RouteConvert),
	))
	mux.Handle("GET "+RouteMetrics, metrics.Handler())
	mux.HandleFunc("GET "+RouteHealth, func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteText(w, http.StatusOK, "OK")
	})

	handler := httpx.Chain(mux,
		httpx.RecoverPanic(cfg.Logger),
		httpx.RequestID("api"),
		observability.RequestLogger(cfg.Logger),
		httpx.CORS(httpx.CORSPolicy{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet},
			AllowedHeaders: []string{"Content-Type"},
		}),
	)
	return otelhttp.NewHandler(handler, "romannumeral",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

// NewServer validates config and constructs an API server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   cfg.Logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           NewHandler(cfg),
			ReadHeaderTimeout: timeouts.ReadHeader,
			ErrorLog:          newServerErrorLog(cfg.Logger),
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("romannumeral server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves HTTP traffic on listener until context cancellation or server stop.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("romannumeral server is nil")
	}
	s.logger.Info().Str("addr", listener.Addr().String()).Msg("server running")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown romannumeral http server: %w", err)
		}
		s.logger.Info().Msg("server stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve romannumeral http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}

// newServerErrorLog routes net/http's internal errors into the JSON log.
func newServerErrorLog(logger zerolog.Logger) *log.Logger {
	return log.New(logger.With().Str("source", "net/http").Logger(), "", 0)
}
