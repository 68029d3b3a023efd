// Package web serves the browser-facing converter form. Conversions are
// delegated to the API service over HTTP.
package web

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
	"github.com/gaurikolhe/roman-numeral-converter/internal/services/shared/route"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr   string
	APIBaseURL string
	// HTTPClient is used for API calls; nil selects a traced default.
	HTTPClient *http.Client
	// Converter overrides the HTTP API client when set.
	Converter Converter
	Logger    zerolog.Logger
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     zerolog.Logger
}

// NewHandler builds the root handler with middleware applied.
func NewHandler(cfg Config) (http.Handler, error) {
	converter := cfg.Converter
	if converter == nil {
		client, err := NewAPIClient(cfg.APIBaseURL, cfg.HTTPClient)
		if err != nil {
			return nil, err
		}
		converter = client
	}
	h := handlers{converter: converter, logger: cfg.Logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("GET /convert", h.convert)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteText(w, http.StatusOK, "OK")
	})

	handler := httpx.Chain(mux,
		httpx.RecoverPanic(cfg.Logger),
		httpx.RequestID("web"),
		observability.RequestLogger(cfg.Logger),
		route.CanonicalPath(),
	)
	return otelhttp.NewHandler(handler, "web",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	), nil
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("build web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   cfg.Logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			ErrorLog:          log.New(cfg.Logger.With().Str("source", "net/http").Logger(), "", 0),
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
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
		return errors.New("web server is nil")
	}
	s.logger.Info().Str("addr", listener.Addr().String()).Msg("web server listening")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
