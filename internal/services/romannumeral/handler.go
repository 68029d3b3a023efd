package romannumeral

import (
	"net/http"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	apperrors "github.com/gaurikolhe/roman-numeral-converter/internal/platform/errors"
	"github.com/gaurikolhe/roman-numeral-converter/internal/services/shared/httpx"
)

const tracerName = "github.com/gaurikolhe/roman-numeral-converter/internal/services/romannumeral"

type convertHandler struct {
	logger  zerolog.Logger
	metrics *Metrics
}

func (h convertHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	logger := h.logger.With().Str("request_id", httpx.RequestIDFrom(r)).Logger()
	logger.Info().Str("query", query).Msg("received request")

	_, span := otel.Tracer(tracerName).Start(httpx.RequestContext(r), "roman.convert")
	span.SetAttributes(attribute.String("roman.query", query))
	defer span.End()

	result, err := Convert(query)
	h.metrics.ObserveConversion(err)
	if err != nil {
		span.SetStatus(codes.Error, apperrors.PublicMessage(err))
		span.SetAttributes(attribute.String("roman.error_code", string(apperrors.CodeOf(err))))
		logger.Warn().Err(err).Str("query", query).Str("code", string(apperrors.CodeOf(err))).Msg("conversion rejected")
		if writeErr := httpx.WriteError(w, err); writeErr != nil {
			logger.Error().Err(writeErr).Msg("write error response")
		}
		return
	}

	span.SetAttributes(attribute.String("roman.output", result.Output))
	logger.Info().Str("input", result.Input).Str("output", result.Output).Msg("converted")
	if err := httpx.WriteJSON(w, http.StatusOK, result); err != nil {
		logger.Error().Err(err).Msg("write conversion response")
	}
}
