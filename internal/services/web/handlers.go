package web

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"

	apperrors "github.com/gaurikolhe/roman-numeral-converter/internal/platform/errors"
	"github.com/gaurikolhe/roman-numeral-converter/internal/services/shared/htmx"
	"github.com/gaurikolhe/roman-numeral-converter/internal/services/shared/httpx"
	"github.com/gaurikolhe/roman-numeral-converter/internal/services/shared/i18nhttp"
)

type handlers struct {
	converter Converter
	logger    zerolog.Logger
}

func (h handlers) index(w http.ResponseWriter, r *http.Request) {
	tag := i18nhttp.ResolveTag(r)
	loc := i18nhttp.Printer(tag)
	h.render(w, r, tag.String(), nil, converterPage(loc, pageView{Lang: tag.String()}))
}

func (h handlers) convert(w http.ResponseWriter, r *http.Request) {
	tag := i18nhttp.ResolveTag(r)
	loc := i18nhttp.Printer(tag)
	logger := h.logger.With().Str("request_id", httpx.RequestIDFrom(r)).Logger()

	number := strings.TrimSpace(r.URL.Query().Get("number"))
	var result resultView
	if number == "" {
		result.Error = loc.Sprintf(keyErrorEmpty)
	} else {
		output, err := h.converter.Convert(httpx.RequestContext(r), number)
		if err != nil {
			logger.Warn().Err(err).Str("number", number).Str("code", string(apperrors.CodeOf(err))).Msg("conversion failed")
			result.Error = apperrors.PublicMessage(err)
		} else {
			logger.Info().Str("number", number).Str("output", output).Msg("converted")
			result.Output = output
		}
	}

	h.render(w, r, tag.String(),
		resultFragment(loc, result),
		converterPage(loc, pageView{Lang: tag.String(), Number: number, Result: result}),
	)
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, lang string, fragment, full templ.Component) {
	w.Header().Set("Content-Language", lang)
	htmx.RenderPage(w, r, fragment, full, func(err error) {
		h.logger.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("render page")
	})
}
