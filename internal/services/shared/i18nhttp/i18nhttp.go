// Package i18nhttp resolves the request language for browser-facing handlers.
package i18nhttp

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gaurikolhe/roman-numeral-converter/internal/platform/i18n/catalog"
)

// LangParam is the query parameter used to force a language.
const LangParam = "lang"

var (
	supported = catalog.Default().Tags()
	matcher   = language.NewMatcher(supported)
)

// Supported returns the list of supported language tags, default first.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag picks the best supported tag for the request. An explicit lang
// query parameter wins over Accept-Language.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if tag, err := language.Parse(value); err == nil {
			return Match(tag)
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return Match(tags...)
		}
	}
	return Default()
}

// Match maps preferred tags onto the supported set.
func Match(preferred ...language.Tag) language.Tag {
	// Index lookup drops the -u extensions the matcher may attach.
	_, idx, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return Default()
	}
	return supported[idx]
}
