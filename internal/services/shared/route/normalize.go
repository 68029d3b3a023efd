// Package route canonicalizes request paths before routing.
package route

import (
	"net/http"
	"strings"

	"github.com/gaurikolhe/roman-numeral-converter/internal/services/shared/httpx"
)

// RedirectTrailingSlash canonicalizes request paths by stripping trailing "/"
// characters. The query string is carried over to the redirect target.
//
// It returns true when a redirect was written. Route handlers should stop further
// processing when true.
func RedirectTrailingSlash(w http.ResponseWriter, r *http.Request) bool {
	if w == nil || r == nil || r.URL == nil {
		return false
	}

	originalPath := r.URL.Path
	canonical := strings.TrimRight(originalPath, "/")
	if canonical == "" {
		canonical = "/"
	}
	if canonical == originalPath {
		return false
	}
	if r.URL.RawQuery != "" {
		canonical += "?" + r.URL.RawQuery
	}

	http.Redirect(w, r, canonical, http.StatusMovedPermanently)
	return true
}

// CanonicalPath redirects trailing-slash paths before next sees them.
func CanonicalPath() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RedirectTrailingSlash(w, r) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
