package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

// Message keys rendered by the converter views.
const (
	keyPageTitle   = "web.converter.page_title"
	keyHeading     = "web.converter.heading"
	keyInputLabel  = "web.converter.input_label"
	keySubmit      = "web.converter.submit"
	keyResultLabel = "web.converter.result_label"
	keyErrorLabel  = "web.converter.error_label"
	keyErrorEmpty  = "web.converter.error_empty"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// resultID is the element swapped by HTMX form submissions.
const resultID = "result"

// Localizer provides translated strings for view components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// pageView is the data rendered by the full converter page.
type pageView struct {
	Lang   string
	Number string
	Result resultView
}

// resultView is the outcome area below the form. At most one of Output and
// Error is set.
type resultView struct {
	Output string
	Error  string
}

// converterPage renders the whole document.
func converterPage(loc Localizer, view pageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeStrings(w,
			`<!DOCTYPE html><html lang="`, templ.EscapeString(view.Lang), `"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`, templ.EscapeString(loc.Sprintf(keyPageTitle)), `</title>`,
			`<script src="`, htmxScriptURL, `"></script></head><body><main class="converter">`,
			`<h1>`, templ.EscapeString(loc.Sprintf(keyHeading)), `</h1>`,
		); err != nil {
			return err
		}
		if err := converterForm(loc, view.Number).Render(ctx, w); err != nil {
			return err
		}
		if err := resultFragment(loc, view.Result).Render(ctx, w); err != nil {
			return err
		}
		return writeStrings(w, `</main></body></html>`)
	})
}

// converterForm submits the number with a plain GET, upgraded to an HTMX
// swap of the result element when the script is available.
func converterForm(loc Localizer, number string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return writeStrings(w,
			`<form action="/convert" method="get" hx-get="/convert" hx-target="#`, resultID, `" hx-swap="outerHTML">`,
			`<label for="number">`, templ.EscapeString(loc.Sprintf(keyInputLabel)), `</label>`,
			`<input id="number" name="number" type="number" min="1" max="3999" value="`, templ.EscapeString(number), `">`,
			`<button type="submit">`, templ.EscapeString(loc.Sprintf(keySubmit)), `</button>`,
			`</form>`,
		)
	})
}

// resultFragment renders the conversion outcome. It is also the whole
// response body for HTMX requests.
func resultFragment(loc Localizer, result resultView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writeStrings(w, `<div id="`, resultID, `" aria-live="polite">`); err != nil {
			return err
		}
		switch {
		case result.Error != "":
			if err := writeStrings(w,
				`<p class="error" role="alert">`, templ.EscapeString(loc.Sprintf(keyErrorLabel)), ` `,
				templ.EscapeString(result.Error), `</p>`,
			); err != nil {
				return err
			}
		case result.Output != "":
			if err := writeStrings(w,
				`<p class="result">`, templ.EscapeString(loc.Sprintf(keyResultLabel)), ` `,
				templ.EscapeString(result.Output), `</p>`,
			); err != nil {
				return err
			}
		}
		return writeStrings(w, `</div>`)
	})
}

func writeStrings(w io.Writer, parts ...string) error {
	for _, part := range parts {
		if _, err := io.WriteString(w, part); err != nil {
			return err
		}
	}
	return nil
}
