package renderer

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/heartmarshall/quickforms/internal/domain"
)

const pageStyle = `body{font-family:system-ui,sans-serif;max-width:42rem;margin:2rem auto;padding:0 1rem;color:#111}` +
	`label{display:block;font-weight:600;margin-top:1rem}input,textarea{width:100%;padding:.5rem;box-sizing:border-box}` +
	`.invalid{border:1px solid #c00}.error{color:#c00;font-size:.875rem}.req{color:#c00}` +
	`.alert{background:#fee;border:1px solid #c00;padding:.75rem;margin:1rem 0}table{border-collapse:collapse;width:100%}` +
	`td,th{border:1px solid #ddd;padding:.4rem;text-align:left}fieldset{margin:1rem 0}` +
	`.default-action{position:absolute;left:-9999px}`

// Page wraps body in the shared HTML document shell.
func Page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return NewHTML(w).
			Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
				`<meta name="viewport" content="width=device-width, initial-scale=1">`, `<title>`).
			Text(title).
			Raw(`</title><style>`, pageStyle, `</style></head><body>`).
			Render(ctx, body).
			Raw(`</body></html>`).
			Err()
	})
}

// message renders a heading with a short explanation and a link home.
func message(heading, text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return NewHTML(w).
			Raw(`<main class="message"><h2>`).Text(heading).
			Raw(`</h2><p>`).Text(text).
			Raw(`</p><a href="/">Go Home</a></main>`).
			Err()
	})
}

// LoadingView is shown while the form definition is being fetched.
func LoadingView() templ.Component {
	return message("Loading Form", "Please wait while we load your form...")
}

// NotFoundView is shown when the form cannot be loaded.
func NotFoundView() templ.Component {
	return message("Form Not Found", "The form you're looking for doesn't exist or has been removed.")
}

// ErrorView is shown when a page cannot be built because of a server fault.
func ErrorView() templ.Component {
	return message("Something Went Wrong", "We couldn't load this page. Please try again later.")
}

// SubmittedView is the terminal confirmation screen.
func SubmittedView() templ.Component {
	return message("Response Submitted!", "Thank you for your response. Your submission has been received successfully.")
}

// FormView renders the respondent form with current values, inline field
// errors and an optional alert.
type FormView struct {
	Form        *domain.Form
	Action      string
	Values      map[string]string
	FieldErrors map[string]string
	Alert       string
	Submitting  bool
}

// Component renders the view.
func (v FormView) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTML(w)
		h.Raw(`<main><a href="/">Back to Home</a><h1>`).Text(v.Form.Title).Raw(`</h1>`)
		if v.Form.Description != nil {
			h.Raw(`<p class="description">`).Text(*v.Form.Description).Raw(`</p>`)
		}
		if v.Alert != "" {
			h.Raw(`<div class="alert" role="alert">`).Text(v.Alert).Raw(`</div>`)
		}
		h.Raw(`<form method="post" action="`, Attr(v.Action), `" novalidate>`)

		for _, f := range v.Form.Fields {
			errMsg := v.FieldErrors[f.ID]
			h.Raw(`<div class="field"><label for="`, Attr(f.ID), `">`).Text(f.Label)
			if f.Required {
				h.Raw(`<span class="req">*</span>`)
			}
			h.Raw(`</label>`).Render(ctx, Control(f, v.Values[f.ID], errMsg != ""))
			if errMsg != "" {
				h.Raw(`<p class="error">`).Text(errMsg).Raw(`</p>`)
			}
			h.Raw(`</div>`)
		}

		label, disabled := "Submit Response", ""
		if v.Submitting {
			label, disabled = "Submitting...", " disabled"
		}
		return h.Raw(`<p><button type="submit"`, disabled, `>`, label, `</button></p></form></main>`).Err()
	})
}
