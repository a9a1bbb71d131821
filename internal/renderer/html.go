package renderer

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HTML writes markup fragments to an underlying writer. After the first
// write error every further call is a no-op and Err reports that error.
type HTML struct {
	w   io.Writer
	err error
}

// NewHTML returns an HTML writer over w.
func NewHTML(w io.Writer) *HTML {
	return &HTML{w: w}
}

// Raw writes trusted markup unchanged.
func (h *HTML) Raw(parts ...string) *HTML {
	for _, p := range parts {
		if h.err != nil {
			return h
		}
		_, h.err = io.WriteString(h.w, p)
	}
	return h
}

// Text writes s with HTML special characters escaped.
func (h *HTML) Text(s string) *HTML {
	return h.Raw(templ.EscapeString(s))
}

// Render writes a nested component.
func (h *HTML) Render(ctx context.Context, c templ.Component) *HTML {
	if h.err == nil {
		h.err = c.Render(ctx, h.w)
	}
	return h
}

// Err returns the first write error.
func (h *HTML) Err() error { return h.err }

// Attr escapes s for use inside a double-quoted attribute value.
func Attr(s string) string { return templ.EscapeString(s) }
