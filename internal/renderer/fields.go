// Package renderer builds respondent-facing form controls from a stored form
// definition and validates submitted values per field type.
package renderer

import (
	"context"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/a-h/templ"

	"github.com/heartmarshall/quickforms/internal/domain"
)

const (
	msgRequired     = "This field is required"
	msgInvalidEmail = "Invalid email address"
)

var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// fieldKind is the render and validate strategy for one field type.
type fieldKind struct {
	control  func(f domain.Field, value string, invalid bool) templ.Component
	validate func(value string) string
}

// kinds is the single dispatch table over the closed field type set.
var kinds = map[domain.FieldType]fieldKind{
	domain.FieldTypeText:     {control: inputControl("text")},
	domain.FieldTypeEmail:    {control: inputControl("email"), validate: validateEmail},
	domain.FieldTypeTextarea: {control: textareaControl},
	domain.FieldTypeNumber:   {control: inputControl("number")},
}

func kindOf(t domain.FieldType) fieldKind {
	if k, ok := kinds[t]; ok {
		return k
	}
	return kinds[domain.FieldTypeText]
}

func validateEmail(value string) string {
	if !emailPattern.MatchString(value) {
		return msgInvalidEmail
	}
	return ""
}

// Validate checks one submitted value against its field. It returns an empty
// string when the value is acceptable.
func Validate(f domain.Field, value string) string {
	if strings.TrimSpace(value) == "" {
		if f.Required {
			return msgRequired
		}
		return ""
	}
	if v := kindOf(f.Type).validate; v != nil {
		return v(value)
	}
	return ""
}

// Collect reads one value per field from a submitted form body. Values are
// keyed by field id and kept as submitted text; empty optional inputs are
// omitted. The second result maps field ids to error messages.
func Collect(form *domain.Form, values url.Values) (map[string]any, map[string]string) {
	data := make(map[string]any, len(form.Fields))
	errs := map[string]string{}

	for _, f := range form.Fields {
		value := values.Get(f.ID)
		if msg := Validate(f, value); msg != "" {
			errs[f.ID] = msg
			continue
		}
		if strings.TrimSpace(value) == "" {
			continue
		}
		data[f.ID] = value
	}

	return data, errs
}

// Control renders the input element for a field.
func Control(f domain.Field, value string, invalid bool) templ.Component {
	return kindOf(f.Type).control(f, value, invalid)
}

func commonAttrs(f domain.Field, invalid bool) string {
	var b strings.Builder
	b.WriteString(` id="` + Attr(f.ID) + `" name="` + Attr(f.ID) + `"`)
	if f.Placeholder != nil {
		b.WriteString(` placeholder="` + Attr(*f.Placeholder) + `"`)
	}
	if f.Required {
		b.WriteString(` required`)
	}
	if invalid {
		b.WriteString(` class="invalid" aria-invalid="true"`)
	}
	return b.String()
}

func inputControl(inputType string) func(f domain.Field, value string, invalid bool) templ.Component {
	return func(f domain.Field, value string, invalid bool) templ.Component {
		return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			return NewHTML(w).
				Raw(`<input type="`, inputType, `"`, commonAttrs(f, invalid), ` value="`, Attr(value), `">`).
				Err()
		})
	}
}

func textareaControl(f domain.Field, value string, invalid bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return NewHTML(w).
			Raw(`<textarea rows="4"`, commonAttrs(f, invalid), `>`).Text(value).Raw(`</textarea>`).
			Err()
	})
}
