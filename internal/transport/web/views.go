package web

import (
	"context"
	"io"
	"strconv"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/heartmarshall/quickforms/internal/domain"
	"github.com/heartmarshall/quickforms/internal/renderer"
)

const dateLayout = "Jan 2, 2006"

var attr = renderer.Attr

// dashboardRow is one form on the dashboard.
type dashboardRow struct {
	Form      *domain.Form
	Responses int
}

func dashboardView(rows []dashboardRow) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := renderer.NewHTML(w)
		h.Raw(`<main><h1>Quick Forms</h1><p>Create, share and collect responses.</p>`,
			`<p><a href="/create">Create New Form</a></p>`)
		if len(rows) == 0 {
			return h.Raw(`<p class="empty">No forms yet. <a href="/create">Create your first form</a>.</p></main>`).Err()
		}

		h.Raw(`<table><thead><tr><th>Title</th><th>Fields</th><th>Responses</th><th>Created</th><th></th></tr></thead><tbody>`)
		for _, row := range rows {
			id := row.Form.ID.String()
			h.Raw(`<tr><td><a href="/form/`, id, `">`).Text(row.Form.Title).Raw(`</a></td>`,
				`<td>`, strconv.Itoa(len(row.Form.Fields)), `</td>`,
				`<td>`, strconv.Itoa(row.Responses), `</td>`,
				`<td>`, row.Form.CreatedAt.Format(dateLayout), `</td>`,
				`<td><a href="/respond/`, id, `">Open</a> <a href="/responses/`, id, `">Responses</a></td></tr>`)
		}
		return h.Raw(`</tbody></table></main>`).Err()
	})
}

func detailView(form *domain.Form, shareURL string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		id := form.ID.String()
		h := renderer.NewHTML(w)
		h.Raw(`<main><a href="/">Back to Home</a><h1>`).Text(form.Title).Raw(`</h1>`)
		if form.Description != nil {
			h.Raw(`<p class="description">`).Text(*form.Description).Raw(`</p>`)
		}
		h.Raw(`<h2>Share</h2><p><input type="text" readonly value="`, attr(shareURL), `"></p>`,
			`<p><a href="/respond/`, id, `">Preview Form</a> <a href="/responses/`, id, `">View Responses</a></p>`,
			`<h2>Fields</h2><ol>`)
		for _, f := range form.Fields {
			h.Raw(`<li>`).Text(f.Label)
			if f.Required {
				h.Raw(` <span class="req">*</span>`)
			}
			h.Raw(` <small>(`, f.Type.String(), `)</small></li>`)
		}
		return h.Raw(`</ol></main>`).Err()
	})
}

func responsesView(form *domain.Form, responses []*domain.Response, exportURL string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := renderer.NewHTML(w)
		h.Raw(`<main><a href="/form/`, form.ID.String(), `">Back to Form</a><h1>`).Text(form.Title).
			Raw(` Responses</h1><p>`, strconv.Itoa(len(responses)), ` total</p>`)
		if len(responses) == 0 {
			return h.Raw(`<p class="empty">No responses yet.</p></main>`).Err()
		}

		h.Raw(`<p><a href="`, attr(exportURL), `" download>Export CSV</a></p><table><thead><tr>`)
		for _, label := range form.Labels() {
			h.Raw(`<th>`).Text(label).Raw(`</th>`)
		}
		h.Raw(`<th>Submitted</th></tr></thead><tbody>`)
		for _, resp := range responses {
			h.Raw(`<tr>`)
			for _, f := range form.Fields {
				h.Raw(`<td>`).Text(domain.FormatValue(resp.Data[f.ID])).Raw(`</td>`)
			}
			h.Raw(`<td>`, resp.CreatedAt.Format(time.DateTime), `</td></tr>`)
		}
		return h.Raw(`</tbody></table></main>`).Err()
	})
}

// ---------------------------------------------------------------------------
// Form builder
// ---------------------------------------------------------------------------

var fieldTypeLabels = map[domain.FieldType]string{
	domain.FieldTypeText:     "Text",
	domain.FieldTypeEmail:    "Email",
	domain.FieldTypeTextarea: "Textarea",
	domain.FieldTypeNumber:   "Number",
}

func builderView(b *builder) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := renderer.NewHTML(w)
		h.Raw(`<main><a href="/">Back to Home</a><h1>Create Your Form</h1>`,
			`<p>Build a custom form with multiple field types.</p>`,
			`<form method="post" action="/create" novalidate>`,
			`<button type="submit" name="action" value="`, actionCreate, `" class="default-action" tabindex="-1" aria-hidden="true">Create</button>`)

		h.Raw(`<div class="field"><label for="title">Form Title <span class="req">*</span></label>`,
			`<input type="text" id="title" name="title" maxlength="`, strconv.Itoa(domain.MaxTitleLength), `"`,
			invalidAttrs(b.Errors["title"]), ` value="`, attr(b.Title), `">`)
		errorLine(h, b.Errors["title"])
		h.Raw(`</div><div class="field"><label for="description">Description</label>`,
			`<textarea id="description" name="description" rows="4">`).Text(b.Description).Raw(`</textarea></div>`)

		h.Raw(`<h2>Form Fields</h2>`)
		errorLine(h, b.Errors["fields"])
		for i, row := range b.Rows {
			builderRowView(h, b, i, row)
		}

		return h.Raw(`<p><button type="submit" name="action" value="`, actionAdd, `">Add Field</button> `,
			`<button type="submit" name="action" value="`, actionCreate, `">Create Form</button></p></form></main>`).Err()
	})
}

func builderRowView(h *renderer.HTML, b *builder, i int, row builderRow) {
	n := strconv.Itoa(i)
	typeKey, labelKey := rowKey(i, "type"), rowKey(i, "label")

	h.Raw(`<fieldset><legend>Field `, strconv.Itoa(i+1), `</legend>`)

	h.Raw(`<label for="type-`, n, `">Field Type</label><select id="type-`, n, `" name="`, typeKey, `"`,
		invalidAttrs(b.Errors[typeKey]), `>`)
	for _, ft := range domain.FieldTypes {
		selected := ""
		if string(ft) == row.Type {
			selected = " selected"
		}
		h.Raw(`<option value="`, ft.String(), `"`, selected, `>`, fieldTypeLabels[ft], `</option>`)
	}
	h.Raw(`</select>`)
	errorLine(h, b.Errors[typeKey])

	checked := ""
	if row.Required {
		checked = " checked"
	}
	h.Raw(`<label><input type="checkbox" name="`, rowKey(i, "required"), `" value="on"`, checked,
		`> This field is required</label>`)

	h.Raw(`<label for="label-`, n, `">Field Label <span class="req">*</span></label>`,
		`<input type="text" id="label-`, n, `" name="`, labelKey, `"`, invalidAttrs(b.Errors[labelKey]),
		` value="`, attr(row.Label), `">`)
	errorLine(h, b.Errors[labelKey])

	h.Raw(`<label for="placeholder-`, n, `">Placeholder</label>`,
		`<input type="text" id="placeholder-`, n, `" name="`, rowKey(i, "placeholder"), `" value="`, attr(row.Placeholder), `">`)

	if len(b.Rows) > 1 {
		h.Raw(`<p><button type="submit" name="action" value="`, removeAction, n, `">Remove Field</button></p>`)
	}
	h.Raw(`</fieldset>`)
}

func invalidAttrs(msg string) string {
	if msg == "" {
		return ""
	}
	return ` class="invalid" aria-invalid="true"`
}

func errorLine(h *renderer.HTML, msg string) {
	if msg != "" {
		h.Raw(`<p class="error">`).Text(sentence(msg)).Raw(`</p>`)
	}
}

// sentence upper-cases the first letter of a validation message.
func sentence(msg string) string {
	r, size := utf8.DecodeRuneInString(msg)
	return string(unicode.ToUpper(r)) + msg[size:]
}

func exportPath(id uuid.UUID) string {
	return "/forms/" + id.String() + "/export"
}
