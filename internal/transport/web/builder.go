package web

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/quickforms/internal/domain"
	formsvc "github.com/heartmarshall/quickforms/internal/service/form"
)

// maxBuilderFields bounds how many field rows one builder post may carry.
const maxBuilderFields = 50

// Builder postback actions. Removing a row posts removeAction plus its index.
const (
	actionAdd    = "add"
	actionCreate = "create"
	removeAction = "remove-"
)

// builderRow is one field being defined on the create page.
type builderRow struct {
	Type        string
	Label       string
	Required    bool
	Placeholder string
}

// builder is the state of the create page between postbacks. Errors is keyed
// by the validation path reported by the form service (title, fields,
// fields[2].label).
type builder struct {
	Title       string
	Description string
	Rows        []builderRow
	Errors      map[string]string
}

func newBuilder() *builder {
	return &builder{Rows: []builderRow{newBuilderRow()}}
}

func newBuilderRow() builderRow {
	return builderRow{Type: domain.FieldTypeText.String()}
}

func rowKey(i int, name string) string {
	return fmt.Sprintf("fields[%d].%s", i, name)
}

// parseBuilder restores builder state from a posted create page. Rows are
// read in index order until the first missing type.
func parseBuilder(values url.Values) *builder {
	b := &builder{
		Title:       values.Get("title"),
		Description: values.Get("description"),
	}
	for i := 0; i < maxBuilderFields; i++ {
		typ, ok := values[rowKey(i, "type")]
		if !ok || len(typ) == 0 {
			break
		}
		b.Rows = append(b.Rows, builderRow{
			Type:        typ[0],
			Label:       values.Get(rowKey(i, "label")),
			Required:    values.Get(rowKey(i, "required")) != "",
			Placeholder: values.Get(rowKey(i, "placeholder")),
		})
	}
	if len(b.Rows) == 0 {
		b.Rows = []builderRow{newBuilderRow()}
	}
	return b
}

func (b *builder) addRow() {
	if len(b.Rows) < maxBuilderFields {
		b.Rows = append(b.Rows, newBuilderRow())
	}
}

// removeRow drops row i. The last remaining row is kept.
func (b *builder) removeRow(i int) {
	if len(b.Rows) <= 1 || i < 0 || i >= len(b.Rows) {
		return
	}
	b.Rows = append(b.Rows[:i], b.Rows[i+1:]...)
}

// apply runs a non-create postback action. It reports false for the create
// action, which the caller handles.
func (b *builder) apply(action string) bool {
	switch {
	case action == actionAdd:
		b.addRow()
	case strings.HasPrefix(action, removeAction):
		if i, err := strconv.Atoi(strings.TrimPrefix(action, removeAction)); err == nil {
			b.removeRow(i)
		}
	default:
		return false
	}
	return true
}

func (b *builder) input() formsvc.CreateFormInput {
	in := formsvc.CreateFormInput{
		Title:  b.Title,
		Fields: make([]formsvc.FieldInput, len(b.Rows)),
	}
	if strings.TrimSpace(b.Description) != "" {
		in.Description = &b.Description
	}
	for i, row := range b.Rows {
		in.Fields[i] = formsvc.FieldInput{
			Type:     domain.FieldType(row.Type),
			Label:    row.Label,
			Required: row.Required,
		}
		if strings.TrimSpace(row.Placeholder) != "" {
			placeholder := row.Placeholder
			in.Fields[i].Placeholder = &placeholder
		}
	}
	return in
}

// setErrors records field errors by path. The first message per path wins.
func (b *builder) setErrors(errs []domain.FieldError) {
	b.Errors = make(map[string]string, len(errs))
	for _, fe := range errs {
		if _, ok := b.Errors[fe.Field]; !ok {
			b.Errors[fe.Field] = fe.Message
		}
	}
}
