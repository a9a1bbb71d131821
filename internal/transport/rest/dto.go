package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/quickforms/internal/domain"
	"github.com/heartmarshall/quickforms/internal/service/form"
)

// createFormRequest is the POST /forms body. Properties stay raw so a value
// of the wrong JSON type is reported against its path instead of failing the
// whole body.
type createFormRequest struct {
	Title       json.RawMessage `json:"title"`
	Description json.RawMessage `json:"description"`
	Fields      json.RawMessage `json:"fields"`
}

type fieldRequest struct {
	ID          json.RawMessage `json:"id"`
	Type        json.RawMessage `json:"type"`
	Label       json.RawMessage `json:"label"`
	Required    json.RawMessage `json:"required"`
	Placeholder json.RawMessage `json:"placeholder"`
}

// typeChecker converts raw properties and collects type mismatches.
type typeChecker struct {
	errs []domain.FieldError
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

func (c *typeChecker) fail(path, message string) {
	c.errs = append(c.errs, domain.FieldError{Field: path, Message: message})
}

func (c *typeChecker) stringAt(path string, raw json.RawMessage) string {
	var s string
	if !isAbsent(raw) && json.Unmarshal(raw, &s) != nil {
		c.fail(path, "must be a string")
	}
	return s
}

func (c *typeChecker) optionalString(path string, raw json.RawMessage) *string {
	if isAbsent(raw) {
		return nil
	}
	s := c.stringAt(path, raw)
	return &s
}

func (c *typeChecker) boolAt(path string, raw json.RawMessage) bool {
	var b bool
	if !isAbsent(raw) && json.Unmarshal(raw, &b) != nil {
		c.fail(path, "must be a boolean")
	}
	return b
}

// toInput converts the body into service input. The returned field errors
// list every property whose JSON type is wrong.
func (req createFormRequest) toInput() (form.CreateFormInput, []domain.FieldError) {
	var c typeChecker
	in := form.CreateFormInput{
		Title:       c.stringAt("title", req.Title),
		Description: c.optionalString("description", req.Description),
	}

	var rawFields []json.RawMessage
	if !isAbsent(req.Fields) && json.Unmarshal(req.Fields, &rawFields) != nil {
		c.fail("fields", "must be an array")
	}

	in.Fields = make([]form.FieldInput, len(rawFields))
	for i, raw := range rawFields {
		prefix := fmt.Sprintf("fields[%d]", i)

		var f fieldRequest
		if isAbsent(raw) || json.Unmarshal(raw, &f) != nil {
			c.fail(prefix, "must be an object")
			continue
		}
		in.Fields[i] = form.FieldInput{
			ID:          c.stringAt(prefix+".id", f.ID),
			Type:        domain.FieldType(c.stringAt(prefix+".type", f.Type)),
			Label:       c.stringAt(prefix+".label", f.Label),
			Required:    c.boolAt(prefix+".required", f.Required),
			Placeholder: c.optionalString(prefix+".placeholder", f.Placeholder),
		}
	}
	return in, c.errs
}

// withRuleErrors appends the input's own validation failures for paths not
// already reported as type mismatches.
func withRuleErrors(typeErrs []domain.FieldError, in form.CreateFormInput) []domain.FieldError {
	var verr *domain.ValidationError
	if !errors.As(in.Validate(), &verr) {
		return typeErrs
	}

	reported := make(map[string]bool, len(typeErrs))
	for _, fe := range typeErrs {
		reported[fe.Field] = true
	}
	out := typeErrs
	for _, fe := range verr.Errors {
		if !reported[fe.Field] && !coveredByParent(fe.Field, reported) {
			out = append(out, fe)
		}
	}
	return out
}

// coveredByParent reports whether a path like fields[1].label sits under an
// already reported fields[1].
func coveredByParent(path string, reported map[string]bool) bool {
	for p := range reported {
		if strings.HasPrefix(path, p+".") {
			return true
		}
	}
	return false
}

type fieldResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Label       string  `json:"label"`
	Required    bool    `json:"required"`
	Placeholder *string `json:"placeholder,omitempty"`
}

type formResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Fields      []fieldResponse `json:"fields"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toFormResponse(f *domain.Form) formResponse {
	out := formResponse{
		ID:          f.ID.String(),
		Title:       f.Title,
		Description: f.Description,
		Fields:      make([]fieldResponse, len(f.Fields)),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
	for i, fld := range f.Fields {
		out.Fields[i] = fieldResponse{
			ID:          fld.ID,
			Type:        fld.Type.String(),
			Label:       fld.Label,
			Required:    fld.Required,
			Placeholder: fld.Placeholder,
		}
	}
	return out
}

type responseResponse struct {
	ID        string         `json:"id"`
	FormID    string         `json:"form_id"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"created_at"`
}

func toResponseResponse(r *domain.Response) responseResponse {
	return responseResponse{
		ID:        r.ID.String(),
		FormID:    r.FormID.String(),
		Data:      r.Data,
		CreatedAt: r.CreatedAt,
	}
}

type countResponse struct {
	Count int `json:"count"`
}

type shareResponse struct {
	URL string `json:"url"`
}
