package form

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/quickforms/internal/domain"
)

// FieldInput describes one field of a form being created. An empty ID is
// replaced with a generated one.
type FieldInput struct {
	ID          string
	Type        domain.FieldType
	Label       string
	Required    bool
	Placeholder *string
}

// CreateFormInput holds the parameters for creating a form.
type CreateFormInput struct {
	Title       string
	Description *string
	Fields      []FieldInput
}

// Validate checks all fields and collects all errors.
func (i CreateFormInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", domain.MaxTitleLength)})
	}

	if len(i.Fields) == 0 {
		errs = append(errs, domain.FieldError{Field: "fields", Message: "at least one field required"})
	}

	seen := make(map[string]struct{}, len(i.Fields))
	for idx, f := range i.Fields {
		prefix := fmt.Sprintf("fields[%d]", idx)

		if strings.TrimSpace(f.Label) == "" {
			errs = append(errs, domain.FieldError{Field: prefix + ".label", Message: "required"})
		}
		if !f.Type.IsValid() {
			errs = append(errs, domain.FieldError{Field: prefix + ".type", Message: fmt.Sprintf("unsupported type %q", f.Type)})
		}

		id := strings.TrimSpace(f.ID)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			errs = append(errs, domain.FieldError{Field: prefix + ".id", Message: "duplicate"})
		}
		seen[id] = struct{}{}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
