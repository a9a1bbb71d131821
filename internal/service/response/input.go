package response

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/quickforms/internal/domain"
)

// SubmitResponseInput holds one respondent's answers keyed by field id.
// Keys are not checked against the form's declared fields.
type SubmitResponseInput struct {
	FormID uuid.UUID
	Data   map[string]any
}

// Validate checks all fields and collects all errors.
func (i SubmitResponseInput) Validate() error {
	var errs []domain.FieldError

	if i.FormID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "form_id", Message: "required"})
	}

	keys := make([]string, 0, len(i.Data))
	for k := range i.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if strings.TrimSpace(k) == "" {
			errs = append(errs, domain.FieldError{Field: "data", Message: "empty field id"})
			continue
		}
		if !domain.IsPrimitive(i.Data[k]) {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("data.%s", k),
				Message: "must be a string, number or boolean",
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
