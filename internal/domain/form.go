package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxTitleLength is the upper bound on a form title, in characters.
const MaxTitleLength = 100

// Field is a single input declared by a form. ID is unique within its form
// and is the key under which responses store the answer.
type Field struct {
	ID          string
	Type        FieldType
	Label       string
	Required    bool
	Placeholder *string
}

// Form is a published questionnaire. Forms are never updated after creation.
type Form struct {
	ID          uuid.UUID
	Title       string
	Description *string
	Fields      []Field
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Field returns the field with the given id.
func (f *Form) Field(id string) (Field, bool) {
	for _, fld := range f.Fields {
		if fld.ID == id {
			return fld, true
		}
	}
	return Field{}, false
}

// Labels returns field labels in declaration order.
func (f *Form) Labels() []string {
	labels := make([]string, len(f.Fields))
	for i, fld := range f.Fields {
		labels[i] = fld.Label
	}
	return labels
}
