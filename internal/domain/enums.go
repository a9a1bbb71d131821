package domain

// FieldType is the closed set of input kinds a form field may declare.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeNumber   FieldType = "number"
)

// FieldTypes lists every supported field type in display order.
var FieldTypes = []FieldType{FieldTypeText, FieldTypeEmail, FieldTypeTextarea, FieldTypeNumber}

func (t FieldType) String() string { return string(t) }

func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeEmail, FieldTypeTextarea, FieldTypeNumber:
		return true
	}
	return false
}
