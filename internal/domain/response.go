package domain

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Response is one respondent's submission. Data maps a field id to a string,
// number (json.Number or float64) or bool. Responses are append-only.
type Response struct {
	ID        uuid.UUID
	FormID    uuid.UUID
	Data      map[string]any
	CreatedAt time.Time
}

// IsPrimitive reports whether v is an acceptable response value.
func IsPrimitive(v any) bool {
	switch v.(type) {
	case string, bool, json.Number, float64, int, int64:
		return true
	}
	return false
}

// FormatValue renders a response value as text. Missing values render empty.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	}
	return ""
}
