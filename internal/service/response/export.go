package response

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/heartmarshall/quickforms/internal/domain"
)

// Export is a rendered CSV document ready for download.
type Export struct {
	Filename string
	Content  string
	Rows     int
}

// ExportForm loads a form and its responses and renders them as CSV.
// Returns domain.ErrNotFound if the form does not exist.
func (s *Service) ExportForm(ctx context.Context, formID uuid.UUID) (*Export, error) {
	form, err := s.forms.GetByID(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("export responses: %w", err)
	}

	responses, err := s.responses.ListByForm(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("export responses: %w", err)
	}

	s.log.InfoContext(ctx, "responses exported",
		slog.String("form_id", formID.String()),
		slog.Int("rows", len(responses)),
	)

	return &Export{
		Filename: SanitizeFilename(form.Title + "-responses.csv"),
		Content:  ExportCSV(form, responses),
		Rows:     len(responses),
	}, nil
}

// SanitizeFilename makes name safe to use as a single path element. Path
// separators and control characters become underscores.
func SanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || unicode.IsControl(r) {
			return '_'
		}
		return r
	}, name)
}

// ExportCSV renders responses as CSV text. The header holds field labels in
// form order, quoted only when they contain a separator, quote or newline.
// Every data cell is quoted; a missing answer is an empty quoted cell.
// Rows keep the order given and lines are joined with "\n".
func ExportCSV(form *domain.Form, responses []*domain.Response) string {
	var b strings.Builder

	for i, label := range form.Labels() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeHeader(label))
	}

	for _, resp := range responses {
		b.WriteByte('\n')
		for i, f := range form.Fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quote(domain.FormatValue(resp.Data[f.ID])))
		}
	}

	return b.String()
}

func escapeHeader(s string) string {
	if strings.ContainsAny(s, ",\"\r\n") {
		return quote(s)
	}
	return s
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
