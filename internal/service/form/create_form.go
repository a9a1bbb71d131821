package form

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/quickforms/internal/domain"
)

// CreateForm validates the definition and persists it. Nothing is written
// when validation fails.
func (s *Service) CreateForm(ctx context.Context, input CreateFormInput) (*domain.Form, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	fields := make([]domain.Field, len(input.Fields))
	for i, f := range input.Fields {
		id := strings.TrimSpace(f.ID)
		if id == "" {
			id = uuid.NewString()
		}
		fields[i] = domain.Field{
			ID:          id,
			Type:        f.Type,
			Label:       strings.TrimSpace(f.Label),
			Required:    f.Required,
			Placeholder: trimOrNil(f.Placeholder),
		}
	}

	form, err := s.forms.Create(ctx, &domain.Form{
		Title:       strings.TrimSpace(input.Title),
		Description: trimOrNil(input.Description),
		Fields:      fields,
	})
	if err != nil {
		return nil, fmt.Errorf("create form: %w", err)
	}

	s.log.InfoContext(ctx, "form created",
		slog.String("form_id", form.ID.String()),
		slog.Int("fields", len(form.Fields)),
	)

	return form, nil
}
