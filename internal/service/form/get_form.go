package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/quickforms/internal/domain"
)

// GetForm returns the form with the given id. A missing form is reported
// through found=false, not as an error.
func (s *Service) GetForm(ctx context.Context, id uuid.UUID) (form *domain.Form, found bool, err error) {
	if id == uuid.Nil {
		return nil, false, nil
	}

	form, err = s.forms.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get form: %w", err)
	}

	return form, true, nil
}

// ListForms returns all forms, most recent first.
func (s *Service) ListForms(ctx context.Context) ([]*domain.Form, error) {
	forms, err := s.forms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	return forms, nil
}

// ShareURL returns the public link respondents use to fill in the form.
func (s *Service) ShareURL(id uuid.UUID) string {
	return s.publicURL + "/respond/" + id.String()
}
