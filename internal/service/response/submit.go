package response

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/quickforms/internal/domain"
)

// Submit stores a response. A missing form surfaces as domain.ErrNotFound
// from the store's foreign key.
func (s *Service) Submit(ctx context.Context, input SubmitResponseInput) (*domain.Response, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.responses.Create(ctx, input.FormID, input.Data)
	if err != nil {
		return nil, fmt.Errorf("submit response: %w", err)
	}

	s.log.InfoContext(ctx, "response submitted",
		slog.String("form_id", input.FormID.String()),
		slog.String("response_id", resp.ID.String()),
	)

	return resp, nil
}

// ListByForm returns the form's responses, most recent first.
func (s *Service) ListByForm(ctx context.Context, formID uuid.UUID) ([]*domain.Response, error) {
	responses, err := s.responses.ListByForm(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	return responses, nil
}

// CountByForm returns how many responses the form has received.
func (s *Service) CountByForm(ctx context.Context, formID uuid.UUID) (int, error) {
	n, err := s.responses.CountByForm(ctx, formID)
	if err != nil {
		return 0, fmt.Errorf("count responses: %w", err)
	}
	return n, nil
}

// CountByForms returns response counts for several forms. Every requested
// id is present in the result; forms without responses map to zero.
func (s *Service) CountByForms(ctx context.Context, formIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts, err := s.responses.CountByForms(ctx, formIDs)
	if err != nil {
		return nil, fmt.Errorf("count responses: %w", err)
	}

	out := make(map[uuid.UUID]int, len(formIDs))
	for _, id := range formIDs {
		out[id] = counts[id]
	}
	return out, nil
}
