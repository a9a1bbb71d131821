package response

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/quickforms/internal/domain"
)

type responseRepo interface {
	Create(ctx context.Context, formID uuid.UUID, data map[string]any) (*domain.Response, error)
	ListByForm(ctx context.Context, formID uuid.UUID) ([]*domain.Response, error)
	CountByForm(ctx context.Context, formID uuid.UUID) (int, error)
	CountByForms(ctx context.Context, formIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

type formRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Form, error)
}

// Service provides response collection, listing and export.
type Service struct {
	responses responseRepo
	forms     formRepo
	log       *slog.Logger
}

// NewService creates a new Response service.
func NewService(log *slog.Logger, responses responseRepo, forms formRepo) *Service {
	return &Service{
		responses: responses,
		forms:     forms,
		log:       log.With("service", "response"),
	}
}
