package form

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/quickforms/internal/domain"
)

type formRepo interface {
	Create(ctx context.Context, f *domain.Form) (*domain.Form, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Form, error)
	List(ctx context.Context) ([]*domain.Form, error)
}

// Service provides form definition operations.
type Service struct {
	forms     formRepo
	publicURL string
	log       *slog.Logger
}

// NewService creates a new Form service. publicURL is the externally
// reachable base URL used to build share links.
func NewService(log *slog.Logger, forms formRepo, publicURL string) *Service {
	return &Service{
		forms:     forms,
		publicURL: strings.TrimRight(publicURL, "/"),
		log:       log.With("service", "form"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
