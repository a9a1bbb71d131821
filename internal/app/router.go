package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/quickforms/internal/config"
	formsvc "github.com/heartmarshall/quickforms/internal/service/form"
	responsesvc "github.com/heartmarshall/quickforms/internal/service/response"
	"github.com/heartmarshall/quickforms/internal/transport/dataloader"
	"github.com/heartmarshall/quickforms/internal/transport/middleware"
	"github.com/heartmarshall/quickforms/internal/transport/rest"
	"github.com/heartmarshall/quickforms/internal/transport/web"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type responseCounter interface {
	CountByForms(ctx context.Context, formIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

type ownerTokenValidator interface {
	ValidateToken(token string) (string, error)
}

// RouterDeps lists everything the HTTP surface is built from. Tokens is nil
// when owner auth is disabled.
type RouterDeps struct {
	Config    *config.Config
	Logger    *slog.Logger
	Forms     *formsvc.Service
	Responses *responsesvc.Service
	Counter   responseCounter
	DB        pinger
	Tokens    ownerTokenValidator
	Limiter   *middleware.RateLimiter
}

// NewRouter assembles the JSON API, health checks and web pages.
func NewRouter(d RouterDeps) http.Handler {
	var ownerOnly func(http.Handler) http.Handler
	if d.Tokens != nil {
		ownerOnly = middleware.RequireOwner(d.Tokens)
	}
	submitLimit := d.Limiter.Limit(d.Config.RateLimit.SubmissionsPerMinute)

	r := chi.NewRouter()
	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(d.Logger),
		middleware.Logger(d.Logger),
		middleware.CORS(d.Config.CORS),
	))

	rest.NewHealthHandler(d.DB, BuildVersion()).Routes(r)
	rest.NewFormHandler(d.Forms, d.Responses, d.Logger).Routes(r, ownerOnly, submitLimit)

	r.Group(func(r chi.Router) {
		r.Use(dataloader.Middleware(d.Counter))
		web.NewHandler(d.Forms, d.Responses, d.Logger).Routes(r, ownerOnly, submitLimit)
	})

	return r
}
