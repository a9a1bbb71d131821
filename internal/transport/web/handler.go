package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/quickforms/internal/domain"
	"github.com/heartmarshall/quickforms/internal/renderer"
	formsvc "github.com/heartmarshall/quickforms/internal/service/form"
	"github.com/heartmarshall/quickforms/internal/service/response"
	"github.com/heartmarshall/quickforms/internal/transport/dataloader"
	"github.com/heartmarshall/quickforms/pkg/ctxutil"
)

type formService interface {
	CreateForm(ctx context.Context, input formsvc.CreateFormInput) (*domain.Form, error)
	GetForm(ctx context.Context, id uuid.UUID) (*domain.Form, bool, error)
	ListForms(ctx context.Context) ([]*domain.Form, error)
	ShareURL(id uuid.UUID) string
}

type responseService interface {
	Submit(ctx context.Context, input response.SubmitResponseInput) (*domain.Response, error)
	ListByForm(ctx context.Context, formID uuid.UUID) ([]*domain.Response, error)
}

// Handler serves the server-rendered pages.
type Handler struct {
	forms     formService
	responses responseService
	log       *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(forms formService, responses responseService, logger *slog.Logger) *Handler {
	return &Handler{forms: forms, responses: responses, log: logger.With("handler", "web")}
}

// Routes mounts the pages on r. The dashboard expects dataloader.Middleware
// upstream; ownerOnly guards the responses page and submitLimit throttles
// submissions. Either may be nil.
func (h *Handler) Routes(r chi.Router, ownerOnly, submitLimit func(http.Handler) http.Handler) {
	r.Get("/", h.Dashboard)
	r.Get("/create", h.NewForm)
	r.Post("/create", h.CreateForm)
	r.Get("/form/{id}", h.Detail)
	r.Get("/respond/{id}", h.Respond)
	if submitLimit != nil {
		r.With(submitLimit).Post("/respond/{id}", h.SubmitResponse)
	} else {
		r.Post("/respond/{id}", h.SubmitResponse)
	}
	if ownerOnly != nil {
		r.With(ownerOnly).Get("/responses/{id}", h.Responses)
	} else {
		r.Get("/responses/{id}", h.Responses)
	}
}

func render(w http.ResponseWriter, r *http.Request, status int, title string, body templ.Component) {
	templ.Handler(renderer.Page(title, body), templ.WithStatus(status)).ServeHTTP(w, r)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusNotFound, "Form Not Found", renderer.NotFoundView())
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.log.ErrorContext(r.Context(), msg,
		slog.String("error", err.Error()),
		slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
	)
	render(w, r, http.StatusInternalServerError, "Error", renderer.ErrorView())
}

// loadForm resolves the {id} parameter. It writes the not-found or error
// page itself and reports false when the caller should stop.
func (h *Handler) loadForm(w http.ResponseWriter, r *http.Request) (*domain.Form, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r)
		return nil, false
	}

	form, found, err := h.forms.GetForm(r.Context(), id)
	if err != nil {
		h.serverError(w, r, "load form", err)
		return nil, false
	}
	if !found {
		h.notFound(w, r)
		return nil, false
	}
	return form, true
}

// Dashboard handles GET /: every form, most recent first, with its
// response count.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	forms, err := h.forms.ListForms(r.Context())
	if err != nil {
		h.serverError(w, r, "list forms", err)
		return
	}

	ids := make([]uuid.UUID, len(forms))
	for i, f := range forms {
		ids[i] = f.ID
	}
	counts, err := dataloader.FromContext(r.Context()).ResponseCounts(r.Context(), ids)
	if err != nil {
		h.serverError(w, r, "count responses", err)
		return
	}

	rows := make([]dashboardRow, len(forms))
	for i, f := range forms {
		rows[i] = dashboardRow{Form: f, Responses: counts[f.ID]}
	}
	render(w, r, http.StatusOK, "Quick Forms", dashboardView(rows))
}

// NewForm handles GET /create: an empty builder with one text field.
func (h *Handler) NewForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "Create Form", builderView(newBuilder()))
}

// CreateForm handles POST /create. Add and remove actions re-render the
// builder; the create action stores the form and redirects to its detail
// page, or re-renders with inline errors when validation fails.
func (h *Handler) CreateForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	b := parseBuilder(r.PostForm)
	if b.apply(r.PostForm.Get("action")) {
		render(w, r, http.StatusOK, "Create Form", builderView(b))
		return
	}

	form, err := h.forms.CreateForm(r.Context(), b.input())
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		b.setErrors(verr.Errors)
		render(w, r, http.StatusUnprocessableEntity, "Create Form", builderView(b))
	case err != nil:
		h.serverError(w, r, "create form", err)
	default:
		http.Redirect(w, r, "/form/"+form.ID.String(), http.StatusSeeOther)
	}
}

// Detail handles GET /form/{id}.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	form, ok := h.loadForm(w, r)
	if !ok {
		return
	}
	render(w, r, http.StatusOK, form.Title, detailView(form, h.forms.ShareURL(form.ID)))
}

// Respond handles GET /respond/{id}.
func (h *Handler) Respond(w http.ResponseWriter, r *http.Request) {
	session := renderer.NewSession(h.log, h.forms, h.responses)
	status := http.StatusOK
	if session.Load(r.Context(), chi.URLParam(r, "id")) == renderer.StateNotFound {
		status = http.StatusNotFound
	}
	templ.Handler(session.View(r.URL.Path), templ.WithStatus(status)).ServeHTTP(w, r)
}

// SubmitResponse handles POST /respond/{id} with urlencoded field values.
// Invalid input re-renders the form with inline errors.
func (h *Handler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	session := renderer.NewSession(h.log, h.forms, h.responses)
	if session.Load(r.Context(), chi.URLParam(r, "id")) == renderer.StateNotFound {
		templ.Handler(session.View(r.URL.Path), templ.WithStatus(http.StatusNotFound)).ServeHTTP(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	state, err := session.Submit(r.Context(), r.PostForm)
	if err != nil {
		h.serverError(w, r, "submit response", err)
		return
	}

	status := http.StatusOK
	switch {
	case state == renderer.StateSubmitted:
	case session.Alert() != "":
		status = http.StatusInternalServerError
	case len(session.FieldErrors()) > 0:
		status = http.StatusUnprocessableEntity
	}
	templ.Handler(session.View(r.URL.Path), templ.WithStatus(status)).ServeHTTP(w, r)
}

// Responses handles GET /responses/{id}: the owner's table of responses.
// The form and its responses are loaded concurrently.
func (h *Handler) Responses(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r)
		return
	}

	var (
		form      *domain.Form
		found     bool
		responses []*domain.Response
	)

	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		form, found, err = h.forms.GetForm(gctx, id)
		if err != nil {
			return fmt.Errorf("load form: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		responses, err = h.responses.ListByForm(gctx, id)
		if err != nil {
			return fmt.Errorf("list responses: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		h.serverError(w, r, "load responses page", err)
		return
	}
	if !found {
		h.notFound(w, r)
		return
	}
	render(w, r, http.StatusOK, form.Title+" Responses", responsesView(form, responses, exportPath(form.ID)))
}
