package rest

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/quickforms/internal/domain"
	"github.com/heartmarshall/quickforms/internal/service/form"
	"github.com/heartmarshall/quickforms/internal/service/response"
)

type formService interface {
	CreateForm(ctx context.Context, input form.CreateFormInput) (*domain.Form, error)
	GetForm(ctx context.Context, id uuid.UUID) (*domain.Form, bool, error)
	ListForms(ctx context.Context) ([]*domain.Form, error)
	ShareURL(id uuid.UUID) string
}

type responseService interface {
	Submit(ctx context.Context, input response.SubmitResponseInput) (*domain.Response, error)
	ListByForm(ctx context.Context, formID uuid.UUID) ([]*domain.Response, error)
	CountByForm(ctx context.Context, formID uuid.UUID) (int, error)
	ExportForm(ctx context.Context, formID uuid.UUID) (*response.Export, error)
}

// FormHandler serves the /forms JSON API.
type FormHandler struct {
	forms     formService
	responses responseService
	log       *slog.Logger
}

// NewFormHandler creates a FormHandler.
func NewFormHandler(forms formService, responses responseService, logger *slog.Logger) *FormHandler {
	return &FormHandler{forms: forms, responses: responses, log: logger.With("handler", "forms")}
}

// Routes mounts the API on r. ownerOnly guards the endpoints that expose
// collected responses; submitLimit throttles anonymous submissions. Either
// may be nil.
func (h *FormHandler) Routes(r chi.Router, ownerOnly, submitLimit func(http.Handler) http.Handler) {
	r.Route("/forms", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Get("/share", h.Share)
			r.With(optional(submitLimit)...).Post("/responses", h.Submit)
			r.Group(func(r chi.Router) {
				r.Use(optional(ownerOnly)...)
				r.Get("/responses", h.ListResponses)
				r.Get("/responses/count", h.CountResponses)
				r.Get("/export", h.Export)
			})
		})
	})
}

func optional(mw func(http.Handler) http.Handler) []func(http.Handler) http.Handler {
	if mw == nil {
		return nil
	}
	return []func(http.Handler) http.Handler{mw}
}

// formID parses the {id} URL parameter. A malformed id is reported as a
// missing form.
func (h *FormHandler) formID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}

// Create handles POST /forms.
func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFormRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	input, typeErrs := req.toInput()
	if len(typeErrs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(withRuleErrors(typeErrs, input)))
		return
	}

	f, err := h.forms.CreateForm(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Location", "/forms/"+f.ID.String())
	writeJSON(w, r, http.StatusCreated, toFormResponse(f))
}

// List handles GET /forms.
func (h *FormHandler) List(w http.ResponseWriter, r *http.Request) {
	forms, err := h.forms.ListForms(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]formResponse, len(forms))
	for i, f := range forms {
		out[i] = toFormResponse(f)
	}
	writeJSON(w, r, http.StatusOK, out)
}

// Get handles GET /forms/{id}.
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.formID(w, r)
	if !ok {
		return
	}

	f, found, err := h.forms.GetForm(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if !found {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, r, http.StatusOK, toFormResponse(f))
}

// Share handles GET /forms/{id}/share.
func (h *FormHandler) Share(w http.ResponseWriter, r *http.Request) {
	id, ok := h.formID(w, r)
	if !ok {
		return
	}

	_, found, err := h.forms.GetForm(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if !found {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, r, http.StatusOK, shareResponse{URL: h.forms.ShareURL(id)})
}

// Submit handles POST /forms/{id}/responses. The body is the answer map
// itself, keyed by field id.
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.formID(w, r)
	if !ok {
		return
	}

	var data map[string]any
	if err := decodeJSON(r, &data); err != nil || data == nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.responses.Submit(r.Context(), response.SubmitResponseInput{FormID: id, Data: data})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, toResponseResponse(resp))
}

// ListResponses handles GET /forms/{id}/responses.
func (h *FormHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	id, ok := h.formID(w, r)
	if !ok {
		return
	}

	responses, err := h.responses.ListByForm(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]responseResponse, len(responses))
	for i, resp := range responses {
		out[i] = toResponseResponse(resp)
	}
	writeJSON(w, r, http.StatusOK, out)
}

// CountResponses handles GET /forms/{id}/responses/count.
func (h *FormHandler) CountResponses(w http.ResponseWriter, r *http.Request) {
	id, ok := h.formID(w, r)
	if !ok {
		return
	}

	n, err := h.responses.CountByForm(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, countResponse{Count: n})
}

// Export handles GET /forms/{id}/export as a CSV attachment.
func (h *FormHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, ok := h.formID(w, r)
	if !ok {
		return
	}

	export, err := h.responses.ExportForm(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": export.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(export.Content))
}
