package renderer

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/heartmarshall/quickforms/internal/domain"
	"github.com/heartmarshall/quickforms/internal/service/response"
)

// State is a respondent session state.
type State string

const (
	StateLoading    State = "loading"
	StateNotFound   State = "not_found"
	StateReady      State = "ready"
	StateSubmitting State = "submitting"
	StateSubmitted  State = "submitted"
)

const submitFailedAlert = "Failed to submit response. Please try again."

var (
	// ErrSessionClosed is returned when submitting after a terminal state.
	ErrSessionClosed = errors.New("session closed")
	// ErrNotReady is returned when submitting before the form is loaded.
	ErrNotReady = errors.New("form not ready")
)

type formSource interface {
	GetForm(ctx context.Context, id uuid.UUID) (*domain.Form, bool, error)
}

type responseSink interface {
	Submit(ctx context.Context, input response.SubmitResponseInput) (*domain.Response, error)
}

// Session drives one respondent through loading, filling in and submitting
// a form. A Session is used by a single request and is not safe for
// concurrent use.
type Session struct {
	forms     formSource
	responses responseSink
	log       *slog.Logger

	state       State
	form        *domain.Form
	values      map[string]string
	fieldErrors map[string]string
	alert       string
}

// NewSession returns a session in the loading state.
func NewSession(log *slog.Logger, forms formSource, responses responseSink) *Session {
	return &Session{
		forms:     forms,
		responses: responses,
		log:       log,
		state:     StateLoading,
	}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Form returns the loaded form, nil before a successful Load.
func (s *Session) Form() *domain.Form { return s.form }

// FieldErrors returns inline validation messages keyed by field id.
func (s *Session) FieldErrors() map[string]string { return s.fieldErrors }

// Alert returns the submission failure message, if any.
func (s *Session) Alert() string { return s.alert }

// Load fetches the form definition. Any failure, including a malformed id
// or a storage error, ends in the terminal not-found state.
func (s *Session) Load(ctx context.Context, rawID string) State {
	if s.state != StateLoading {
		return s.state
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		s.state = StateNotFound
		return s.state
	}

	form, found, err := s.forms.GetForm(ctx, id)
	if err != nil {
		s.log.ErrorContext(ctx, "load form for respondent",
			slog.String("form_id", id.String()),
			slog.String("error", err.Error()),
		)
	}
	if err != nil || !found {
		s.state = StateNotFound
		return s.state
	}

	s.form = form
	s.state = StateReady
	return s.state
}

// Submit validates the posted values and stores them. Local validation
// failures keep the session ready with inline errors and skip the store.
// A store failure keeps the session ready with an alert so the respondent
// can retry.
func (s *Session) Submit(ctx context.Context, values url.Values) (State, error) {
	switch s.state {
	case StateReady:
	case StateSubmitted, StateNotFound:
		return s.state, ErrSessionClosed
	default:
		return s.state, ErrNotReady
	}

	s.values = make(map[string]string, len(s.form.Fields))
	for _, f := range s.form.Fields {
		s.values[f.ID] = values.Get(f.ID)
	}
	s.alert = ""

	data, fieldErrs := Collect(s.form, values)
	s.fieldErrors = fieldErrs
	if len(fieldErrs) > 0 {
		return s.state, nil
	}

	s.state = StateSubmitting
	_, err := s.responses.Submit(ctx, response.SubmitResponseInput{FormID: s.form.ID, Data: data})
	if err != nil {
		s.log.ErrorContext(ctx, "submit response",
			slog.String("form_id", s.form.ID.String()),
			slog.String("error", err.Error()),
		)
		s.alert = submitFailedAlert
		s.state = StateReady
		return s.state, nil
	}

	s.values = nil
	s.state = StateSubmitted
	return s.state, nil
}

// View renders the screen for the current state. action is the URL the
// form posts back to.
func (s *Session) View(action string) templ.Component {
	switch s.state {
	case StateNotFound:
		return Page("Form Not Found", NotFoundView())
	case StateSubmitted:
		return Page("Response Submitted", SubmittedView())
	case StateReady, StateSubmitting:
		return Page(s.form.Title, FormView{
			Form:        s.form,
			Action:      action,
			Values:      s.values,
			FieldErrors: s.fieldErrors,
			Alert:       s.alert,
			Submitting:  s.state == StateSubmitting,
		}.Component())
	}
	return Page("Loading", LoadingView())
}
