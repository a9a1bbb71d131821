// Package form implements the Form repository using PostgreSQL.
// Field definitions are stored as a JSONB array on the forms row.
package form

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/quickforms/internal/adapter/postgres"
	"github.com/heartmarshall/quickforms/internal/domain"
)

var formColumns = []string{"id", "title", "description", "fields", "created_at", "updated_at"}

// Repo provides form persistence backed by PostgreSQL.
type Repo struct {
	db   postgres.Querier
	psql sq.StatementBuilderType
}

// New creates a new form repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type formRow struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	Fields      []byte    `db:"fields"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type fieldJSON struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Label       string  `json:"label"`
	Required    bool    `json:"required"`
	Placeholder *string `json:"placeholder,omitempty"`
}

func marshalFields(fields []domain.Field) ([]byte, error) {
	out := make([]fieldJSON, len(fields))
	for i, f := range fields {
		out[i] = fieldJSON{
			ID:          f.ID,
			Type:        f.Type.String(),
			Label:       f.Label,
			Required:    f.Required,
			Placeholder: f.Placeholder,
		}
	}
	return json.Marshal(out)
}

func (r formRow) toDomain() (*domain.Form, error) {
	var raw []fieldJSON
	if err := json.Unmarshal(r.Fields, &raw); err != nil {
		return nil, fmt.Errorf("decode fields of form %s: %w", r.ID, err)
	}

	fields := make([]domain.Field, len(raw))
	for i, f := range raw {
		fields[i] = domain.Field{
			ID:          f.ID,
			Type:        domain.FieldType(f.Type),
			Label:       f.Label,
			Required:    f.Required,
			Placeholder: f.Placeholder,
		}
	}

	return &domain.Form{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Fields:      fields,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a form and returns it with the server-assigned id and timestamps.
func (r *Repo) Create(ctx context.Context, f *domain.Form) (*domain.Form, error) {
	fields, err := marshalFields(f.Fields)
	if err != nil {
		return nil, fmt.Errorf("encode form fields: %w", err)
	}

	query, args, err := r.psql.
		Insert("forms").
		Columns("title", "description", "fields").
		Values(f.Title, f.Description, fields).
		Suffix("RETURNING id, title, description, fields, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert form: %w", err)
	}

	var row formRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "form", nil)
	}

	return row.toDomain()
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a form by primary key.
// Returns domain.ErrNotFound if the form does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
	query, args, err := r.psql.
		Select(formColumns...).
		From("forms").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select form: %w", err)
	}

	var row formRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "form", id)
	}

	return row.toDomain()
}

// List returns all forms, most recently created first.
// Returns an empty slice (not nil) when there are no forms.
func (r *Repo) List(ctx context.Context) ([]*domain.Form, error) {
	query, args, err := r.psql.
		Select(formColumns...).
		From("forms").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list forms: %w", err)
	}

	var rows []formRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "forms", nil)
	}

	forms := make([]*domain.Form, 0, len(rows))
	for _, row := range rows {
		f, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		forms = append(forms, f)
	}

	return forms, nil
}
