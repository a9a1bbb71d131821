// Package response implements the Response repository using PostgreSQL.
// Answers are stored as a JSONB object keyed by field id.
package response

import (
	"bytes"
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

var responseColumns = []string{"id", "form_id", "data", "created_at"}

// Repo provides response persistence backed by PostgreSQL.
type Repo struct {
	db   postgres.Querier
	psql sq.StatementBuilderType
}

// New creates a new response repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

type responseRow struct {
	ID        uuid.UUID `db:"id"`
	FormID    uuid.UUID `db:"form_id"`
	Data      []byte    `db:"data"`
	CreatedAt time.Time `db:"created_at"`
}

type countRow struct {
	FormID uuid.UUID `db:"form_id"`
	Count  int       `db:"count"`
}

func (r responseRow) toDomain() (*domain.Response, error) {
	// UseNumber keeps numeric answers in their submitted form.
	dec := json.NewDecoder(bytes.NewReader(r.Data))
	dec.UseNumber()

	data := map[string]any{}
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode data of response %s: %w", r.ID, err)
	}

	return &domain.Response{
		ID:        r.ID,
		FormID:    r.FormID,
		Data:      data,
		CreatedAt: r.CreatedAt,
	}, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create stores a response for formID. The form's existence is enforced by
// the foreign key only; a violation surfaces as domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, formID uuid.UUID, data map[string]any) (*domain.Response, error) {
	if data == nil {
		data = map[string]any{}
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode response data: %w", err)
	}

	query, args, err := r.psql.
		Insert("responses").
		Columns("form_id", "data").
		Values(formID, payload).
		Suffix("RETURNING id, form_id, data, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert response: %w", err)
	}

	var row responseRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "form", formID)
	}

	return row.toDomain()
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByForm returns every response of a form, most recent first.
// Returns an empty slice (not nil) when the form has no responses.
func (r *Repo) ListByForm(ctx context.Context, formID uuid.UUID) ([]*domain.Response, error) {
	query, args, err := r.psql.
		Select(responseColumns...).
		From("responses").
		Where(sq.Eq{"form_id": formID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list responses: %w", err)
	}

	var rows []responseRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "responses of form", formID)
	}

	responses := make([]*domain.Response, 0, len(rows))
	for _, row := range rows {
		resp, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// CountByForm returns the number of responses stored for a form.
func (r *Repo) CountByForm(ctx context.Context, formID uuid.UUID) (int, error) {
	query, args, err := r.psql.
		Select("COUNT(*)").
		From("responses").
		Where(sq.Eq{"form_id": formID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count responses: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "responses of form", formID)
	}

	return count, nil
}

// CountByForms returns response counts for several forms in one query.
// Forms without responses are absent from the result.
func (r *Repo) CountByForms(ctx context.Context, formIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if len(formIDs) == 0 {
		return map[uuid.UUID]int{}, nil
	}

	query, args, err := r.psql.
		Select("form_id", "COUNT(*) AS count").
		From("responses").
		Where(sq.Eq{"form_id": formIDs}).
		GroupBy("form_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build batch count responses: %w", err)
	}

	var rows []countRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "response counts", nil)
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.FormID] = row.Count
	}

	return counts, nil
}
