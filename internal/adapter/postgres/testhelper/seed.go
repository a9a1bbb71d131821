package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/quickforms/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedForm inserts a form with a text field "name" (required) and an email
// field "email" (optional). Returns the filled domain.Form.
func SeedForm(t *testing.T, pool *pgxpool.Pool) domain.Form {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	f := domain.Form{
		ID:    uuid.New(),
		Title: "Survey " + uniqueSuffix(),
		Fields: []domain.Field{
			{ID: "name", Type: domain.FieldTypeText, Label: "Name", Required: true},
			{ID: "email", Type: domain.FieldTypeEmail, Label: "Email"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	fields, err := json.Marshal([]map[string]any{
		{"id": "name", "type": "text", "label": "Name", "required": true},
		{"id": "email", "type": "email", "label": "Email", "required": false},
	})
	if err != nil {
		t.Fatalf("testhelper: SeedForm marshal fields: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO forms (id, title, fields, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		f.ID, f.Title, fields, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedForm insert: %v", err)
	}

	return f
}

// SeedResponse inserts a response for formID created at the given time.
func SeedResponse(t *testing.T, pool *pgxpool.Pool, formID uuid.UUID, data map[string]any, createdAt time.Time) domain.Response {
	t.Helper()
	ctx := context.Background()

	payload, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("testhelper: SeedResponse marshal data: %v", err)
	}

	r := domain.Response{
		ID:        uuid.New(),
		FormID:    formID,
		Data:      data,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO responses (id, form_id, data, created_at) VALUES ($1, $2, $3, $4)`,
		r.ID, r.FormID, payload, r.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedResponse insert: %v", err)
	}

	return r
}
