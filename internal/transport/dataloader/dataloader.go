// Package dataloader provides per-request DataLoaders that batch the
// dashboard's per-form lookups into single SQL calls. Loaders call the
// repositories directly, bypassing the service layer.
package dataloader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type responseCounter interface {
	CountByForms(ctx context.Context, formIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	ResponseCountByFormID *dataloader.Loader[uuid.UUID, int]
}

// NewLoaders creates loaders backed by the given repository.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(counter responseCounter) *Loaders {
	return &Loaders{
		ResponseCountByFormID: dataloader.NewBatchedLoader(
			newResponseCountBatchFn(counter),
			dataloader.WithWait[uuid.UUID, int](wait),
			dataloader.WithBatchCapacity[uuid.UUID, int](maxBatch),
		),
	}
}

func newResponseCountBatchFn(counter responseCounter) dataloader.BatchFunc[uuid.UUID, int] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[int] {
		counts, err := counter.CountByForms(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[int], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[int]{Error: err}
			}
			return results
		}

		results := make([]*dataloader.Result[int], len(keys))
		for i, k := range keys {
			results[i] = &dataloader.Result[int]{Data: counts[k]}
		}
		return results
	}
}

// ResponseCounts loads counts for all ids through the request's loader.
// Forms without responses map to zero.
func (l *Loaders) ResponseCounts(ctx context.Context, formIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int, len(formIDs))
	if len(formIDs) == 0 {
		return out, nil
	}

	counts, errs := l.ResponseCountByFormID.LoadMany(ctx, formIDs)()
	for i, id := range formIDs {
		if len(errs) > i && errs[i] != nil {
			return nil, errs[i]
		}
		out[id] = counts[i]
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}

// Middleware instantiates per-request loaders and stores them in the
// request context.
func Middleware(counter responseCounter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(counter))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
