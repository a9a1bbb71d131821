package ctxutil

import "context"

type ctxKey string

const (
	ownerKey     ctxKey = "owner"
	requestIDKey ctxKey = "request_id"
)

// WithOwner stores the authenticated form owner's subject in the context.
func WithOwner(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, ownerKey, subject)
}

// OwnerFromCtx extracts the owner subject from the context.
// Returns "" and false if absent.
func OwnerFromCtx(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(ownerKey).(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
