package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/heartmarshall/quickforms/internal/domain"
	"github.com/heartmarshall/quickforms/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token string) (string, error)
}

// RequireOwner rejects requests without a valid owner bearer token and
// stores the token subject in the request context.
func RequireOwner(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				unauthorized(w)
				return
			}
			subject, err := validator.ValidateToken(token)
			if err != nil {
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithOwner(r.Context(), subject)))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="quickforms"`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": domain.ErrUnauthorized.Error()})
}
