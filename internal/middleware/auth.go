package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/feedbacklens/feedbacklens-go/internal/crypto"
)

type contextKey string

const claimsKey contextKey = "claims"

// RequireRole returns middleware that validates a Bearer token from the
// Authorization header and rejects tokens without the given role.
func RequireRole(secret, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			if claims.Role != role {
				writeJSONError(w, http.StatusForbidden, "insufficient privileges")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminAuth guards admin-only routes.
func AdminAuth(secret string) func(http.Handler) http.Handler {
	return RequireRole(secret, crypto.RoleAdmin)
}

// ClaimsFromContext extracts the validated token claims from the request context.
func ClaimsFromContext(ctx context.Context) (*crypto.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*crypto.Claims)
	return claims, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": msg, "message": msg})
}
