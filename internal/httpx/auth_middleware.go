package httpx

import (
	"net/http"
	"strings"

	"bookshelf/internal/platform/crypto"
)

const RoleAdmin = "ADMIN"

// AuthMiddleware accepts requests carrying a valid bearer token signed with secret.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONErrorWithRequest(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token", nil)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := crypto.ParseToken(secret, token)
			if err != nil {
				JSONErrorWithRequest(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token", nil)
				return
			}

			ctx := ContextWithUser(r.Context(), claims.Sub, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RoleFrom(r) != role {
				JSONErrorWithRequest(r, w, http.StatusForbidden, "FORBIDDEN", "Insufficient role", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly combines AuthMiddleware and RequireRole(RoleAdmin).
func AdminOnly(secret string) func(http.Handler) http.Handler {
	auth := AuthMiddleware(secret)
	role := RequireRole(RoleAdmin)
	return func(next http.Handler) http.Handler {
		return auth(role(next))
	}
}
