package router

import (
	"net/http"

	"github.com/jbeshir/dream-journal/internal/domain"
)

// requireAuthMiddleware rejects requests that no validator authenticated.
func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if domain.UserIDFromContext(r.Context()) != "" {
			next.ServeHTTP(w, r)
			return
		}

		domain.LoggerFromContext(r.Context()).WarnContext(r.Context(),
			"unauthenticated request to journal endpoint", "path", r.URL.Path)
		writeUnauthorized(w, "authentication required")
	})
}
