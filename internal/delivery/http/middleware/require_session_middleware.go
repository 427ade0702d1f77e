package middleware

import (
	"net/http"

	"medifind/pkg/response"
)

// RequireSession rejects requests made while nobody is logged in.
// Session is read from context (set by SessionMiddleware).
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := GetSessionFromContext(r.Context())
		if !ok || session.Profile == nil {
			response.Unauthorized(w, "Please log in first")
			return
		}

		next.ServeHTTP(w, r)
	})
}
