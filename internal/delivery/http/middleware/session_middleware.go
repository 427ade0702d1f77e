package middleware

import (
	"context"
	"net/http"

	"medifind/internal/domain/entity"
)

type contextKey string

const SessionKey contextKey = "session"

// SessionProvider returns a copy of the current session.
type SessionProvider interface {
	Current() entity.Session
}

type SessionMiddleware struct {
	sessions SessionProvider
}

func NewSessionMiddleware(sessions SessionProvider) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
	}
}

// Inject puts a snapshot of the session into the request context.
func (m *SessionMiddleware) Inject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := m.sessions.Current()
		ctx := context.WithValue(r.Context(), SessionKey, &session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionFromContext extracts the session snapshot from context
func GetSessionFromContext(ctx context.Context) (*entity.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*entity.Session)
	return session, ok
}
