package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/linkup-team/linkup-gateway/internal/api/handlers"
	"github.com/linkup-team/linkup-gateway/internal/domain"
)

type contextKey struct{}

var sessionKey contextKey

// SessionResolver resolves a session id to a live session
type SessionResolver interface {
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
}

// Auth authenticates requests with "Authorization: Bearer <session id>" and
// places the resolved session in the request context. Missing, malformed,
// unknown and expired credentials all get a 401.
func Auth(sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			sessionID, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || sessionID == "" {
				handlers.RespondUnauthorized(w, "missing or malformed Authorization header")
				return
			}

			session, err := sessions.GetSession(r.Context(), sessionID)
			if err != nil {
				handlers.RespondUnauthorized(w, "invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session placed by Auth, if any
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionKey).(*domain.Session)
	return session, ok
}
