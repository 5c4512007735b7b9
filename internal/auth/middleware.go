package auth

import (
	"context"
	"net/http"

	httputil "github.com/Zhasna/Mental-Wellness-App/pkg/http"
)

// contextKey is a custom type for context keys
type contextKey string

const (
	// SessionContextKey is the key for storing the session in context
	SessionContextKey contextKey = "session"
)

// RequireSession resolves the session cookie against the store and injects
// the session into the request context. Requests without a live session
// are rejected before reaching the handler; the user id a handler sees
// always comes from here, never from the request body or query string.
func RequireSession(store *SessionStore) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := GetSessionCookie(r)
			if err != nil || token == "" {
				httputil.WriteUnauthorized(w, "Authentication required")
				return
			}

			session, ok := store.Get(token)
			if !ok {
				// Stale cookie: clear it so the client stops resending it.
				ClearSessionCookie(w, CookieConfig{})
				httputil.WriteUnauthorized(w, "Authentication required")
				return
			}

			ctx := context.WithValue(r.Context(), SessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext extracts the session placed in the context by
// RequireSession. The bool is false on routes outside the middleware.
func SessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(SessionContextKey).(Session)
	return session, ok
}
