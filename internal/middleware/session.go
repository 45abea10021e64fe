package middleware

import (
	"context"
	"net/http"
	"strings"

	"dealerdrive-api/internal/model"
	"dealerdrive-api/internal/service"
	"dealerdrive-api/pkg/apierror"
)

// SessionKey is the key for storing the validated session in request context.
const SessionKey contextKey = "admin_session"

// SessionToken extracts the session token from a request. Both the
// X-Session-Token header and Authorization: Bearer are accepted.
func SessionToken(r *http.Request) string {
	if token := r.Header.Get("X-Session-Token"); token != "" {
		return token
	}
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// RequireSession creates a middleware that rejects requests without a live
// admin session. Only the admin surface is gated with this; the inventory
// and enquiry endpoints stay open on purpose.
func RequireSession(sessions *service.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := SessionToken(r)
			if token == "" {
				writeError(w, apierror.Unauthorized("Authentication required. Use X-Session-Token header."))
				return
			}

			session, err := sessions.Validate(r.Context(), token)
			if err != nil {
				writeError(w, apierror.Unauthorized("Invalid or expired session"))
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeError writes an API error response.
func writeError(w http.ResponseWriter, err *apierror.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	w.Write(err.ToJSON())
}

// GetSessionFromContext retrieves the validated session from request context.
func GetSessionFromContext(ctx context.Context) *model.Session {
	if session, ok := ctx.Value(SessionKey).(*model.Session); ok {
		return session
	}
	return nil
}
