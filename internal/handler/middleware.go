package handler

import (
	"context"
	"net/http"
)

// SessionCookie is the name of the session cookie issued at registration.
const SessionCookie = "sessionId"

type contextKey string

const sessionContextKey contextKey = "sessionID"

// SessionFromContext extracts the session token from the request context.
// Returns "" if the request carried no session cookie.
func SessionFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(sessionContextKey).(string)
	return sessionID
}

// RequireSession is middleware that protects routes requiring a session.
// It only checks that the session cookie is present and injects its value
// into the request context; resolving the token to a user is left to each
// handler. Requests without the cookie get 401 before any store access.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error":   "Unauthorized",
				"message": "You must be authenticated to access this resource",
			})
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, cookie.Value)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
