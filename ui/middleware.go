package ui

import (
	"context"
	"net/http"

	"esgboard/domain/core"
)

type contextKey string

const sessionContextKey contextKey = "session-key"

const sessionCookieName = "esg_session"

// withSession attaches a session key to every request, issuing a cookie on
// first contact. Derived tables and parameters are isolated per key.
func (a *App) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var key core.SessionKey
		if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
			if parsed, err := core.ParseSessionKey(cookie.Value); err == nil {
				key = parsed
			}
		}
		if key == "" {
			key = core.NewSessionKey()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    key.String(),
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), sessionContextKey, key)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionKey extracts the request's session key
func sessionKey(r *http.Request) core.SessionKey {
	if key, ok := r.Context().Value(sessionContextKey).(core.SessionKey); ok {
		return key
	}
	return ""
}
