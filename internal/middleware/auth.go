package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

// UserIDKey carries the authenticated user id through the request context.
const UserIDKey contextKey = "userID"

// AuthCookieName is the cookie holding the signed identity token.
const AuthCookieName = "auth_token"

// TokenValidator validates an identity token and returns the user id.
type TokenValidator interface {
	ValidateToken(token string) (uint, error)
}

// RequireAuth rejects requests without a valid identity cookie with a JSON
// 401. This is an API-only surface; there is no login page to redirect to.
func RequireAuth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := authenticate(r, validator)
			if !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Not authenticated"})
				return
			}
			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth attaches the user id when a valid cookie is present and lets
// anonymous requests through untouched. The chat endpoint uses this: anyone
// may chat, only known users get history.
func OptionalAuth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID, ok := authenticate(r, validator); ok {
				r = r.WithContext(context.WithValue(r.Context(), UserIDKey, userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func authenticate(r *http.Request, validator TokenValidator) (uint, bool) {
	cookie, err := r.Cookie(AuthCookieName)
	if err != nil {
		return 0, false
	}
	userID, err := validator.ValidateToken(cookie.Value)
	if err != nil {
		return 0, false
	}
	return userID, true
}

// UserIDFrom returns the authenticated user id, or zero for anonymous.
func UserIDFrom(ctx context.Context) uint {
	if userID, ok := ctx.Value(UserIDKey).(uint); ok {
		return userID
	}
	return 0
}
