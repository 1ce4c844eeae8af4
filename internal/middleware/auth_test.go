package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticValidator struct {
	userID uint
	err    error
}

func (v staticValidator) ValidateToken(token string) (uint, error) {
	return v.userID, v.err
}

func echoUserID(t *testing.T, got *uint) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = UserIDFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuthWithoutCookie(t *testing.T) {
	var seen uint
	handler := RequireAuth(staticValidator{userID: 7})(echoUserID(t, &seen))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if seen != 0 {
		t.Error("handler must not run for unauthenticated requests")
	}
}

func TestRequireAuthWithInvalidToken(t *testing.T) {
	var seen uint
	handler := RequireAuth(staticValidator{err: errors.New("bad signature")})(echoUserID(t, &seen))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "tampered"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthAttachesUserID(t *testing.T) {
	var seen uint
	handler := RequireAuth(staticValidator{userID: 7})(echoUserID(t, &seen))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "good"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if seen != 7 {
		t.Errorf("user id = %d, want 7", seen)
	}
}

func TestOptionalAuthLetsAnonymousThrough(t *testing.T) {
	var seen uint
	handler := OptionalAuth(staticValidator{userID: 7})(echoUserID(t, &seen))

	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if seen != 0 {
		t.Errorf("anonymous request carried user id %d", seen)
	}
}

func TestOptionalAuthAttachesIdentityWhenPresent(t *testing.T) {
	var seen uint
	handler := OptionalAuth(staticValidator{userID: 7})(echoUserID(t, &seen))

	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "good"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seen != 7 {
		t.Errorf("user id = %d, want 7", seen)
	}
}
