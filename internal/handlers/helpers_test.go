package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/farhadzaidi/medassist/internal/apperr"
)

func TestWriteAppErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"validation", apperr.Validation("Message is required"), http.StatusBadRequest, "Message is required"},
		{"auth", apperr.Auth("Invalid email or password"), http.StatusUnauthorized, "Invalid email or password"},
		{"not found", apperr.NotFound("Report not found"), http.StatusNotFound, "Report not found"},
		{"conflict", apperr.Conflict("Email already registered"), http.StatusConflict, "Email already registered"},
		{"dependency", apperr.Dependency("Assistant is unavailable", errors.New("timeout")), http.StatusBadGateway, "Assistant is unavailable"},
		{"internal", apperr.Internal("could not save report", errors.New("disk full")), http.StatusInternalServerError, "Something went wrong"},
		{"untyped", errors.New("driver: bad connection"), http.StatusInternalServerError, "Something went wrong"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeAppError(rec, tc.err)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("body is not JSON: %v", err)
			}
			if body["error"] != tc.wantBody {
				t.Errorf("error = %q, want %q", body["error"], tc.wantBody)
			}
		})
	}
}

func TestWriteAppErrorNeverLeaksCause(t *testing.T) {
	rec := httptest.NewRecorder()
	writeAppError(rec, apperr.Internal("could not save report", errors.New("sqlite3: database is locked")))

	if got := rec.Body.String(); got == "" || rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected response %d %q", rec.Code, got)
	}
	if body := rec.Body.String(); strings.Contains(body, "sqlite3") || strings.Contains(body, "locked") {
		t.Errorf("internal cause leaked to client: %s", body)
	}
}
