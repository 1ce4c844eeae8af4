package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/farhadzaidi/medassist/internal/apperr"
)

// writeJSON is a helper for sending JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError is a helper for sending JSON error responses.
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeAppError translates the error taxonomy to HTTP at the boundary.
// Internal causes are logged here and never reach the client.
func writeAppError(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)

	message := "Something went wrong"
	if e, ok := err.(*apperr.Error); ok {
		message = e.Message
		if e.Cause != nil {
			log.Printf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
		}
	} else {
		log.Printf("[UNTYPED] %v", err)
	}

	switch kind {
	case apperr.KindValidation:
		writeError(w, message, http.StatusBadRequest)
	case apperr.KindAuth:
		writeError(w, message, http.StatusUnauthorized)
	case apperr.KindNotFound:
		writeError(w, message, http.StatusNotFound)
	case apperr.KindConflict:
		writeError(w, message, http.StatusConflict)
	case apperr.KindDependency:
		writeError(w, message, http.StatusBadGateway)
	default:
		writeError(w, "Something went wrong", http.StatusInternalServerError)
	}
}

// decodeJSON parses a request body into dst, rejecting malformed payloads.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("Invalid request body")
	}
	return nil
}
