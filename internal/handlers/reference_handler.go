package handlers

import (
	"net/http"

	"github.com/farhadzaidi/medassist/internal/refdata"
)

// ReferenceHandler serves the static reference tables and the matching
// endpoints built on them.
type ReferenceHandler struct{}

func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

func (h *ReferenceHandler) GetSymptoms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, refdata.Symptoms)
}

func (h *ReferenceHandler) GetMedications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, refdata.Medications)
}

func (h *ReferenceHandler) CheckConditions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Symptoms []string `json:"symptoms"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, err)
		return
	}

	matches := refdata.MatchConditions(req.Symptoms)
	if matches == nil {
		matches = []refdata.Condition{}
	}
	writeJSON(w, http.StatusOK, matches)
}

func (h *ReferenceHandler) CheckInteractions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Medications []string `json:"medications"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, err)
		return
	}

	matches := refdata.MatchInteractions(req.Medications)
	if matches == nil {
		matches = []refdata.Interaction{}
	}
	writeJSON(w, http.StatusOK, matches)
}
