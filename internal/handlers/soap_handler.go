package handlers

import (
	"net/http"

	"github.com/farhadzaidi/medassist/internal/services"
)

type SoapHandler struct {
	InterviewService *services.InterviewService
}

func NewSoapHandler(is *services.InterviewService) *SoapHandler {
	return &SoapHandler{InterviewService: is}
}

func (h *SoapHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string `json:"description"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, err)
		return
	}

	sessionID, question, err := h.InterviewService.Start(r.Context(), req.Description)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"session_id": sessionID,
		"question":   question,
	})
}

func (h *SoapHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"session_id"`
		Answer    string `json:"answer"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, err)
		return
	}

	question, err := h.InterviewService.Answer(r.Context(), req.SessionID, req.Answer)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"question": question})
}

func (h *SoapHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Exchanges []services.Exchange `json:"exchanges"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, err)
		return
	}

	notes, err := h.InterviewService.GenerateNotes(r.Context(), req.Exchanges)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"soap_notes": notes})
}
