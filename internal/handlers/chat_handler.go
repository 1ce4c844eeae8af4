package handlers

import (
	"net/http"

	"github.com/farhadzaidi/medassist/internal/domain"
	"github.com/farhadzaidi/medassist/internal/middleware"
	"github.com/farhadzaidi/medassist/internal/services"
)

type ChatHandler struct {
	ChatService *services.ChatService
}

func NewChatHandler(cs *services.ChatService) *ChatHandler {
	return &ChatHandler{ChatService: cs}
}

// SendMessage handles one chat exchange. Anonymous callers are allowed; the
// optional-auth middleware leaves the user id at zero for them.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message   string `json:"message"`
		SessionID string `json:"session_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, err)
		return
	}

	userID := middleware.UserIDFrom(r.Context())
	reply, err := h.ChatService.SendMessage(r.Context(), userID, req.SessionID, req.Message)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (h *ChatHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFrom(r.Context())
	entries, err := h.ChatService.History(r.Context(), userID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	if entries == nil {
		entries = []domain.ChatHistory{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *ChatHandler) SaveMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
		IsUser  bool   `json:"is_user"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, err)
		return
	}

	userID := middleware.UserIDFrom(r.Context())
	entry, err := h.ChatService.SaveMessage(r.Context(), userID, req.Message, req.IsUser)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *ChatHandler) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFrom(r.Context())
	deleted, err := h.ChatService.ClearHistory(r.Context(), userID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Chat history deleted",
		"deleted": deleted,
	})
}
