package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/farhadzaidi/medassist/internal/apperr"
	"github.com/farhadzaidi/medassist/internal/domain"
	"github.com/farhadzaidi/medassist/internal/middleware"
	"github.com/farhadzaidi/medassist/internal/services"
)

type ReportHandler struct {
	ReportService *services.ReportService
}

func NewReportHandler(rs *services.ReportService) *ReportHandler {
	return &ReportHandler{ReportService: rs}
}

func (h *ReportHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Type    string `json:"type"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, err)
		return
	}

	userID := middleware.UserIDFrom(r.Context())
	saved, err := h.ReportService.Save(r.Context(), userID, req.Title, req.Content, req.Type)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Report saved successfully",
		"report": map[string]interface{}{
			"id":         saved.ID,
			"title":      saved.Title,
			"type":       saved.ReportType,
			"created_at": saved.CreatedAt.Format(time.RFC3339),
		},
	})
}

func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFrom(r.Context())
	reports, err := h.ReportService.List(r.Context(), userID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	if reports == nil {
		reports = []domain.SavedReport{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"reports": reports})
}

func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := reportID(r)
	if err != nil {
		writeAppError(w, err)
		return
	}

	userID := middleware.UserIDFrom(r.Context())
	if err := h.ReportService.Delete(r.Context(), id, userID); err != nil {
		writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportHTML renders the stored markdown and returns it as HTML.
func (h *ReportHandler) ExportHTML(w http.ResponseWriter, r *http.Request) {
	id, err := reportID(r)
	if err != nil {
		writeAppError(w, err)
		return
	}

	userID := middleware.UserIDFrom(r.Context())
	html, err := h.ReportService.RenderHTML(r.Context(), id, userID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

func reportID(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.Validation("Invalid report ID")
	}
	return uint(id), nil
}
