package handlers

import (
	"net/http"

	"github.com/farhadzaidi/medassist/internal/apperr"
	"github.com/farhadzaidi/medassist/internal/services"
)

// maxUploadBytes bounds an entire multipart document batch.
const maxUploadBytes = 32 << 20

type DocumentHandler struct {
	DocumentService *services.DocumentService
}

func NewDocumentHandler(ds *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{DocumentService: ds}
}

// Process accepts a multipart batch under the "documents" field plus a
// "language" form value and returns per-file results and errors.
func (h *DocumentHandler) Process(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeAppError(w, apperr.Validation("Invalid multipart request"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	fileHeaders := r.MultipartForm.File["documents"]
	if len(fileHeaders) == 0 {
		writeAppError(w, apperr.Validation("No documents provided"))
		return
	}

	uploads := make([]services.Upload, 0, len(fileHeaders))
	opened := make([]interface{ Close() error }, 0, len(fileHeaders))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, fh := range fileHeaders {
		file, err := fh.Open()
		if err != nil {
			writeAppError(w, apperr.Validation("Could not read uploaded file"))
			return
		}
		opened = append(opened, file)
		uploads = append(uploads, services.Upload{Filename: fh.Filename, Content: file})
	}

	language := r.FormValue("language")
	batch, err := h.DocumentService.ProcessBatch(r.Context(), uploads, language)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, batch)
}
