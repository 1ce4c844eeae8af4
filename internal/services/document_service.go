package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/farhadzaidi/medassist/internal/apperr"
	"github.com/farhadzaidi/medassist/internal/services/ai"
	"github.com/farhadzaidi/medassist/internal/services/ocr"
)

var allowedExtensions = []string{".pdf", ".png", ".jpg", ".jpeg"}

// Upload is one file from a multipart request, decoupled from net/http.
type Upload struct {
	Filename string
	Content  io.Reader
}

// BatchResult maps filenames to their analysis markdown or to a per-file
// error message. Every uploaded file lands in exactly one of the two maps.
type BatchResult struct {
	Results map[string]string `json:"results"`
	Errors  map[string]string `json:"errors"`
}

// DocumentService runs the per-file pipeline: allow-list check, temp-file
// staging, rasterization for PDFs, OCR, then provider analysis. External
// failures are captured per file and never abort the batch.
type DocumentService struct {
	engine     ocr.Engine
	rasterizer ocr.Rasterizer
	provider   ai.CompletionProvider
	uploadDir  string
	logger     Logger
}

func NewDocumentService(engine ocr.Engine, rasterizer ocr.Rasterizer, provider ai.CompletionProvider, uploadDir string, logger Logger) *DocumentService {
	if uploadDir == "" {
		uploadDir = os.TempDir()
	}
	return &DocumentService{
		engine:     engine,
		rasterizer: rasterizer,
		provider:   provider,
		uploadDir:  uploadDir,
		logger:     logger,
	}
}

// ProcessBatch handles a set of uploads with a target language for the
// analysis output. An empty batch is a validation error.
func (s *DocumentService) ProcessBatch(ctx context.Context, uploads []Upload, language string) (*BatchResult, error) {
	if len(uploads) == 0 {
		return nil, apperr.Validation("No documents provided")
	}
	if language == "" {
		language = "en"
	}

	batch := &BatchResult{
		Results: make(map[string]string),
		Errors:  make(map[string]string),
	}

	for _, upload := range uploads {
		filename := filepath.Base(upload.Filename)
		if filename == "." || filename == "" {
			batch.Errors[upload.Filename] = "Invalid filename"
			continue
		}

		if !extensionAllowed(filename) {
			batch.Errors[filename] = "File type not allowed"
			continue
		}

		analysis, err := s.processOne(ctx, filename, upload.Content, language)
		if err != nil {
			s.logger.Warn("document processing failed", "filename", filename, "error", err)
			batch.Errors[filename] = err.Error()
			continue
		}
		batch.Results[filename] = analysis
	}

	return batch, nil
}

// processOne stages the upload in a temp file, extracts its text, and asks
// the provider for an analysis. The temp file is removed no matter what.
func (s *DocumentService) processOne(ctx context.Context, filename string, content io.Reader, language string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	tmp, err := os.CreateTemp(s.uploadDir, "upload-*"+ext)
	if err != nil {
		return "", fmt.Errorf("could not stage upload")
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("could not read upload")
	}
	tmp.Close()

	var text string
	if ext == ".pdf" {
		text, err = s.extractFromPDF(ctx, tmpPath)
	} else {
		text, err = s.engine.ExtractText(ctx, tmpPath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to extract text from document")
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("failed to extract text from document")
	}

	prompt := fmt.Sprintf(documentAnalysisPrompt, language, text)
	analysis, err := s.provider.Complete(ctx, []ai.Message{{Role: ai.RoleUser, Content: prompt}})
	if err != nil {
		s.logger.Error("document analysis failed", "filename", filename, "error", err)
		return "", fmt.Errorf("failed to analyze document")
	}
	return analysis, nil
}

// extractFromPDF renders each page to an image, OCRs the pages in order,
// and concatenates whatever text came back.
func (s *DocumentService) extractFromPDF(ctx context.Context, pdfPath string) (string, error) {
	pageDir, err := os.MkdirTemp(s.uploadDir, "pages-")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(pageDir)

	pages, err := s.rasterizer.Rasterize(ctx, pdfPath, pageDir)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, page := range pages {
		pageText, err := s.engine.ExtractText(ctx, page)
		if err != nil {
			s.logger.Warn("page OCR failed", "page", filepath.Base(page), "error", err)
			continue
		}
		if pageText != "" {
			b.WriteString(pageText)
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String()), nil
}

func extensionAllowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return lo.Contains(allowedExtensions, ext)
}
