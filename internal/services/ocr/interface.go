// Package ocr wraps the external text-extraction collaborators used by the
// document pipeline: a Tesseract-backed OCR engine and a poppler-backed PDF
// rasterizer. Both are capability interfaces so the pipeline can be tested
// without the native tools installed.
package ocr

import "context"

// Engine extracts text from a single image file.
type Engine interface {
	ExtractText(ctx context.Context, imagePath string) (string, error)
}

// Rasterizer renders a PDF into one image file per page, returning the image
// paths in page order.
type Rasterizer interface {
	Rasterize(ctx context.Context, pdfPath, outputDir string) ([]string, error)
}
