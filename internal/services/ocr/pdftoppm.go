package ocr

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"
)

// PopplerRasterizer shells out to poppler's pdftoppm, one PNG per page.
type PopplerRasterizer struct {
	// Binary is the pdftoppm executable, resolved via PATH when not absolute.
	Binary string
}

func NewPopplerRasterizer(binary string) *PopplerRasterizer {
	if binary == "" {
		binary = "pdftoppm"
	}
	return &PopplerRasterizer{Binary: binary}
}

func (r *PopplerRasterizer) Rasterize(ctx context.Context, pdfPath, outputDir string) ([]string, error) {
	prefix := filepath.Join(outputDir, "page")

	cmd := exec.CommandContext(ctx, r.Binary, "-png", "-r", "200", pdfPath, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %w: %s", err, out)
	}

	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no pages for %s", filepath.Base(pdfPath))
	}

	// pdftoppm zero-pads page numbers, so lexical order is page order.
	sort.Strings(pages)
	return pages, nil
}
