// Package pdf renders the markdown files produced by the notebook
// exporters (story and deck output) into printable PDFs.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

// Orientation selects the page layout of the rendered PDF.
type Orientation string

const (
	// Portrait suits the long-form story output.
	Portrait Orientation = "P"
	// Landscape gives deck cards more horizontal room.
	Landscape Orientation = "L"
)

// ConvertMarkdownToPDF renders a markdown file into a PDF next to it,
// replacing the .md extension with .pdf, and returns the absolute path
// of the generated file.
func ConvertMarkdownToPDF(markdownPath string, orientation Orientation) (string, error) {
	if filepath.Ext(markdownPath) != ".md" {
		return "", fmt.Errorf("not a markdown file: %s", markdownPath)
	}

	contents, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	renderer := mdtopdf.NewPdfRenderer(string(orientation), "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(contents); err != nil {
		return "", fmt.Errorf("renderer.Process(%s) > %w", markdownPath, err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}
