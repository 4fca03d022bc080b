package notebook

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/at-ishikawa/glossa/internal/assets"
	"github.com/at-ishikawa/glossa/internal/pdf"
)

// StoryWriter renders a generated story into the outputs directory.
type StoryWriter struct {
	templatePath string
}

func NewStoryWriter(templatePath string) *StoryWriter {
	return &StoryWriter{
		templatePath: templatePath,
	}
}

// Write renders the story and returns the written path. When generatePDF is
// true, the markdown file is also converted and the PDF path is returned.
func (writer StoryWriter) Write(
	templateData assets.StoryTemplate,
	outputDirectory string,
	generatePDF bool,
) (string, error) {
	if err := os.MkdirAll(outputDirectory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", outputDirectory, err)
	}

	outputFilename := filepath.Join(
		outputDirectory,
		fmt.Sprintf("story-%s.md", templateData.Date.Format("20060102-150405")),
	)
	output, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", outputFilename, err)
	}
	defer func() {
		_ = output.Close()
	}()

	if templateData.Date.IsZero() {
		templateData.Date = time.Now()
	}
	if err := assets.WriteStory(output, writer.templatePath, templateData); err != nil {
		return "", fmt.Errorf("assets.WriteStory(%s, %s, ) > %w", outputFilename, writer.templatePath, err)
	}

	if generatePDF {
		pdfPath, err := pdf.ConvertMarkdownToPDF(outputFilename, pdf.Portrait)
		if err != nil {
			return "", fmt.Errorf("ConvertMarkdownToPDF(%s) > %w", outputFilename, err)
		}
		return pdfPath, nil
	}
	return outputFilename, nil
}
