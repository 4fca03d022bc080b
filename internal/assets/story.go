package assets

import (
	_ "embed"
	"fmt"
	"io"
	"time"
)

//go:embed templates/story.md.go.tmpl
var fallbackStoryTemplate string

// StoryTemplate is the data structure for rendering a generated story.
type StoryTemplate struct {
	Date       time.Time
	TargetLang string
	NativeLang string
	Words      []string
	Body       string
}

func WriteStory(output io.Writer, templatePath string, templateData StoryTemplate) error {
	tmpl, err := parseTemplateWithFallback(templatePath, fallbackStoryTemplate, "story.md.go.tmpl")
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
