package assets

import (
	_ "embed"
	"fmt"
	"io"
	"time"
)

//go:embed templates/deck.md.go.tmpl
var fallbackDeckTemplate string

// DeckTemplate is the data structure for rendering an exported vocabulary deck.
type DeckTemplate struct {
	Date  time.Time
	Cards []DeckCard
}

// DeckCard is one saved entry prepared for template rendering.
type DeckCard struct {
	Word       string
	Phonetic   string
	Definition string
	Examples   []DeckExample
	ChitChat   string
	TargetLang string
	NativeLang string
}

// DeckExample is one usage sentence with its translation.
type DeckExample struct {
	Sentence    string
	Translation string
}

func WriteDeck(output io.Writer, templatePath string, templateData DeckTemplate) error {
	tmpl, err := parseTemplateWithFallback(templatePath, fallbackDeckTemplate, "deck.md.go.tmpl")
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
