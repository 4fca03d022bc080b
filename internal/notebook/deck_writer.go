package notebook

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/glossa/internal/assets"
	"github.com/at-ishikawa/glossa/internal/pdf"
)

// ExportFormat selects the output format of a deck export.
type ExportFormat string

const (
	ExportFormatMarkdown ExportFormat = "markdown"
	ExportFormatYAML     ExportFormat = "yaml"
)

// DeckWriter renders saved entries into an exportable study deck.
type DeckWriter struct {
	templatePath string
}

func NewDeckWriter(templatePath string) *DeckWriter {
	return &DeckWriter{
		templatePath: templatePath,
	}
}

// Export writes the items as a deck file under outputDirectory and returns the
// written path. Markdown decks can additionally be converted to PDF.
func (writer DeckWriter) Export(
	items []Item,
	format ExportFormat,
	outputDirectory string,
	generatePDF bool,
	date time.Time,
) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("the notebook is empty")
	}
	if err := os.MkdirAll(outputDirectory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", outputDirectory, err)
	}

	switch format {
	case ExportFormatYAML:
		return writer.exportYAML(items, outputDirectory, date)
	case ExportFormatMarkdown:
		return writer.exportMarkdown(items, outputDirectory, generatePDF, date)
	default:
		return "", fmt.Errorf("unsupported export format: %s", format)
	}
}

func (writer DeckWriter) exportMarkdown(
	items []Item,
	outputDirectory string,
	generatePDF bool,
	date time.Time,
) (string, error) {
	outputFilename := filepath.Join(outputDirectory, fmt.Sprintf("deck-%s.md", date.Format("20060102")))

	output, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", outputFilename, err)
	}
	defer func() {
		_ = output.Close()
	}()

	templateData := convertToDeckTemplate(items, date)
	if err := assets.WriteDeck(output, writer.templatePath, templateData); err != nil {
		return "", fmt.Errorf("assets.WriteDeck(%s, %s, ) > %w", outputFilename, writer.templatePath, err)
	}

	if generatePDF {
		pdfPath, err := pdf.ConvertMarkdownToPDF(outputFilename, pdf.Landscape)
		if err != nil {
			return "", fmt.Errorf("ConvertMarkdownToPDF(%s) > %w", outputFilename, err)
		}
		return pdfPath, nil
	}
	return outputFilename, nil
}

// deckYAML is the YAML shape of an exported deck.
type deckYAML struct {
	Date  string         `yaml:"date"`
	Cards []deckYAMLCard `yaml:"cards"`
}

type deckYAMLCard struct {
	Word       string            `yaml:"word"`
	Phonetic   string            `yaml:"phonetic,omitempty"`
	Definition string            `yaml:"definition"`
	Examples   []deckYAMLExample `yaml:"examples,omitempty"`
	ChitChat   string            `yaml:"chit_chat,omitempty"`
	TargetLang string            `yaml:"target_lang"`
	NativeLang string            `yaml:"native_lang"`
	SavedAt    int64             `yaml:"saved_at"`
}

type deckYAMLExample struct {
	Sentence    string `yaml:"sentence"`
	Translation string `yaml:"translation"`
}

func (writer DeckWriter) exportYAML(items []Item, outputDirectory string, date time.Time) (string, error) {
	deck := deckYAML{
		Date:  date.Format("2006-01-02"),
		Cards: make([]deckYAMLCard, 0, len(items)),
	}
	for _, item := range items {
		card := deckYAMLCard{
			Word:       item.Word,
			Phonetic:   item.Phonetic,
			Definition: item.Definition,
			ChitChat:   item.ChitChat,
			TargetLang: string(item.TargetLang),
			NativeLang: string(item.NativeLang),
			SavedAt:    item.Date,
		}
		for _, example := range item.Examples {
			card.Examples = append(card.Examples, deckYAMLExample{
				Sentence:    example.Sentence,
				Translation: example.Translation,
			})
		}
		deck.Cards = append(deck.Cards, card)
	}

	contents, err := yaml.Marshal(deck)
	if err != nil {
		return "", fmt.Errorf("yaml.Marshal > %w", err)
	}

	outputFilename := filepath.Join(outputDirectory, fmt.Sprintf("deck-%s.yaml", date.Format("20060102")))
	if err := os.WriteFile(outputFilename, contents, 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", outputFilename, err)
	}
	return outputFilename, nil
}

func convertToDeckTemplate(items []Item, date time.Time) assets.DeckTemplate {
	cards := make([]assets.DeckCard, 0, len(items))
	for _, item := range items {
		card := assets.DeckCard{
			Word:       item.Word,
			Phonetic:   item.Phonetic,
			Definition: item.Definition,
			ChitChat:   item.ChitChat,
			TargetLang: string(item.TargetLang),
			NativeLang: string(item.NativeLang),
		}
		for _, example := range item.Examples {
			card.Examples = append(card.Examples, assets.DeckExample{
				Sentence:    example.Sentence,
				Translation: example.Translation,
			})
		}
		cards = append(cards, card)
	}
	return assets.DeckTemplate{
		Date:  date,
		Cards: cards,
	}
}
