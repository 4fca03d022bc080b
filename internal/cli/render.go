package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/at-ishikawa/glossa/internal/dictionary"
)

// EntryRenderer prints a dictionary entry in a readable terminal layout.
type EntryRenderer struct {
	writer io.Writer
	bold   *color.Color
	italic *color.Color
}

func NewEntryRenderer(writer io.Writer) *EntryRenderer {
	return &EntryRenderer{
		writer: writer,
		bold:   color.New(color.Bold),
		italic: color.New(color.Italic),
	}
}

func (renderer EntryRenderer) Render(entry dictionary.Entry) {
	_, _ = renderer.bold.Fprintln(renderer.writer, entry.Word)
	if entry.Phonetic != "" {
		_, _ = renderer.italic.Fprintln(renderer.writer, entry.Phonetic)
	}
	_, _ = fmt.Fprintln(renderer.writer)
	_, _ = fmt.Fprintln(renderer.writer, entry.Definition)

	if len(entry.Examples) > 0 {
		_, _ = fmt.Fprintln(renderer.writer)
		_, _ = renderer.bold.Fprintln(renderer.writer, "Examples")
		for i, example := range entry.Examples {
			_, _ = fmt.Fprintf(renderer.writer, "%d. %s\n", i+1, example.Sentence)
			_, _ = renderer.italic.Fprintf(renderer.writer, "   %s\n", example.Translation)
		}
	}

	if entry.ChitChat != "" {
		_, _ = fmt.Fprintln(renderer.writer)
		_, _ = renderer.italic.Fprintln(renderer.writer, entry.ChitChat)
	}
	if entry.ImageURL != "" {
		_, _ = fmt.Fprintln(renderer.writer)
		_, _ = fmt.Fprintf(renderer.writer, "Illustration: %d bytes of image data available\n", len(entry.ImageURL))
	}
}
