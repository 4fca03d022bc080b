package notebook

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/glossa/internal/assets"
)

func TestStoryWriter_Write(t *testing.T) {
	outputDirectory := filepath.Join(t.TempDir(), "stories")
	writer := NewStoryWriter("")

	outputFilename, err := writer.Write(assets.StoryTemplate{
		Date:       time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC),
		TargetLang: "English",
		NativeLang: "Chinese",
		Words:      []string{"aurora", "fjord"},
		Body:       "Under the aurora, the fjord kept its silence.",
	}, outputDirectory, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDirectory, "story-20260831-103000.md"), outputFilename)

	contents, err := os.ReadFile(outputFilename)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "Under the aurora, the fjord kept its silence.")
	assert.Contains(t, string(contents), "aurora, fjord")
}
