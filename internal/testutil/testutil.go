// Package testutil provides shared test helpers for creating config files and
// notebook fixtures.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/glossa/internal/dictionary"
	"github.com/at-ishikawa/glossa/internal/notebook"
)

// SetupTestConfig creates a minimal config file and all required directories
// for testing. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	for _, dir := range []string{"notebooks", "output_stories", "output_decks"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, dir), 0755))
	}

	configContent := fmt.Sprintf(`notebook:
  file: %s
outputs:
  story_directory: %s
  deck_directory: %s
`,
		filepath.Join(tmpDir, "notebooks", "notebook.json"),
		filepath.Join(tmpDir, "output_stories"),
		filepath.Join(tmpDir, "output_decks"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// CreateNotebookFile writes a notebook file with the given saved items.
func CreateNotebookFile(t *testing.T, path string, items []notebook.Item) {
	t.Helper()

	contents, err := json.MarshalIndent(items, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, contents, 0644))
}

// NewEntry returns a fully populated dictionary entry fixture.
func NewEntry(word string) dictionary.Entry {
	return dictionary.Entry{
		Word:       word,
		Definition: fmt.Sprintf("the meaning of %s", word),
		Examples: []dictionary.Example{
			{
				Sentence:    fmt.Sprintf("A sentence with %s in it.", word),
				Translation: fmt.Sprintf("一个包含 %s 的句子。", word),
			},
		},
		ChitChat:   fmt.Sprintf("A small aside about %s.", word),
		TargetLang: dictionary.LanguageEnglish,
		NativeLang: dictionary.LanguageChinese,
	}
}
