package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/glossa/internal/dictionary"
)

func TestEntryRenderer_Render(t *testing.T) {
	var output bytes.Buffer
	renderer := NewEntryRenderer(&output)

	renderer.Render(dictionary.Entry{
		Word:       "aurora",
		Phonetic:   "/ɔːˈrɔːrə/",
		Definition: "a natural display of light in the sky",
		Examples: []dictionary.Example{
			{Sentence: "The aurora danced over the fjord.", Translation: "极光在峡湾上空舞动。"},
			{Sentence: "We drove north to see the aurora.", Translation: "我们驱车北上去看极光。"},
		},
		ChitChat:   "Named after the Roman goddess of dawn.",
		TargetLang: dictionary.LanguageEnglish,
		NativeLang: dictionary.LanguageChinese,
	})

	rendered := output.String()
	assert.Contains(t, rendered, "aurora")
	assert.Contains(t, rendered, "/ɔːˈrɔːrə/")
	assert.Contains(t, rendered, "a natural display of light in the sky")
	assert.Contains(t, rendered, "1. The aurora danced over the fjord.")
	assert.Contains(t, rendered, "2. We drove north to see the aurora.")
	assert.Contains(t, rendered, "极光在峡湾上空舞动。")
	assert.Contains(t, rendered, "Named after the Roman goddess of dawn.")
}

func TestEntryRenderer_Render_MinimalEntry(t *testing.T) {
	var output bytes.Buffer
	renderer := NewEntryRenderer(&output)

	renderer.Render(dictionary.Entry{
		Word:       "fjord",
		Definition: "a long narrow inlet of the sea between high cliffs",
	})

	rendered := output.String()
	assert.Contains(t, rendered, "fjord")
	assert.NotContains(t, rendered, "Examples")
}
