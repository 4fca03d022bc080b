package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/glossa/internal/notebook"
)

func TestLanguageFlag(t *testing.T) {
	tests := []struct {
		name  string
		value string

		want            string
		wantErrorString string
	}{
		{name: "exact match", value: "English", want: "English"},
		{name: "case insensitive", value: "japanese", want: "Japanese"},
		{name: "unsupported language", value: "French", wantErrorString: `invalid value "French"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flag LanguageFlag
			err := flag.Set(tt.value)
			if tt.wantErrorString != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrorString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, flag.String())
		})
	}
	assert.Equal(t, "Language", new(LanguageFlag).Type())
}

func TestFormatFlag(t *testing.T) {
	var flag FormatFlag
	require.NoError(t, flag.Set("yaml"))
	assert.Equal(t, string(notebook.ExportFormatYAML), flag.String())

	require.NoError(t, flag.Set("markdown"))
	assert.Equal(t, string(notebook.ExportFormatMarkdown), flag.String())

	err := flag.Set("csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid value "csv"`)
}

func TestDeckTemplatePath(t *testing.T) {
	assert.Empty(t, deckTemplatePath(""))
	assert.Equal(t, "templates/deck.md.go.tmpl", deckTemplatePath("templates"))
	assert.Empty(t, storyTemplatePath(""))
	assert.Equal(t, "templates/story.md.go.tmpl", storyTemplatePath("templates"))
}
