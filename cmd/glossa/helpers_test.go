package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/glossa/internal/config"
	"github.com/at-ishikawa/glossa/internal/dictionary"
	"github.com/at-ishikawa/glossa/internal/notebook"
	"github.com/at-ishikawa/glossa/internal/testutil"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-api-key")

	tmpDir := t.TempDir()
	configFile = testutil.SetupTestConfig(t, tmpDir)
	t.Cleanup(func() { configFile = "" })

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-api-key", cfg.Gemini.APIKey)
	assert.NotEmpty(t, cfg.Notebook.File)

	// The generated notebook file is usable by the store.
	testutil.CreateNotebookFile(t, cfg.Notebook.File, []notebook.Item{
		{Entry: testutil.NewEntry("aurora"), ID: "id-1", Date: 1},
	})
	store, err := notebook.Open(cfg.Notebook.File)
	require.NoError(t, err)
	assert.Equal(t, []string{"aurora"}, store.Words())
}

func TestNewGeminiClient_MissingAPIKey(t *testing.T) {
	_, err := newGeminiClient(&config.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestResolveLanguages(t *testing.T) {
	cfg := &config.Config{
		Languages: config.LanguagesConfig{Native: "Chinese", Target: "English"},
	}

	tests := []struct {
		name       string
		nativeFlag LanguageFlag
		targetFlag LanguageFlag

		wantNative      dictionary.Language
		wantTarget      dictionary.Language
		wantErrorString string
	}{
		{
			name:       "defaults from the config",
			wantNative: dictionary.LanguageChinese,
			wantTarget: dictionary.LanguageEnglish,
		},
		{
			name:       "flags override the config",
			nativeFlag: LanguageFlag(dictionary.LanguageJapanese),
			targetFlag: LanguageFlag(dictionary.LanguageKorean),
			wantNative: dictionary.LanguageJapanese,
			wantTarget: dictionary.LanguageKorean,
		},
		{
			name:            "identical languages are rejected",
			nativeFlag:      LanguageFlag(dictionary.LanguageEnglish),
			targetFlag:      LanguageFlag(dictionary.LanguageEnglish),
			wantErrorString: "must differ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nativeLang, targetLang, err := resolveLanguages(cfg, tt.nativeFlag, tt.targetFlag)
			if tt.wantErrorString != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrorString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNative, nativeLang)
			assert.Equal(t, tt.wantTarget, targetLang)
		})
	}
}
