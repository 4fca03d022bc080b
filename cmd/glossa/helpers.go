package main

import (
	"fmt"
	"path/filepath"

	"github.com/at-ishikawa/glossa/internal/config"
	"github.com/at-ishikawa/glossa/internal/dictionary"
	"github.com/at-ishikawa/glossa/internal/inference/gemini"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newGeminiClient(cfg *config.Config) (*gemini.Client, error) {
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	voices := make(map[dictionary.Language]string, len(cfg.Gemini.Voices))
	for name, voice := range cfg.Gemini.Voices {
		lang, err := dictionary.ParseLanguage(name)
		if err != nil {
			return nil, fmt.Errorf("invalid language in gemini.voices: %w", err)
		}
		voices[lang] = voice
	}

	return gemini.NewClient(gemini.Config{
		APIKey:        cfg.Gemini.APIKey,
		TextModel:     cfg.Gemini.TextModel,
		ImageModel:    cfg.Gemini.ImageModel,
		SpeechModel:   cfg.Gemini.SpeechModel,
		Voices:        voices,
		DefaultVoice:  cfg.Gemini.DefaultVoice,
		RetryAttempts: cfg.Gemini.RetryAttempts,
	}), nil
}

// deckTemplatePath returns the filesystem template override, or empty to use
// the embedded template.
func deckTemplatePath(markdownDirectory string) string {
	if markdownDirectory == "" {
		return ""
	}
	return filepath.Join(markdownDirectory, "deck.md.go.tmpl")
}

func storyTemplatePath(markdownDirectory string) string {
	if markdownDirectory == "" {
		return ""
	}
	return filepath.Join(markdownDirectory, "story.md.go.tmpl")
}

func resolveLanguages(cfg *config.Config, nativeFlag, targetFlag LanguageFlag) (dictionary.Language, dictionary.Language, error) {
	nativeLang := dictionary.Language(nativeFlag)
	targetLang := dictionary.Language(targetFlag)
	if nativeLang == "" {
		lang, err := dictionary.ParseLanguage(cfg.Languages.Native)
		if err != nil {
			return "", "", fmt.Errorf("invalid languages.native: %w", err)
		}
		nativeLang = lang
	}
	if targetLang == "" {
		lang, err := dictionary.ParseLanguage(cfg.Languages.Target)
		if err != nil {
			return "", "", fmt.Errorf("invalid languages.target: %w", err)
		}
		targetLang = lang
	}
	if nativeLang == targetLang {
		return "", "", fmt.Errorf("the native and target languages must differ, got %s for both", nativeLang)
	}
	return nativeLang, targetLang, nil
}
