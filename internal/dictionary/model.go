package dictionary

import (
	"fmt"
	"strings"
)

// Language is one of the languages the curator can explain or explain in.
type Language string

const (
	LanguageChinese  Language = "Chinese"
	LanguageEnglish  Language = "English"
	LanguageJapanese Language = "Japanese"
	LanguageKorean   Language = "Korean"
)

// AllLanguages lists every supported language in display order.
var AllLanguages = []Language{
	LanguageChinese,
	LanguageEnglish,
	LanguageJapanese,
	LanguageKorean,
}

// ParseLanguage converts a user-supplied string into a Language.
// Matching is case-insensitive.
func ParseLanguage(value string) (Language, error) {
	for _, lang := range AllLanguages {
		if strings.EqualFold(value, string(lang)) {
			return lang, nil
		}
	}
	return "", fmt.Errorf("unsupported language: %s", value)
}

// Example is a usage sentence in the target language with its translation.
type Example struct {
	Sentence    string `json:"sentence"`
	Translation string `json:"translation"`
}

// Entry is the structured result of a single word or phrase lookup.
// Word is the canonical form returned by the backend and may differ from
// the query. ImageURL stays empty until image enrichment completes.
type Entry struct {
	Word       string    `json:"word"`
	Phonetic   string    `json:"phonetic,omitempty"`
	Definition string    `json:"definition"`
	Examples   []Example `json:"examples"`
	ChitChat   string    `json:"chitChat"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	TargetLang Language  `json:"targetLang"`
	NativeLang Language  `json:"nativeLang"`
}
