package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/avast/retry-go"

	"github.com/at-ishikawa/glossa/internal/dictionary"
	"github.com/at-ishikawa/glossa/internal/inference"
)

// lookupResponseSchema constrains the structured lookup to the entry shape.
var lookupResponseSchema = &Schema{
	Type: "OBJECT",
	Properties: map[string]*Schema{
		"word":       {Type: "STRING"},
		"phonetic":   {Type: "STRING"},
		"definition": {Type: "STRING"},
		"examples": {
			Type: "ARRAY",
			Items: &Schema{
				Type: "OBJECT",
				Properties: map[string]*Schema{
					"sentence":    {Type: "STRING"},
					"translation": {Type: "STRING"},
				},
				Required: []string{"sentence", "translation"},
			},
		},
		"chitChat": {Type: "STRING"},
	},
	Required: []string{"word", "definition", "examples", "chitChat"},
}

var codeFencePattern = regexp.MustCompile("```json\n?|```")

// cleanJSONString strips markdown code fences some backends wrap around JSON.
func cleanJSONString(str string) string {
	return strings.TrimSpace(codeFencePattern.ReplaceAllString(str, ""))
}

// LookupWord implements the inference.Client interface.
func (client *Client) LookupWord(
	ctx context.Context,
	query string,
	nativeLang, targetLang dictionary.Language,
) (dictionary.Entry, error) {
	var result dictionary.Entry
	if err := retry.Do(
		func() error {
			entry, err := client.lookupWord(ctx, query, nativeLang, targetLang)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = entry
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return dictionary.Entry{}, err
	}
	return result, nil
}

func (client *Client) lookupWord(
	ctx context.Context,
	query string,
	nativeLang, targetLang dictionary.Language,
) (dictionary.Entry, error) {
	prompt := fmt.Sprintf(`Translate and explain the word or phrase %q from %s to %s.
Return a JSON object only.
If the target language is English, include the IPA phonetic symbols in the "phonetic" field.
Provide one definition, two natural examples with translations, and a poetic, minimalist explanation in "chitChat".`,
		query, targetLang, nativeLang)

	requestBody := GenerateContentRequest{
		Contents: []Content{
			{Role: "user", Parts: []Part{{Text: prompt}}},
		},
		GenerationConfig: &GenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   lookupResponseSchema,
		},
	}

	responseBody, err := client.generateContent(ctx, client.textModel, requestBody)
	if err != nil {
		return dictionary.Entry{}, fmt.Errorf("generateContent > %w", err)
	}

	content := cleanJSONString(responseBody.Text())
	slog.Default().Debug("lookup response content",
		"query", query,
		"content", content,
	)

	entry, err := parseLookupPayload(content)
	if err != nil {
		return dictionary.Entry{}, err
	}

	// The language pair comes from the request, not from whatever the backend
	// echoes back.
	entry.NativeLang = nativeLang
	entry.TargetLang = targetLang
	return entry, nil
}

// lookupPayload mirrors dictionary.Entry with pointer fields so that a missing
// required field is distinguishable from an empty one.
type lookupPayload struct {
	Word       *string              `json:"word"`
	Phonetic   *string              `json:"phonetic"`
	Definition *string              `json:"definition"`
	Examples   []dictionary.Example `json:"examples"`
	ChitChat   *string              `json:"chitChat"`
}

func parseLookupPayload(content string) (dictionary.Entry, error) {
	var payload lookupPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return dictionary.Entry{}, &inference.MalformedResponseError{Payload: content, Err: err}
	}

	var missing []string
	if payload.Word == nil {
		missing = append(missing, "word")
	}
	if payload.Definition == nil {
		missing = append(missing, "definition")
	}
	if payload.Examples == nil {
		missing = append(missing, "examples")
	}
	if payload.ChitChat == nil {
		missing = append(missing, "chitChat")
	}
	if len(missing) > 0 {
		return dictionary.Entry{}, &inference.MalformedResponseError{
			Payload: content,
			Err:     fmt.Errorf("missing required fields: %s", strings.Join(missing, ", ")),
		}
	}

	entry := dictionary.Entry{
		Word:       *payload.Word,
		Definition: *payload.Definition,
		Examples:   payload.Examples,
		ChitChat:   *payload.ChitChat,
	}
	if payload.Phonetic != nil {
		entry.Phonetic = *payload.Phonetic
	}
	return entry, nil
}
