package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"

	"github.com/at-ishikawa/glossa/internal/dictionary"
)

// CreateStory implements the inference.Client interface.
func (client *Client) CreateStory(
	ctx context.Context,
	words []string,
	nativeLang, targetLang dictionary.Language,
) (string, error) {
	var result string
	if err := retry.Do(
		func() error {
			story, err := client.createStory(ctx, words, nativeLang, targetLang)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = story
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return "", err
	}
	return result, nil
}

func (client *Client) createStory(
	ctx context.Context,
	words []string,
	nativeLang, targetLang dictionary.Language,
) (string, error) {
	prompt := fmt.Sprintf(`Write an elegant, poetic short story using these words: %s.
Write in %s with a full %s translation following it.`,
		strings.Join(words, ", "), targetLang, nativeLang)

	requestBody := GenerateContentRequest{
		Contents: []Content{
			{Role: "user", Parts: []Part{{Text: prompt}}},
		},
	}

	responseBody, err := client.generateContent(ctx, client.textModel, requestBody)
	if err != nil {
		return "", fmt.Errorf("generateContent > %w", err)
	}
	return responseBody.Text(), nil
}
