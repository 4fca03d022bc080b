package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/glossa/internal/audio"
	"github.com/at-ishikawa/glossa/internal/dictionary"
)

// GenerateEntryImage implements the inference.Client interface. Image
// enrichment is best-effort: every failure is absorbed and reported as an
// empty result so that it can never block or fail a lookup.
func (client *Client) GenerateEntryImage(ctx context.Context, word, definition string) string {
	prompt := fmt.Sprintf(
		"A minimalist, high-quality artistic visual representation of the concept: %q (%s). Clean composition, neutral background, cinematic lighting.",
		word, definition)

	requestBody := GenerateContentRequest{
		Contents: []Content{
			{Role: "user", Parts: []Part{{Text: prompt}}},
		},
	}

	responseBody, err := client.generateContent(ctx, client.imageModel, requestBody)
	if err != nil {
		slog.Default().Warn("image generation skipped",
			"word", word,
			"error", err,
		)
		return ""
	}

	inlineData := responseBody.InlineData()
	if inlineData == nil {
		return ""
	}
	return fmt.Sprintf("data:%s;base64,%s", inlineData.MimeType, inlineData.Data)
}

// SynthesizeSpeech implements the inference.Client interface. It returns the
// raw PCM bytes of the synthesized clip, or nil when the request failed or the
// response carried no audio payload.
func (client *Client) SynthesizeSpeech(ctx context.Context, text string, lang dictionary.Language) []byte {
	voice, ok := client.voices[lang]
	if !ok {
		voice = client.defaultVoice
	}

	requestBody := GenerateContentRequest{
		Contents: []Content{
			{Parts: []Part{{Text: text}}},
		},
		GenerationConfig: &GenerationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &SpeechConfig{
				VoiceConfig: VoiceConfig{
					PrebuiltVoiceConfig: PrebuiltVoiceConfig{VoiceName: voice},
				},
			},
		},
	}

	responseBody, err := client.generateContent(ctx, client.speechModel, requestBody)
	if err != nil {
		slog.Default().Warn("speech synthesis failed",
			"lang", lang,
			"error", err,
		)
		return nil
	}

	inlineData := responseBody.InlineData()
	if inlineData == nil {
		return nil
	}
	decoded, err := audio.DecodeBase64(inlineData.Data)
	if err != nil {
		slog.Default().Warn("speech payload is not valid base64",
			"lang", lang,
			"error", err,
		)
		return nil
	}
	return decoded
}
