package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/glossa/internal/dictionary"
)

func inlineDataResponse(t *testing.T, w http.ResponseWriter, mimeType, data string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(GenerateContentResponse{
		Candidates: []Candidate{
			{Content: Content{Role: "model", Parts: []Part{
				{InlineData: &InlineData{MimeType: mimeType, Data: data}},
			}}},
		},
	})
	require.NoError(t, err)
}

func TestClient_GenerateEntryImage(t *testing.T) {
	tests := []struct {
		name              string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		want string
	}{
		{
			name: "image payload becomes a data URI",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/models/image-model:generateContent", r.URL.Path)

				var requestBody GenerateContentRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&requestBody))
				require.Len(t, requestBody.Contents, 1)
				assert.Contains(t, requestBody.Contents[0].Parts[0].Text, `"aurora"`)

				inlineDataResponse(t, w, "image/png", "aW1hZ2UtYnl0ZXM=")
			},
			want: "data:image/png;base64,aW1hZ2UtYnl0ZXM=",
		},
		{
			name: "server error is absorbed",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: "",
		},
		{
			name: "response without an image is absorbed",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				textResponse(t, w, "no image for you")
			},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, w, r)
			}, 0)

			got := client.GenerateEntryImage(context.Background(), "aurora", "a natural display of light in the sky")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_SynthesizeSpeech(t *testing.T) {
	pcm := []byte{0x00, 0x40, 0x00, 0xc0}
	encoded := base64.StdEncoding.EncodeToString(pcm)

	tests := []struct {
		name              string
		lang              dictionary.Language
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		want []byte
	}{
		{
			name: "configured voice for the language",
			lang: dictionary.LanguageEnglish,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/models/speech-model:generateContent", r.URL.Path)

				var requestBody GenerateContentRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&requestBody))
				require.NotNil(t, requestBody.GenerationConfig)
				assert.Equal(t, []string{"AUDIO"}, requestBody.GenerationConfig.ResponseModalities)
				require.NotNil(t, requestBody.GenerationConfig.SpeechConfig)
				assert.Equal(t, "Puck", requestBody.GenerationConfig.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName)

				inlineDataResponse(t, w, "audio/pcm", encoded)
			},
			want: pcm,
		},
		{
			name: "default voice for an unmapped language",
			lang: dictionary.LanguageJapanese,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				var requestBody GenerateContentRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&requestBody))
				assert.Equal(t, "Kore", requestBody.GenerationConfig.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName)

				inlineDataResponse(t, w, "audio/pcm", encoded)
			},
			want: pcm,
		},
		{
			name: "server error yields nil",
			lang: dictionary.LanguageEnglish,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			want: nil,
		},
		{
			name: "payload that is not base64 yields nil",
			lang: dictionary.LanguageEnglish,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				inlineDataResponse(t, w, "audio/pcm", "not base64!!!")
			},
			want: nil,
		},
		{
			name: "response without audio yields nil",
			lang: dictionary.LanguageEnglish,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				textResponse(t, w, "silence")
			},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, w, r)
			}, 0)

			got := client.SynthesizeSpeech(context.Background(), "aurora", tt.lang)
			assert.Equal(t, tt.want, got)
		})
	}
}
