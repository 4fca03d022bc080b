// Package gemini implements the inference client against the Gemini REST API.
package gemini

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"github.com/at-ishikawa/glossa/internal/dictionary"
	"github.com/at-ishikawa/glossa/internal/inference"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Config carries the models and voices the client talks to.
type Config struct {
	APIKey        string
	TextModel     string
	ImageModel    string
	SpeechModel   string
	Voices        map[dictionary.Language]string
	DefaultVoice  string
	RetryAttempts uint
}

type Client struct {
	httpClient       *resty.Client
	textModel        string
	imageModel       string
	speechModel      string
	voices           map[dictionary.Language]string
	defaultVoice     string
	maxRetryAttempts uint
}

var _ inference.Client = (*Client)(nil)

func NewClient(cfg Config) *Client {
	client := resty.New()
	client.SetBaseURL(defaultBaseURL)
	client.SetHeader("x-goog-api-key", cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		textModel:        cfg.TextModel,
		imageModel:       cfg.ImageModel,
		speechModel:      cfg.SpeechModel,
		voices:           cfg.Voices,
		defaultVoice:     cfg.DefaultVoice,
		maxRetryAttempts: cfg.RetryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (client *Client) SetBaseURL(baseURL string) {
	client.httpClient.SetBaseURL(baseURL)
}

type GenerateContentRequest struct {
	Contents          []Content         `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type GenerationConfig struct {
	ResponseMimeType   string        `json:"responseMimeType,omitempty"`
	ResponseSchema     *Schema       `json:"responseSchema,omitempty"`
	ResponseModalities []string      `json:"responseModalities,omitempty"`
	SpeechConfig       *SpeechConfig `json:"speechConfig,omitempty"`
	Temperature        float32       `json:"temperature,omitempty"`
}

// Schema is the subset of the OpenAPI schema object the structured lookup needs.
type Schema struct {
	Type       string             `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

type SpeechConfig struct {
	VoiceConfig VoiceConfig `json:"voiceConfig"`
}

type VoiceConfig struct {
	PrebuiltVoiceConfig PrebuiltVoiceConfig `json:"prebuiltVoiceConfig"`
}

type PrebuiltVoiceConfig struct {
	VoiceName string `json:"voiceName"`
}

type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// Text returns the first text part of the first candidate, or an empty string.
func (r GenerateContentResponse) Text() string {
	for _, candidate := range r.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}

// InlineData returns the first inline payload of the first candidate, or nil.
func (r GenerateContentResponse) InlineData() *InlineData {
	for _, candidate := range r.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil {
				return part.InlineData
			}
		}
	}
	return nil
}

// generateContent performs a single generateContent call against a model.
func (client *Client) generateContent(
	ctx context.Context,
	model string,
	requestBody GenerateContentRequest,
) (*GenerateContentResponse, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&GenerateContentResponse{}).
		Post(fmt.Sprintf("/models/%s:generateContent", model))
	if err != nil {
		return nil, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*GenerateContentResponse)
	if responseBody == nil {
		return nil, fmt.Errorf("empty response body: %s", response.String())
	}
	return responseBody, nil
}
