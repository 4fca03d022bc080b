package gemini

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/glossa/internal/dictionary"
	"github.com/at-ishikawa/glossa/internal/inference"
)

// chatSession keeps one conversational thread about a single entry. The full
// history is replayed on every turn, so prior turns are retained for the
// session's lifetime. A failed turn leaves the history unchanged and the
// thread usable for the next attempt.
type chatSession struct {
	client            *Client
	systemInstruction Content
	history           []Content
}

// NewChatSession implements the inference.Client interface.
func (client *Client) NewChatSession(entry dictionary.Entry) inference.ChatSession {
	return &chatSession{
		client: client,
		systemInstruction: Content{
			Parts: []Part{{
				Text: fmt.Sprintf("You are a sophisticated linguistic curator. Explain the word %q and its nuances elegantly.", entry.Word),
			}},
		},
	}
}

func (session *chatSession) SendMessage(ctx context.Context, text string) (string, error) {
	userTurn := Content{Role: "user", Parts: []Part{{Text: text}}}

	requestBody := GenerateContentRequest{
		Contents:          append(append([]Content{}, session.history...), userTurn),
		SystemInstruction: &session.systemInstruction,
	}

	responseBody, err := session.client.generateContent(ctx, session.client.textModel, requestBody)
	if err != nil {
		return "", fmt.Errorf("generateContent > %w", err)
	}

	reply := responseBody.Text()
	session.history = append(session.history, userTurn, Content{
		Role:  "model",
		Parts: []Part{{Text: reply}},
	})
	return reply, nil
}
