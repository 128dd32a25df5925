package client

import (
	"context"
	"strings"

	"github.com/ressKim-io/idea-arena/internal/domain/service"
)

// ChatGenerator adapts ChatClient to the TextGenerator interface
type ChatGenerator struct {
	client *ChatClient
}

// NewChatGenerator creates a new ChatGenerator
func NewChatGenerator(client *ChatClient) service.TextGenerator {
	return &ChatGenerator{client: client}
}

// Complete sends the request as a system and user message pair and
// returns the first choice's trimmed content
func (g *ChatGenerator) Complete(ctx context.Context, req *service.CompletionRequest) (string, error) {
	chatReq := &ChatRequest{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.System != "" {
		chatReq.Messages = append(chatReq.Messages, ChatMessage{Role: "system", Content: req.System})
	}
	if req.User != "" {
		chatReq.Messages = append(chatReq.Messages, ChatMessage{Role: "user", Content: req.User})
	}
	if req.JSON {
		chatReq.ResponseFormat = &ResponseFormat{Type: "json_object"}
	}

	resp, err := g.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", service.ErrEmptyCompletion
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", service.ErrEmptyCompletion
	}
	return content, nil
}
