// ABOUTME: OpenAI-backed coach client for chat completions
// ABOUTME: Single unary call per question: no retry, no streaming, timeout via context
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultChatModel is the default model for coach replies.
const DefaultChatModel = "gpt-3.5-turbo"

// CoachClient wraps the OpenAI API for coach conversations. A failed
// call is surfaced to the caller as-is; converting it into a one-shot
// human advisory is the boundary's job, not this client's.
type CoachClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewCoachClient creates a coach client. model and timeout fall back to
// defaults when zero-valued.
func NewCoachClient(apiKey, model string, timeout time.Duration) (*CoachClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = DefaultChatModel
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &CoachClient{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}, nil
}

// Ask sends one system-context plus question pair and returns the
// coach's reply text.
func (c *CoachClient) Ask(ctx context.Context, systemContext, question string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemContext,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: question,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
