package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"praxida/internal/config"
)

// ErrUpstream marks any failure of the remote completion API so callers can
// match it and substitute a local fallback.
var ErrUpstream = errors.New("upstream completion failed")

// NoReplyText is returned when the upstream answered without usable content.
const NoReplyText = "Keine Antwort erhalten."

// chatModel is the slice of the eino model surface the client needs.
type chatModel interface {
	Generate(ctx context.Context, in []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// Client wraps a chat-completion model behind a single Complete call.
type Client struct {
	model chatModel
}

// New builds a Client from configuration. The API key must be set; callers
// without a credential are expected to skip the gateway entirely.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	if !cfg.LLMConfigured() {
		return nil, errors.New("api key is required")
	}
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
		APIKey:  cfg.OpenAIAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("init chat model: %w", err)
	}
	return &Client{model: cm}, nil
}

// Complete performs exactly one completion call with a system and a user
// message. Remote failures are reported as ErrUpstream; an empty answer is
// normalized to NoReplyText instead of an error.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string, opts ...model.Option) (string, error) {
	messages := []*schema.Message{
		{Role: schema.System, Content: systemPrompt},
		{Role: schema.User, Content: userPrompt},
	}
	resp, err := c.model.Generate(ctx, messages, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp == nil || resp.Content == "" {
		return NoReplyText, nil
	}
	return resp.Content, nil
}
