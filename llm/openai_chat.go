// ABOUTME: Chat Completions adapter built on openai-go with a configurable base URL.
// ABOUTME: Serves OpenAI-compatible providers such as Groq; sends temperature and max_tokens from the model table.

package llm

import (
	"context"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ChatAdapter implements ProviderAdapter using /chat/completions. Unlike the
// Responses adapter it accepts any base URL, which is what
// OpenAI-compatible providers expose.
type ChatAdapter struct {
	name   string
	client openai.Client
}

// NewChatAdapter creates a Chat Completions adapter registered as name.
// An empty baseURL uses the SDK default.
func NewChatAdapter(name, apiKey, baseURL string, opts ...option.RequestOption) *ChatAdapter {
	return &ChatAdapter{
		name:   name,
		client: openai.NewClient(clientOptions(apiKey, baseURL, opts)...),
	}
}

// Name returns the provider name.
func (a *ChatAdapter) Name() string { return a.name }

// Close releases resources held by the adapter.
func (a *ChatAdapter) Close() error { return nil }

// Complete sends one chat completion request.
func (a *ChatAdapter) Complete(ctx context.Context, req Request) (*Response, error) {
	resp, err := a.client.Chat.Completions.New(ctx, buildChatParams(req))
	if err != nil {
		return nil, translateError(a.name, err)
	}

	result := &Response{
		ID:       resp.ID,
		Model:    resp.Model,
		Provider: a.name,
		Usage: Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
	}
	if len(resp.Choices) > 0 {
		result.Text = strings.TrimSpace(resp.Choices[0].Message.Content)
	}
	return result, nil
}

// buildChatParams converts a unified Request to ChatCompletionNewParams.
func buildChatParams(req Request) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model: req.Model,
	}

	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	if req.MaxTokens != nil {
		params.MaxTokens = openai.Int(int64(*req.MaxTokens))
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, msg := range req.Messages {
		switch msg.Role {
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(msg.Content))
		case RoleUser:
			messages = append(messages, openai.UserMessage(msg.Content))
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		}
	}
	params.Messages = messages

	return params
}

// Compile-time interface assertion.
var _ ProviderAdapter = (*ChatAdapter)(nil)
