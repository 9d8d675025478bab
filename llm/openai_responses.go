// ABOUTME: OpenAI Responses API adapter built on openai-go for reasoning models such as gpt-5-mini.
// ABOUTME: Sends instructions, input, max_output_tokens, reasoning effort, and text verbosity from the model table.

package llm

import (
	"context"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

// ResponsesAdapter implements ProviderAdapter for the OpenAI Responses API.
type ResponsesAdapter struct {
	name   string
	client openai.Client
}

// NewResponsesAdapter creates a Responses API adapter. An empty baseURL uses
// the SDK default.
func NewResponsesAdapter(apiKey, baseURL string, opts ...option.RequestOption) *ResponsesAdapter {
	return &ResponsesAdapter{
		name:   ProviderOpenAI,
		client: openai.NewClient(clientOptions(apiKey, baseURL, opts)...),
	}
}

// Name returns the provider name.
func (a *ResponsesAdapter) Name() string { return a.name }

// Close releases resources held by the adapter.
func (a *ResponsesAdapter) Close() error { return nil }

// Complete sends one Responses API request.
func (a *ResponsesAdapter) Complete(ctx context.Context, req Request) (*Response, error) {
	params, reqOpts := buildResponsesParams(req)

	resp, err := a.client.Responses.New(ctx, params, reqOpts...)
	if err != nil {
		return nil, translateError(a.name, err)
	}

	return &Response{
		ID:       resp.ID,
		Model:    string(resp.Model),
		Provider: a.name,
		Text:     strings.TrimSpace(resp.OutputText()),
		Usage: Usage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
		},
	}, nil
}

// buildResponsesParams converts a unified Request to ResponseNewParams.
// System messages become instructions; the other turns are joined into a
// single text input. Effort and verbosity are set as raw JSON fields so the
// request shape stays exactly what the model table says.
func buildResponsesParams(req Request) (responses.ResponseNewParams, []option.RequestOption) {
	system, rest := SplitSystem(req.Messages)

	turns := make([]string, 0, len(rest))
	for _, msg := range rest {
		turns = append(turns, msg.Content)
	}

	params := responses.ResponseNewParams{
		Model: req.Model,
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(strings.Join(turns, "\n\n")),
		},
	}
	if system != "" {
		params.Instructions = openai.String(system)
	}
	if req.MaxTokens != nil {
		params.MaxOutputTokens = openai.Int(int64(*req.MaxTokens))
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}

	var opts []option.RequestOption
	if req.ReasoningEffort != "" {
		opts = append(opts, option.WithJSONSet("reasoning.effort", req.ReasoningEffort))
	}
	if req.Verbosity != "" {
		opts = append(opts, option.WithJSONSet("text.verbosity", req.Verbosity))
	}
	return params, opts
}

// Compile-time interface assertion.
var _ ProviderAdapter = (*ResponsesAdapter)(nil)
