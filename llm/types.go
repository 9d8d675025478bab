// ABOUTME: Core request/response types for the LLM client: messages, per-model parameters, and usage.
// ABOUTME: Optional parameters are pointers or empty strings so adapters only send what the model table sets.

package llm

import "strings"

// Role represents who produced a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// SystemMessage creates a system message.
func SystemMessage(text string) Message {
	return Message{Role: RoleSystem, Content: text}
}

// UserMessage creates a user message.
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Content: text}
}

// AssistantMessage creates an assistant message.
func AssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Content: text}
}

// Request is a single completion request. Provider selects the adapter;
// the remaining optional fields are filled from the model catalog.
type Request struct {
	Provider        string    `json:"provider,omitempty"`
	Model           string    `json:"model"`
	Messages        []Message `json:"messages"`
	Temperature     *float64  `json:"temperature,omitempty"`
	MaxTokens       *int      `json:"max_tokens,omitempty"`
	ReasoningEffort string    `json:"reasoning_effort,omitempty"` // "low", "medium", "high"
	Verbosity       string    `json:"verbosity,omitempty"`        // "low", "medium", "high"
}

// Usage reports token consumption.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Response is a completed generation.
type Response struct {
	ID       string `json:"id"`
	Model    string `json:"model"`
	Provider string `json:"provider"`
	Text     string `json:"text"`
	Usage    Usage  `json:"usage"`
}

// SplitSystem separates system messages from the rest. System texts are
// joined with newlines.
func SplitSystem(messages []Message) (system string, remaining []Message) {
	var parts []string
	for _, msg := range messages {
		if msg.Role == RoleSystem {
			if msg.Content != "" {
				parts = append(parts, msg.Content)
			}
			continue
		}
		remaining = append(remaining, msg)
	}
	return strings.Join(parts, "\n"), remaining
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
