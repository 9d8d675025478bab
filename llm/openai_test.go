// ABOUTME: Tests for the openai-go adapters against httptest servers.
// ABOUTME: Verifies per-model parameter names on the wire, response parsing, and error translation.

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// capture records the last request path and decoded JSON body.
type capture struct {
	path string
	body map[string]any
}

func newJSONServer(t *testing.T, status int, reply string, c *capture) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c != nil {
			c.path = r.URL.Path
			if err := json.NewDecoder(r.Body).Decode(&c.body); err != nil {
				t.Errorf("decoding request body: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const chatReply = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "llama-3.1-8b-instant",
  "choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "  1) タイトル: 速攻ラッシュ  "}}],
  "usage": {"prompt_tokens": 12, "completion_tokens": 7, "total_tokens": 19}
}`

const responsesReply = `{
  "id": "resp_1",
  "object": "response",
  "created_at": 1700000000,
  "status": "completed",
  "model": "gpt-5-mini",
  "output": [{
    "type": "message",
    "id": "msg_1",
    "status": "completed",
    "role": "assistant",
    "content": [{"type": "output_text", "text": "1) タイトル: 裏取り", "annotations": []}]
  }],
  "usage": {"input_tokens": 30, "output_tokens": 9, "total_tokens": 39}
}`

func testMessages() []Message {
	return []Message{SystemMessage("rules"), UserMessage("状況")}
}

func TestChatAdapterRequestShape(t *testing.T) {
	var c capture
	srv := newJSONServer(t, http.StatusOK, chatReply, &c)
	adapter := NewChatAdapter(ProviderGroq, "test-key", srv.URL+"/v1/")

	req := Request{Messages: testMessages()}
	DefaultCatalog().Model(1).Apply(&req)

	resp, err := adapter.Complete(context.Background(), req)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if c.path != "/v1/chat/completions" {
		t.Errorf("path = %q, want /v1/chat/completions", c.path)
	}
	if c.body["model"] != "llama-3.1-8b-instant" {
		t.Errorf("model = %v", c.body["model"])
	}
	if c.body["max_tokens"] != float64(2000) {
		t.Errorf("max_tokens = %v, want 2000", c.body["max_tokens"])
	}
	if c.body["temperature"] != 0.7 {
		t.Errorf("temperature = %v, want 0.7", c.body["temperature"])
	}
	msgs, _ := c.body["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if first, _ := msgs[0].(map[string]any); first["role"] != "system" {
		t.Errorf("first message role = %v, want system", first["role"])
	}

	if resp.Text != "1) タイトル: 速攻ラッシュ" {
		t.Errorf("text = %q, want trimmed content", resp.Text)
	}
	if resp.Provider != ProviderGroq || resp.Usage.InputTokens != 12 || resp.Usage.OutputTokens != 7 {
		t.Errorf("unexpected response metadata: %+v", resp)
	}
}

func TestResponsesAdapterRequestShape(t *testing.T) {
	var c capture
	srv := newJSONServer(t, http.StatusOK, responsesReply, &c)
	adapter := NewResponsesAdapter("test-key", srv.URL+"/v1/")

	req := Request{Messages: testMessages()}
	DefaultCatalog().Model(3).Apply(&req)

	resp, err := adapter.Complete(context.Background(), req)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if c.path != "/v1/responses" {
		t.Errorf("path = %q, want /v1/responses", c.path)
	}
	if c.body["instructions"] != "rules" {
		t.Errorf("instructions = %v, want rules", c.body["instructions"])
	}
	if c.body["input"] != "状況" {
		t.Errorf("input = %v, want user text", c.body["input"])
	}
	if c.body["max_output_tokens"] != float64(8000) {
		t.Errorf("max_output_tokens = %v, want 8000", c.body["max_output_tokens"])
	}
	if _, ok := c.body["temperature"]; ok {
		t.Error("temperature should not be sent")
	}
	if reasoning, _ := c.body["reasoning"].(map[string]any); reasoning["effort"] != "low" {
		t.Errorf("reasoning = %v, want effort low", c.body["reasoning"])
	}
	if text, _ := c.body["text"].(map[string]any); text["verbosity"] != "low" {
		t.Errorf("text = %v, want verbosity low", c.body["text"])
	}

	if resp.Text != "1) タイトル: 裏取り" {
		t.Errorf("text = %q", resp.Text)
	}
	if resp.Model != "gpt-5-mini" || resp.Usage.OutputTokens != 9 {
		t.Errorf("unexpected response metadata: %+v", resp)
	}
}

func TestAdapterErrorTranslation(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorKind
	}{
		{http.StatusTooManyRequests, KindRateLimited},
		{http.StatusBadRequest, KindInvalidRequest},
		{http.StatusRequestEntityTooLarge, KindInvalidRequest},
		{http.StatusInternalServerError, KindService},
		{http.StatusUnauthorized, KindService},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			reply := `{"error": {"message": "nope", "type": "test", "code": "test_code"}}`
			srv := newJSONServer(t, tt.status, reply, nil)
			adapter := NewChatAdapter(ProviderGroq, "test-key", srv.URL+"/v1/")

			_, err := adapter.Complete(context.Background(), Request{Model: "m", Messages: testMessages()})
			if err == nil {
				t.Fatal("expected error")
			}
			if got := Classify(err); got != tt.want {
				t.Errorf("Classify = %v, want %v (err: %v)", got, tt.want, err)
			}
			var pe *ProviderError
			if errors.As(err, &pe) && pe.Provider != ProviderGroq {
				t.Errorf("provider = %q, want groq", pe.Provider)
			}
		})
	}
}

func TestAdapterTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	adapter := NewResponsesAdapter("test-key", srv.URL+"/v1/")
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := adapter.Complete(ctx, Request{Model: "gpt-5-mini", Messages: testMessages()})
	if got := Classify(err); got != KindTimeout {
		t.Errorf("Classify = %v, want timeout (err: %v)", got, err)
	}
}

func TestAdapterNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	adapter := NewChatAdapter(ProviderGroq, "test-key", url+"/v1/")
	_, err := adapter.Complete(context.Background(), Request{Model: "m", Messages: testMessages()})

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("got %T %v, want NetworkError", err, err)
	}
	if !strings.Contains(err.Error(), "groq") {
		t.Errorf("error %q should name the provider", err.Error())
	}
}
