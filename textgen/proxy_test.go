// ABOUTME: Tests for Proxy.Generate using a scripted completer.
// ABOUTME: Verifies request assembly, credential checks, history updates and failure propagation.
package textgen

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/2389-research/vabot/llm"
)

type scriptedCompleter struct {
	mu        sync.Mutex
	providers map[string]bool
	replies   []string
	err       error
	requests  []llm.Request
}

func (s *scriptedCompleter) HasProvider(name string) bool { return s.providers[name] }

func (s *scriptedCompleter) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	text := ""
	if len(s.replies) > 0 {
		text = s.replies[0]
		s.replies = s.replies[1:]
	}
	return &llm.Response{Text: text, Model: req.Model, Provider: req.Provider}, nil
}

func newTestProxy(c *scriptedCompleter) *Proxy {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return NewProxy(c,
		WithClock(func() time.Time { return fixed }),
		WithEntropy(bytes.NewReader(bytes.Repeat([]byte{7}, 1024))),
	)
}

func allProviders() map[string]bool {
	return map[string]bool{llm.ProviderGroq: true, llm.ProviderOpenAI: true}
}

func TestGenerateBuildsRequest(t *testing.T) {
	c := &scriptedCompleter{
		providers: allProviders(),
		replies:   []string{"1) タイトル: 裏取り 2) 詳細: デュエリストが敵陣へローテートする。 3) 注意: 単独行動しない。"},
	}
	p := newTestProxy(c)

	res, err := p.Generate(context.Background(), Params{Mode: ModeTactic, Hard: true, Model: 1, Content: "Bを攻めたい"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(c.requests) != 1 {
		t.Fatalf("got %d requests, want 1", len(c.requests))
	}
	req := c.requests[0]
	if req.Provider != llm.ProviderGroq || req.Model != "llama-3.1-8b-instant" {
		t.Errorf("got provider %q model %q", req.Provider, req.Model)
	}
	if req.Temperature == nil || *req.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", req.Temperature)
	}
	if req.MaxTokens == nil || *req.MaxTokens != 2000 {
		t.Errorf("max tokens = %v, want 2000", req.MaxTokens)
	}
	if len(req.Messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(req.Messages))
	}
	if req.Messages[0].Role != llm.RoleSystem || !strings.HasSuffix(req.Messages[0].Content, tacticHardClause) {
		t.Errorf("system prompt missing hard clause")
	}
	user := req.Messages[1].Content
	if !strings.HasPrefix(user, "Bを攻めたい\n#seed:") || !strings.HasSuffix(user, "\n直近と同じ案は避けてください。") {
		t.Errorf("unexpected user message %q", user)
	}

	wantText := "1) タイトル: 裏取り\n2) 詳細: デュエリストが敵陣へローテートする。\n3) 注意: 単独行動しない。"
	if res.Text != wantText {
		t.Errorf("got %q, want %q", res.Text, wantText)
	}
	if res.Title != "裏取り" {
		t.Errorf("title = %q, want %q", res.Title, "裏取り")
	}
	if res.RequestID == "" {
		t.Error("expected a request id")
	}
	if got := p.History().Recent(ModeTactic, 5); len(got) != 1 || got[0] != "裏取り" {
		t.Errorf("history = %v", got)
	}
}

func TestGenerateResponsesModelParameters(t *testing.T) {
	c := &scriptedCompleter{providers: allProviders(), replies: []string{"1) タイトル: x"}}
	p := newTestProxy(c)

	if _, err := p.Generate(context.Background(), Params{Mode: ModePunish, Model: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := c.requests[0]
	if req.Provider != llm.ProviderOpenAI || req.Model != "gpt-5-mini" {
		t.Errorf("got provider %q model %q", req.Provider, req.Model)
	}
	if req.ReasoningEffort != "low" || req.Verbosity != "low" {
		t.Errorf("got effort %q verbosity %q", req.ReasoningEffort, req.Verbosity)
	}
	if req.MaxTokens == nil || *req.MaxTokens != 8000 {
		t.Errorf("max tokens = %v, want 8000", req.MaxTokens)
	}
	if !strings.HasPrefix(req.Messages[1].Content, defaultContent) {
		t.Errorf("expected default content, got %q", req.Messages[1].Content)
	}
}

func TestGenerateBanClauseUsesRecentTitles(t *testing.T) {
	replies := make([]string, 0, 7)
	for _, title := range []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7"} {
		replies = append(replies, "1) タイトル: "+title)
	}
	c := &scriptedCompleter{providers: allProviders(), replies: replies}
	p := newTestProxy(c)

	for range 7 {
		if _, err := p.Generate(context.Background(), Params{Mode: ModePunish, Model: 2}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := c.requests[0].Messages[0].Content; strings.Contains(got, "【禁止】") {
		t.Error("first request should have no ban clause")
	}
	last := c.requests[6].Messages[0].Content
	if !strings.HasSuffix(last, banClausePrefix+"t2 / t3 / t4 / t5 / t6") {
		t.Errorf("unexpected ban clause in %q", last[len(punishRules):])
	}
}

func TestGenerateNoncesDiffer(t *testing.T) {
	c := &scriptedCompleter{providers: allProviders()}
	p := NewProxy(c)

	for range 2 {
		if _, err := p.Generate(context.Background(), Params{Mode: ModeTactic, Model: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if c.requests[0].Messages[1].Content == c.requests[1].Messages[1].Content {
		t.Error("expected distinct nonces across calls")
	}
}

func TestGenerateEmptyText(t *testing.T) {
	c := &scriptedCompleter{providers: allProviders(), replies: []string{"  \n "}}
	p := newTestProxy(c)

	res, err := p.Generate(context.Background(), Params{Mode: ModeTactic, Model: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != EmptyText {
		t.Errorf("got %q, want %q", res.Text, EmptyText)
	}
	if p.History().Len(ModeTactic) != 0 {
		t.Error("empty text should not touch history")
	}
}

func TestGenerateNoTitleLeavesHistory(t *testing.T) {
	c := &scriptedCompleter{providers: allProviders(), replies: []string{"自由形式の返答"}}
	p := newTestProxy(c)

	res, err := p.Generate(context.Background(), Params{Mode: ModeTactic, Model: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Title != "" || p.History().Len(ModeTactic) != 0 {
		t.Errorf("got title %q, history len %d", res.Title, p.History().Len(ModeTactic))
	}
}

func TestGenerateMissingCredential(t *testing.T) {
	c := &scriptedCompleter{providers: map[string]bool{llm.ProviderOpenAI: true}}
	p := newTestProxy(c)

	_, err := p.Generate(context.Background(), Params{Mode: ModeTactic, Model: 1})
	var cfg *llm.ConfigurationError
	if !errors.As(err, &cfg) {
		t.Fatalf("got %v, want ConfigurationError", err)
	}
	if got, want := Describe(err), "GROQ_API_KEY が .env にありません。"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if len(c.requests) != 0 {
		t.Error("no request should be sent without a credential")
	}
}

func TestGenerateUnknownModel(t *testing.T) {
	c := &scriptedCompleter{providers: allProviders()}
	p := newTestProxy(c)

	_, err := p.Generate(context.Background(), Params{Mode: ModeTactic, Model: 9})
	if llm.Classify(err) != llm.KindConfiguration {
		t.Errorf("got %v, want configuration error", err)
	}
}

func TestGenerateUnknownMode(t *testing.T) {
	c := &scriptedCompleter{providers: allProviders()}
	p := newTestProxy(c)

	_, err := p.Generate(context.Background(), Params{Mode: "chaos", Model: 1})
	if llm.Classify(err) != llm.KindInvalidRequest {
		t.Errorf("got %v, want invalid request", err)
	}
}

func TestGeneratePropagatesProviderError(t *testing.T) {
	c := &scriptedCompleter{
		providers: allProviders(),
		err:       llm.ErrorFromStatusCode(429, "slow down", llm.ProviderGroq, "", nil),
	}
	p := newTestProxy(c)

	_, err := p.Generate(context.Background(), Params{Mode: ModePunish, Model: 1})
	if llm.Classify(err) != llm.KindRateLimited {
		t.Fatalf("got %v, want rate limited", err)
	}
	if Describe(err) != MsgRateLimited {
		t.Errorf("got %q", Describe(err))
	}
	if p.History().Len(ModePunish) != 0 {
		t.Error("failed generation should not touch history")
	}
}

func TestGenerateNonceFailureIsServiceError(t *testing.T) {
	c := &scriptedCompleter{providers: allProviders()}
	p := NewProxy(c, WithEntropy(bytes.NewReader(nil)))

	_, err := p.Generate(context.Background(), Params{Mode: ModeTactic, Model: 1})
	if llm.Classify(err) != llm.KindService {
		t.Fatalf("got %v, want service error", err)
	}
	if Describe(err) != MsgService {
		t.Errorf("got %q, want %q", Describe(err), MsgService)
	}
	if len(c.requests) != 0 {
		t.Error("no request should be sent without a nonce")
	}
}
