// ABOUTME: Proxy turns a mode, difficulty, model choice and free text into one normalized generation.
// ABOUTME: Each call is a single pass: prompt assembly, one LLM request, normalization, history update.
package textgen

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/2389-research/vabot/llm"
)

// EmptyText is returned when the model produced nothing usable.
const EmptyText = "（本文が空でした。別モデルを試して）"

// Completer is the part of llm.Client the proxy needs.
type Completer interface {
	Complete(ctx context.Context, req llm.Request) (*llm.Response, error)
	HasProvider(name string) bool
}

// Params describes one generation.
type Params struct {
	Mode    Mode
	Hard    bool
	Model   int // model choice from the catalog
	Content string
}

// Result is a successful generation.
type Result struct {
	Text      string
	Title     string // empty when none was found
	Model     string
	RequestID string
}

// Proxy generates tactic and punishment texts.
type Proxy struct {
	client  Completer
	catalog *llm.Catalog
	history *History
	logger  *zap.Logger
	now     func() time.Time
	entropy io.Reader
}

// Option configures a Proxy.
type Option func(*Proxy)

// WithCatalog replaces the built-in model catalog.
func WithCatalog(c *llm.Catalog) Option {
	return func(p *Proxy) { p.catalog = c }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Proxy) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithClock sets the time source for nonces.
func WithClock(now func() time.Time) Option {
	return func(p *Proxy) { p.now = now }
}

// WithEntropy sets the random source for nonces.
func WithEntropy(r io.Reader) Option {
	return func(p *Proxy) { p.entropy = r }
}

// NewProxy creates a Proxy that sends requests through client.
func NewProxy(client Completer, opts ...Option) *Proxy {
	p := &Proxy{
		client:  client,
		catalog: llm.DefaultCatalog(),
		logger:  zap.NewNop(),
		now:     time.Now,
		entropy: ulid.DefaultEntropy(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.history == nil {
		p.history = NewHistory(HistoryCapacity)
	}
	return p
}

// History returns the proxy's title history.
func (p *Proxy) History() *History {
	return p.history
}

// Generate runs one generation. Failures are typed llm errors; pass them to
// Describe for a user-facing message.
func (p *Proxy) Generate(ctx context.Context, params Params) (*Result, error) {
	if !params.Mode.Valid() {
		return nil, &llm.InvalidRequestError{ProviderError: llm.ProviderError{
			SDKError: llm.SDKError{Message: fmt.Sprintf("%v: %q", ErrUnknownMode, params.Mode)},
		}}
	}

	model := p.catalog.Model(params.Model)
	if model == nil {
		return nil, &llm.ConfigurationError{SDKError: llm.SDKError{
			Message: fmt.Sprintf("モデル %d は存在しません。", params.Model),
		}}
	}
	if !p.client.HasProvider(model.Provider) {
		env := model.Provider
		if info := p.catalog.Provider(model.Provider); info != nil {
			env = info.CredentialEnv
		}
		return nil, &llm.ConfigurationError{SDKError: llm.SDKError{
			Message: env + " が .env にありません。",
		}}
	}

	nonce, err := ulid.New(ulid.Timestamp(p.now()), p.entropy)
	if err != nil {
		return nil, &llm.SDKError{Message: "nonce generation failed", Cause: err}
	}

	recent := p.history.Recent(params.Mode, BanListSize)
	req := llm.Request{
		Messages: []llm.Message{
			llm.SystemMessage(SystemPrompt(params.Mode, params.Hard, recent)),
			llm.UserMessage(UserPrompt(params.Content, nonce.String())),
		},
	}
	model.Apply(&req)

	requestID := uuid.NewString()
	log := p.logger.With(
		zap.String("request_id", requestID),
		zap.String("mode", string(params.Mode)),
		zap.Bool("hard", params.Hard),
		zap.String("model", model.ID),
	)
	log.Debug("generation started", zap.Int("recent_titles", len(recent)))

	resp, err := p.client.Complete(ctx, req)
	if err != nil {
		log.Warn("generation failed", zap.String("kind", llm.Classify(err).String()), zap.Error(err))
		return nil, err
	}

	result := &Result{Model: model.ID, RequestID: requestID}
	text := Normalize(resp.Text)
	if text == "" {
		log.Info("generation returned empty text")
		result.Text = EmptyText
		return result, nil
	}
	result.Text = text

	if title, ok := ExtractTitle(text); ok {
		p.history.Add(params.Mode, title)
		result.Title = title
	}
	log.Info("generation finished", zap.String("title", result.Title))
	return result, nil
}
