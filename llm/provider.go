// ABOUTME: ProviderAdapter interface implemented by each LLM backend.
// ABOUTME: Adapters translate a unified Request into one provider API call and map failures to typed errors.

package llm

import "context"

// ProviderAdapter is the interface every provider adapter implements.
type ProviderAdapter interface {
	Name() string
	Complete(ctx context.Context, req Request) (*Response, error)
	Close() error
}
