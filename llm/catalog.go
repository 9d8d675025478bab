// ABOUTME: Static model and provider tables: which provider serves each model choice and its request parameters.
// ABOUTME: Provider entries carry the credential env var and base URL used when wiring adapters.

package llm

// Provider names.
const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
)

// ProviderInfo describes how to reach a provider.
type ProviderInfo struct {
	Name          string
	CredentialEnv string // environment variable holding the API key
	BaseURL       string // empty means the SDK default
}

// ModelInfo describes one user-selectable model and the per-model request
// parameters. Zero values are not sent.
type ModelInfo struct {
	Choice          int    // number users pick in commands
	ID              string // provider model id
	Provider        string
	DisplayName     string
	Temperature     *float64
	MaxTokens       int
	ReasoningEffort string
	Verbosity       string
}

// Apply copies the model's parameters into req.
func (m *ModelInfo) Apply(req *Request) {
	req.Provider = m.Provider
	req.Model = m.ID
	if m.Temperature != nil {
		req.Temperature = Float(*m.Temperature)
	}
	if m.MaxTokens > 0 {
		req.MaxTokens = Int(m.MaxTokens)
	}
	req.ReasoningEffort = m.ReasoningEffort
	req.Verbosity = m.Verbosity
}

// Catalog holds the provider and model tables.
type Catalog struct {
	providers []ProviderInfo
	models    []ModelInfo
}

func builtinProviders() []ProviderInfo {
	return []ProviderInfo{
		{Name: ProviderGroq, CredentialEnv: "GROQ_API_KEY", BaseURL: "https://api.groq.com/openai/v1/"},
		{Name: ProviderOpenAI, CredentialEnv: "OPENAI_API_KEY"},
	}
}

func builtinModels() []ModelInfo {
	return []ModelInfo{
		{
			Choice:      1,
			ID:          "llama-3.1-8b-instant",
			Provider:    ProviderGroq,
			DisplayName: "【1】 早いが回答がおかしくなるかも（llama）",
			Temperature: Float(0.7),
			MaxTokens:   2000,
		},
		{
			Choice:      2,
			ID:          "openai/gpt-oss-120b",
			Provider:    ProviderGroq,
			DisplayName: "【2】 速度も早くちょっとだけ優秀（gpt-oss）",
			Temperature: Float(0.7),
			MaxTokens:   2000,
		},
		{
			Choice:          3,
			ID:              "gpt-5-mini",
			Provider:        ProviderOpenAI,
			DisplayName:     "【3】 遅いが必ず動作し優秀（gpt）",
			MaxTokens:       8000,
			ReasoningEffort: "low",
			Verbosity:       "low",
		},
	}
}

// DefaultCatalog returns a new Catalog with the built-in tables. Each call
// returns an independent copy.
func DefaultCatalog() *Catalog {
	return &Catalog{
		providers: builtinProviders(),
		models:    builtinModels(),
	}
}

// Model looks up a model by its choice number.
func (c *Catalog) Model(choice int) *ModelInfo {
	for i := range c.models {
		if c.models[i].Choice == choice {
			return &c.models[i]
		}
	}
	return nil
}

// Models returns every model in choice order.
func (c *Catalog) Models() []ModelInfo {
	out := make([]ModelInfo, len(c.models))
	copy(out, c.models)
	return out
}

// Provider looks up a provider by name.
func (c *Catalog) Provider(name string) *ProviderInfo {
	for i := range c.providers {
		if c.providers[i].Name == name {
			return &c.providers[i]
		}
	}
	return nil
}

// Providers returns every provider.
func (c *Catalog) Providers() []ProviderInfo {
	out := make([]ProviderInfo, len(c.providers))
	copy(out, c.providers)
	return out
}
