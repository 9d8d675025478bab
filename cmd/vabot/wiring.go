// ABOUTME: Builds the shared components (selector, lists, LLM client, proxy) from Config.
// ABOUTME: Provider adapters are registered only for providers whose credential is set.
package main

import (
	"go.uber.org/zap"

	"github.com/2389-research/vabot/agents"
	"github.com/2389-research/vabot/llm"
	"github.com/2389-research/vabot/party"
	"github.com/2389-research/vabot/roll"
	"github.com/2389-research/vabot/textgen"
)

func newSelector(cfg Config, r roll.Rand, logger *zap.Logger) *agents.Selector {
	return agents.NewSelector(
		agents.FileCatalog{Path: cfg.AgentFile},
		agents.WithRand(r),
		agents.WithLogger(logger),
	)
}

func mapList(cfg Config) party.ListFile {
	return party.ListFile{Path: cfg.MapFile, Key: party.MapsKey}
}

func punishmentList(cfg Config) party.ListFile {
	return party.ListFile{Path: cfg.PunishFile, Key: party.PunishmentsKey}
}

// newLLMClient registers one adapter per provider with a credential. Groq
// speaks Chat Completions; OpenAI uses the Responses API.
func newLLMClient(cfg Config, catalog *llm.Catalog, logger *zap.Logger) *llm.Client {
	opts := []llm.ClientOption{llm.WithMiddleware(llm.LoggingMiddleware(logger))}

	for _, p := range catalog.Providers() {
		key := cfg.credential(p.Name)
		if key == "" {
			logger.Debug("provider disabled", zap.String("provider", p.Name), zap.String("credential", p.CredentialEnv))
			continue
		}
		baseURL := p.BaseURL
		if override := cfg.baseURL(p.Name); override != "" {
			baseURL = override
		}

		var adapter llm.ProviderAdapter
		if p.Name == llm.ProviderOpenAI {
			adapter = llm.NewResponsesAdapter(key, baseURL)
		} else {
			adapter = llm.NewChatAdapter(p.Name, key, baseURL)
		}
		opts = append(opts, llm.WithProvider(p.Name, adapter))
	}
	return llm.NewClient(opts...)
}

func newProxy(client *llm.Client, catalog *llm.Catalog, logger *zap.Logger) *textgen.Proxy {
	return textgen.NewProxy(client, textgen.WithCatalog(catalog), textgen.WithLogger(logger))
}
