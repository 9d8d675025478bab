// ABOUTME: Process configuration parsed from the environment with caarlos0/env.
// ABOUTME: Credentials are optional here; each command checks what it needs.
package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/2389-research/vabot/llm"
)

// Config is the environment-driven configuration.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN"`
	GuildID      string `env:"GUILD_ID"`

	GroqAPIKey    string `env:"GROQ_API_KEY"`
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	GroqBaseURL   string `env:"GROQ_BASE_URL"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	AgentFile  string `env:"AGENT_FILE"  envDefault:"agents.json"`
	MapFile    string `env:"MAP_FILE"    envDefault:"maps.json"`
	PunishFile string `env:"PUNISH_FILE" envDefault:"punishments.json"`

	WebAddr           string        `env:"WEB_ADDR"`
	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT" envDefault:"90s"`
}

// loadConfig parses the environment into a Config.
func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.GenerationTimeout <= 0 {
		return Config{}, fmt.Errorf("GENERATION_TIMEOUT must be positive, got %s", cfg.GenerationTimeout)
	}
	return cfg, nil
}

// credential returns the configured API key for a provider.
func (c Config) credential(provider string) string {
	switch provider {
	case llm.ProviderGroq:
		return c.GroqAPIKey
	case llm.ProviderOpenAI:
		return c.OpenAIAPIKey
	default:
		return ""
	}
}

// baseURL returns the base URL override for a provider, if any.
func (c Config) baseURL(provider string) string {
	switch provider {
	case llm.ProviderGroq:
		return c.GroqBaseURL
	case llm.ProviderOpenAI:
		return c.OpenAIBaseURL
	default:
		return ""
	}
}
