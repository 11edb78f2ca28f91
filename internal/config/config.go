// Package config provides environment-driven configuration for the recommendation service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Embedding provider selectors.
const (
	EmbeddingProviderLocal = "local"
	EmbeddingProviderAPI   = "api"
)

// LLM provider selectors.
const (
	LLMProviderOpenAI = "openai"
	LLMProviderGemini = "gemini"
)

// Config holds all tuneable settings for the service. Every field is loaded
// from environment variables; a .env file at the project root is applied by
// main before this package is consulted. Swapping the LLM or embedding
// provider requires no code changes.
type Config struct {
	// Chat-completion settings
	LLMProvider string // "openai" (any OpenAI-compatible endpoint) or "gemini"
	LLMAPIKey   string
	LLMModel    string
	LLMBaseURL  string

	// Embedding settings
	EmbeddingProvider   string // "local" or "api"
	LocalEmbeddingURL   string // base URL of the locally hosted encoder
	LocalEmbeddingModel string
	EmbeddingAPIBaseURL string
	EmbeddingAPIModel   string
	EmbeddingAPIKey     string

	// Timeouts for outbound calls
	EmbeddingTimeout time.Duration
	RankingTimeout   time.Duration

	// Pipeline tuning
	RetrievalK int

	// HTTP server
	Port               int
	RateLimitPerMinute int
}

// FromEnv builds a Config from environment variables, applying defaults for
// anything unset.
func FromEnv() *Config {
	return &Config{
		LLMProvider: getenv("LLM_PROVIDER", LLMProviderOpenAI),
		LLMAPIKey:   firstEnv("LLM_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY"),
		LLMModel:    getenv("LLM_MODEL", "moonshotai/Kimi-K2.5:novita"),
		LLMBaseURL:  getenv("LLM_BASE_URL", "https://router.huggingface.co/v1/chat/completions"),

		EmbeddingProvider:   getenv("EMBEDDING_PROVIDER", EmbeddingProviderLocal),
		LocalEmbeddingURL:   getenv("LOCAL_EMBEDDING_URL", "http://localhost:11434"),
		LocalEmbeddingModel: getenv("EMBEDDING_MODEL_LOCAL", "all-minilm"),
		EmbeddingAPIBaseURL: getenv("EMBEDDING_API_BASE_URL", "https://api.openai.com/v1/embeddings"),
		EmbeddingAPIModel:   getenv("EMBEDDING_MODEL_API", "text-embedding-ada-002"),
		EmbeddingAPIKey:     os.Getenv("EMBEDDING_API_KEY"),

		EmbeddingTimeout: getenvDuration("EMBEDDING_TIMEOUT", 30*time.Second),
		RankingTimeout:   getenvDuration("RANKING_TIMEOUT", 60*time.Second),

		RetrievalK: getenvInt("RETRIEVAL_K", 5),

		Port:               getenvInt("PORT", 8000),
		RateLimitPerMinute: getenvInt("RATE_LIMIT_PER_MINUTE", 60),
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	switch c.EmbeddingProvider {
	case EmbeddingProviderLocal, EmbeddingProviderAPI:
	default:
		return fmt.Errorf("config error: unknown embedding provider %q (want %q or %q)",
			c.EmbeddingProvider, EmbeddingProviderLocal, EmbeddingProviderAPI)
	}

	switch c.LLMProvider {
	case LLMProviderOpenAI, LLMProviderGemini:
	default:
		return fmt.Errorf("config error: unknown LLM provider %q (want %q or %q)",
			c.LLMProvider, LLMProviderOpenAI, LLMProviderGemini)
	}

	if c.EmbeddingProvider == EmbeddingProviderAPI && c.EmbeddingAPIBaseURL == "" {
		return fmt.Errorf("config error: EMBEDDING_API_BASE_URL is required when EMBEDDING_PROVIDER=api")
	}
	if c.RetrievalK <= 0 {
		return fmt.Errorf("config error: RETRIEVAL_K must be positive, got %d", c.RetrievalK)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: PORT out of range: %d", c.Port)
	}
	if c.EmbeddingTimeout <= 0 || c.RankingTimeout <= 0 {
		return fmt.Errorf("config error: timeouts must be positive")
	}
	return nil
}

// RankingEnabled reports whether a ranking credential is configured. Without
// one the pipeline always uses the rule-based ranking path.
func (c *Config) RankingEnabled() bool {
	return c.LLMAPIKey != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// firstEnv returns the first non-empty value among the given variables.
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
