// Package llm provides chat-completion client abstractions for the ranking step.
// This package enables switching between an OpenAI-compatible HTTP endpoint and
// Google Gemini without touching callers.
package llm

import (
	"context"
	"fmt"
)

// Provider represents an LLM provider.
type Provider string

// Provider constants define supported LLM providers.
const (
	// ProviderOpenAI is any endpoint speaking the OpenAI chat-completions protocol.
	ProviderOpenAI Provider = "openai"
	// ProviderGemini is the Google Gemini provider.
	ProviderGemini Provider = "gemini"
)

// Options holds generation parameters for a single chat request.
type Options struct {
	Temperature float32
	MaxTokens   int
}

// DefaultOptions returns the generation parameters used for ranking:
// low temperature for consistent output, bounded token budget.
func DefaultOptions() Options {
	return Options{
		Temperature: 0.3,
		MaxTokens:   2048,
	}
}

// Result is the outcome of a chat-completion call. Content carries the main
// message text; Reasoning carries the provider's reasoning field when one is
// supplied (some providers emit their answer there instead of in Content).
type Result struct {
	Content   string
	Reasoning string
}

// Client is an abstraction over chat-completion providers.
type Client interface {
	// Chat sends a system + user message pair and returns the model's reply.
	Chat(ctx context.Context, system, user string, opts Options) (*Result, error)
	// Model returns the model identifier requests are issued against.
	Model() string
	// Close releases any resources held by the client.
	Close() error
}

// ClientConfig holds the settings needed to construct a Client.
type ClientConfig struct {
	Provider Provider
	APIKey   string
	Model    string
	BaseURL  string // full chat-completions URL, OpenAI provider only
}

// NewClient creates a new chat-completion client based on configuration.
func NewClient(ctx context.Context, cfg ClientConfig) (Client, error) {
	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	case ProviderOpenAI, "":
		return NewOpenAIClient(cfg.BaseURL, cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
