package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, EmbeddingProviderLocal, cfg.EmbeddingProvider)
	assert.Equal(t, LLMProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, 30*time.Second, cfg.EmbeddingTimeout)
	assert.Equal(t, 60*time.Second, cfg.RankingTimeout)
	assert.Equal(t, 5, cfg.RetrievalK)
	assert.Equal(t, 8000, cfg.Port)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("EMBEDDING_PROVIDER", "api")
	t.Setenv("EMBEDDING_API_BASE_URL", "http://localhost:9999/v1/embeddings")
	t.Setenv("EMBEDDING_TIMEOUT", "5s")
	t.Setenv("RETRIEVAL_K", "10")
	t.Setenv("PORT", "9090")

	cfg := FromEnv()

	assert.Equal(t, EmbeddingProviderAPI, cfg.EmbeddingProvider)
	assert.Equal(t, "http://localhost:9999/v1/embeddings", cfg.EmbeddingAPIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.EmbeddingTimeout)
	assert.Equal(t, 10, cfg.RetrievalK)
	assert.Equal(t, 9090, cfg.Port)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_MalformedNumbersFallBack(t *testing.T) {
	t.Setenv("RETRIEVAL_K", "not-a-number")
	t.Setenv("EMBEDDING_TIMEOUT", "soon")

	cfg := FromEnv()

	assert.Equal(t, 5, cfg.RetrievalK)
	assert.Equal(t, 30*time.Second, cfg.EmbeddingTimeout)
}

func TestValidate_UnknownProviders(t *testing.T) {
	cfg := FromEnv()
	cfg.EmbeddingProvider = "remote"
	assert.Error(t, cfg.Validate())

	cfg = FromEnv()
	cfg.LLMProvider = "anthropic"
	assert.Error(t, cfg.Validate())
}

func TestRankingEnabled(t *testing.T) {
	cfg := FromEnv()
	cfg.LLMAPIKey = ""
	assert.False(t, cfg.RankingEnabled())

	cfg.LLMAPIKey = "secret"
	assert.True(t, cfg.RankingEnabled())
}

func TestFromEnv_APIKeyFallbackChain(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gem-key")

	cfg := FromEnv()
	assert.Equal(t, "gem-key", cfg.LLMAPIKey)
}
