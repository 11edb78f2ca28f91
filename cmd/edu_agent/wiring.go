package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/edu-recommender/internal/catalog"
	"github.com/jonathan/edu-recommender/internal/config"
	"github.com/jonathan/edu-recommender/internal/embedding"
	"github.com/jonathan/edu-recommender/internal/llm"
	"github.com/jonathan/edu-recommender/internal/pipeline"
	"github.com/jonathan/edu-recommender/internal/ranking"
)

// buildRunner assembles the recommendation pipeline from configuration. The
// returned cleanup function releases the LLM client and must be called when
// the runner is no longer needed.
func buildRunner(ctx context.Context, cfg *config.Config, store *catalog.Store) (*pipeline.Runner, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	embedder, err := buildEmbedder(cfg)
	if err != nil {
		return nil, nil, err
	}

	var client llm.Client
	cleanup := func() {}
	if cfg.RankingEnabled() {
		client, err = llm.NewClient(ctx, llm.ClientConfig{
			Provider: llm.Provider(cfg.LLMProvider),
			APIKey:   cfg.LLMAPIKey,
			Model:    cfg.LLMModel,
			BaseURL:  cfg.LLMBaseURL,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("creating LLM client: %w", err)
		}
		cleanup = func() {
			if err := client.Close(); err != nil {
				log.Printf("Error closing LLM client: %v", err)
			}
		}
	} else {
		log.Printf("No LLM API key configured, re-ranking will use the rule-based path")
	}

	ranker := ranking.NewRanker(client, cfg.RankingTimeout)
	return pipeline.NewRunner(store, embedder, ranker, cfg.RetrievalK), cleanup, nil
}

func buildEmbedder(cfg *config.Config) (embedding.Provider, error) {
	switch cfg.EmbeddingProvider {
	case config.EmbeddingProviderLocal:
		return embedding.NewLocalProvider(cfg.LocalEmbeddingURL, cfg.LocalEmbeddingModel, cfg.EmbeddingTimeout), nil
	case config.EmbeddingProviderAPI:
		return embedding.NewRemoteProvider(cfg.EmbeddingAPIBaseURL, cfg.EmbeddingAPIKey, cfg.EmbeddingAPIModel, cfg.EmbeddingTimeout), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.EmbeddingProvider)
	}
}
