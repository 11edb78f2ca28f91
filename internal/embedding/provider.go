// Package embedding provides text embedding backends for the recommendation pipeline.
// Two interchangeable providers are supported: a locally hosted encoder and an
// OpenAI-compatible embeddings API. A deployment selects one at startup and
// never mixes vectors from different providers in one similarity computation.
package embedding

import (
	"context"
	"fmt"
)

// Vector is a fixed-dimension embedding for one content item or user profile.
type Vector []float32

// Provider turns a batch of texts into one embedding vector per text,
// order-preserving.
type Provider interface {
	Embed(ctx context.Context, texts []string) ([]Vector, error)
}

// Error is returned when an embedding backend is unreachable, returns a
// malformed payload, or returns a vector count different from the input count.
// It is fatal to a pipeline run.
type Error struct {
	Backend string // "local" or "api"
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("embedding failed (%s backend): %v", e.Backend, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}
