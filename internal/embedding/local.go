package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// LocalProvider embeds texts through a locally hosted encoder speaking the
// Ollama embeddings protocol (one text per request). The encoder loads its
// model on the first request and keeps it resident; this provider performs
// that first request lazily, records the vector dimension it observes, and
// enforces the same dimension for the rest of the process lifetime.
//
// A single LocalProvider is shared across requests; it is safe for concurrent
// use.
type LocalProvider struct {
	baseURL    string
	model      string
	httpClient *http.Client

	mu     sync.Mutex
	loaded bool
	dim    int
}

// localEmbedRequest is the request payload for the local encoder.
type localEmbedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

// localEmbedResponse is the response payload from the local encoder.
type localEmbedResponse struct {
	Embedding []float32 `json:"embedding"`
}

// NewLocalProvider creates a provider backed by a local encoder server.
func NewLocalProvider(baseURL, model string, timeout time.Duration) *LocalProvider {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	return &LocalProvider{
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Embed returns one vector per input text, in input order.
func (p *LocalProvider) Embed(ctx context.Context, texts []string) ([]Vector, error) {
	if err := p.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	vectors := make([]Vector, 0, len(texts))
	for _, text := range texts {
		vec, err := p.embedOne(ctx, text)
		if err != nil {
			return nil, err
		}
		if err := p.checkDimension(len(vec)); err != nil {
			return nil, err
		}
		vectors = append(vectors, vec)
	}

	if len(vectors) != len(texts) {
		return nil, &Error{Backend: "local", Cause: fmt.Errorf("got %d vectors for %d texts", len(vectors), len(texts))}
	}
	return vectors, nil
}

// ensureLoaded forces the encoder to load its model on first use. A failed
// load is retried on the next call rather than sticking permanently.
func (p *LocalProvider) ensureLoaded(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loaded {
		return nil
	}

	vec, err := p.embedOne(ctx, "warmup")
	if err != nil {
		return err
	}
	if len(vec) == 0 {
		return &Error{Backend: "local", Cause: fmt.Errorf("encoder returned an empty vector during model load")}
	}

	p.dim = len(vec)
	p.loaded = true
	return nil
}

// checkDimension enforces dimension consistency across the process lifetime.
func (p *LocalProvider) checkDimension(got int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if got != p.dim {
		return &Error{Backend: "local", Cause: fmt.Errorf("vector dimension changed from %d to %d", p.dim, got)}
	}
	return nil
}

// embedOne sends a single text to the encoder's embeddings endpoint.
func (p *LocalProvider) embedOne(ctx context.Context, text string) (Vector, error) {
	reqBody, err := json.Marshal(localEmbedRequest{Model: p.model, Prompt: text})
	if err != nil {
		return nil, &Error{Backend: "local", Cause: fmt.Errorf("failed to marshal request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/embeddings", bytes.NewReader(reqBody))
	if err != nil {
		return nil, &Error{Backend: "local", Cause: fmt.Errorf("failed to create request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, &Error{Backend: "local", Cause: fmt.Errorf("encoder unreachable: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &Error{Backend: "local", Cause: fmt.Errorf("encoder error (status %d): %s", resp.StatusCode, truncateBody(body))}
	}

	var parsed localEmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &Error{Backend: "local", Cause: fmt.Errorf("malformed encoder response: %w", err)}
	}
	if len(parsed.Embedding) == 0 {
		return nil, &Error{Backend: "local", Cause: fmt.Errorf("encoder returned an empty embedding")}
	}

	return Vector(parsed.Embedding), nil
}

func truncateBody(body []byte) string {
	const limit = 256
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}
