package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"
)

// RemoteProvider embeds texts through an OpenAI-compatible /embeddings
// endpoint. The whole batch is sent in one request; response entries are
// re-sorted by their declared index before materialization, because providers
// are not guaranteed to return entries in input order.
type RemoteProvider struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// remoteEmbedRequest is the request payload for the embeddings endpoint.
type remoteEmbedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// remoteEmbedResponse is the response payload from the embeddings endpoint.
type remoteEmbedResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

// NewRemoteProvider creates a provider backed by a remote embeddings API.
// baseURL must be the full /embeddings URL.
func NewRemoteProvider(baseURL, apiKey, model string, timeout time.Duration) *RemoteProvider {
	return &RemoteProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Embed returns one vector per input text, in input order.
func (p *RemoteProvider) Embed(ctx context.Context, texts []string) ([]Vector, error) {
	reqBody, err := json.Marshal(remoteEmbedRequest{Model: p.model, Input: texts})
	if err != nil {
		return nil, &Error{Backend: "api", Cause: fmt.Errorf("failed to marshal request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, &Error{Backend: "api", Cause: fmt.Errorf("failed to create request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, &Error{Backend: "api", Cause: fmt.Errorf("embeddings endpoint unreachable: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &Error{Backend: "api", Cause: fmt.Errorf("embeddings API error from %s (status %d): %s",
			p.baseURL, resp.StatusCode, truncateBody(body))}
	}

	var parsed remoteEmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &Error{Backend: "api", Cause: fmt.Errorf("malformed embeddings response: %w", err)}
	}
	if len(parsed.Data) != len(texts) {
		return nil, &Error{Backend: "api", Cause: fmt.Errorf("got %d embeddings for %d texts", len(parsed.Data), len(texts))}
	}

	sort.Slice(parsed.Data, func(i, j int) bool {
		return parsed.Data[i].Index < parsed.Data[j].Index
	})

	vectors := make([]Vector, len(parsed.Data))
	for i, entry := range parsed.Data {
		if len(entry.Embedding) == 0 {
			return nil, &Error{Backend: "api", Cause: fmt.Errorf("empty embedding at index %d", entry.Index)}
		}
		vectors[i] = Vector(entry.Embedding)
	}
	return vectors, nil
}
