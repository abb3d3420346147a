// Package voyage wraps the Voyage AI embeddings API.
package voyage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	// Endpoint is the Voyage embeddings API URL.
	Endpoint = "https://api.voyageai.com/v1/embeddings"
	// Model is the embedding model used for all collections.
	Model = "voyage-3-lite"
)

// IEmbedder generates embedding vectors for texts.
type IEmbedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Client is the Voyage embeddings API client.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

var _ IEmbedder = (*Client)(nil)

// New creates a new Voyage client.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("voyage: API key is required")
	}
	return &Client{
		apiKey:     apiKey,
		endpoint:   Endpoint,
		httpClient: &http.Client{},
	}, nil
}

// WithEndpoint overrides the API endpoint. Used by tests.
func (c *Client) WithEndpoint(url string) *Client {
	if url != "" {
		c.endpoint = url
	}
	return c
}

type request struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

type response struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
}

// Embed generates embeddings for the given texts.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("voyage: at least one text is required")
	}

	bodyBytes, err := json.Marshal(request{Input: texts, Model: Model})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call voyage API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("voyage API error %d: %s", resp.StatusCode, string(raw))
	}

	var result response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode voyage response: %w", err)
	}

	embeddings := make([][]float32, len(result.Data))
	for _, d := range result.Data {
		if d.Index < 0 || d.Index >= len(embeddings) {
			return nil, fmt.Errorf("voyage: embedding index %d out of range", d.Index)
		}
		embeddings[d.Index] = d.Embedding
	}
	return embeddings, nil
}
