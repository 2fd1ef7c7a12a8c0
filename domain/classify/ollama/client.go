// Package ollama classifies images with a local vision model served by Ollama.
package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ollama/ollama/api"

	"github.com/neha01mittal/datadriven-firesafety/domain/classify"
)

const (
	providerName = "ollama"

	// DefaultModel is used when no model is configured.
	DefaultModel = "llava"
)

// Client implements classify.Classifier with the Ollama chat API.
type Client struct {
	client *api.Client
	model  string
}

var _ classify.Classifier = (*Client)(nil)

// NewClient creates a client for the Ollama server at baseURL. The path part of
// baseURL is ignored.
func NewClient(baseURL, model string, httpClient *http.Client) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid URL %q: scheme and host required", baseURL)
	}
	base := &url.URL{Scheme: parsed.Scheme, Host: parsed.Host}
	if model == "" {
		model = DefaultModel
	}
	return &Client{client: api.NewClient(base, httpClient), model: model}, nil
}

// Classify asks the model to tag image and parses its answer.
func (c *Client) Classify(ctx context.Context, image []byte) (classify.Labels, error) {
	streamFalse := false
	req := &api.ChatRequest{
		Model: c.model,
		Messages: []api.Message{
			{
				Role:    "user",
				Content: classify.LabelPrompt,
				Images:  []api.ImageData{api.ImageData(image)},
			},
		},
		Stream:  &streamFalse,
		Options: map[string]any{"temperature": 0},
	}

	var content string
	err := c.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		content += resp.Message.Content
		return nil
	})
	if err != nil {
		return nil, classify.NewServiceError(providerName, "chat", fmt.Errorf("ollama chat error: %w", err))
	}
	labels := classify.ParseLabelList(content)
	if len(labels) == 0 {
		return nil, classify.NewServiceError(providerName, "decode", classify.ErrEmptyResponse)
	}
	return labels, nil
}
