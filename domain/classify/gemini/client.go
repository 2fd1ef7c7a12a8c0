// Package gemini classifies images with the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/neha01mittal/datadriven-firesafety/domain/classify"
)

const (
	providerName = "gemini"

	// DefaultModel is the Gemini model used when none is configured.
	DefaultModel = "gemini-2.5-flash"
)

// Labeler implements classify.Classifier by asking Gemini for a label list.
type Labeler struct {
	client *genai.Client
	model  string
}

var _ classify.Classifier = (*Labeler)(nil)

// NewLabeler creates a Gemini API client authenticated with apiKey.
func NewLabeler(ctx context.Context, apiKey, model string, httpClient *http.Client) (*Labeler, error) {
	if apiKey == "" {
		return nil, classify.NewServiceError(providerName, "auth", errors.New("api key not configured"))
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, classify.NewServiceError(providerName, "connect", fmt.Errorf("failed to create gemini client: %w", err))
	}
	if model == "" {
		model = DefaultModel
	}
	return &Labeler{client: client, model: model}, nil
}

// Classify sends image with the shared labelling prompt and parses the answer.
func (g *Labeler) Classify(ctx context.Context, image []byte) (classify.Labels, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, newContents(image), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	})
	if err != nil {
		return nil, classify.NewServiceError(providerName, "generate", fmt.Errorf("gemini API request failed: %w", err))
	}
	labels := classify.ParseLabelList(resp.Text())
	if len(labels) == 0 {
		return nil, classify.NewServiceError(providerName, "decode", classify.ErrEmptyResponse)
	}
	return labels, nil
}

func newContents(image []byte) []*genai.Content {
	parts := []*genai.Part{
		genai.NewPartFromBytes(image, http.DetectContentType(image)),
		genai.NewPartFromText(classify.LabelPrompt),
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}
