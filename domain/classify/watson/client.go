// Package watson classifies images with the Visual Recognition v3 REST API.
package watson

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/neha01mittal/datadriven-firesafety/domain/classify"
)

const (
	providerName = "watson"

	// DefaultVersion pins the API behaviour the demo was built against.
	DefaultVersion = "2016-05-20"

	headerOptOut = "X-Watson-Learning-Opt-Out"
	maxErrorBody = 4 << 10
)

// Config holds what the client needs to reach the service.
type Config struct {
	BaseURL string // e.g. https://gateway.watsonplatform.net/visual-recognition/api
	Version string
	APIKey  string
	Options classify.Options
}

// Client implements classify.Classifier against the v3 /classify endpoint.
type Client struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

var _ classify.Classifier = (*Client)(nil)

// NewClient returns a Client using the given HTTP client.
func NewClient(cfg Config, client *http.Client, logger *slog.Logger) *Client {
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	return &Client{cfg: cfg, client: client, logger: logger}
}

// Classify uploads image and flattens images → classifiers → classes into labels.
func (c *Client) Classify(ctx context.Context, image []byte) (classify.Labels, error) {
	if c.cfg.APIKey == "" {
		return nil, classify.NewServiceError(providerName, "auth", errors.New("api key not configured"))
	}
	req, err := c.newRequest(ctx, image)
	if err != nil {
		return nil, classify.NewServiceError(providerName, "build request", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, classify.NewServiceError(providerName, "request", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil && c.logger != nil {
			c.logger.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, classify.NewServiceError(providerName, "request", statusError(res))
	}

	var body classifyResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, classify.NewServiceError(providerName, "decode", err)
	}
	labels, err := flatten(body)
	if err != nil {
		return nil, classify.NewServiceError(providerName, "decode", err)
	}
	if c.logger != nil {
		for _, w := range body.Warnings {
			c.logger.Warn("watson warning", "id", w.WarningID, "description", w.Description)
		}
	}
	return labels, nil
}

func (c *Client) newRequest(ctx context.Context, image []byte) (*http.Request, error) {
	params, err := json.Marshal(parameters{Threshold: c.cfg.Options.Threshold})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("images_file", "image.jpg")
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(image); err != nil {
		return nil, err
	}
	if err := mw.WriteField("parameters", string(params)); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("version", c.cfg.Version)
	u := fmt.Sprintf("%s/v3/classify?%s", strings.TrimRight(c.cfg.BaseURL, "/"), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if c.cfg.Options.LearningOptOut {
		req.Header.Set(headerOptOut, "true")
	}
	req.SetBasicAuth("apikey", c.cfg.APIKey)
	return req, nil
}

// flatten maps the typed response field by field. Any error the service
// reports, or a body with no images, fails the whole call so callers never
// see a partially built sequence.
func flatten(body classifyResponse) (classify.Labels, error) {
	if body.Error != nil {
		return nil, fmt.Errorf("service error %d: %s", body.Error.Code, body.Error.Description)
	}
	if len(body.Images) == 0 {
		return nil, classify.ErrEmptyResponse
	}
	var labels classify.Labels
	for _, img := range body.Images {
		if img.Error != nil {
			return nil, fmt.Errorf("image error %d: %s", img.Error.Code, img.Error.Description)
		}
		for _, cl := range img.Classifiers {
			for _, cls := range cl.Classes {
				if cls.Class == "" {
					return nil, errors.New("class entry without name")
				}
				labels = append(labels, classify.Label(cls.Class))
			}
		}
	}
	if len(labels) == 0 {
		return nil, classify.ErrEmptyResponse
	}
	return labels, nil
}

func statusError(res *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	var body classifyResponse
	if json.Unmarshal(b, &body) == nil && body.Error != nil {
		return fmt.Errorf("http %d: %s", res.StatusCode, body.Error.Description)
	}
	msg := strings.TrimSpace(string(b))
	if msg == "" {
		msg = http.StatusText(res.StatusCode)
	}
	return fmt.Errorf("http %d: %s", res.StatusCode, msg)
}
