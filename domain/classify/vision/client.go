// Package vision classifies images with Google Cloud Vision label detection.
package vision

import (
	"context"
	"errors"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"github.com/neha01mittal/datadriven-firesafety/domain/classify"
)

const (
	providerName = "vision"
	maxResults   = 50
)

// LabelDetector implements classify.Classifier with LABEL_DETECTION.
// Vision has no server-side threshold, so scores below Options.Threshold are
// dropped client side.
type LabelDetector struct {
	client *gvision.ImageAnnotatorClient
	opts   classify.Options
}

var _ classify.Classifier = (*LabelDetector)(nil)

// NewLabelDetector creates a detector using Application Default Credentials.
func NewLabelDetector(ctx context.Context, opts classify.Options) (*LabelDetector, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, classify.NewServiceError(providerName, "connect", fmt.Errorf("failed to create vision client: %w", err))
	}
	return &LabelDetector{client: client, opts: opts}, nil
}

// Close releases the underlying gRPC connection.
func (d *LabelDetector) Close() error {
	return d.client.Close()
}

// Classify sends image for label detection.
func (d *LabelDetector) Classify(ctx context.Context, image []byte) (classify.Labels, error) {
	resp, err := d.client.BatchAnnotateImages(ctx, newRequest(image))
	if err != nil {
		return nil, classify.NewServiceError(providerName, "request", fmt.Errorf("vision API request failed: %w", err))
	}
	labels, err := labelsFromResponse(resp, d.opts.Threshold)
	if err != nil {
		return nil, classify.NewServiceError(providerName, "decode", err)
	}
	return labels, nil
}

func newRequest(image []byte) *visionpb.BatchAnnotateImagesRequest {
	return &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: image},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_LABEL_DETECTION, MaxResults: maxResults},
				},
			},
		},
	}
}

// labelsFromResponse keeps annotations scoring at least threshold, in response order.
func labelsFromResponse(resp *visionpb.BatchAnnotateImagesResponse, threshold float64) (classify.Labels, error) {
	if resp == nil || len(resp.Responses) == 0 {
		return nil, classify.ErrEmptyResponse
	}
	r := resp.Responses[0]
	if r.Error != nil {
		return nil, fmt.Errorf("vision API error: %s", r.Error.Message)
	}
	labels := make(classify.Labels, 0, len(r.LabelAnnotations))
	for _, a := range r.LabelAnnotations {
		if a == nil {
			continue
		}
		if a.Description == "" {
			return nil, errors.New("label annotation without description")
		}
		if float64(a.Score) < threshold {
			continue
		}
		labels = append(labels, classify.Label(a.Description))
	}
	if len(labels) == 0 {
		return nil, classify.ErrEmptyResponse
	}
	return labels, nil
}
