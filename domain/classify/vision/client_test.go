package vision

import (
	"testing"

	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neha01mittal/datadriven-firesafety/domain/classify"
)

func TestNewRequest_AsksForLabels(t *testing.T) {
	req := newRequest([]byte("img"))
	require.Len(t, req.Requests, 1)
	assert.Equal(t, []byte("img"), req.Requests[0].Image.Content)
	require.Len(t, req.Requests[0].Features, 1)
	assert.Equal(t, visionpb.Feature_LABEL_DETECTION, req.Requests[0].Features[0].Type)
}

func TestLabelsFromResponse(t *testing.T) {
	resp := &visionpb.BatchAnnotateImagesResponse{
		Responses: []*visionpb.AnnotateImageResponse{
			{
				LabelAnnotations: []*visionpb.EntityAnnotation{
					{Description: "Fire engine", Score: 0.97},
					{Description: "Vehicle", Score: 0.9},
					{Description: "Smoke", Score: 0.05},
					{Description: "Truck", Score: 0.4},
				},
			},
		},
	}
	labels, err := labelsFromResponse(resp, 0.1)
	require.NoError(t, err)
	assert.Equal(t, classify.Labels{"Fire engine", "Vehicle", "Truck"}, labels)
}

func TestLabelsFromResponse_Failures(t *testing.T) {
	testCases := []struct {
		name string
		resp *visionpb.BatchAnnotateImagesResponse
	}{
		{name: "nil", resp: nil},
		{name: "no responses", resp: &visionpb.BatchAnnotateImagesResponse{}},
		{name: "no annotations", resp: &visionpb.BatchAnnotateImagesResponse{Responses: []*visionpb.AnnotateImageResponse{{}}}},
		{name: "all below threshold", resp: &visionpb.BatchAnnotateImagesResponse{Responses: []*visionpb.AnnotateImageResponse{
			{LabelAnnotations: []*visionpb.EntityAnnotation{{Description: "Smoke", Score: 0.01}}},
		}}},
		{name: "missing description", resp: &visionpb.BatchAnnotateImagesResponse{Responses: []*visionpb.AnnotateImageResponse{
			{LabelAnnotations: []*visionpb.EntityAnnotation{{Description: "Truck", Score: 0.9}, {Score: 0.8}}},
		}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			labels, err := labelsFromResponse(tc.resp, 0.1)
			require.Error(t, err)
			assert.Nil(t, labels)
		})
	}
}
