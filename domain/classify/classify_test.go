package classify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type classifierFunc func(ctx context.Context, image []byte) (Labels, error)

func (f classifierFunc) Classify(ctx context.Context, image []byte) (Labels, error) {
	return f(ctx, image)
}

func TestParseLabelList(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want Labels
	}{
		{name: "comma separated", in: "fire engine, truck, wheeled vehicle", want: Labels{"fire engine", "truck", "wheeled vehicle"}},
		{name: "numbered lines", in: "1. fire engine\n2) truck\n3. wheeled vehicle.", want: Labels{"fire engine", "truck", "wheeled vehicle"}},
		{name: "bullets and quotes", in: "- \"smoke\"\n* 'flame'\n• person", want: Labels{"smoke", "flame", "person"}},
		{name: "leading numbers kept", in: "2.5 ton truck, 4x4 vehicle, 3) ladder", want: Labels{"2.5 ton truck", "4x4 vehicle", "ladder"}},
		{name: "duplicates kept", in: "truck;truck", want: Labels{"truck", "truck"}},
		{name: "empty", in: " , \n ", want: Labels{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseLabelList(tc.in))
		})
	}
}

func TestLabels_CloneIsIndependent(t *testing.T) {
	orig := Labels{"a", "b"}
	c := orig.Clone()
	c[0] = "z"
	assert.Equal(t, Label("a"), orig[0])
	assert.Nil(t, Labels(nil).Clone())
}

func TestServiceError_Unwrap(t *testing.T) {
	base := errors.New("boom")
	err := NewServiceError("watson", "decode", base)
	assert.True(t, errors.Is(err, base))
	assert.True(t, IsServiceError(err))
	assert.EqualError(t, err, "watson decode: boom")
	assert.Nil(t, NewServiceError("watson", "decode", nil))
}

func TestWithTimeout_WrapsPlainErrors(t *testing.T) {
	inner := classifierFunc(func(ctx context.Context, image []byte) (Labels, error) {
		return nil, errors.New("dial tcp: refused")
	})
	_, err := WithTimeout(inner, "watson", time.Second, nil).Classify(context.Background(), []byte("x"))
	require.Error(t, err)
	assert.True(t, IsServiceError(err))
}

func TestWithTimeout_EmptyResultIsServiceError(t *testing.T) {
	inner := classifierFunc(func(ctx context.Context, image []byte) (Labels, error) {
		return Labels{}, nil
	})
	_, err := WithTimeout(inner, "ollama", time.Second, nil).Classify(context.Background(), []byte("x"))
	require.Error(t, err)
	assert.True(t, IsServiceError(err))
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestWithTimeout_AppliesDeadline(t *testing.T) {
	inner := classifierFunc(func(ctx context.Context, image []byte) (Labels, error) {
		_, ok := ctx.Deadline()
		if !ok {
			t.Error("expected deadline on context")
		}
		<-ctx.Done()
		return nil, ctx.Err()
	})
	_, err := WithTimeout(inner, "watson", 20*time.Millisecond, nil).Classify(context.Background(), []byte("x"))
	require.Error(t, err)
	assert.True(t, IsServiceError(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWithTimeout_PassesLabelsThrough(t *testing.T) {
	want := Labels{"fire engine", "truck", "wheeled vehicle"}
	inner := classifierFunc(func(ctx context.Context, image []byte) (Labels, error) {
		return want, nil
	})
	got, err := WithTimeout(inner, "watson", time.Second, nil).Classify(context.Background(), []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
