package classify

import (
	"context"
	"errors"
	"fmt"
)

// Label names a concept detected in an image.
type Label string

// Labels is the ordered label sequence returned for one image. Order is the
// provider's; duplicates are kept.
type Labels []Label

// Clone returns an independent copy so consumers cannot alias the original.
func (l Labels) Clone() Labels {
	if l == nil {
		return nil
	}
	out := make(Labels, len(l))
	copy(out, l)
	return out
}

// Strings returns the labels as plain strings.
func (l Labels) Strings() []string {
	out := make([]string, len(l))
	for i, v := range l {
		out[i] = string(v)
	}
	return out
}

// Classifier submits raw image bytes to an external service and returns the
// flattened label sequence.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (Labels, error)
}

// Options are sent with every classification request.
type Options struct {
	Threshold      float64 // minimum confidence for a class to be returned
	LearningOptOut bool    // ask the provider not to retain the submission
}

// DefaultOptions mirrors the settings the demo has always used.
func DefaultOptions() Options {
	return Options{Threshold: 0.1, LearningOptOut: true}
}

// ErrEmptyResponse is wrapped by ServiceError when the provider answered
// without any usable label.
var ErrEmptyResponse = errors.New("no labels in response")

// ServiceError reports a network, authentication or response-shape failure
// from a classification provider.
type ServiceError struct {
	Provider string
	Op       string
	Err      error
}

func (e *ServiceError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewServiceError wraps err; it returns nil for a nil err.
func NewServiceError(provider, op string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{Provider: provider, Op: op, Err: err}
}

// IsServiceError reports whether err carries a ServiceError.
func IsServiceError(err error) bool {
	var se *ServiceError
	return errors.As(err, &se)
}
