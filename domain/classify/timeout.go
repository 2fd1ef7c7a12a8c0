package classify

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// timeoutClassifier bounds every call with a deadline and normalises failures
// into ServiceError.
type timeoutClassifier struct {
	next     Classifier
	provider string
	timeout  time.Duration
	logger   *slog.Logger
}

// WithTimeout wraps next so each Classify call runs under its own deadline.
// Errors that are not already a ServiceError are wrapped in one, and a
// successful but empty answer is reported as ErrEmptyResponse.
func WithTimeout(next Classifier, provider string, timeout time.Duration, logger *slog.Logger) Classifier {
	return &timeoutClassifier{next: next, provider: provider, timeout: timeout, logger: logger}
}

func (c *timeoutClassifier) Classify(ctx context.Context, image []byte) (Labels, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	start := time.Now()
	labels, err := c.next.Classify(ctx, image)
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.logDeadline(elapsed)
		}
		if !IsServiceError(err) {
			err = NewServiceError(c.provider, "classify", err)
		}
		if c.logger != nil {
			c.logger.Error("classify failed", "provider", c.provider, "elapsed", elapsed, "error", err)
		}
		return nil, err
	}
	if len(labels) == 0 {
		err := NewServiceError(c.provider, "classify", ErrEmptyResponse)
		if c.logger != nil {
			c.logger.Error("classify failed", "provider", c.provider, "elapsed", elapsed, "error", err)
		}
		return nil, err
	}
	if c.logger != nil {
		c.logger.Info("classified", "provider", c.provider, "labels", len(labels), "elapsed", elapsed)
		c.logger.Debug("labels", "values", labels.Strings())
	}
	return labels, nil
}

func (c *timeoutClassifier) logDeadline(elapsed time.Duration) {
	if c.logger != nil {
		c.logger.Warn("classify deadline exceeded", "provider", c.provider, "timeout", c.timeout, "elapsed", elapsed)
	}
}
