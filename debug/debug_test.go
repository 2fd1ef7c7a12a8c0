package debug

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestLoggersEmitAndStop(t *testing.T) {
	out := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(out, nil))
	ctx, cancel := context.WithCancel(context.Background())
	StartGoroutineLogger(ctx, 5*time.Millisecond, logger)
	StartMemLogger(ctx, 5*time.Millisecond, logger)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s := out.String()
		if strings.Contains(s, "goroutine-stacks") && strings.Contains(s, "memstats") {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	s := out.String()
	if !strings.Contains(s, `"goroutine-stacks"`) || !strings.Contains(s, `"heap_alloc"`) || !strings.Contains(s, `"memstats"`) {
		t.Fatalf("expected both loggers to emit, got %s", s)
	}
}

func TestNilLoggerIsNoop(t *testing.T) {
	StartGoroutineLogger(context.Background(), time.Millisecond, nil)
	StartMemLogger(context.Background(), time.Millisecond, nil)
}
