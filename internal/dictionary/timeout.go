package dictionary

import (
	"context"
	"time"

	"github.com/abhisek/lexiz/internal/engine"
)

// DefaultFetchTimeout bounds a single external lookup. The resolver treats a
// deadline exceeded like any other miss, so this only caps how long an
// evaluation can stall on its one blocking step.
const DefaultFetchTimeout = 3 * time.Second

// timeoutSource bounds every Fetch of the wrapped source with a deadline.
type timeoutSource struct {
	inner   engine.Source
	timeout time.Duration
}

// WithTimeout decorates src so each Fetch runs under its own deadline in
// addition to whatever deadline the caller's context already carries.
func WithTimeout(src engine.Source, timeout time.Duration) engine.Source {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &timeoutSource{inner: src, timeout: timeout}
}

func (s *timeoutSource) Fetch(ctx context.Context, word string) (*engine.WordEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.inner.Fetch(ctx, word)
}
