package httpapi

import (
	"context"
	"time"
)

// Progress describes where a dispatch is in its retry loop. Backoff is set
// while the dispatcher waits before the next attempt.
type Progress struct {
	Method      string
	Path        string
	Attempt     int
	MaxAttempts int
	Backoff     time.Duration
}

type progressKey struct{}

// WithProgress returns a context whose dispatches report to fn before every
// attempt and before every backoff wait. fn runs on the dispatching goroutine.
func WithProgress(ctx context.Context, fn func(Progress)) context.Context {
	if fn == nil {
		return ctx
	}
	return context.WithValue(ctx, progressKey{}, fn)
}

func reportProgress(ctx context.Context, p Progress) {
	if fn, ok := ctx.Value(progressKey{}).(func(Progress)); ok {
		fn(p)
	}
}
