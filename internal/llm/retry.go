package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RetryPolicy is an explicit retry loop with exponential backoff. Which
// failures get retried is decided by the caller-supplied predicate, so the
// policy stays testable in isolation from the HTTP call itself.
type RetryPolicy struct {
	MaxAttempts int
	MinWait     time.Duration
	MaxWait     time.Duration
}

// Do invokes fn up to MaxAttempts times, sleeping between attempts. Only
// errors accepted by the retryable predicate are attempted again; everything
// else returns immediately. The error of the final attempt is returned as-is.
func (p RetryPolicy) Do(ctx context.Context, logger *zap.Logger, retryable func(error) bool, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn()
		if err == nil || !retryable(err) {
			return err
		}
		if attempt == attempts {
			break
		}

		wait := p.backoff(attempt)
		logger.Warn("Retrying completion request",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
			zap.Duration("wait", wait),
			zap.Error(err),
		)

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return err
		}
	}
	return err
}

// backoff doubles the wait per attempt: MinWait, 2*MinWait, 4*MinWait, ...
// clamped to MaxWait.
func (p RetryPolicy) backoff(attempt int) time.Duration {
	wait := p.MinWait
	if wait <= 0 {
		wait = time.Second
	}
	for i := 1; i < attempt; i++ {
		wait *= 2
		if p.MaxWait > 0 && wait >= p.MaxWait {
			return p.MaxWait
		}
	}
	if p.MaxWait > 0 && wait > p.MaxWait {
		wait = p.MaxWait
	}
	return wait
}
