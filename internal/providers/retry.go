package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// RetryPolicy is the single resilience policy applied to every
// external-provider call: a fixed attempt count with a fixed delay.
// The upstream hosts are intermittently slow rather than down, so
// backoff curves buy nothing here.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
	Logger   *logrus.Logger
}

// Do runs fn until it succeeds or attempts are exhausted. The last
// error is returned wrapped; context cancellation aborts the wait.
func (p RetryPolicy) Do(ctx context.Context, op string, fn func() error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		if p.Logger != nil {
			p.Logger.Warnf("%s failed (attempt %d/%d), retrying in %s: %v", op, attempt, attempts, p.Delay, err)
		}
		select {
		case <-time.After(p.Delay):
		case <-ctx.Done():
			return fmt.Errorf("%s aborted: %w", op, ctx.Err())
		}
	}
	return fmt.Errorf("%s failed after %d attempts: %w", op, attempts, err)
}
