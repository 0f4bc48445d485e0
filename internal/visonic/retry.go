package visonic

import (
	"context"
	"time"
)

// executeWhile invokes op until its result satisfies pred, waiting delay
// between attempts. An op error counts the same as a result that fails the
// predicate: the loop simply tries again. After limit attempts without a
// satisfying result it returns ErrRetriesExhausted.
//
// The timer is reset after each wait rather than recreated, so the cadence
// stays fixed regardless of how long each invocation of op takes.
func executeWhile[R any](ctx context.Context, op func(context.Context) (R, error), pred func(R) bool, limit int, delay time.Duration) (R, error) {
	var zero R

	timer := time.NewTimer(delay)
	defer timer.Stop()

	for attempt := 1; attempt <= limit; attempt++ {
		r, err := op(ctx)
		if err == nil && pred(r) {
			return r, nil
		}
		if attempt == limit {
			break
		}

		select {
		case <-timer.C:
			timer.Reset(delay)
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}

	return zero, ErrRetriesExhausted
}
