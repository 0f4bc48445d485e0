package visonic

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestExecuteWhileFirstAttemptSatisfies(t *testing.T) {
	calls := 0
	op := func(ctx context.Context) (int, error) {
		calls++
		return 42, nil
	}

	got, err := executeWhile(context.Background(), op, func(r int) bool { return r == 42 }, 5, time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestExecuteWhileStopsAtFirstSatisfyingAttempt(t *testing.T) {
	calls := 0
	op := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	got, err := executeWhile(context.Background(), op, func(r int) bool { return r == 3 }, 5, time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestExecuteWhileExhaustsAfterLimitAttempts(t *testing.T) {
	calls := 0
	op := func(ctx context.Context) (int, error) {
		calls++
		return 0, nil
	}

	_, err := executeWhile(context.Background(), op, func(r int) bool { return false }, 5, time.Millisecond)
	if !errors.Is(err, ErrRetriesExhausted) {
		t.Fatalf("expected ErrRetriesExhausted, got %v", err)
	}
	if calls != 5 {
		t.Fatalf("expected 5 calls, got %d", calls)
	}
}

func TestExecuteWhileRetriesOperationErrors(t *testing.T) {
	calls := 0
	op := func(ctx context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 7, nil
	}

	got, err := executeWhile(context.Background(), op, func(r int) bool { return r == 7 }, 5, time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestExecuteWhileWaitsBetweenAttempts(t *testing.T) {
	delay := 50 * time.Millisecond
	op := func(ctx context.Context) (int, error) {
		return 0, nil
	}

	start := time.Now()
	_, err := executeWhile(context.Background(), op, func(r int) bool { return false }, 3, delay)
	elapsed := time.Since(start)

	if !errors.Is(err, ErrRetriesExhausted) {
		t.Fatalf("expected ErrRetriesExhausted, got %v", err)
	}
	// 3 attempts means 2 waits; the last attempt has no trailing wait.
	if elapsed < 2*delay {
		t.Fatalf("expected at least %v of waiting, got %v", 2*delay, elapsed)
	}
	if elapsed > 10*delay {
		t.Fatalf("waited too long: %v", elapsed)
	}
}

func TestExecuteWhileHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	op := func(ctx context.Context) (int, error) {
		calls++
		cancel()
		return 0, nil
	}

	_, err := executeWhile(ctx, op, func(r int) bool { return false }, 5, time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call before cancellation, got %d", calls)
	}
}
