// Package retry provides a bounded retry policy with a fixed delay between attempts.
package retry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sgaunet/gitlab-forker/pkg/constants"
)

// ErrRetriesExhausted is matched by every error returned once a policy gave up.
var ErrRetriesExhausted = errors.New("retries exhausted")

var log Logger

// Logger interface defines the logging methods used by the retry policy.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Info(msg string, args ...any)
}

func init() {
	log = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetLogger sets the logger.
func SetLogger(l Logger) {
	if l != nil {
		log = l
	}
}

// ExhaustedError is returned when an operation failed on every allowed attempt.
type ExhaustedError struct {
	// Attempts is the number of times the operation was invoked.
	Attempts int
	// Err is the error of the last attempt, nil when the operation never ran.
	Err error
}

func (e *ExhaustedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed after %d retries", e.Attempts)
	}
	return fmt.Sprintf("failed after %d retries: %v", e.Attempts, e.Err)
}

// Is reports ErrRetriesExhausted as a match.
func (e *ExhaustedError) Is(target error) bool {
	return target == ErrRetriesExhausted
}

func (e *ExhaustedError) Unwrap() error {
	return e.Err
}

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Policy holds how many times an operation is attempted and how long to wait in between.
// The delay is fixed, there is no backoff growth.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
	sleep       SleepFunc
}

// NewPolicy returns a policy making at most maxAttempts attempts separated by delay.
func NewPolicy(maxAttempts int, delay time.Duration) Policy {
	return Policy{
		MaxAttempts: maxAttempts,
		Delay:       delay,
	}
}

// DefaultPolicy returns the policy used when nothing is configured: 3 attempts, 3 seconds apart.
func DefaultPolicy() Policy {
	return NewPolicy(constants.DefaultMaxRetries, constants.DefaultRetryDelaySeconds*time.Second)
}

// WithSleep returns a copy of the policy that waits with fn instead of a timer.
func (p Policy) WithSleep(fn SleepFunc) Policy {
	p.sleep = fn
	return p
}

// Do invokes op until it succeeds or the policy's attempts are used up.
// The result of the first successful attempt is returned immediately.
// When every attempt fails, the returned error is an *ExhaustedError wrapping the last failure.
// A policy with MaxAttempts <= 0 never invokes op and fails straight away.
func Do[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		res, err := op(ctx)
		if err == nil {
			return res, nil
		}
		lastErr = err
		log.Warn("operation failed", "error", err, "attempt", attempt, "maxAttempts", p.MaxAttempts)

		if attempt == p.MaxAttempts {
			break
		}
		if err := p.wait(ctx); err != nil {
			return zero, fmt.Errorf("retry interrupted after attempt %d: %w", attempt, err)
		}
	}

	attempts := max(p.MaxAttempts, 0)
	log.Error("giving up", "attempts", attempts, "error", lastErr)
	return zero, &ExhaustedError{Attempts: attempts, Err: lastErr}
}

func (p Policy) wait(ctx context.Context) error {
	if p.sleep != nil {
		return p.sleep(ctx, p.Delay)
	}
	return sleepContext(ctx, p.Delay)
}

// sleepContext waits for d, returning early with the context error on cancellation.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
