package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sgaunet/gitlab-forker/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var errTransient = errors.New("transient failure")

// sleepRecorder counts the sleeps requested by a policy without waiting.
type sleepRecorder struct {
	calls  int
	delays []time.Duration
}

func (s *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	s.calls++
	s.delays = append(s.delays, d)
	return nil
}

func TestDo_SuccessFirstAttempt(t *testing.T) {
	rec := &sleepRecorder{}
	p := retry.NewPolicy(3, 3*time.Second).WithSleep(rec.sleep)

	calls := 0
	res, err := retry.Do(context.Background(), p, func(_ context.Context) (string, error) {
		calls++
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", res)
	assert.Equal(t, 1, calls)
	assert.Zero(t, rec.calls, "no sleep expected after a success")
}

func TestDo_SuccessAfterFailures(t *testing.T) {
	rec := &sleepRecorder{}
	p := retry.NewPolicy(3, 3*time.Second).WithSleep(rec.sleep)

	calls := 0
	res, err := retry.Do(context.Background(), p, func(_ context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errTransient
		}
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, res)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, rec.calls)
	assert.Equal(t, []time.Duration{3 * time.Second, 3 * time.Second}, rec.delays, "delay must stay fixed")
}

func TestDo_AlwaysFailing(t *testing.T) {
	rec := &sleepRecorder{}
	p := retry.NewPolicy(3, time.Second).WithSleep(rec.sleep)

	calls := 0
	_, err := retry.Do(context.Background(), p, func(_ context.Context) (struct{}, error) {
		calls++
		return struct{}{}, errTransient
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, retry.ErrRetriesExhausted)
	assert.ErrorIs(t, err, errTransient, "last failure should stay reachable")
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, rec.calls)

	var exhausted *retry.ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 3, exhausted.Attempts)
	assert.Contains(t, err.Error(), "failed after 3 retries")
}

func TestDo_NonPositiveAttempts(t *testing.T) {
	for _, attempts := range []int{0, -1, -10} {
		rec := &sleepRecorder{}
		p := retry.NewPolicy(attempts, time.Second).WithSleep(rec.sleep)

		calls := 0
		_, err := retry.Do(context.Background(), p, func(_ context.Context) (int, error) {
			calls++
			return 1, nil
		})

		require.ErrorIs(t, err, retry.ErrRetriesExhausted)
		assert.Zero(t, calls, "operation must not run with %d attempts", attempts)
		assert.Zero(t, rec.calls)

		var exhausted *retry.ExhaustedError
		require.ErrorAs(t, err, &exhausted)
		assert.NoError(t, exhausted.Err)
	}
}

func TestDo_ContextCancelledDuringSleep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := retry.NewPolicy(5, time.Hour)

	calls := 0
	_, err := retry.Do(ctx, p, func(_ context.Context) (int, error) {
		calls++
		cancel()
		return 0, errTransient
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, retry.ErrRetriesExhausted)
	assert.Equal(t, 1, calls)
}

func TestDo_RealSleep(t *testing.T) {
	p := retry.NewPolicy(2, 10*time.Millisecond)

	start := time.Now()
	_, err := retry.Do(context.Background(), p, func(_ context.Context) (int, error) {
		return 0, errTransient
	})

	require.ErrorIs(t, err, retry.ErrRetriesExhausted)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestDefaultPolicy(t *testing.T) {
	p := retry.DefaultPolicy()
	assert.Equal(t, 3, p.MaxAttempts)
	assert.Equal(t, 3*time.Second, p.Delay)
}

func TestDoProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxAttempts := rapid.IntRange(1, 10).Draw(t, "maxAttempts")
		// 0 means the operation never succeeds
		succeedAt := rapid.IntRange(0, 12).Draw(t, "succeedAt")

		rec := &sleepRecorder{}
		p := retry.NewPolicy(maxAttempts, time.Second).WithSleep(rec.sleep)

		calls := 0
		res, err := retry.Do(context.Background(), p, func(_ context.Context) (int, error) {
			calls++
			if succeedAt != 0 && calls == succeedAt {
				return calls, nil
			}
			return 0, errTransient
		})

		if succeedAt != 0 && succeedAt <= maxAttempts {
			// Property: success at attempt k stops at k with k-1 sleeps
			if err != nil {
				t.Fatalf("expected success at attempt %d, got %v", succeedAt, err)
			}
			if res != succeedAt || calls != succeedAt || rec.calls != succeedAt-1 {
				t.Fatalf("res=%d calls=%d sleeps=%d, want %d/%d/%d", res, calls, rec.calls, succeedAt, succeedAt, succeedAt-1)
			}
			return
		}

		// Property: exhaustion makes exactly maxAttempts calls and maxAttempts-1 sleeps
		if !errors.Is(err, retry.ErrRetriesExhausted) {
			t.Fatalf("expected exhaustion error, got %v", err)
		}
		if calls != maxAttempts || rec.calls != maxAttempts-1 {
			t.Fatalf("calls=%d sleeps=%d, want %d/%d", calls, rec.calls, maxAttempts, maxAttempts-1)
		}
	})
}
