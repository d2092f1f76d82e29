package poll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"
)

// Condition reports whether the awaited state has been reached. It must not
// fail: transient problems are reported as false.
type Condition func(ctx context.Context) bool

// Options configures a single wait.
type Options struct {
	// Name describes what is awaited, for errors.
	Name string

	Interval time.Duration
	Timeout  time.Duration

	// OnAttempt is called after every unsuccessful check.
	OnAttempt func(attempt int, elapsed time.Duration)

	// OnSuccess is called exactly once when the condition holds.
	OnSuccess func(elapsed time.Duration)

	// OnFailure is called when the timeout elapses and its error is
	// returned. If nil a *TimeoutError is returned.
	OnFailure func(timeout time.Duration) error
}

// TimeoutError is returned when a condition does not hold in time.
type TimeoutError struct {
	Name    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("timed out after %v waiting", e.Timeout)
	}
	return fmt.Sprintf("timed out after %v waiting for %s", e.Timeout, e.Name)
}

// IsTimeout reports whether err wraps a TimeoutError.
func IsTimeout(err error) bool {
	var timeoutErr *TimeoutError
	return errors.As(err, &timeoutErr)
}

// Until checks cond immediately and then every opts.Interval until it holds
// or opts.Timeout elapses. Cancelling ctx aborts the wait with ctx's error
// and neither callback is called.
func Until(ctx context.Context, opts Options, cond Condition) error {
	if opts.Interval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %v", opts.Interval)
	}
	if opts.Timeout <= 0 {
		return fmt.Errorf("poll timeout must be positive, got %v", opts.Timeout)
	}

	start := time.Now()
	attempt := 0

	err := wait.PollUntilContextTimeout(ctx, opts.Interval, opts.Timeout, true, func(ctx context.Context) (bool, error) {
		attempt++
		if cond(ctx) {
			return true, nil
		}
		if opts.OnAttempt != nil {
			opts.OnAttempt(attempt, time.Since(start))
		}
		return false, nil
	})

	if err == nil {
		if opts.OnSuccess != nil {
			opts.OnSuccess(time.Since(start))
		}
		return nil
	}

	if ctx.Err() != nil {
		return fmt.Errorf("wait for %s aborted: %w", opts.Name, ctx.Err())
	}

	if opts.OnFailure != nil {
		return opts.OnFailure(opts.Timeout)
	}
	return &TimeoutError{Name: opts.Name, Timeout: opts.Timeout}
}
