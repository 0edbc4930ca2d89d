package memotest

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/goforj/memo"
)

// Options configures the memoizer contract checks.
type Options struct {
	// Timeout is the memoization timeout handed to the factory. Defaults to 50ms.
	Timeout time.Duration
	// ExpiryWait is how long the suite sleeps for an entry to expire. Defaults to
	// Timeout plus 60ms.
	ExpiryWait time.Duration
	// Concurrency is the number of goroutines in the shared-load check. Defaults to 16.
	Concurrency int
	// SkipSharedLoad disables the check that concurrent callers share one invocation.
	SkipSharedLoad bool
}

// Factory builds a memoized version of fn with the given timeout in milliseconds.
type Factory func(t *testing.T, fn memo.Func[string, int], timeoutMillis float64) memo.Func[string, int]

// RunMemoizerContract runs the memoization contract against memoizers built by mk.
func RunMemoizerContract(t *testing.T, mk Factory, opts Options) {
	t.Helper()

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 50 * time.Millisecond
	}
	wait := opts.ExpiryWait
	if wait <= 0 {
		wait = timeout + 60*time.Millisecond
	}
	workers := opts.Concurrency
	if workers <= 0 {
		workers = 16
	}
	millis := float64(timeout) / float64(time.Millisecond)

	t.Run("cached within timeout", func(t *testing.T) {
		var calls atomic.Int64
		fn := mk(t, func(args ...string) (int, error) {
			return int(calls.Add(1)), nil
		}, millis)

		first := mustCall(t, fn, "abc")
		for i := 0; i < 5; i++ {
			if got := mustCall(t, fn, "abc"); got != first {
				t.Fatalf("expected cached value %d, got %d", first, got)
			}
		}
		if n := calls.Load(); n != 1 {
			t.Fatalf("expected 1 target call, got %d", n)
		}
	})

	t.Run("distinct keys", func(t *testing.T) {
		var calls atomic.Int64
		fn := mk(t, func(args ...string) (int, error) {
			return int(calls.Add(1)), nil
		}, millis)

		a := mustCall(t, fn, "abc")
		b := mustCall(t, fn, "xyz")
		if a == b {
			t.Fatalf("expected independent results, both %d", a)
		}
		mustCall(t, fn, "abc")
		if n := calls.Load(); n != 2 {
			t.Fatalf("expected 2 target calls, got %d", n)
		}
	})

	t.Run("expires after timeout", func(t *testing.T) {
		var calls atomic.Int64
		fn := mk(t, func(args ...string) (int, error) {
			calls.Add(1)
			return 5, nil
		}, millis)

		mustCall(t, fn, "abc")
		time.Sleep(wait)
		if got := mustCall(t, fn, "abc"); got != 5 {
			t.Fatalf("expected 5 after expiry, got %d", got)
		}
		if n := calls.Load(); n != 2 {
			t.Fatalf("expected target to run again after expiry, got %d calls", n)
		}
	})

	t.Run("errors are not cached", func(t *testing.T) {
		boom := errors.New("boom")
		var calls atomic.Int64
		fn := mk(t, func(args ...string) (int, error) {
			if calls.Add(1) == 1 {
				return 0, boom
			}
			return 7, nil
		}, millis)

		if _, err := fn("k"); !errors.Is(err, boom) {
			t.Fatalf("expected target error, got %v", err)
		}
		if got := mustCall(t, fn, "k"); got != 7 {
			t.Fatalf("expected retry to store 7, got %d", got)
		}
		mustCall(t, fn, "k")
		if n := calls.Load(); n != 2 {
			t.Fatalf("expected 2 target calls, got %d", n)
		}
	})

	if opts.SkipSharedLoad {
		return
	}

	t.Run("concurrent callers share a load", func(t *testing.T) {
		var calls atomic.Int64
		release := make(chan struct{})
		fn := mk(t, func(args ...string) (int, error) {
			calls.Add(1)
			<-release
			return 9, nil
		}, millis*20)

		var g errgroup.Group
		for i := 0; i < workers; i++ {
			g.Go(func() error {
				got, err := fn("hot")
				if err != nil {
					return err
				}
				if got != 9 {
					return errors.New("unexpected shared result")
				}
				return nil
			})
		}
		time.Sleep(20 * time.Millisecond)
		close(release)
		if err := g.Wait(); err != nil {
			t.Fatalf("concurrent call failed: %v", err)
		}
		if n := calls.Load(); n != 1 {
			t.Fatalf("expected one shared invocation, got %d", n)
		}
	})
}

func mustCall(t *testing.T, fn memo.Func[string, int], args ...string) int {
	t.Helper()
	got, err := fn(args...)
	if err != nil {
		t.Fatalf("call %v failed: %v", args, err)
	}
	return got
}
