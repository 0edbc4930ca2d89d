// Package memofake provides a counting fake target function for tests of code
// that memoizes.
package memofake

import (
	"sync"
	"testing"

	"github.com/goforj/memo"
)

// Fake is a memo.Func stand-in that records how often it was invoked, overall and
// per argument list (keyed with memo.DefaultKey).
type Fake[A, R any] struct {
	mu     sync.Mutex
	result R
	err    error
	calls  map[string]int
	total  int
}

// New creates a Fake that returns result.
func New[A, R any](result R) *Fake[A, R] {
	return &Fake[A, R]{result: result, calls: make(map[string]int)}
}

// Func returns the function to hand to memo.Memoize.
func (f *Fake[A, R]) Func() memo.Func[A, R] {
	return func(args ...A) (R, error) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.total++
		f.calls[memo.DefaultKey(args...)]++
		if f.err != nil {
			var zero R
			return zero, f.err
		}
		return f.result, nil
	}
}

// SetResult changes what subsequent invocations return.
func (f *Fake[A, R]) SetResult(result R) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.result = result
	f.err = nil
}

// SetError makes subsequent invocations fail with err.
func (f *Fake[A, R]) SetError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// Reset clears recorded counts.
func (f *Fake[A, R]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = make(map[string]int)
	f.total = 0
}

// Total returns the number of invocations.
func (f *Fake[A, R]) Total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.total
}

// Count returns invocations with exactly args.
func (f *Fake[A, R]) Count(args ...A) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[memo.DefaultKey(args...)]
}

// AssertTotal verifies the total invocation count.
func (f *Fake[A, R]) AssertTotal(t testing.TB, times int) {
	t.Helper()
	if got := f.Total(); got != times {
		t.Fatalf("expected %d total calls, got %d", times, got)
	}
}

// AssertCalled verifies args were passed the expected number of times.
func (f *Fake[A, R]) AssertCalled(t testing.TB, times int, args ...A) {
	t.Helper()
	if got := f.Count(args...); got != times {
		t.Fatalf("expected call %s %d times, got %d", memo.DefaultKey(args...), times, got)
	}
}

// AssertNotCalled ensures args were never passed.
func (f *Fake[A, R]) AssertNotCalled(t testing.TB, args ...A) {
	t.Helper()
	if got := f.Count(args...); got != 0 {
		t.Fatalf("expected call %s not made, got %d", memo.DefaultKey(args...), got)
	}
}
