// Package memotest provides reusable contract tests for memoizer constructors.
//
// Example pattern:
//
//	func TestUserLookupContract(t *testing.T) {
//		memotest.RunMemoizerContract(t, func(t *testing.T, fn memo.Func[string, int], ms float64) memo.Func[string, int] {
//			m, err := memo.Memoize(fn, ms, memo.WithName(t.Name()))
//			if err != nil {
//				t.Fatalf("memoize: %v", err)
//			}
//			return m.Func()
//		}, memotest.Options{Timeout: 100 * time.Millisecond})
//	}
package memotest
