package memo_test

import (
	"testing"

	"github.com/goforj/memo"
	"github.com/goforj/memo/memotest"
)

func TestMemoizeContract(t *testing.T) {
	memotest.RunMemoizerContract(t, func(t *testing.T, fn memo.Func[string, int], ms float64) memo.Func[string, int] {
		m, err := memo.Memoize(fn, ms, memo.WithName(t.Name()))
		if err != nil {
			t.Fatalf("memoize failed: %v", err)
		}
		return m.Func()
	}, memotest.Options{})
}

func TestMemoizeWithResolverContract(t *testing.T) {
	memotest.RunMemoizerContract(t, func(t *testing.T, fn memo.Func[string, int], ms float64) memo.Func[string, int] {
		m, err := memo.MemoizeWithResolver(fn, ms, func(args ...string) (string, error) {
			return args[0], nil
		})
		if err != nil {
			t.Fatalf("memoize failed: %v", err)
		}
		return m.Func()
	}, memotest.Options{})
}
