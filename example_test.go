package memo_test

import (
	"errors"
	"fmt"

	"github.com/goforj/memo"
)

func ExampleMemoize() {
	calls := 0
	square := func(n ...int) (int, error) {
		calls++
		return n[0] * n[0], nil
	}

	m, err := memo.Memoize(square, 1000)
	if err != nil {
		fmt.Println(err)
		return
	}
	a, _ := m.Call(4)
	b, _ := m.Call(4)
	fmt.Println(a, b, calls)
	// Output: 16 16 1
}

func ExampleMemoizeWithResolver() {
	calls := 0
	greet := func(args ...string) (string, error) {
		calls++
		return "hello " + args[0], nil
	}

	// Key by the first argument only; the second is ignored for caching.
	m, _ := memo.MemoizeWithResolver(greet, 1000, func(args ...string) (string, error) {
		return args[0], nil
	})
	first, _ := m.Call("ada", "formal")
	second, _ := m.Call("ada", "casual")
	fmt.Println(first, "|", second, "|", calls)
	// Output: hello ada | hello ada | 1
}

func ExampleParseTimeout() {
	d, err := memo.ParseTimeout(250)
	fmt.Println(d, err)

	_, err = memo.ParseTimeout("250")
	fmt.Println(errors.Is(err, memo.ErrInvalidTimeoutType))
	// Output:
	// 250ms <nil>
	// true
}

func ExampleDefaultKey() {
	fmt.Println(memo.DefaultKey[any](1, "a"))
	// Output: (int(1), string("a"))
}
