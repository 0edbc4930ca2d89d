package memo

import (
	"fmt"
	"strings"
)

// DefaultKey renders an argument list as the cache key used when no resolver is given.
// Each argument is written with its dynamic type and Go-syntax value, so equal argument
// lists map to equal keys. Arguments whose printed form does not distinguish them
// (funcs, channels, values with a custom GoString) need a Resolver instead.
// @group Keys
//
// Example: default key
//
//	fmt.Println(memo.DefaultKey[any](1, "a")) // (int(1), string("a"))
func DefaultKey[A any](args ...A) string {
	if len(args) == 0 {
		return "()"
	}
	var b strings.Builder
	b.WriteByte('(')
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%T(%#v)", arg, arg)
	}
	b.WriteByte(')')
	return b.String()
}

func defaultResolver[A any](args ...A) (string, error) {
	return DefaultKey(args...), nil
}
