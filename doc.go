// Package memo memoizes functions with a fixed time-to-live per cached result.
//
// A Memoizer wraps a Func and keys each call either by its argument list (see
// DefaultKey) or by a caller supplied Resolver. The first call for a key invokes the
// target and stores the result; later calls for the same key return the stored value
// until the timeout, counted from the moment the result was stored, has elapsed. Each
// stored entry is removed by its own timer. Errors are never cached.
//
// Concurrent calls for a key that is being loaded wait for that load instead of
// invoking the target again.
//
//	fetch := func(ids ...int) (User, error) { return db.User(ids[0]) }
//	users, err := memo.Memoize(fetch, 1500, memo.WithName("users"))
//	if err != nil {
//		return err
//	}
//	u, err := users.Call(42)
//
// Eviction timers keep their memoizer reachable until they fire, so a dropped
// memoizer is collected at most one timeout after its last store.
package memo
