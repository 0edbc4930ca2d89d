package memo

import (
	"context"
	"time"
)

// Op identifies a memoizer operation reported to observers.
type Op string

const (
	// OpHit is a call answered from a stored entry.
	OpHit Op = "hit"
	// OpMiss is a call that invoked the target and stored its result.
	OpMiss Op = "miss"
	// OpBypass is a call on a zero-timeout memoizer, which never stores results.
	OpBypass Op = "bypass"
	// OpShared is a call that waited on another caller's load of the same key.
	OpShared Op = "shared"
	// OpError is a call that returned a resolver, target or context error.
	OpError Op = "error"
	// OpEvict is an eviction timer removing its entry.
	OpEvict Op = "evict"
	// OpEvictSkip is an eviction timer that found its entry already replaced or gone.
	OpEvictSkip Op = "evict_skip"
)

// Observer receives events for memoizer operations.
// Eviction events are delivered from timer goroutines with a background context.
type Observer interface {
	OnMemoOp(ctx context.Context, name string, op Op, key any, err error, dur time.Duration)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, name string, op Op, key any, err error, dur time.Duration)

// OnMemoOp implements Observer.
func (f ObserverFunc) OnMemoOp(ctx context.Context, name string, op Op, key any, err error, dur time.Duration) {
	if f == nil {
		return
	}
	f(ctx, name, op, key, err, dur)
}
