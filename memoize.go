package memo

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Func is a function whose results can be memoized.
type Func[A, R any] func(args ...A) (R, error)

// Resolver derives a cache key from the arguments of a call.
type Resolver[A any, K comparable] func(args ...A) (K, error)

// Memoizer wraps a Func and caches each successful result under its key until the
// timeout elapses. It is safe for concurrent use.
type Memoizer[A any, K comparable, R any] struct {
	fn       Func[A, R]
	resolve  Resolver[A, K]
	timeout  time.Duration
	entries  *entryStore[K, R]
	name     string
	observer Observer
	logger   *zerolog.Logger
}

// Memoize wraps fn so results are cached by their argument list for timeoutMillis
// milliseconds after they are stored.
// @group Construction
//
// Example: memoize a lookup for one second
//
//	lookup := func(ids ...int) (string, error) { return fmt.Sprint("user-", ids[0]), nil }
//	m, err := memo.Memoize(lookup, 1000)
//	if err != nil {
//		return err
//	}
//	name, _ := m.Call(42)
//	fmt.Println(name) // user-42
func Memoize[A, R any, T Millis](fn Func[A, R], timeoutMillis T, opts ...Option) (*Memoizer[A, string, R], error) {
	return newMemoizer(fn, timeoutMillis, Resolver[A, string](defaultResolver[A]), opts)
}

// MemoizeWithResolver is Memoize with a caller supplied key derivation.
// The resolver receives exactly the arguments of each call.
// @group Construction
//
// Example: key by the first argument only
//
//	m, err := memo.MemoizeWithResolver(fetch, 5000, func(args ...string) (string, error) {
//		return args[0], nil
//	})
func MemoizeWithResolver[A any, K comparable, R any, T Millis](fn Func[A, R], timeoutMillis T, resolver Resolver[A, K], opts ...Option) (*Memoizer[A, K, R], error) {
	return newMemoizer(fn, timeoutMillis, resolver, opts)
}

func newMemoizer[A any, K comparable, R any, T Millis](fn Func[A, R], timeoutMillis T, resolver Resolver[A, K], opts []Option) (*Memoizer[A, K, R], error) {
	timeout, err := millisToDuration(timeoutMillis)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, ErrInvalidTargetFunction
	}
	if resolver == nil {
		return nil, ErrInvalidResolverFunction
	}
	cfg := buildConfig(opts)
	return &Memoizer[A, K, R]{
		fn:       fn,
		resolve:  resolver,
		timeout:  timeout,
		entries:  newEntryStore[K, R](),
		name:     cfg.Name,
		observer: cfg.Observer,
		logger:   cfg.Logger,
	}, nil
}

// Timeout reports how long each result stays cached.
func (m *Memoizer[A, K, R]) Timeout() time.Duration {
	return m.timeout
}

// Name reports the name given with WithName.
func (m *Memoizer[A, K, R]) Name() string {
	return m.name
}

// Func returns the memoized function with the same signature as the wrapped one.
// @group Calls
//
// Example: drop-in replacement
//
//	m, _ := memo.Memoize(lookup, 1000)
//	lookup = m.Func()
func (m *Memoizer[A, K, R]) Func() Func[A, R] {
	return m.Call
}

// Call returns the cached result for args, invoking the target on a miss.
// @group Calls
func (m *Memoizer[A, K, R]) Call(args ...A) (R, error) {
	return m.CallCtx(context.Background(), args...)
}

// CallCtx is Call with a context bounding the wait on another caller's load of the
// same key. The target itself is not interrupted.
// @group Calls
func (m *Memoizer[A, K, R]) CallCtx(ctx context.Context, args ...A) (R, error) {
	var zero R
	start := time.Now()

	key, err := m.resolve(args...)
	if err != nil {
		m.observe(ctx, OpError, nil, err, start)
		return zero, err
	}

	if m.timeout <= 0 {
		value, err := m.fn(args...)
		if err != nil {
			m.observe(ctx, OpError, key, err, start)
			return zero, err
		}
		m.observe(ctx, OpBypass, key, nil, start)
		return value, nil
	}

	e, state := m.entries.acquire(key, start)
	switch state {
	case lookupHit:
		m.observe(ctx, OpHit, key, nil, start)
		return e.value, nil
	case lookupShared:
		select {
		case <-e.done:
		case <-ctx.Done():
			m.observe(ctx, OpError, key, ctx.Err(), start)
			return zero, ctx.Err()
		}
		if e.err != nil {
			m.observe(ctx, OpError, key, e.err, start)
			return zero, e.err
		}
		m.observe(ctx, OpShared, key, nil, start)
		return e.value, nil
	}
	return m.load(ctx, key, e, args, start)
}

func (m *Memoizer[A, K, R]) load(ctx context.Context, key K, e *entry[R], args []A, start time.Time) (R, error) {
	var zero R
	finished := false
	defer func() {
		if finished {
			return
		}
		m.entries.abandon(key, e, ErrTargetPanicked)
		m.logger.Warn().Str("memo", m.name).Interface("key", key).Msg("target panicked; entry discarded")
	}()

	value, err := m.fn(args...)
	finished = true
	if err != nil {
		m.entries.abandon(key, e, err)
		m.observe(ctx, OpError, key, err, start)
		return zero, err
	}

	m.entries.fill(key, e, value, m.timeout, m.expired)
	m.logger.Debug().Str("memo", m.name).Interface("key", key).Dur("ttl", m.timeout).Msg("entry stored")
	m.observe(ctx, OpMiss, key, nil, start)
	return value, nil
}

func (m *Memoizer[A, K, R]) expired(key K, evicted bool) {
	op := OpEvict
	if evicted {
		m.logger.Debug().Str("memo", m.name).Interface("key", key).Msg("entry evicted")
	} else {
		op = OpEvictSkip
		m.logger.Debug().Str("memo", m.name).Interface("key", key).Msg("eviction skipped; entry already replaced")
	}
	if m.observer != nil {
		m.observer.OnMemoOp(context.Background(), m.name, op, key, nil, m.timeout)
	}
}

func (m *Memoizer[A, K, R]) observe(ctx context.Context, op Op, key any, err error, start time.Time) {
	if m.observer == nil {
		return
	}
	m.observer.OnMemoOp(ctx, m.name, op, key, err, time.Since(start))
}
