package memo

import (
	"sync"
	"time"
)

type lookup int

const (
	lookupLoad lookup = iota
	lookupHit
	lookupShared
)

// entry holds one memoized result. Fields other than done are guarded by the
// owning store's mutex until ready is set; after that value and expiresAt are
// never written again.
type entry[R any] struct {
	gen       uint64
	value     R
	err       error
	ready     bool
	waiters   int
	expiresAt time.Time
	done      chan struct{}
}

// entryStore is the key to entry map shared by callers and eviction timers.
type entryStore[K comparable, R any] struct {
	mu    sync.Mutex
	gen   uint64
	items map[K]*entry[R]
}

func newEntryStore[K comparable, R any]() *entryStore[K, R] {
	return &entryStore[K, R]{items: make(map[K]*entry[R])}
}

// acquire returns the entry for key and how the caller should treat it. When the
// result is lookupLoad the caller owns a fresh pending entry and must finish it
// with fill or abandon.
func (s *entryStore[K, R]) acquire(key K, now time.Time) (*entry[R], lookup) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.items[key]; ok {
		if !e.ready {
			e.waiters++
			return e, lookupShared
		}
		if now.Before(e.expiresAt) {
			return e, lookupHit
		}
		// Lapsed; its timer has not run yet and will find a different generation.
		delete(s.items, key)
	}

	s.gen++
	e := &entry[R]{gen: s.gen, done: make(chan struct{})}
	s.items[key] = e
	return e, lookupLoad
}

// fill publishes value for a pending entry and schedules its eviction.
// expired is called from the timer goroutine with whether the entry was removed.
func (s *entryStore[K, R]) fill(key K, e *entry[R], value R, ttl time.Duration, expired func(key K, evicted bool)) {
	s.mu.Lock()
	e.value = value
	e.ready = true
	e.expiresAt = time.Now().Add(ttl)
	gen := e.gen
	s.mu.Unlock()
	close(e.done)

	time.AfterFunc(ttl, func() {
		evicted := s.expire(key, gen)
		if expired != nil {
			expired(key, evicted)
		}
	})
}

// abandon drops a pending entry without storing anything and releases its waiters.
func (s *entryStore[K, R]) abandon(key K, e *entry[R], err error) {
	s.mu.Lock()
	if cur, ok := s.items[key]; ok && cur == e {
		delete(s.items, key)
	}
	e.err = err
	s.mu.Unlock()
	close(e.done)
}

// expire removes key only while it still maps to generation gen.
func (s *entryStore[K, R]) expire(key K, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[key]
	if !ok || e.gen != gen {
		return false
	}
	delete(s.items, key)
	return true
}

// waiting reports how many callers have joined the pending load for key.
func (s *entryStore[K, R]) waiting(key K) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.items[key]; ok && !e.ready {
		return e.waiters
	}
	return 0
}

func (s *entryStore[K, R]) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
