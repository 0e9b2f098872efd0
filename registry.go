package rx

import (
	"slices"
	"sync"
)

// entry pairs a registered callback with the token identifying it.
type entry[T any] struct {
	token uint64
	fn    func(T)
}

// registry is the ordered callback collection shared by every handle to the
// same Subject. Tokens come from a per-registry monotonic counter and are
// never reused, so a stored token can never alias a different callback, no
// matter how often entries are added and removed.
type registry[T any] struct {
	mu      sync.RWMutex
	lastTok uint64
	entries []entry[T]
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{}
}

// add appends fn after all existing entries and returns its token.
func (r *registry[T]) add(fn func(T)) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastTok++
	r.entries = append(r.entries, entry[T]{token: r.lastTok, fn: fn})
	return r.lastTok
}

// remove deletes the entry with the given token, keeping the remaining
// entries in registration order. Removing an absent token is a no-op.
func (r *registry[T]) remove(token uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = slices.DeleteFunc(r.entries, func(e entry[T]) bool {
		return e.token == token
	})
}

// snapshot returns the entries registered at the moment of the call, in
// registration order. The returned slice has its own backing array, so
// callers iterate it without holding the lock and registry mutations made
// meanwhile are not visible to the iteration.
func (r *registry[T]) snapshot() []entry[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.entries)
}

// size reports the number of registered callbacks.
func (r *registry[T]) size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}
