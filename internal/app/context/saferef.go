package appctx

import "sync"

// SafeRef guards a value shared between goroutines. Reads take a shared
// lock and return a copy; writes are serialized.
type SafeRef[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewRef creates a SafeRef holding val.
func NewRef[T any](val T) *SafeRef[T] {
	return &SafeRef[T]{val: val}
}

// Get returns a copy of the value. Slices and maps inside it still share
// backing storage; treat them as read-only.
func (r *SafeRef[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

// Set replaces the value.
func (r *SafeRef[T]) Set(val T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.val = val
}

// Update mutates the value in place under the write lock.
func (r *SafeRef[T]) Update(fn func(*T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.val)
}

// TryUpdate runs fn on a copy of the value under the write lock and stores
// the copy only when fn returns nil. A rejected transition leaves the value
// untouched.
func (r *SafeRef[T]) TryUpdate(fn func(*T) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.val
	if err := fn(&next); err != nil {
		return err
	}
	r.val = next
	return nil
}
