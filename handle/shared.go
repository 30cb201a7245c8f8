package handle

import (
	"sync"
)

// block is the control block shared by every handle referencing the
// same value. The mutex keeps the count coherent for diagnostics; the
// demonstrated ownership contract itself is single-threaded.
type block[T any] struct {
	mu         sync.Mutex
	value      T
	strong     int
	destroyed  bool
	finalizers []Finalizer
}

// Shared holds one owning reference to a value. Any number of Shared
// handles may reference the same value; the value is destroyed exactly
// once, when the count transitions from 1 to 0.
type Shared[T any] struct {
	b    *block[T]
	live bool
}

// Share constructs a value's first owning handle with count 1.
func Share[T any](value T, opts ...Option) *Shared[T] {
	s := applyOptions(opts)
	return &Shared[T]{
		b: &block[T]{
			value:      value,
			strong:     1,
			finalizers: s.finalizers,
		},
		live: true,
	}
}

// Duplicate increments the count and returns a new handle referencing
// the same value. This is the only way to add owners. Duplicating a
// released handle is a programming error.
func (h *Shared[T]) Duplicate() *Shared[T] {
	if !h.live {
		panic("handle: Duplicate on released Shared handle")
	}
	h.b.mu.Lock()
	h.b.strong++
	h.b.mu.Unlock()
	return &Shared[T]{b: h.b, live: true}
}

// Value returns the shared value. Ownership is unaffected.
// Dereferencing a released handle is a programming error and panics.
func (h *Shared[T]) Value() *T {
	if !h.live {
		panic("handle: Value on released Shared handle")
	}
	return &h.b.value
}

// Count returns the current number of live owners. Diagnostic only;
// not authoritative for control flow.
func (h *Shared[T]) Count() int {
	h.b.mu.Lock()
	defer h.b.mu.Unlock()
	return h.b.strong
}

// Live reports whether this handle still owns a reference.
func (h *Shared[T]) Live() bool {
	return h.live
}

// Release decrements the count and empties the handle. The value is
// destroyed when the last owner releases. Releasing an already
// released handle is a no-op.
func (h *Shared[T]) Release() {
	if !h.live {
		return
	}
	h.live = false

	h.b.mu.Lock()
	h.b.strong--
	last := h.b.strong == 0
	if last {
		h.b.destroyed = true
	}
	h.b.mu.Unlock()

	if last {
		destroyValue(&h.b.value, h.b.finalizers)
	}
}

// Observe derives a non-owning reference to the shared value. The
// observer does not affect the count and never extends the value's
// lifetime.
func (h *Shared[T]) Observe() *Observer[T] {
	if !h.live {
		panic("handle: Observe on released Shared handle")
	}
	return &Observer[T]{b: h.b}
}
