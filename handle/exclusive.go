package handle

// Exclusive holds sole ownership of a value. It cannot be duplicated,
// only transferred; the source handle is empty after a transfer.
// At any instant at most one live handle references a given value.
type Exclusive[T any] struct {
	value      *T
	finalizers []Finalizer
}

// Acquire constructs a value's single owning handle.
func Acquire[T any](value T, opts ...Option) *Exclusive[T] {
	s := applyOptions(opts)
	return &Exclusive[T]{
		value:      &value,
		finalizers: s.finalizers,
	}
}

// Transfer moves ownership from src to a new handle and empties src.
// Transferring from an emptied handle is a programming error.
func Transfer[T any](src *Exclusive[T]) *Exclusive[T] {
	if src.value == nil {
		panic("handle: Transfer from emptied Exclusive handle")
	}
	dst := &Exclusive[T]{
		value:      src.value,
		finalizers: src.finalizers,
	}
	src.value = nil
	src.finalizers = nil
	return dst
}

// Value returns the owned value for read or write access. Ownership
// stays with the handle. Dereferencing an emptied handle is a
// programming error and panics.
func (h *Exclusive[T]) Value() *T {
	if h.value == nil {
		panic("handle: Value on emptied Exclusive handle")
	}
	return h.value
}

// Empty reports whether ownership has been transferred away or
// released.
func (h *Exclusive[T]) Empty() bool {
	return h.value == nil
}

// Release destroys the owned value immediately and empties the handle.
// Releasing an emptied handle is a no-op.
func (h *Exclusive[T]) Release() {
	if h.value == nil {
		return
	}
	value := h.value
	finalizers := h.finalizers
	h.value = nil
	h.finalizers = nil
	destroyValue(value, finalizers)
}
