package handle

// Observer is a non-owning reference derived from a Shared handle. It
// never keeps the value alive and never dangles: Resolve either
// returns a live owning handle or reports absence.
type Observer[T any] struct {
	b *block[T]
}

// Resolve returns a new Shared handle to the value if it still exists,
// incrementing the count for as long as the caller holds the result.
// After the last owner has released, Resolve returns (nil, false).
func (o *Observer[T]) Resolve() (*Shared[T], bool) {
	o.b.mu.Lock()
	defer o.b.mu.Unlock()

	if o.b.destroyed || o.b.strong == 0 {
		return nil, false
	}
	o.b.strong++
	return &Shared[T]{b: o.b, live: true}, true
}

// Expired reports whether the observed value has been destroyed.
// Like Count, this is a diagnostic; prefer Resolve, which checks and
// acquires atomically.
func (o *Observer[T]) Expired() bool {
	o.b.mu.Lock()
	defer o.b.mu.Unlock()
	return o.b.destroyed
}
