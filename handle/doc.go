// Package handle implements ownership-managing references over plain
// Go values.
//
// Three handle kinds cover the three ownership disciplines:
//
//	Exclusive[T]  - single owner, transfer-only (no duplication)
//	Shared[T]     - reference counted, destroyed with the last owner
//	Observer[T]   - non-owning, existence-checked weak reference
//
// # Exclusive Ownership
//
// An Exclusive handle has sole authority over its value. Ownership
// moves with Transfer, which empties the source handle:
//
//	h := handle.Acquire(item)
//	moved := handle.Transfer(h)   // h is now empty
//	moved.Release()               // destroys the item, exactly once
//
// Dereferencing an emptied handle is a programming error and panics.
//
// # Shared Ownership
//
// A Shared handle participates in a reference count. Duplicate is the
// only way to add owners; the value is destroyed precisely when the
// count transitions from 1 to 0:
//
//	a := handle.Share(post)
//	b := a.Duplicate()  // count 2
//	a.Release()         // count 1, post still live
//	b.Release()         // count 0, post destroyed
//
// Count is a diagnostic affordance. Callers must not use it for
// control flow.
//
// # Observer References
//
// An Observer is derived from a Shared handle and never affects the
// count. Resolve returns a live Shared handle while the value exists
// and fails closed afterwards; it never yields a destroyed value.
//
// # Destruction
//
// When a handle destroys its value, it first calls Destroy if the
// value implements ownref.Destroyer, then runs any finalizers attached
// with WithFinalizer. Both run exactly once per value.
package handle
