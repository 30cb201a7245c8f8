// Package ledger tracks handle lifecycles for diagnostics.
//
// A Ledger assigns each tracked value a stable identity, counts live
// and destroyed values, and fans lifecycle events out to subscribed
// observers. It is a debug affordance: nothing in the handle contracts
// depends on it, and correctness must never hinge on its counts.
//
// # Tracking
//
// Track pairs a registration with a finalizer suited to
// handle.WithFinalizer:
//
//	led := ledger.New()
//	entry, retire := led.Track("item", "Person 1")
//	h := handle.Acquire(item, handle.WithFinalizer(retire))
//
// When the handle destroys the item, the entry is retired and an
// EventDestroyed is delivered to observers.
//
// # Logging
//
// Events are logged at debug level through the package logger, which
// defaults to a no-op. Call SetLogger to enable output.
package ledger
