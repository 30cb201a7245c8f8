// Package ownref provides ownership-managing handle types for Go.
//
// The library models three ownership disciplines over a single value:
// exclusive ownership (one owner, transfer-only), shared ownership
// (reference counted, destroyed with the last owner), and observer
// references (non-owning, existence-checked). A lifecycle ledger adds
// debug-grade identity tracking, and a scoped file type shows the same
// acquire/release contract applied to an external resource.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	ownref/          Root package with the Destroyer cleanup interface
//	├── handle/      Exclusive, Shared and Observer generic handles
//	├── ledger/      Lifecycle ledger with identities and event fan-out
//	├── scoped/      Scoped file resource with guaranteed release
//	├── errors/      Structured error types for debugging
//	├── demo/        Worked ownership-graph scenarios
//	└── cmd/demo/    Binary running the fixed demonstration sequence
//
// # Quick Start
//
// Acquire a value exclusively and destroy it exactly once:
//
//	h := handle.Acquire(42)
//	fmt.Println(*h.Value())
//	h.Release()
//
// Share a value between owners and observe it without extending its
// lifetime:
//
//	s := handle.Share("payload")
//	obs := s.Observe()
//	s.Release()
//	if _, ok := obs.Resolve(); !ok {
//	    fmt.Println("value no longer exists")
//	}
//
// # Breaking Ownership Cycles
//
// When two entities would hold mutual owning references, neither
// reference count can ever reach zero. The rule applied throughout this
// library: demote one direction to an Observer, which never extends a
// value's lifetime and fails closed once the value is gone. The demo
// package shows this with a Publication that owns its Annotations while
// each Annotation only observes its Publication.
//
// # Thread Safety
//
// Handle control blocks are internally locked so diagnostic counts stay
// coherent, but a single handle value is NOT safe for concurrent use by
// multiple goroutines. The demonstrated contract is single-threaded.
package ownref
