package handle

import (
	"testing"
)

func TestObserver_DoesNotAffectCount(t *testing.T) {
	h := Share(5)
	obs := h.Observe()

	if h.Count() != 1 {
		t.Fatalf("Observe changed the count: %d", h.Count())
	}
	if obs.Expired() {
		t.Fatal("Observer expired while value is live")
	}
}

func TestObserver_ResolveWhileLive(t *testing.T) {
	h := Share("content")
	obs := h.Observe()

	locked, ok := obs.Resolve()
	if !ok {
		t.Fatal("Resolve failed while an owner remains")
	}
	if *locked.Value() != "content" {
		t.Fatalf("Resolved content mismatch: %q", *locked.Value())
	}
	if h.Count() != 2 {
		t.Fatalf("Expected count 2 while resolution is held, got %d", h.Count())
	}

	locked.Release()
	if h.Count() != 1 {
		t.Fatalf("Expected count 1 after releasing resolution, got %d", h.Count())
	}
}

func TestObserver_ResolveAfterDestructionFailsClosed(t *testing.T) {
	destroyed := 0
	h := Share(5, WithFinalizer(func() { destroyed++ }))
	obs := h.Observe()

	h.Release()
	if destroyed != 1 {
		t.Fatalf("Expected destruction at last release, got %d", destroyed)
	}

	if !obs.Expired() {
		t.Fatal("Observer not expired after destruction")
	}
	if locked, ok := obs.Resolve(); ok || locked != nil {
		t.Fatal("Resolve returned a handle to a destroyed value")
	}
}

func TestObserver_ResolutionKeepsValueAlive(t *testing.T) {
	destroyed := 0
	h := Share(5, WithFinalizer(func() { destroyed++ }))
	obs := h.Observe()

	locked, ok := obs.Resolve()
	if !ok {
		t.Fatal("Resolve failed")
	}

	h.Release()
	if destroyed != 0 {
		t.Fatal("Value destroyed while a resolution is held")
	}

	locked.Release()
	if destroyed != 1 {
		t.Fatalf("Expected destruction when last resolution released, got %d", destroyed)
	}

	if _, ok := obs.Resolve(); ok {
		t.Fatal("Resolve succeeded after destruction")
	}
}
