package handle

import (
	"testing"
)

type destroyCounter struct {
	count int
}

func (d *destroyCounter) Destroy() {
	d.count++
}

func TestExclusive_AcquireRelease(t *testing.T) {
	d := &destroyCounter{}
	h := Acquire(d)

	if h.Empty() {
		t.Fatal("Expected acquired handle to be non-empty")
	}
	if (*h.Value()).count != 0 {
		t.Fatal("Value destroyed before release")
	}

	h.Release()
	if !h.Empty() {
		t.Fatal("Expected handle to be empty after Release")
	}
	if d.count != 1 {
		t.Fatalf("Expected Destroy() to be called once, called %d times", d.count)
	}

	// Releasing an emptied handle must be a no-op
	h.Release()
	if d.count != 1 {
		t.Fatalf("Double release destroyed twice: %d", d.count)
	}
}

func TestExclusive_Finalizer(t *testing.T) {
	destroyed := 0
	h := Acquire(5, WithFinalizer(func() { destroyed++ }))

	if v := *h.Value(); v != 5 {
		t.Fatalf("Expected 5, got %d", v)
	}

	h.Release()
	if destroyed != 1 {
		t.Fatalf("Expected finalizer to run once, ran %d times", destroyed)
	}
}

func TestExclusive_Transfer(t *testing.T) {
	destroyed := 0
	src := Acquire("payload", WithFinalizer(func() { destroyed++ }))

	dst := Transfer(src)
	if !src.Empty() {
		t.Fatal("Expected source to be empty after Transfer")
	}
	if dst.Empty() {
		t.Fatal("Expected destination to own the value")
	}
	if destroyed != 0 {
		t.Fatal("Transfer must move, not destroy")
	}
	if v := *dst.Value(); v != "payload" {
		t.Fatalf("Expected 'payload', got %q", v)
	}

	dst.Release()
	if destroyed != 1 {
		t.Fatalf("Expected exactly one destruction, got %d", destroyed)
	}
}

func TestExclusive_ValueOnEmptyPanics(t *testing.T) {
	h := Acquire(1)
	_ = Transfer(h)

	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic on Value after transfer-out")
		}
	}()
	_ = h.Value()
}

func TestExclusive_TransferFromEmptyPanics(t *testing.T) {
	h := Acquire(1)
	h.Release()

	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic on Transfer from emptied handle")
		}
	}()
	_ = Transfer(h)
}

func TestExclusive_DestroyerThenFinalizer(t *testing.T) {
	d := &destroyCounter{}
	finalized := false
	h := Acquire(d, WithFinalizer(func() {
		if d.count != 1 {
			t.Fatal("Finalizer ran before Destroy")
		}
		finalized = true
	}))

	h.Release()
	if !finalized {
		t.Fatal("Finalizer did not run")
	}
}
