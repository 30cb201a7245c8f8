package ledger

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ownref/ownref/handle"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnLedgerEvent(e Event) {
	o.events = append(o.events, e)
}

func TestLedger_RegisterRetire(t *testing.T) {
	led := New()

	e := led.Register("item", "first")
	if led.Live() != 1 {
		t.Fatalf("Expected 1 live entry, got %d", led.Live())
	}

	led.Retire(e)
	if led.Live() != 0 {
		t.Fatalf("Expected 0 live entries, got %d", led.Live())
	}
	if led.Destroyed() != 1 {
		t.Fatalf("Expected 1 destroyed entry, got %d", led.Destroyed())
	}

	// Retiring twice must not double-count
	led.Retire(e)
	if led.Destroyed() != 1 {
		t.Fatalf("Double retire counted twice: %d", led.Destroyed())
	}
}

func TestLedger_Observer(t *testing.T) {
	led := New()
	obs := &testObserver{}
	led.Subscribe(obs)

	e := led.Register("item", "watched")
	if len(obs.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(obs.events))
	}
	if obs.events[0].Type != EventAcquired {
		t.Fatal("Expected EventAcquired")
	}
	if obs.events[0].ID != e.ID {
		t.Fatal("Wrong identity in event")
	}

	led.Retire(e)
	if len(obs.events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(obs.events))
	}
	if obs.events[1].Type != EventDestroyed {
		t.Fatal("Expected EventDestroyed")
	}

	led.Unsubscribe(obs)
	led.Register("item", "unwatched")
	if len(obs.events) != 2 {
		t.Fatal("Should not receive events after Unsubscribe")
	}
}

func TestLedger_TrackWithHandle(t *testing.T) {
	led := New()

	entry, retire := led.Track("int", "tracked value")
	h := handle.Acquire(5, handle.WithFinalizer(retire))

	if led.Live() != 1 {
		t.Fatalf("Expected 1 live entry, got %d", led.Live())
	}
	if entry.Label != "tracked value" {
		t.Fatalf("Unexpected label: %q", entry.Label)
	}

	h.Release()
	if led.Live() != 0 || led.Destroyed() != 1 {
		t.Fatalf("Expected release to retire the entry: live=%d destroyed=%d",
			led.Live(), led.Destroyed())
	}
}

func TestLedger_Close(t *testing.T) {
	led := New()

	led.Register("item", "a")
	led.Register("item", "b")

	if err := led.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if led.Live() != 0 {
		t.Fatalf("Expected Close to retire all entries, %d live", led.Live())
	}
	if led.Destroyed() != 2 {
		t.Fatalf("Expected 2 destroyed, got %d", led.Destroyed())
	}

	// Registration after Close returns a zero entry
	e := led.Register("item", "c")
	if e.ID != uuid.Nil {
		t.Fatal("Expected zero entry after Close")
	}
	if led.Live() != 0 {
		t.Fatal("Register after Close tracked an entry")
	}
}
