package ledger

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventType identifies a lifecycle transition.
type EventType uint8

const (
	EventAcquired EventType = iota
	EventDestroyed
)

// Event represents a tracked value's lifecycle transition.
type Event struct {
	ID    uuid.UUID
	Kind  string
	Label string
	Type  EventType
}

// Observer receives notifications about lifecycle events.
type Observer interface {
	OnLedgerEvent(Event)
}

// Entry identifies a tracked value.
type Entry struct {
	ID    uuid.UUID
	Kind  string
	Label string
}

// Ledger records which tracked values are currently live. Safe for
// concurrent use, though the demonstrated workloads are
// single-threaded.
type Ledger struct {
	mu        sync.RWMutex
	live      map[uuid.UUID]Entry
	destroyed int
	observers []Observer
	closed    bool
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		live: make(map[uuid.UUID]Entry),
	}
}

// Register records a newly acquired value and returns its entry.
// Registration on a closed ledger returns a zero entry.
func (l *Ledger) Register(kind, label string) Entry {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return Entry{}
	}
	e := Entry{
		ID:    uuid.New(),
		Kind:  kind,
		Label: label,
	}
	l.live[e.ID] = e
	l.mu.Unlock()

	l.notify(Event{
		Type:  EventAcquired,
		ID:    e.ID,
		Kind:  e.Kind,
		Label: e.Label,
	})
	return e
}

// Retire marks an entry destroyed. Retiring an unknown or already
// retired entry is a no-op, so finalizers stay idempotent.
func (l *Ledger) Retire(e Entry) {
	l.mu.Lock()
	if _, ok := l.live[e.ID]; !ok {
		l.mu.Unlock()
		return
	}
	delete(l.live, e.ID)
	l.destroyed++
	l.mu.Unlock()

	l.notify(Event{
		Type:  EventDestroyed,
		ID:    e.ID,
		Kind:  e.Kind,
		Label: e.Label,
	})
}

// Track registers an entry and returns it together with a finalizer
// that retires it. The finalizer is idempotent.
func (l *Ledger) Track(kind, label string) (Entry, func()) {
	e := l.Register(kind, label)
	return e, func() { l.Retire(e) }
}

// Live returns the number of tracked values not yet destroyed.
func (l *Ledger) Live() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.live)
}

// Destroyed returns the number of tracked values destroyed so far.
func (l *Ledger) Destroyed() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.destroyed
}

// Subscribe adds an observer for lifecycle events.
func (l *Ledger) Subscribe(o Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, o)
}

// Unsubscribe removes an observer.
func (l *Ledger) Unsubscribe(o Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, obs := range l.observers {
		if obs == o {
			l.observers = append(l.observers[:i], l.observers[i+1:]...)
			return
		}
	}
}

// Close retires all remaining entries and stops accepting
// registrations.
func (l *Ledger) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	remaining := make([]Entry, 0, len(l.live))
	for _, e := range l.live {
		remaining = append(remaining, e)
	}
	l.mu.Unlock()

	for _, e := range remaining {
		l.Retire(e)
	}
	return nil
}

func (l *Ledger) notify(e Event) {
	Logger().Debug("ledger event",
		zap.Uint8("type", uint8(e.Type)),
		zap.String("id", e.ID.String()),
		zap.String("kind", e.Kind),
		zap.String("label", e.Label),
	)

	l.mu.RLock()
	observers := l.observers
	l.mu.RUnlock()
	for _, o := range observers {
		o.OnLedgerEvent(e)
	}
}
