package handle

import (
	"github.com/ownref/ownref"
)

// Finalizer runs after a handle destroys its value. Finalizers carry
// no error channel; they are hooks for counters, ledgers and logs.
type Finalizer func()

// Option configures a handle at acquisition time.
type Option func(*settings)

type settings struct {
	finalizers []Finalizer
}

// WithFinalizer attaches a hook that runs once, after the value's
// Destroy method (if any), when the value is destroyed.
func WithFinalizer(fin Finalizer) Option {
	return func(s *settings) {
		s.finalizers = append(s.finalizers, fin)
	}
}

func applyOptions(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// destroyValue runs the value's Destroy method and the attached
// finalizers. Callers guarantee it runs at most once per value.
func destroyValue[T any](value *T, finalizers []Finalizer) {
	if d, ok := any(value).(ownref.Destroyer); ok {
		d.Destroy()
	} else if d, ok := any(*value).(ownref.Destroyer); ok {
		d.Destroy()
	}
	for _, fin := range finalizers {
		fin()
	}
}
