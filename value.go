package react

import (
	"reflect"

	"github.com/avelines/react/internal/affinity"
)

// ValueOption configures a Value at construction.
type ValueOption[T any] func(*Value[T])

// WithEquality injects the comparator gating Update notifications.
// The default is structural equality via reflect.DeepEqual; inject a
// comparator for payloads where structural equality is too strict, too
// loose, or too expensive.
func WithEquality[T any](eq func(a, b T) bool) ValueOption[T] {
	return func(v *Value[T]) {
		v.eq = eq
	}
}

// Value is an observable single-slot cell. Updates notify listeners with
// the (new, old) pair; equal-value updates are suppressed unless forced.
//
// A Value is single-threaded: read, update, and connect from the
// goroutine that created it.
type Value[T any] struct {
	d       dispatcher[func(newValue, oldValue T) error]
	current T

	// get, when non-nil, marks a derived value: the current value is
	// recomputed from upstream on demand and never cached, and local
	// updates are rejected.
	get func() T

	dep *connector
	eq  func(a, b T) bool
	aff affinity.Guard
}

// NewValue creates a value holding initial. No notification fires for the
// initial value.
func NewValue[T any](initial T, opts ...ValueOption[T]) *Value[T] {
	v := &Value[T]{
		current: initial,
		eq:      defaultEquality[T],
		aff:     affinity.Capture(),
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// defaultEquality is structural and null-safe: two nils compare equal, a
// nil and a non-nil do not.
func defaultEquality[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

func newDerivedValue[T any](get func() T, wire func(out *Value[T]) Connection) *Value[T] {
	v := &Value[T]{
		get: get,
		eq:  defaultEquality[T],
		aff: affinity.Capture(),
	}
	v.dep = &connector{wire: func() Connection { return wire(v) }}
	v.d.onFirst = v.dep.attach
	v.d.onLast = v.dep.detach
	return v
}

// Get returns the current value. Derived values recompute it from their
// upstream source on every call.
func (v *Value[T]) Get() T {
	if v.get != nil {
		return v.get()
	}
	return v.current
}

// Update stores next and returns the previous value. Listeners are
// notified with (next, previous) only when the two are unequal under the
// value's comparator. A failing listener does not stop its siblings; the
// collected failures come back as one *AggregateError. Derived values
// reject Update with ErrReadOnly.
func (v *Value[T]) Update(next T) (T, error) {
	return v.update(next, false)
}

// UpdateForce is Update without the equality gate: listeners are notified
// even when the stored value compares equal to next.
func (v *Value[T]) UpdateForce(next T) (T, error) {
	return v.update(next, true)
}

func (v *Value[T]) update(next T, force bool) (T, error) {
	v.aff.Check("Value.Update")

	if v.get != nil {
		var zero T
		return zero, ErrReadOnly
	}

	old := v.current
	v.current = next

	if !force && v.eq(next, old) {
		return old, nil
	}
	return old, v.notify(next, old)
}

func (v *Value[T]) notify(newValue, oldValue T) error {
	return v.d.dispatch(func(fn func(newValue, oldValue T) error) error {
		return fn(newValue, oldValue)
	})
}

// OnChange registers a listener receiving every (new, old) change
// notification and returns its disposal handle.
func (v *Value[T]) OnChange(fn func(newValue, oldValue T) error) Connection {
	v.aff.Check("Value.OnChange")
	return v.d.connect(fn)
}

// OnChangeNotify connects fn, then synchronously invokes it once with the
// current value (the old value is T's zero value, there being no prior
// one). If that initial call fails or panics, the connection is torn down
// before the error is returned, so the caller never holds a live handle
// bound to a failed listener.
func (v *Value[T]) OnChangeNotify(fn func(newValue, oldValue T) error) (Connection, error) {
	c := v.OnChange(fn)

	var zero T
	current := v.Get()
	if err := capture(func() error { return fn(current, zero) }); err != nil {
		c.Dispose()
		return nil, err
	}

	return c, nil
}

// Changes returns a derived signal emitting the new value of every change
// notification.
func (v *Value[T]) Changes() *Signal[T] {
	return newDerivedSignal(func(out *Signal[T]) Connection {
		return v.OnChange(func(newValue, _ T) error {
			return out.emit(newValue)
		})
	})
}

// MapValue returns a derived value whose current value is f applied to
// v's, recomputed on demand. It re-notifies (f(new), f(old)) on every
// upstream change, whether or not the mapped values differ.
func MapValue[T, R any](v *Value[T], f func(T) R) *Value[R] {
	return newDerivedValue(
		func() R { return f(v.Get()) },
		func(out *Value[R]) Connection {
			return v.OnChange(func(newValue, oldValue T) error {
				return out.notify(f(newValue), f(oldValue))
			})
		},
	)
}

// FlatMapValue returns a derived value tracking the value selected by f
// from v's current value. Changes of the selected value are forwarded.
// When v itself changes, the old selection's connection is dropped, f
// picks the new selection, and listeners are notified with the new
// selection's current value. While observed, the node holds exactly two
// connections: one to the selector, one to the currently selected value.
func FlatMapValue[T, R any](v *Value[T], f func(T) *Value[R]) *Value[R] {
	return newDerivedValue(
		func() R { return f(v.Get()).Get() },
		func(out *Value[R]) Connection {
			var inner Connection

			selected := f(v.Get())
			forward := func(newValue, oldValue R) error {
				return out.notify(newValue, oldValue)
			}
			inner = selected.OnChange(forward)

			selector := v.OnChange(func(newValue, _ T) error {
				oldValue := selected.Get()

				inner.Dispose()
				selected = f(newValue)
				inner = selected.OnChange(forward)

				return out.notify(selected.Get(), oldValue)
			})

			return Join(selector, ConnectionFunc(func() {
				Dispose(inner)
				inner = nil
			}))
		},
	)
}
