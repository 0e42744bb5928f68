package react

import (
	"github.com/avelines/react/internal/affinity"
)

// Signal is a stateless multicast event source. Emit delivers a value to
// every current listener; nothing is retained between emissions.
//
// A Signal is single-threaded: connect, dispose, and emit from the
// goroutine that created it.
type Signal[T any] struct {
	d   dispatcher[func(T) error]
	dep *connector
	aff affinity.Guard
}

// NewSignal creates an empty signal.
func NewSignal[T any]() *Signal[T] {
	return &Signal[T]{aff: affinity.Capture()}
}

// newDerivedSignal creates a read-only signal that attaches to its
// upstream source via wire exactly while it has listeners of its own.
func newDerivedSignal[T any](wire func(out *Signal[T]) Connection) *Signal[T] {
	s := &Signal[T]{aff: affinity.Capture()}
	s.dep = &connector{wire: func() Connection { return wire(s) }}
	s.d.onFirst = s.dep.attach
	s.d.onLast = s.dep.detach
	return s
}

// Connect registers a listener for future emissions and returns its
// disposal handle.
func (s *Signal[T]) Connect(fn func(T) error) Connection {
	s.aff.Check("Signal.Connect")
	return s.d.connect(fn)
}

// Emit delivers v to every listener present when the pass begins. If one
// or more listeners fail, Emit returns a single *AggregateError carrying
// every cause in listener order; the remaining listeners still run.
// Derived signals reject Emit with ErrReadOnly.
func (s *Signal[T]) Emit(v T) error {
	s.aff.Check("Signal.Emit")

	if s.dep != nil {
		return ErrReadOnly
	}
	return s.emit(v)
}

func (s *Signal[T]) emit(v T) error {
	return s.d.dispatch(func(fn func(T) error) error {
		return fn(v)
	})
}

// Filter returns a derived signal re-emitting only the values satisfying
// pred.
func (s *Signal[T]) Filter(pred func(T) bool) *Signal[T] {
	return newDerivedSignal(func(out *Signal[T]) Connection {
		return s.Connect(func(v T) error {
			if !pred(v) {
				return nil
			}
			return out.emit(v)
		})
	})
}

// Next returns a future completing with the very next emission. The
// underlying listener disconnects as it fires, so the future never sees a
// second value.
func (s *Signal[T]) Next() *Future[T] {
	p := NewPromise[T]()

	var c Connection
	c = s.Connect(func(v T) error {
		if p.IsComplete() {
			// a re-entrant emission already fired this pass's snapshot
			return nil
		}
		c.Dispose()
		return p.Succeed(v)
	})

	return &p.Future
}

// MapSignal returns a derived signal re-emitting f(v) for every v emitted
// by s. (A package function because methods cannot introduce new type
// parameters.)
func MapSignal[T, R any](s *Signal[T], f func(T) R) *Signal[R] {
	return newDerivedSignal(func(out *Signal[R]) Connection {
		return s.Connect(func(v T) error {
			return out.emit(f(v))
		})
	})
}
