package react

import (
	"slices"
	"sync"
)

// dispatcher is the listener registry shared by Signal, Value, and
// Promise. Listeners are kept in registration order, duplicates are
// allowed, and removal is by connection identity. The list is allocated
// lazily; a node nobody listens to costs nothing to notify.
//
// A dispatcher is single-threaded unless mu is set. Future/Promise point
// mu at their own mutex so connections can be added and disposed while
// completions arrive from other goroutines.
type dispatcher[L any] struct {
	mu *sync.Mutex

	conns []*conn[L]

	// onFirst and onLast fire on every listener-count transition across
	// the 0<->1 boundary. Derived nodes use them to attach and detach
	// their upstream connection.
	onFirst func()
	onLast  func()
}

type conn[L any] struct {
	owner    *dispatcher[L]
	fn       L
	disposed bool
}

func (c *conn[L]) Dispose() {
	d := c.owner
	d.lock()
	defer d.unlock()

	if c.disposed {
		return
	}
	c.disposed = true
	d.removeLocked(c)
}

func (d *dispatcher[L]) lock() {
	if d.mu != nil {
		d.mu.Lock()
	}
}

func (d *dispatcher[L]) unlock() {
	if d.mu != nil {
		d.mu.Unlock()
	}
}

func (d *dispatcher[L]) connect(fn L) *conn[L] {
	d.lock()
	defer d.unlock()
	return d.connectLocked(fn)
}

func (d *dispatcher[L]) connectLocked(fn L) *conn[L] {
	c := &conn[L]{owner: d, fn: fn}
	d.conns = append(d.conns, c)

	if len(d.conns) == 1 && d.onFirst != nil {
		d.onFirst()
	}

	return c
}

func (d *dispatcher[L]) removeLocked(c *conn[L]) {
	i := slices.Index(d.conns, c)
	if i == -1 {
		// already drained, e.g. by a completed promise
		return
	}

	d.conns = slices.Delete(d.conns, i, i+1)

	if len(d.conns) == 0 && d.onLast != nil {
		d.onLast()
	}
}

// dispatch notifies every listener present when the pass begins.
// Listeners connected during the pass do not see the current event;
// listeners disposed during the pass still see it (the pass iterates a
// pre-pass snapshot). Each invocation is isolated: an error or a panic is
// collected and the pass continues with the remaining listeners. The
// collected failures, if any, come back to the emitter as one
// *AggregateError; they are never delivered to a listener.
func (d *dispatcher[L]) dispatch(call func(L) error) error {
	if len(d.conns) == 0 {
		return nil
	}

	// cloning so connects/disposes during the pass don't affect it
	return dispatchAll(slices.Clone(d.conns), call)
}

func dispatchAll[L any](conns []*conn[L], call func(L) error) error {
	var errs []error

	for _, c := range conns {
		fn := c.fn
		if err := capture(func() error { return call(fn) }); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) != 0 {
		return newAggregateError(errs)
	}
	return nil
}
