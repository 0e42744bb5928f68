package react

// Promise is the writable half of a Future. It completes at most once;
// completing it a second time fails with ErrAlreadyCompleted and leaves
// the stored result and listener state untouched.
type Promise[T any] struct {
	Future[T]
}

// NewPromise creates a pending promise. Hand out &p.Future to consumers
// that should only read.
func NewPromise[T any]() *Promise[T] {
	p := &Promise[T]{}
	p.init()
	return p
}

// Complete stores res and dispatches it to every queued listener exactly
// once, with the usual failure isolation: a failing listener does not
// stop its siblings, and the collected failures come back as one
// *AggregateError. The listener list is released permanently, so a
// long-lived completed promise retains only its result.
func (p *Promise[T]) Complete(res Try[T]) error {
	p.mu.Lock()
	if p.done {
		p.mu.Unlock()
		return ErrAlreadyCompleted
	}
	p.done = true
	p.res = res

	conns := p.d.conns
	p.d.conns = nil
	p.mu.Unlock()

	// dispatch outside the lock so listeners can inspect the promise
	return dispatchAll(conns, func(fn func(Try[T]) error) error {
		return fn(res)
	})
}

// Succeed completes the promise with a successful value.
func (p *Promise[T]) Succeed(v T) error {
	return p.Complete(Success(v))
}

// Fail completes the promise with a failure cause.
func (p *Promise[T]) Fail(cause error) error {
	return p.Complete(Failure[T](cause))
}
