package react

import (
	"sync"
)

// Future is the read-only handle to a one-shot asynchronous result.
// Listeners registered before completion fire exactly once when the
// result arrives; listeners registered after completion fire
// synchronously at registration. A Future never blocks its caller.
//
// Unlike Signal and Value, a Future is safe for concurrent use: its
// completion may arrive from any goroutine.
type Future[T any] struct {
	mu   sync.Mutex
	done bool
	res  Try[T]
	d    dispatcher[func(Try[T]) error]
}

func (f *Future[T]) init() {
	f.d.mu = &f.mu
}

// Succeeded returns a future already completed with v.
func Succeeded[T any](v T) *Future[T] {
	f := &Future[T]{done: true, res: Success(v)}
	f.init()
	return f
}

// Failed returns a future already failed with cause.
func Failed[T any](cause error) *Future[T] {
	f := &Future[T]{done: true, res: Failure[T](cause)}
	f.init()
	return f
}

// IsComplete reports whether the result has arrived.
func (f *Future[T]) IsComplete() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done
}

// Result returns the result, if any.
func (f *Future[T]) Result() (Try[T], bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.res, f.done
}

// OnComplete registers fn for the result. On a still-pending future it is
// queued and the returned Connection unregisters it; disposing after
// completion is a no-op. On an already-complete future fn runs
// synchronously before OnComplete returns, NopConnection is returned, and
// fn's error (or recovered panic) is surfaced to the registrant.
func (f *Future[T]) OnComplete(fn func(Try[T]) error) (Connection, error) {
	f.mu.Lock()
	if !f.done {
		c := f.d.connectLocked(fn)
		f.mu.Unlock()
		return c, nil
	}
	res := f.res
	f.mu.Unlock()

	if err := capture(func() error { return fn(res) }); err != nil {
		return NopConnection, err
	}
	return NopConnection, nil
}

// OnSuccess registers fn for a successful result only.
func (f *Future[T]) OnSuccess(fn func(T) error) (Connection, error) {
	return f.OnComplete(func(res Try[T]) error {
		if res.IsFailure() {
			return nil
		}
		return fn(res.Value())
	})
}

// OnFailure registers fn for a failed result only.
func (f *Future[T]) OnFailure(fn func(cause error) error) (Connection, error) {
	return f.OnComplete(func(res Try[T]) error {
		if res.IsSuccess() {
			return nil
		}
		return fn(res.Cause())
	})
}

// Transform returns a derived future completing with xf applied to f's
// result. A panic raised by xf fails the derived future instead of
// propagating.
func Transform[T, R any](f *Future[T], xf func(Try[T]) Try[R]) *Future[R] {
	out := NewPromise[R]()

	_, _ = f.OnComplete(func(res Try[T]) error {
		var r Try[R]
		err := capture(func() error {
			r = xf(res)
			return nil
		})
		if err != nil {
			r = Failure[R](err)
		}
		return out.Complete(r)
	})

	return &out.Future
}

// MapFuture returns a derived future completing with fn applied to f's
// successful value. A source failure, an error returned by fn, and a
// panic raised by fn all fail the derived future.
func MapFuture[T, R any](f *Future[T], fn func(T) (R, error)) *Future[R] {
	return Transform(f, func(res Try[T]) Try[R] {
		return MapTry(res, fn)
	})
}

// FlatMapFuture returns a derived future chained through the future
// produced by fn. The derived future fails on: a source failure, an error
// or panic from fn, a nil future from fn, or a failure of the inner
// future.
func FlatMapFuture[T, R any](f *Future[T], fn func(T) (*Future[R], error)) *Future[R] {
	out := NewPromise[R]()

	_, _ = f.OnComplete(func(res Try[T]) error {
		if res.IsFailure() {
			return out.Fail(res.Cause())
		}

		var inner *Future[R]
		err := capture(func() (err error) {
			inner, err = fn(res.Value())
			return err
		})
		if err != nil {
			return out.Fail(err)
		}
		if inner == nil {
			return out.Fail(ErrNilFuture)
		}

		_, err = inner.OnComplete(func(r Try[R]) error {
			return out.Complete(r)
		})
		return err
	})

	return &out.Future
}
