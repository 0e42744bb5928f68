package react

import (
	"sync"
)

// Pair holds the results of two independently typed futures.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds the results of three independently typed futures.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Sequence returns a future of every input's result, in input order. It
// completes only once every input has settled: all successes yield the
// ordered values, one or more failures yield a single *AggregateError
// bundling every cause in input order (no fail-fast). Zero inputs succeed
// immediately with an empty slice.
//
// Inputs may complete concurrently from independent goroutines.
func Sequence[T any](futures ...*Future[T]) *Future[[]T] {
	out := NewPromise[[]T]()

	if len(futures) == 0 {
		_ = out.Succeed([]T{})
		return &out.Future
	}

	var (
		mu        sync.Mutex
		remaining = len(futures)
		results   = make([]Try[T], len(futures))
	)

	for i, f := range futures {
		i := i
		_, _ = f.OnComplete(func(res Try[T]) error {
			mu.Lock()
			results[i] = res
			remaining--
			settled := remaining == 0
			mu.Unlock()

			if !settled {
				return nil
			}

			// the final decrement happens under mu, so whichever
			// goroutine gets here sees every result
			var causes []error
			values := make([]T, 0, len(results))
			for _, r := range results {
				if r.IsFailure() {
					causes = append(causes, r.Cause())
					continue
				}
				values = append(values, r.Value())
			}

			if len(causes) != 0 {
				return out.Fail(newAggregateError(causes))
			}
			return out.Succeed(values)
		})
	}

	return &out.Future
}

// Collect returns a future of the successful results only, in settle
// order, once every input has settled. Failures are dropped silently;
// Collect never fails. Zero or all-failed inputs succeed with an empty
// slice.
//
// Inputs may complete concurrently from independent goroutines.
func Collect[T any](futures ...*Future[T]) *Future[[]T] {
	out := NewPromise[[]T]()

	var (
		mu        sync.Mutex
		remaining = len(futures)
		values    = []T{}
	)

	if remaining == 0 {
		_ = out.Succeed(values)
		return &out.Future
	}

	for _, f := range futures {
		_, _ = f.OnComplete(func(res Try[T]) error {
			mu.Lock()
			if res.IsSuccess() {
				values = append(values, res.Value())
			}
			remaining--
			settled := remaining == 0
			collected := values
			mu.Unlock()

			if !settled {
				return nil
			}
			return out.Succeed(collected)
		})
	}

	return &out.Future
}

// SequencePair is the two-future Sequence, yielding a typed Pair.
func SequencePair[A, B any](fa *Future[A], fb *Future[B]) *Future[Pair[A, B]] {
	seq := Sequence(erase(fa), erase(fb))
	return MapFuture(seq, func(vs []any) (Pair[A, B], error) {
		return Pair[A, B]{First: vs[0].(A), Second: vs[1].(B)}, nil
	})
}

// SequenceTriple is the three-future Sequence, yielding a typed Triple.
func SequenceTriple[A, B, C any](fa *Future[A], fb *Future[B], fc *Future[C]) *Future[Triple[A, B, C]] {
	seq := Sequence(erase(fa), erase(fb), erase(fc))
	return MapFuture(seq, func(vs []any) (Triple[A, B, C], error) {
		return Triple[A, B, C]{First: vs[0].(A), Second: vs[1].(B), Third: vs[2].(C)}, nil
	})
}

func erase[T any](f *Future[T]) *Future[any] {
	return MapFuture(f, func(v T) (any, error) { return v, nil })
}
