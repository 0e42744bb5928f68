package react

// Try is an immutable success-or-failure result. The zero value is a
// success holding T's zero value.
type Try[T any] struct {
	value T
	cause error
}

// Success wraps v as a successful result.
func Success[T any](v T) Try[T] {
	return Try[T]{value: v}
}

// Failure wraps a non-nil cause as a failed result.
func Failure[T any](cause error) Try[T] {
	return Try[T]{cause: cause}
}

func (t Try[T]) IsSuccess() bool { return t.cause == nil }

func (t Try[T]) IsFailure() bool { return t.cause != nil }

// Value returns the held value, or T's zero value on failure.
func (t Try[T]) Value() T { return t.value }

// Cause returns the failure cause, or nil on success.
func (t Try[T]) Cause() error { return t.cause }

// Get unpacks the result into Go's usual (value, error) shape.
func (t Try[T]) Get() (T, error) { return t.value, t.cause }

// MapTry applies f to a successful result. An error returned or a panic
// raised by f becomes a Failure. A failed t passes through unchanged.
func MapTry[T, R any](t Try[T], f func(T) (R, error)) Try[R] {
	if t.IsFailure() {
		return Failure[R](t.cause)
	}

	var out R
	err := capture(func() (err error) {
		out, err = f(t.value)
		return err
	})
	if err != nil {
		return Failure[R](err)
	}
	return Success(out)
}

// FlatMapTry applies f to a successful result, with f producing the Try
// directly. A panic raised by f becomes a Failure. A failed t passes
// through unchanged.
func FlatMapTry[T, R any](t Try[T], f func(T) Try[R]) Try[R] {
	if t.IsFailure() {
		return Failure[R](t.cause)
	}

	var out Try[R]
	err := capture(func() error {
		out = f(t.value)
		return nil
	})
	if err != nil {
		return Failure[R](err)
	}
	return out
}
