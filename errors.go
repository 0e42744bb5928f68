package react

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAlreadyCompleted is returned by Promise.Complete (and Succeed/Fail)
	// when the promise already holds a result.
	ErrAlreadyCompleted = errors.New("react: promise already completed")

	// ErrReadOnly is returned when Emit or Update is called on a derived
	// node. Derived signals and values only ever reflect their upstream
	// source and cannot be written locally.
	ErrReadOnly = errors.New("react: node is read-only")

	// ErrNilFuture fails a FlatMapFuture chain whose mapping function
	// returned a nil future.
	ErrNilFuture = errors.New("react: nil future")
)

// PanicError wraps a panic recovered from a listener or a caller-supplied
// mapping function.
type PanicError struct {
	v any
}

func newPanicError(v any) *PanicError {
	return &PanicError{v: v}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("react: recovered panic: %v", e.v)
}

// V returns the original panic value.
func (e *PanicError) V() any {
	return e.v
}

// AggregateError bundles the failures of one dispatch pass, or of a
// Sequence-family combinator, preserving cause order.
type AggregateError struct {
	causes []error
}

func newAggregateError(causes []error) *AggregateError {
	return &AggregateError{causes: causes}
}

func (e *AggregateError) Error() string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "react: %d failure(s)", len(e.causes))
	for i, err := range e.causes {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

func (e *AggregateError) Unwrap() []error { return e.causes }

// Causes returns the ordered failure list.
func (e *AggregateError) Causes() []error { return e.causes }

// capture runs fn, converting a panic into a *PanicError.
func capture(fn func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = newPanicError(v)
		}
	}()
	return fn()
}
