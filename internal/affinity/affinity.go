//go:build !enable_react_debug

// Package affinity guards the single-threaded half of the library.
// Signals and values are not internally synchronized; under the
// enable_react_debug build tag each node remembers the goroutine that
// created it and panics when touched from another one. Default builds
// compile the guard down to nothing.
package affinity

// Guard is a no-op in default builds.
type Guard struct{}

// Capture records nothing.
func Capture() Guard { return Guard{} }

// Check does nothing.
func (Guard) Check(op string) {}
