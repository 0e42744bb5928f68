// Package react provides small composable reactive primitives:
//
//   - Signal: a multicast event source with no retained value
//   - Value: an observable single-slot cell with change notification
//   - Future/Promise: a one-shot asynchronous result and its writable half
//   - Try: a success-or-failure result wrapper backing Future results
//
// Listeners are registered with Connect/OnChange/OnComplete and removed by
// disposing the returned Connection. Dispatch iterates a snapshot of the
// listener list taken before the pass begins, so listeners may freely
// connect and disconnect mid-pass. A listener failure never suppresses its
// siblings; the failures of one pass are bundled into a single
// AggregateError returned to whoever triggered the emission.
//
// Derived nodes (MapSignal, Filter, MapValue, FlatMapValue, Changes) are
// lazy: they hold a connection to their upstream source exactly while they
// have listeners of their own, attaching on the first and detaching on the
// last, recursively.
//
// Signal and Value are single-threaded and not internally synchronized.
// Future and Promise are safe for concurrent use; combinators like
// Sequence and Collect accept completions arriving from independent
// goroutines. Nothing in this package blocks: all consumption is through
// registered listeners.
package react
