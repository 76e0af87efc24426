// Package sweep implements the fork-join parallel-for used by the two
// per-iteration sweeps in package core (spec.md §4.4, §5): a single
// parallel-for over a contiguous index range that joins before the caller
// continues, with no synchronization primitives needed inside the sweep
// body because each index touches disjoint state.
//
// For runs serially below a size threshold (goroutine overhead would
// dominate the work) and via golang.org/x/sync/errgroup above it, chunking
// the range across runtime.GOMAXPROCS(0) goroutines. On that parallel
// path, a panic raised by any call to fn is captured and re-raised on the
// calling goroutine once every in-flight chunk has finished (on the serial
// path it simply propagates), matching spec.md §7's "minimizer
// exception/panic propagates" policy — the caller is never left with some
// goroutines still racing after the panicking one.
package sweep
