// Package circuit implements the wire store and the signal-resolution
// engine.
//
// The store owns every wire by id and tracks, per wire, the three-state
// resolution signal. Resolution is an explicit, separate step: Signal never
// computes anything, and Resolve walks the dependency graph with an explicit
// stack, finalizing each requested wire to a value or to the unresolvable
// state exactly once.
//
// The engine is deliberately single-threaded and non-reentrant: a resolution
// pass runs to completion (or fails with a loop error) before the store may
// be mutated again. Structural changes bump a generation counter; removing a
// wire resets every signal so stale values are never observable.
package circuit
