// Package harness runs YAML conformance scenarios against the circuit
// resolver.
//
// A scenario builds a circuit from definition lines, then applies a
// sequence of steps (add, remove, resolve) with expectations on signals,
// errors, and resolver bookkeeping. Each run produces a deterministic
// trace that can be compared against a golden file, so a scenario both
// asserts behavior inline and pins the full observable state transcript.
package harness
