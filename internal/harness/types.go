package harness

import (
	"github.com/nanocorp/wiring/internal/circuit"
)

// TraceEvent records one executed step and the state it produced.
// Resolve events carry a full signal snapshot; mutation events only
// record the operation and its outcome.
type TraceEvent struct {
	Seq      int               `json:"seq"`
	Op       string            `json:"op"`                 // "add" | "remove" | "resolve"
	Wire     string            `json:"wire,omitempty"`     // add: canonical definition line; remove: wire id
	Targets  []string          `json:"targets,omitempty"`  // explicit resolve targets
	Error    string            `json:"error,omitempty"`    // error code, empty on success
	Signals  map[string]string `json:"signals,omitempty"`  // post-resolve signal snapshot
	Pending  []string          `json:"pending,omitempty"`  // post-resolve pending list
	Poisoned []string          `json:"poisoned,omitempty"` // post-resolve poisoned list
}

// Result holds the outcome of running a scenario.
type Result struct {
	// ScenarioName is the executed scenario's name.
	ScenarioName string

	// Trace records every executed step in order.
	Trace []TraceEvent

	// Failures lists expectation mismatches. Empty means the scenario
	// passed.
	Failures []string

	// Circuit is the final circuit state, for follow-up inspection.
	Circuit *circuit.Circuit
}
