package harness

import (
	"errors"
	"fmt"

	"github.com/nanocorp/wiring/internal/circuit"
	"github.com/nanocorp/wiring/internal/dsl"
	"github.com/nanocorp/wiring/internal/wire"
)

// Run executes a scenario and returns its trace and any expectation
// failures.
//
// Run itself errors only on scenario authoring problems: an unparsable
// initial circuit line or a duplicate id in the circuit list. Errors
// produced by steps are part of the observable behavior under test;
// they are recorded in the trace and matched against the step's expect
// clause. A step error without a matching expectation fails the
// scenario and stops execution.
func Run(scenario *Scenario) (*Result, error) {
	c := circuit.New()
	for i, line := range scenario.Circuit {
		w, err := dsl.ParseWire(line)
		if err != nil {
			return nil, fmt.Errorf("circuit[%d]: %w", i, err)
		}
		if err := c.Insert(w); err != nil {
			return nil, fmt.Errorf("circuit[%d]: %w", i, err)
		}
	}

	result := &Result{
		ScenarioName: scenario.Name,
		Circuit:      c,
	}

	for i, step := range scenario.Steps {
		event, stepErr := executeStep(c, i+1, step)
		result.Trace = append(result.Trace, event)

		result.Failures = append(result.Failures, checkExpect(i+1, step.Expect, stepErr, c)...)

		if stepErr != nil && (step.Expect == nil || step.Expect.Error == "") {
			result.Failures = append(result.Failures,
				fmt.Sprintf("step %d: unexpected error: %v", i+1, stepErr))
			break
		}
	}

	return result, nil
}

// executeStep applies one step to the circuit and records what happened.
func executeStep(c *circuit.Circuit, seq int, step Step) (TraceEvent, error) {
	event := TraceEvent{Seq: seq}
	var stepErr error

	switch {
	case step.Add != "":
		event.Op = "add"
		w, err := dsl.ParseWire(step.Add)
		if err != nil {
			event.Wire = step.Add
			stepErr = err
			break
		}
		event.Wire = dsl.Format(w)
		stepErr = c.Insert(w)

	case step.Remove != "":
		event.Op = "remove"
		event.Wire = step.Remove
		_, stepErr = c.Remove(wire.ID(step.Remove))

	default:
		event.Op = "resolve"
		targets := make([]wire.ID, len(step.Resolve))
		for i, raw := range step.Resolve {
			targets[i] = wire.ID(raw)
		}
		stepErr = c.Resolve(targets...)
		event.Targets = step.Resolve
		event.Signals = signalSnapshot(c)
		event.Pending = idStrings(c.Pending())
		event.Poisoned = idStrings(c.Poisoned())
	}

	event.Error = errorCode(stepErr)
	return event, stepErr
}

// signalSnapshot renders every stored signal for the trace.
func signalSnapshot(c *circuit.Circuit) map[string]string {
	signals := c.Signals()
	if len(signals) == 0 {
		return nil
	}
	snapshot := make(map[string]string, len(signals))
	for id, sig := range signals {
		snapshot[string(id)] = sig.String()
	}
	return snapshot
}

func idStrings(ids []wire.ID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

// errorCode maps step errors to the stable codes scenarios assert on.
func errorCode(err error) string {
	if err == nil {
		return ""
	}
	if circuit.IsLoop(err) {
		return "LOOP_DETECTED"
	}
	if circuit.IsDuplicateID(err) {
		return "DUPLICATE_ID"
	}
	if circuit.IsUnknownID(err) {
		return "UNKNOWN_ID"
	}
	var de *wire.DefinitionError
	if errors.As(err, &de) {
		return string(de.Code)
	}
	return err.Error()
}
