package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario.
// Scenarios build a circuit and execute a sequence of mutation and
// resolution steps, asserting on signals and resolver bookkeeping.
type Scenario struct {
	// Name uniquely identifies this scenario. It is also the golden
	// file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Circuit lists the initial wire definitions, one definition line
	// per entry ("123 -> x", "x AND y -> d"). May be empty for
	// scenarios that build the circuit entirely through add steps.
	Circuit []string `yaml:"circuit"`

	// Steps contains the operations to execute, in order.
	Steps []Step `yaml:"steps"`
}

// Step represents a single operation. Exactly one of Add, Remove,
// Resolve, or ResolveAll must be set.
type Step struct {
	// Add inserts a wire given as a definition line.
	Add string `yaml:"add,omitempty"`

	// Remove deletes a wire by id and resets every signal.
	Remove string `yaml:"remove,omitempty"`

	// Resolve resolves the named wires and their dependencies.
	Resolve []string `yaml:"resolve,omitempty"`

	// ResolveAll resolves everything pending plus everything
	// previously poisoned.
	ResolveAll bool `yaml:"resolve_all,omitempty"`

	// Expect validates the state after the step.
	// If nil, the step is only expected not to error.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect specifies expected state after a step.
type Expect struct {
	// Error is the expected error code (e.g. "LOOP_DETECTED",
	// "DUPLICATE_ID"). Empty means the step must succeed.
	Error string `yaml:"error,omitempty"`

	// Signals maps wire ids to expected signal renderings: a decimal
	// value, "unresolved", or "unresolvable". Subset match - only the
	// listed wires are checked.
	Signals map[string]string `yaml:"signals,omitempty"`

	// Pending is the exact expected pending list, sorted.
	Pending []string `yaml:"pending,omitempty"`

	// Poisoned is the exact expected poisoned list, sorted.
	Poisoned []string `yaml:"poisoned,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "step:" vs "steps:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	return nil
}

// validateStep checks that a step names exactly one operation.
func validateStep(index int, step *Step) error {
	ops := 0
	if step.Add != "" {
		ops++
	}
	if step.Remove != "" {
		ops++
	}
	if len(step.Resolve) > 0 {
		ops++
	}
	if step.ResolveAll {
		ops++
	}

	switch ops {
	case 0:
		return fmt.Errorf("steps[%d]: one of add, remove, resolve, resolve_all is required", index)
	case 1:
		return nil
	default:
		return fmt.Errorf("steps[%d]: exactly one operation is allowed per step", index)
	}
}
