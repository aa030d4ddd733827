package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckExpect_SignalMismatch(t *testing.T) {
	scenario := &Scenario{
		Name:        "signal-mismatch",
		Description: "wrong expected value is reported",
		Circuit:     []string{"123 -> x"},
		Steps: []Step{
			{ResolveAll: true, Expect: &Expect{Signals: map[string]string{"x": "124"}}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], `signal "x"`)
	assert.Contains(t, result.Failures[0], "expected 124, got 123")
}

func TestCheckExpect_UnknownSignal(t *testing.T) {
	scenario := &Scenario{
		Name:        "unknown-signal",
		Description: "expecting a signal for an absent wire is reported",
		Circuit:     []string{"1 -> a"},
		Steps: []Step{
			{ResolveAll: true, Expect: &Expect{Signals: map[string]string{"ghost": "1"}}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], "ghost")
}

func TestCheckExpect_ErrorMismatch(t *testing.T) {
	scenario := &Scenario{
		Name:        "error-mismatch",
		Description: "a step that succeeds when an error was expected is reported",
		Circuit:     []string{"1 -> a"},
		Steps: []Step{
			{ResolveAll: true, Expect: &Expect{Error: "LOOP_DETECTED"}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], `expected error "LOOP_DETECTED"`)
}

func TestCheckExpect_PendingMismatch(t *testing.T) {
	scenario := &Scenario{
		Name:        "pending-mismatch",
		Description: "pending list is compared exactly",
		Circuit:     []string{"1 -> a", "NOT a -> b"},
		Steps: []Step{
			{Resolve: []string{"a"}, Expect: &Expect{Pending: []string{}}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], "expected pending")
}

func TestCheckExpect_NilPassesOnSuccess(t *testing.T) {
	scenario := &Scenario{
		Name:        "no-expect",
		Description: "steps without expectations only require success",
		Circuit:     []string{"1 -> a"},
		Steps:       []Step{{ResolveAll: true}},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.Empty(t, result.Failures)
}
