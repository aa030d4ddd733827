package harness

import (
	"fmt"
	"slices"

	"github.com/nanocorp/wiring/internal/circuit"
	"github.com/nanocorp/wiring/internal/wire"
)

// checkExpect validates a step's expect clause against the step error
// and the circuit state, returning one message per mismatch.
func checkExpect(seq int, expect *Expect, stepErr error, c *circuit.Circuit) []string {
	if expect == nil {
		return nil
	}

	var failures []string
	fail := func(format string, args ...any) {
		failures = append(failures, fmt.Sprintf("step %d: ", seq)+fmt.Sprintf(format, args...))
	}

	if expect.Error != "" {
		if got := errorCode(stepErr); got != expect.Error {
			fail("expected error %q, got %q", expect.Error, got)
		}
	}

	for _, id := range sortedKeys(expect.Signals) {
		want := expect.Signals[id]
		sig, err := c.Signal(wire.ID(id))
		if err != nil {
			fail("signal %q: %v", id, err)
			continue
		}
		if got := sig.String(); got != want {
			fail("signal %q: expected %s, got %s", id, want, got)
		}
	}

	if expect.Pending != nil {
		if got := idStrings(c.Pending()); !slices.Equal(got, expect.Pending) {
			fail("expected pending %v, got %v", expect.Pending, got)
		}
	}

	if expect.Poisoned != nil {
		if got := idStrings(c.Poisoned()); !slices.Equal(got, expect.Poisoned) {
			fail("expected poisoned %v, got %v", expect.Poisoned, got)
		}
	}

	return failures
}

// sortedKeys keeps failure messages in a stable order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
