package circuit

import (
	"slices"

	"github.com/nanocorp/wiring/internal/wire"
)

// Resolve computes a value or unresolvable signal for the requested wires.
// Called with no arguments it resolves everything pending plus everything
// previously poisoned. Wires already holding a value are never recomputed.
//
// The walk is an explicit-stack depth-first evaluation: recursion depth is
// bounded, and cycle detection is a linear scan of the in-flight chain,
// which starts at the root index. Entries below the root index are seeds of
// earlier, already-drained chains.
//
// The only hard failure is a genuine dependency cycle among still-unresolved
// wires, reported as a LoopError. The pass is abandoned, but wires finalized
// before the cycle was reached keep their signals. Unknown references are
// not failures: they finalize the whole in-flight chain to unresolvable.
func (c *Circuit) Resolve(ids ...wire.ID) error {
	stack := c.seed(ids)
	if len(stack) == 0 {
		c.finishPass()
		return nil
	}
	root := len(stack) - 1

walk:
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		e, ok := c.wires[id]
		if !ok {
			// Unknown reference: poison the whole in-flight chain.
			stack = c.poison(stack, root)
			root = retarget(stack, root)
			continue
		}

		switch e.sig.Kind {
		case wire.SignalValue:
			stack = stack[:len(stack)-1]
			root = retarget(stack, root)
			continue

		case wire.SignalUnresolvable:
			stack = c.poison(stack, root)
			root = retarget(stack, root)
			continue
		}

		// Unresolved: gather operand values left to right.
		refs := e.w.Input().Refs()
		operands := make([]uint16, 0, len(refs))
		for _, ref := range refs {
			op, ok := c.wires[ref]
			if !ok || op.sig.Kind == wire.SignalUnresolvable {
				stack = c.poison(stack, root)
				root = retarget(stack, root)
				continue walk
			}
			if op.sig.Kind == wire.SignalUnresolved {
				// An unresolved operand already on the in-flight chain is
				// a cycle. A copy below the root index is just an
				// unprocessed seed, not an ancestor.
				if slices.Contains(stack[root:], ref) {
					c.finishPass()
					return &LoopError{At: ref}
				}
				stack = append(stack, ref)
				continue walk
			}
			operands = append(operands, op.sig.Value)
		}

		e.sig = wire.Value(e.w.Input().Evaluate(operands))
		stack = stack[:len(stack)-1]
		root = retarget(stack, root)
	}

	c.finishPass()
	return nil
}

// seed builds the initial work stack: previously poisoned ids first,
// re-marked unresolved so they are retried, then pending ids. An explicit
// request overrides the default seeds; requested unresolvable wires are
// retried the same way.
func (c *Circuit) seed(ids []wire.ID) []wire.ID {
	if len(ids) == 0 {
		ids = make([]wire.ID, 0, len(c.poisoned)+len(c.pending))
		ids = append(ids, c.poisoned...)
		ids = append(ids, c.pending...)
	}
	stack := make([]wire.ID, 0, len(ids))
	for _, id := range ids {
		if e, ok := c.wires[id]; ok && e.sig.Kind == wire.SignalUnresolvable {
			e.sig = wire.Unresolved()
		}
		stack = append(stack, id)
	}
	return stack
}

// poison finalizes every stored wire on the in-flight chain to unresolvable
// and truncates the chain. Chain ids absent from the store have no signal to
// set and are dropped.
func (c *Circuit) poison(stack []wire.ID, root int) []wire.ID {
	for _, id := range stack[root:] {
		if e, ok := c.wires[id]; ok {
			e.sig = wire.Unresolvable()
		}
	}
	return stack[:root]
}

// retarget moves the root index to the new top of the stack once the
// current root chain has fully drained.
func retarget(stack []wire.ID, root int) int {
	if len(stack) <= root {
		return len(stack) - 1
	}
	return root
}

// finishPass rebuilds the bookkeeping from signal state: pending holds ids
// still unresolved (wires outside the requested set, or left behind by an
// aborted pass), poisoned holds ids currently unresolvable. Rebuilding from
// the store drops repaired wires from the poisoned list automatically.
func (c *Circuit) finishPass() {
	c.pending = nil
	c.poisoned = nil
	for id, e := range c.wires {
		switch e.sig.Kind {
		case wire.SignalUnresolved:
			c.pending = append(c.pending, id)
		case wire.SignalUnresolvable:
			c.poisoned = append(c.poisoned, id)
		}
	}
	slices.Sort(c.pending)
	slices.Sort(c.poisoned)
}
