package circuit

import (
	"slices"

	"github.com/nanocorp/wiring/internal/wire"
)

// entry is a stored wire plus its engine-owned signal state. The signal is
// the only mutable part; the wire itself is immutable.
type entry struct {
	w   wire.Wire
	sig wire.Signal
}

// Circuit is the wire store together with the resolution bookkeeping.
//
// Not safe for concurrent use: mutation and resolution must not interleave.
type Circuit struct {
	wires map[wire.ID]*entry

	// pending lists ids known to require computation; poisoned lists ids
	// previously found unresolvable, retried on the next pass. Both are
	// rebuilt whenever the wire set changes structurally.
	pending  []wire.ID
	poisoned []wire.ID

	// generation counts structural changes (insert/remove). Signals obtained
	// in one generation must not be compared across generations.
	generation uint64
}

// New returns an empty circuit.
func New() *Circuit {
	return &Circuit{wires: make(map[wire.ID]*entry)}
}

// Insert adds a wire to the store and marks it pending resolution.
// Fails with DUPLICATE_ID if the id already exists; the store is unchanged
// on failure. Inserting never invalidates already-resolved values: inputs
// are immutable, so a new wire can only ever turn unresolvable wires
// resolvable, and those are retried on every pass anyway.
func (c *Circuit) Insert(w wire.Wire) error {
	if _, ok := c.wires[w.ID()]; ok {
		return newDuplicateIDError(w.ID())
	}
	c.wires[w.ID()] = &entry{w: w}
	c.pending = append(c.pending, w.ID())
	c.generation++
	return nil
}

// Remove deletes and returns the wire with the given id, failing with
// UNKNOWN_ID if absent. Removal can change the correctness of any previously
// resolved signal, so every remaining signal is reset to unresolved, the
// poisoned list is cleared, and the whole store becomes pending again.
func (c *Circuit) Remove(id wire.ID) (wire.Wire, error) {
	e, ok := c.wires[id]
	if !ok {
		return wire.Wire{}, newUnknownIDError(id)
	}
	delete(c.wires, id)

	c.pending = c.pending[:0]
	for wid, rest := range c.wires {
		rest.sig = wire.Unresolved()
		c.pending = append(c.pending, wid)
	}
	slices.Sort(c.pending)
	c.poisoned = nil
	c.generation++
	return e.w, nil
}

// Signal returns the current signal of the given wire without triggering
// any computation. Fails with UNKNOWN_ID if the id is absent.
func (c *Circuit) Signal(id wire.ID) (wire.Signal, error) {
	e, ok := c.wires[id]
	if !ok {
		return wire.Signal{}, newUnknownIDError(id)
	}
	return e.sig, nil
}

// Signals returns a snapshot of every wire's current signal.
func (c *Circuit) Signals() map[wire.ID]wire.Signal {
	out := make(map[wire.ID]wire.Signal, len(c.wires))
	for id, e := range c.wires {
		out[id] = e.sig
	}
	return out
}

// IDs returns all wire ids in the store, sorted.
func (c *Circuit) IDs() []wire.ID {
	out := make([]wire.ID, 0, len(c.wires))
	for id := range c.wires {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Len returns the number of wires in the store.
func (c *Circuit) Len() int {
	return len(c.wires)
}

// Generation returns the structural generation counter. It increases on
// every insert and remove.
func (c *Circuit) Generation() uint64 {
	return c.generation
}

// Pending returns a copy of the ids known to require computation.
func (c *Circuit) Pending() []wire.ID {
	return slices.Clone(c.pending)
}

// Poisoned returns a copy of the ids previously found unresolvable.
func (c *Circuit) Poisoned() []wire.ID {
	return slices.Clone(c.poisoned)
}
