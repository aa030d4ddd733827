package catalog

import (
	"context"
	"fmt"

	"github.com/nanocorp/wiring/internal/dsl"
	"github.com/nanocorp/wiring/internal/wire"
)

// Revision describes one saved circuit revision.
type Revision struct {
	ID          string
	Name        string
	ContentHash string
	CreatedAt   string
	WireCount   int
}

// LoadCircuit returns the wires of the most recent revision saved under
// a name. Returns sql.ErrNoRows if the name is unknown.
//
// Revision ids are UUIDv7, so the latest revision has the largest id.
func (c *Catalog) LoadCircuit(ctx context.Context, name string) ([]wire.Wire, error) {
	var revisionID string
	err := c.db.QueryRowContext(ctx, `
		SELECT id FROM circuits
		WHERE name = ?
		ORDER BY id DESC
		LIMIT 1
	`, name).Scan(&revisionID)
	if err != nil {
		return nil, err
	}

	return c.LoadRevision(ctx, revisionID)
}

// LoadRevision returns the wires of a specific revision.
// Returns an empty slice (not nil) if the revision id is unknown.
func (c *Catalog) LoadRevision(ctx context.Context, revisionID string) ([]wire.Wire, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT definition FROM circuit_wires
		WHERE circuit_id = ?
		ORDER BY position ASC
	`, revisionID)
	if err != nil {
		return nil, fmt.Errorf("query revision wires: %w", err)
	}
	defer rows.Close()

	var wires []wire.Wire
	for rows.Next() {
		var definition string
		if err := rows.Scan(&definition); err != nil {
			return nil, fmt.Errorf("scan wire definition: %w", err)
		}
		w, err := dsl.ParseWire(definition)
		if err != nil {
			return nil, fmt.Errorf("stored definition %q: %w", definition, err)
		}
		wires = append(wires, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revision wires: %w", err)
	}

	if wires == nil {
		wires = []wire.Wire{}
	}

	return wires, nil
}

// ListRevisions returns every saved revision with deterministic
// ordering: by name, then newest revision first.
//
// Returns an empty slice (not nil) when the catalog is empty.
func (c *Catalog) ListRevisions(ctx context.Context) ([]Revision, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.content_hash, c.created_at, COUNT(w.position)
		FROM circuits c
		LEFT JOIN circuit_wires w ON w.circuit_id = c.id
		GROUP BY c.id
		ORDER BY c.name ASC, c.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query revisions: %w", err)
	}
	defer rows.Close()

	var revisions []Revision
	for rows.Next() {
		var r Revision
		if err := rows.Scan(&r.ID, &r.Name, &r.ContentHash, &r.CreatedAt, &r.WireCount); err != nil {
			return nil, fmt.Errorf("scan revision: %w", err)
		}
		revisions = append(revisions, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revisions: %w", err)
	}

	if revisions == nil {
		revisions = []Revision{}
	}

	return revisions, nil
}
