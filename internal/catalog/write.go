package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nanocorp/wiring/internal/dsl"
	"github.com/nanocorp/wiring/internal/wire"
)

// SaveCircuit stores a circuit description under a name and returns the
// revision id and whether a new revision was written.
//
// Revisions are deduplicated by content hash: saving the same wires
// under the same name again returns the existing revision id with
// inserted=false. A changed definition creates a new revision; earlier
// revisions are kept.
func (c *Catalog) SaveCircuit(ctx context.Context, name string, wires []wire.Wire) (id string, inserted bool, err error) {
	if name == "" {
		return "", false, fmt.Errorf("save circuit: name must not be empty")
	}
	if len(wires) == 0 {
		return "", false, fmt.Errorf("save circuit: at least one wire is required")
	}

	hash := ContentHash(wires)

	// Transaction ensures the revision row and its wires land together.
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return "", false, fmt.Errorf("save circuit: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	revisionID := uuid.Must(uuid.NewV7()).String()
	result, err := tx.ExecContext(ctx, `
		INSERT INTO circuits (id, name, content_hash)
		VALUES (?, ?, ?)
		ON CONFLICT(name, content_hash) DO NOTHING
	`, revisionID, name, hash)
	if err != nil {
		return "", false, fmt.Errorf("save circuit: insert revision: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return "", false, fmt.Errorf("save circuit: rows affected: %w", err)
	}

	if rowsAffected == 0 {
		// Conflict - revision already exists, fetch the existing id
		err = tx.QueryRowContext(ctx, `
			SELECT id FROM circuits
			WHERE name = ? AND content_hash = ?
		`, name, hash).Scan(&id)
		if err != nil {
			return "", false, fmt.Errorf("save circuit: select existing: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return "", false, fmt.Errorf("save circuit: commit (existing): %w", err)
		}
		return id, false, nil
	}

	for i, w := range wires {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO circuit_wires (circuit_id, position, definition)
			VALUES (?, ?, ?)
		`, revisionID, i, dsl.Format(w))
		if err != nil {
			return "", false, fmt.Errorf("save circuit: insert wire %q: %w", w.ID(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", false, fmt.Errorf("save circuit: commit: %w", err)
	}

	return revisionID, true, nil
}

// DeleteCircuit removes every revision saved under a name. Returns the
// number of revisions deleted.
func (c *Catalog) DeleteCircuit(ctx context.Context, name string) (int64, error) {
	result, err := c.db.ExecContext(ctx, `DELETE FROM circuits WHERE name = ?`, name)
	if err != nil {
		return 0, fmt.Errorf("delete circuit: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete circuit: rows affected: %w", err)
	}
	return n, nil
}
