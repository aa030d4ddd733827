package catalog

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanocorp/wiring/internal/dsl"
	"github.com/nanocorp/wiring/internal/testutil"
	"github.com/nanocorp/wiring/internal/wire"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func parseWires(t *testing.T, lines ...string) []wire.Wire {
	t.Helper()
	return testutil.ParseWires(t, lines...)
}

func TestOpen_AppliesPragmas(t *testing.T) {
	c := openTestCatalog(t)

	assert.NoError(t, c.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, c.verifyPragma("foreign_keys", "1"))
	assert.NoError(t, c.verifyPragma("busy_timeout", "5000"))
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	c1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, c1.Close())

	c2, err := Open(path)
	require.NoError(t, err)
	defer c2.Close()

	var version int
	require.NoError(t, c2.db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}

func TestSaveCircuit_RoundTrip(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()
	wires := parseWires(t, "123 -> x", "456 -> y", "x AND y -> d")

	id, inserted, err := c.SaveCircuit(ctx, "fixture", wires)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NotEmpty(t, id)

	loaded, err := c.LoadCircuit(ctx, "fixture")
	require.NoError(t, err)
	assert.Equal(t, wires, loaded)
}

func TestSaveCircuit_Idempotent(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()
	wires := parseWires(t, "123 -> x", "NOT x -> h")

	id1, inserted, err := c.SaveCircuit(ctx, "fixture", wires)
	require.NoError(t, err)
	require.True(t, inserted)

	id2, inserted, err := c.SaveCircuit(ctx, "fixture", wires)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, id1, id2)

	revisions, err := c.ListRevisions(ctx)
	require.NoError(t, err)
	assert.Len(t, revisions, 1)
}

func TestSaveCircuit_HashIgnoresConstantSide(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	// Both spellings format to "x AND 1 -> d", so they share one revision.
	id1, _, err := c.SaveCircuit(ctx, "fixture", parseWires(t, "123 -> x", "x AND 1 -> d"))
	require.NoError(t, err)

	id2, inserted, err := c.SaveCircuit(ctx, "fixture", parseWires(t, "123 -> x", "1 AND x -> d"))
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, id1, id2)
}

func TestSaveCircuit_NewRevisionOnChange(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	id1, _, err := c.SaveCircuit(ctx, "fixture", parseWires(t, "123 -> x"))
	require.NoError(t, err)

	id2, inserted, err := c.SaveCircuit(ctx, "fixture", parseWires(t, "124 -> x"))
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NotEqual(t, id1, id2)

	// LoadCircuit returns the latest revision.
	loaded, err := c.LoadCircuit(ctx, "fixture")
	require.NoError(t, err)
	assert.Equal(t, []string{"124 -> x"}, dsl.FormatAll(loaded))

	// The earlier revision stays loadable by id.
	earlier, err := c.LoadRevision(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, []string{"123 -> x"}, dsl.FormatAll(earlier))
}

func TestSaveCircuit_Validation(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	_, _, err := c.SaveCircuit(ctx, "", parseWires(t, "1 -> a"))
	assert.Error(t, err)

	_, _, err = c.SaveCircuit(ctx, "empty", nil)
	assert.Error(t, err)
}

func TestLoadCircuit_UnknownName(t *testing.T) {
	c := openTestCatalog(t)

	_, err := c.LoadCircuit(context.Background(), "nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestLoadRevision_UnknownID(t *testing.T) {
	c := openTestCatalog(t)

	wires, err := c.LoadRevision(context.Background(), "no-such-revision")
	require.NoError(t, err)
	assert.Empty(t, wires)
	assert.NotNil(t, wires)
}

func TestListRevisions(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	_, _, err := c.SaveCircuit(ctx, "beta", parseWires(t, "1 -> a"))
	require.NoError(t, err)
	_, _, err = c.SaveCircuit(ctx, "alpha", parseWires(t, "1 -> a", "NOT a -> b"))
	require.NoError(t, err)
	_, _, err = c.SaveCircuit(ctx, "alpha", parseWires(t, "2 -> a", "NOT a -> b"))
	require.NoError(t, err)

	revisions, err := c.ListRevisions(ctx)
	require.NoError(t, err)
	require.Len(t, revisions, 3)

	// Ordered by name, newest revision first within a name.
	assert.Equal(t, "alpha", revisions[0].Name)
	assert.Equal(t, "alpha", revisions[1].Name)
	assert.Equal(t, "beta", revisions[2].Name)
	assert.Greater(t, revisions[0].ID, revisions[1].ID)
	assert.Equal(t, 2, revisions[0].WireCount)
	assert.NotEmpty(t, revisions[0].CreatedAt)
	assert.Equal(t, ContentHash(parseWires(t, "1 -> a")), revisions[2].ContentHash)
}

func TestListRevisions_Empty(t *testing.T) {
	c := openTestCatalog(t)

	revisions, err := c.ListRevisions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, revisions)
	assert.NotNil(t, revisions)
}

func TestDeleteCircuit_CascadesToWires(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	_, _, err := c.SaveCircuit(ctx, "fixture", parseWires(t, "1 -> a"))
	require.NoError(t, err)
	_, _, err = c.SaveCircuit(ctx, "fixture", parseWires(t, "2 -> a"))
	require.NoError(t, err)

	n, err := c.DeleteCircuit(ctx, "fixture")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = c.LoadCircuit(ctx, "fixture")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	var orphans int
	require.NoError(t, c.db.QueryRow("SELECT COUNT(*) FROM circuit_wires").Scan(&orphans))
	assert.Zero(t, orphans)
}

func TestContentHash_Deterministic(t *testing.T) {
	wires := parseWires(t, "123 -> x", "NOT x -> h")
	assert.Equal(t, ContentHash(wires), ContentHash(wires))
	assert.NotEqual(t, ContentHash(wires), ContentHash(parseWires(t, "123 -> x")))

	// Order matters: a circuit is its definition sequence.
	assert.NotEqual(t,
		ContentHash(parseWires(t, "1 -> a", "2 -> b")),
		ContentHash(parseWires(t, "2 -> b", "1 -> a")))
}
