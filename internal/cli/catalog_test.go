package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogListsPack(t *testing.T) {
	out, _, err := execute(t, "catalog", filepath.Join("testdata", "pack"))
	require.NoError(t, err)

	assert.Contains(t, out, "1 file(s), 2 puzzle(s)")
	assert.Contains(t, out, "cascade (4x4)")
	assert.Contains(t, out, "lastcell (4x4) - one empty cell")
}

func TestCatalogSolvesPack(t *testing.T) {
	out, _, err := execute(t, "catalog", filepath.Join("testdata", "pack"), "--solve")
	require.NoError(t, err)

	assert.Contains(t, out, "lastcell (4x4) - one empty cell: solved in 1 steps, declared solution ok")
	assert.Contains(t, out, "cascade (4x4): solved in 4 steps")
}

func TestCatalogSolveJSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "catalog", filepath.Join("testdata", "pack"), "--solve")
	require.NoError(t, err)

	var payload catalogJSON
	resp := decodeResponse(t, out, &payload)
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, payload.Puzzles, 2)

	// Sorted by name: cascade first.
	assert.Equal(t, "cascade", payload.Puzzles[0].Name)
	assert.Equal(t, "solved", payload.Puzzles[0].Status)
	assert.Equal(t, "lastcell", payload.Puzzles[1].Name)
	assert.Equal(t, "ok", payload.Puzzles[1].Match)
	assert.Equal(t, lastCellSolution, payload.Puzzles[1].Solution)
}

func TestCatalogMissingDir(t *testing.T) {
	out, _, err := execute(t, "catalog", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)

	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "E005")
}
