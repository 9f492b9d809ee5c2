package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsValidPuzzle(t *testing.T) {
	out, _, err := execute(t, "validate", lastCell, "--size", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Puzzle is valid (4x4, 15 givens, 1 empty).")
}

func TestValidateAcceptsCompletePuzzle(t *testing.T) {
	out, _, err := execute(t, "validate", lastCellSolution, "--size", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "valid and complete")
}

func TestValidateRejectsDuplicate(t *testing.T) {
	out, _, err := execute(t, "validate", "1130341221434321", "--size", "4")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "DUPLICATE_VALUE")
}

func TestValidateRejectsBadLength(t *testing.T) {
	out, _, err := execute(t, "validate", "123", "--size", "4")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "BAD_LENGTH")
}

func TestValidateJSONOutput(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "validate", lastCell, "--size", "4")
	require.NoError(t, err)

	var payload validateJSON
	resp := decodeResponse(t, out, &payload)
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, payload.Valid)
	assert.Equal(t, 4, payload.Size)
	assert.Equal(t, 15, payload.Givens)
	assert.Equal(t, 1, payload.Empty)
	assert.False(t, payload.Complete)
}

func TestValidateJSONError(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "validate", "123", "--size", "4")
	require.Error(t, err)

	resp := decodeResponse(t, out, nil)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BAD_LENGTH", resp.Error.Code)
}

func TestValidateReadsPuzzleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n"+lastCell+"\ntrailing note\n"), 0o644))

	out, _, err := execute(t, "validate", "--file", path, "--size", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Puzzle is valid")
}

func TestValidateRequiresPuzzle(t *testing.T) {
	_, _, err := execute(t, "validate")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestValidateRejectsArgAndFile(t *testing.T) {
	_, _, err := execute(t, "validate", lastCell, "--file", "x.txt", "--size", "4")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
