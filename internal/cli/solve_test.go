package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveSolvesLastCell(t *testing.T) {
	out, _, err := execute(t, "solve", lastCell, "--size", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "Initial board:")
	assert.Contains(t, out, "Step 1: place 4 at (0,3) [naked single]")
	assert.Contains(t, out, "Solved!")
}

func TestSolveStuckExitsWithFailure(t *testing.T) {
	out, _, err := execute(t, "solve", empty4x4, "--size", "4")
	require.Error(t, err)

	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Stuck: 16 empty cells remaining")
}

func TestSolveFullVerbosityShowsPremises(t *testing.T) {
	out, _, err := execute(t, "solve", lastCell, "--size", "4", "--verbosity", "full")
	require.NoError(t, err)

	assert.Contains(t, out, "cells for 1 in cell 4 = {}")
}

func TestSolveJSONOutput(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "solve", lastCell, "--size", "4")
	require.NoError(t, err)

	var payload solveJSON
	resp := decodeResponse(t, out, &payload)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "solved", payload.Status)
	assert.Equal(t, lastCellSolution, payload.Solution)
	require.Len(t, payload.Steps, 1)
	assert.Equal(t, "naked single", payload.Steps[0].Rule)
	assert.Equal(t, 0, payload.Steps[0].Row)
	assert.Equal(t, 3, payload.Steps[0].Col)
	assert.Equal(t, 4, payload.Steps[0].Value)
	assert.Len(t, payload.Steps[0].ProofID, 64)
}

func TestSolveInvalidPuzzleReportsCode(t *testing.T) {
	out, _, err := execute(t, "solve", "1130341221434321", "--size", "4")
	require.Error(t, err)

	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "DUPLICATE_VALUE")
}

func TestSolveRejectsUnknownRule(t *testing.T) {
	_, _, err := execute(t, "solve", lastCell, "--size", "4", "--rules", "swordfish")
	require.Error(t, err)

	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `unknown rule "swordfish"`)
}

func TestSolveRejectsBadVerbosity(t *testing.T) {
	_, _, err := execute(t, "solve", lastCell, "--size", "4", "--verbosity", "chatty")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSolveRejectsBadDerive(t *testing.T) {
	_, _, err := execute(t, "solve", lastCell, "--size", "4", "--derive", "lazy")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSolveRecordsSession(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sessions.db")

	out, _, err := execute(t, "solve", lastCell, "--size", "4", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Session: ")

	list, _, err := execute(t, "sessions", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, list, "solved")
	assert.Contains(t, list, "1 step(s)")
}

func TestSolveMinimalPicksSmallestProof(t *testing.T) {
	// Same outcome on this puzzle; the flag must not disturb the solve.
	out, _, err := execute(t, "solve", lastCell, "--size", "4", "--minimal")
	require.NoError(t, err)
	assert.Contains(t, out, "Solved!")
}
