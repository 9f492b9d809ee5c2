package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainShowsProofSlice(t *testing.T) {
	out, _, err := execute(t, "explain", lastCell, "--size", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "Step 1: place 4 at (0,3) [naked single]")
	assert.Contains(t, out, "  cells for 1 in cell 4 = {}")
	assert.Contains(t, out, "  (0,3) ≠ 1")
}

func TestExplainNormalHidesAxioms(t *testing.T) {
	out, _, err := execute(t, "explain", lastCell, "--size", "4", "--verbosity", "normal")
	require.NoError(t, err)

	assert.Contains(t, out, "  (0,3) ≠ 1")
	assert.NotContains(t, out, "(0,0) = 1\n")
}

func TestExplainSingleStep(t *testing.T) {
	out, _, err := execute(t, "explain", "0000341221434321", "--size", "4", "--step", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "Step 4:")
	assert.NotContains(t, out, "Step 1:")
}

func TestExplainStepOutOfRange(t *testing.T) {
	_, _, err := execute(t, "explain", lastCell, "--size", "4", "--step", "7")
	require.Error(t, err)

	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "out of range")
}

func TestExplainStuckPuzzle(t *testing.T) {
	out, _, err := execute(t, "explain", empty4x4, "--size", "4")
	require.Error(t, err)

	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Stuck: 16 empty cells remaining")
}

func TestExplainJSONOutput(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "explain", lastCell, "--size", "4")
	require.NoError(t, err)

	var payload explainJSON
	resp := decodeResponse(t, out, &payload)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "full", payload.Verbosity)
	require.Len(t, payload.Steps, 1)
	assert.Equal(t, 1, payload.Steps[0].Step)
	assert.Equal(t, "place 4 at (0,3)", payload.Steps[0].Placement)
	assert.Len(t, payload.Steps[0].ProofID, 64)
	assert.NotEmpty(t, payload.Steps[0].Propositions)
	assert.Greater(t, payload.Steps[0].ProofSize, 1)
}
