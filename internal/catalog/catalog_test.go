package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadValidPack(t *testing.T) {
	result, errs := Load(filepath.Join("testdata", "valid"), LoadModeFailFast)
	require.Empty(t, errs)
	require.NotNil(t, result)

	assert.Equal(t, 1, result.FileCount)
	require.Len(t, result.Puzzles, 3)

	// Sorted by name.
	assert.Equal(t, "cascade", result.Puzzles[0].Name)
	assert.Equal(t, "lastcell", result.Puzzles[1].Name)
	assert.Equal(t, "wikipedia", result.Puzzles[2].Name)

	lastcell := result.Puzzles[1]
	assert.Equal(t, 4, lastcell.Size)
	assert.Equal(t, "1230341221434321", lastcell.Givens)
	assert.Equal(t, "1234341221434321", lastcell.Solution)
	assert.Equal(t, "one empty cell", lastcell.Note)
	require.NotNil(t, lastcell.Board)
	assert.Equal(t, lastcell.Givens, lastcell.Board.String())

	cascade := result.Puzzles[0]
	assert.Empty(t, cascade.Solution)
	assert.Empty(t, cascade.Note)

	wiki := result.Puzzles[2]
	assert.Equal(t, 9, wiki.Size)
	assert.NotEmpty(t, wiki.Solution)
}

func TestLoadCollectAll(t *testing.T) {
	result, errs := Load(filepath.Join("testdata", "invalid"), LoadModeCollectAll)
	require.NotNil(t, result)

	// short, duplicated, and badsolution fail; good survives.
	require.Len(t, errs, 3)
	require.Len(t, result.Puzzles, 1)
	assert.Equal(t, "good", result.Puzzles[0].Name)

	codes := map[string]int{}
	for _, err := range errs {
		le, ok := err.(*LoadError)
		require.True(t, ok, "expected *LoadError, got %T", err)
		codes[le.Code]++
	}
	assert.Equal(t, 2, codes[ErrCodePuzzleInvalid], "short and duplicated givens")
	assert.Equal(t, 1, codes[ErrCodeSolutionInvalid], "incomplete solution")
}

func TestLoadFailFast(t *testing.T) {
	_, errs := Load(filepath.Join("testdata", "invalid"), LoadModeFailFast)
	require.Len(t, errs, 1, "fail-fast stops at the first bad puzzle")

	le, ok := errs[0].(*LoadError)
	require.True(t, ok)
	assert.Contains(t, []string{ErrCodePuzzleInvalid, ErrCodeSolutionInvalid}, le.Code)
}

func TestLoadMissingDirectory(t *testing.T) {
	_, errs := Load(filepath.Join("testdata", "nope"), LoadModeFailFast)
	require.Len(t, errs, 1)

	le, ok := errs[0].(*LoadError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeNotFound, le.Code)
}

func TestLoadNoCUEFiles(t *testing.T) {
	_, errs := Load(filepath.Join("testdata", "empty"), LoadModeFailFast)
	require.Len(t, errs, 1)

	le, ok := errs[0].(*LoadError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeNoFiles, le.Code)
}

func TestLoadErrorFormatting(t *testing.T) {
	le := &LoadError{Code: ErrCodePuzzleInvalid, Message: "boom"}
	assert.Equal(t, "E102: boom", le.Error())
}
