package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/roach88/sudologue/internal/board"
	"github.com/roach88/sudologue/internal/proof"
	"github.com/roach88/sudologue/internal/rules"
	"github.com/roach88/sudologue/internal/solver"
	"github.com/roach88/sudologue/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, opts ...StoreOption) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func solveFixture(t *testing.T, puzzle string, size int) *solver.SolveResult {
	t.Helper()
	b, err := board.Parse(puzzle, size)
	require.NoError(t, err)
	result, err := solver.New([]rules.Rule{rules.NakedSingle{}, rules.HiddenSingle{}}).Solve(b)
	require.NoError(t, err)
	return result
}

func TestOpenAppliesPragmas(t *testing.T) {
	s := openTestStore(t)

	assert.NoError(t, s.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, s.verifyPragma("foreign_keys", "1"))
	assert.NoError(t, s.verifyPragma("busy_timeout", "5000"))
}

func TestOpenIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	var version int
	require.NoError(t, s2.db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}

func TestWriteAndReadResult(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	result := solveFixture(t, "0000341221434321", 4)
	require.Equal(t, solver.StatusSolved, result.Status)
	require.Len(t, result.Steps, 4)

	id := uuid.NewString()
	require.NoError(t, s.WriteResult(ctx, id, result))

	sess, err := s.ReadSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, sess.ID)
	assert.Equal(t, "0000341221434321", sess.Puzzle)
	assert.Equal(t, 4, sess.Size)
	assert.Equal(t, "solved", sess.Status)
	assert.Empty(t, sess.Diagnosis)
	assert.Equal(t, 4, sess.Steps)
	assert.False(t, sess.CreatedAt.IsZero())

	steps, err := s.ReadSteps(ctx, id)
	require.NoError(t, err)
	require.Len(t, steps, 4)
	for i, rec := range steps {
		assert.Equal(t, i, rec.Index)
		assert.Equal(t, result.Steps[i].Theorem.Cell, rec.Cell)
		assert.Equal(t, result.Steps[i].Theorem.Value, rec.Value)
		assert.Equal(t, result.Steps[i].Theorem.Rule, rec.Rule)
		assert.Equal(t, result.Steps[i].Board.String(), rec.Board)
		assert.Equal(t, proof.ID(result.Steps[i].Theorem), rec.ProofID)
	}
	assert.True(t, steps[len(steps)-1].Board == result.FinalBoard().String())
}

func TestWriteResultStuckSession(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	result := solveFixture(t, "0000000000000000", 4)
	require.Equal(t, solver.StatusStuck, result.Status)

	id := uuid.NewString()
	require.NoError(t, s.WriteResult(ctx, id, result))

	sess, err := s.ReadSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "stuck", sess.Status)
	assert.Equal(t, "16 empty cells remaining", sess.Diagnosis)
	assert.Equal(t, 0, sess.Steps)

	steps, err := s.ReadSteps(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestWriteResultIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	result := solveFixture(t, "0000341221434321", 4)
	id := uuid.NewString()

	require.NoError(t, s.WriteResult(ctx, id, result))
	require.NoError(t, s.WriteResult(ctx, id, result))

	steps, err := s.ReadSteps(ctx, id)
	require.NoError(t, err)
	assert.Len(t, steps, 4, "duplicate write did not double the steps")

	sessions, err := s.ListSessions(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestReadSessionNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.ReadSession(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestListSessionsMostRecentFirst(t *testing.T) {
	clock := testutil.NewFixedClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	s := openTestStore(t, WithClock(clock.Now))
	ctx := context.Background()

	result := solveFixture(t, "1230341221434321", 4)
	seq := testutil.NewIDSequence("session")
	var ids []string
	for i := 0; i < 3; i++ {
		id := seq.Next()
		ids = append(ids, id)
		require.NoError(t, s.WriteResult(ctx, id, result))
		clock.Advance(time.Minute)
	}

	sessions, err := s.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 3)

	// Latest write first.
	assert.Equal(t, []string{ids[2], ids[1], ids[0]},
		[]string{sessions[0].ID, sessions[1].ID, sessions[2].ID})
	for _, sess := range sessions {
		assert.Equal(t, "solved", sess.Status)
	}
}

func TestWriteResultUsesClock(t *testing.T) {
	at := time.Date(2026, 8, 23, 9, 30, 0, 0, time.UTC)
	s := openTestStore(t, WithClock(testutil.NewFixedClock(at).Now))
	ctx := context.Background()

	id := "session-fixed-clock"
	require.NoError(t, s.WriteResult(ctx, id, solveFixture(t, "1230341221434321", 4)))

	sess, err := s.ReadSession(ctx, id)
	require.NoError(t, err)
	assert.True(t, sess.CreatedAt.Equal(at))
}
