package store

import (
	"context"
	"fmt"
	"time"

	"github.com/roach88/sudologue/internal/proof"
	"github.com/roach88/sudologue/internal/solver"
)

// WriteResult records a solve trace as a session with one row per step.
// The whole write is one transaction: a session is either fully recorded
// or absent. Uses ON CONFLICT DO NOTHING for idempotency - re-recording
// the same session ID is silently ignored.
//
// Each step stores the content-addressed ID of its theorem, so traces can
// be correlated across databases and replays.
func (s *Store) WriteResult(ctx context.Context, id string, result *solver.SolveResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write result: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sessions (id, created_at, puzzle, size, status, diagnosis, steps)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		id,
		s.now().UTC().Format(time.RFC3339),
		result.Initial.String(),
		result.Initial.Size(),
		string(result.Status),
		result.Diagnosis,
		len(result.Steps),
	)
	if err != nil {
		return fmt.Errorf("write result: session: %w", err)
	}

	for i, step := range result.Steps {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO steps (session_id, idx, rule, cell_row, cell_col, value, board, proof_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(session_id, idx) DO NOTHING
		`,
			id,
			i,
			step.Theorem.Rule,
			step.Theorem.Cell.Row,
			step.Theorem.Cell.Col,
			step.Theorem.Value,
			step.Board.String(),
			proof.ID(step.Theorem),
		)
		if err != nil {
			return fmt.Errorf("write result: step %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write result: commit: %w", err)
	}
	return nil
}
