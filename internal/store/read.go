package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/roach88/sudologue/internal/board"
)

// ErrSessionNotFound is returned when reading a session ID with no record.
var ErrSessionNotFound = errors.New("session not found")

// Session is one recorded solver run.
type Session struct {
	ID        string
	CreatedAt time.Time
	Puzzle    string
	Size      int
	Status    string
	Diagnosis string
	Steps     int
}

// StepRecord is one recorded placement within a session.
type StepRecord struct {
	SessionID string
	Index     int
	Rule      string
	Cell      board.Cell
	Value     int
	Board     string
	ProofID   string
}

// ReadSession fetches one session by ID.
func (s *Store) ReadSession(ctx context.Context, id string) (*Session, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, puzzle, size, status, diagnosis, steps
		FROM sessions WHERE id = ?
	`, id)

	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read session %s: %w", id, ErrSessionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read session %s: %w", id, err)
	}
	return sess, nil
}

// ReadSteps fetches a session's steps in placement order.
func (s *Store) ReadSteps(ctx context.Context, sessionID string) ([]StepRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, idx, rule, cell_row, cell_col, value, board, proof_id
		FROM steps WHERE session_id = ?
		ORDER BY idx
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("read steps %s: %w", sessionID, err)
	}
	defer rows.Close()

	var steps []StepRecord
	for rows.Next() {
		var rec StepRecord
		if err := rows.Scan(&rec.SessionID, &rec.Index, &rec.Rule,
			&rec.Cell.Row, &rec.Cell.Col, &rec.Value, &rec.Board, &rec.ProofID); err != nil {
			return nil, fmt.Errorf("read steps %s: scan: %w", sessionID, err)
		}
		steps = append(steps, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read steps %s: %w", sessionID, err)
	}
	return steps, nil
}

// ListSessions returns all sessions, most recent first.
func (s *Store) ListSessions(ctx context.Context) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, puzzle, size, status, diagnosis, steps
		FROM sessions ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("list sessions: scan: %w", err)
		}
		sessions = append(sessions, *sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// scanner abstracts sql.Row and sql.Rows for shared scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var sess Session
	var createdAt string
	if err := row.Scan(&sess.ID, &createdAt, &sess.Puzzle, &sess.Size,
		&sess.Status, &sess.Diagnosis, &sess.Steps); err != nil {
		return nil, err
	}
	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	sess.CreatedAt = ts
	return &sess, nil
}
