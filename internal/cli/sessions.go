package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/sudologue/internal/store"
)

// sessionJSON is one session of the JSON sessions payload.
type sessionJSON struct {
	ID        string            `json:"id"`
	CreatedAt string            `json:"created_at"`
	Puzzle    string            `json:"puzzle"`
	Size      int               `json:"size"`
	Status    string            `json:"status"`
	Diagnosis string            `json:"diagnosis,omitempty"`
	Steps     int               `json:"steps"`
	Trace     []sessionStepJSON `json:"trace,omitempty"` // populated when one session is shown
}

// sessionStepJSON is one recorded placement of a shown session.
type sessionStepJSON struct {
	Index   int    `json:"index"`
	Rule    string `json:"rule"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Value   int    `json:"value"`
	Board   string `json:"board"`
	ProofID string `json:"proof_id"`
}

// NewSessionsCommand creates the sessions command.
func NewSessionsCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "sessions [id]",
		Short: "List or inspect recorded solve sessions",
		Long: `List sessions recorded with solve --db, most recent first, or show
one session with its full placement trace.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSessions(cmd, args, rootOpts, dbPath)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the session database (required)")
	cmd.MarkFlagRequired("db")

	return cmd
}

func runSessions(cmd *cobra.Command, args []string, rootOpts *RootOptions, dbPath string) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "opening session database", err)
	}
	defer db.Close()

	ctx := cmd.Context()

	if len(args) == 1 {
		return showSession(ctx, formatter, db, args[0])
	}

	sessions, err := db.ListSessions(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "listing sessions", err)
	}

	if rootOpts.Format == "json" {
		out := []sessionJSON{}
		for _, s := range sessions {
			out = append(out, sessionResponse(&s, nil))
		}
		return formatter.JSON(out)
	}

	if len(sessions) == 0 {
		return formatter.Text("No sessions recorded.")
	}
	var lines []string
	for _, s := range sessions {
		lines = append(lines, fmt.Sprintf("%s  %s  %dx%d  %s  %d step(s)",
			s.ID, s.CreatedAt.Format(time.RFC3339), s.Size, s.Size, s.Status, s.Steps))
	}
	return formatter.Text(strings.Join(lines, "\n"))
}

func showSession(ctx context.Context, formatter *OutputFormatter, db *store.Store, id string) error {
	sess, err := db.ReadSession(ctx, id)
	if errors.Is(err, store.ErrSessionNotFound) {
		formatter.Error("NOT_FOUND", fmt.Sprintf("session %s not found", id))
		return WrapExitError(ExitFailure, "session not found", err)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "reading session", err)
	}

	steps, err := db.ReadSteps(ctx, id)
	if err != nil {
		return WrapExitError(ExitCommandError, "reading session steps", err)
	}

	if formatter.Format == "json" {
		return formatter.JSON(sessionResponse(sess, steps))
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Session %s (%s)", sess.ID, sess.CreatedAt.Format(time.RFC3339)))
	lines = append(lines, fmt.Sprintf("Puzzle:  %s (%dx%d)", sess.Puzzle, sess.Size, sess.Size))
	status := sess.Status
	if sess.Diagnosis != "" {
		status += ", " + sess.Diagnosis
	}
	lines = append(lines, "Outcome: "+status)
	for _, step := range steps {
		lines = append(lines, fmt.Sprintf("  %d: [%s] place %d at %s  proof %s",
			step.Index+1, step.Rule, step.Value, step.Cell, shortID(step.ProofID)))
	}
	return formatter.Text(strings.Join(lines, "\n"))
}

func sessionResponse(sess *store.Session, steps []store.StepRecord) sessionJSON {
	out := sessionJSON{
		ID:        sess.ID,
		CreatedAt: sess.CreatedAt.Format(time.RFC3339),
		Puzzle:    sess.Puzzle,
		Size:      sess.Size,
		Status:    sess.Status,
		Diagnosis: sess.Diagnosis,
		Steps:     sess.Steps,
	}
	for _, step := range steps {
		out.Trace = append(out.Trace, sessionStepJSON{
			Index:   step.Index,
			Rule:    step.Rule,
			Row:     step.Cell.Row,
			Col:     step.Cell.Col,
			Value:   step.Value,
			Board:   step.Board,
			ProofID: step.ProofID,
		})
	}
	return out
}

// shortID abbreviates a content-addressed proof ID for display.
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
