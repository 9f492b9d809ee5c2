package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/sudologue/internal/board"
	"github.com/roach88/sudologue/internal/narration"
	"github.com/roach88/sudologue/internal/proof"
	"github.com/roach88/sudologue/internal/solver"
	"github.com/roach88/sudologue/internal/store"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	File      string
	Size      int
	Rules     []string
	Verbosity string
	Derive    string
	Minimal   bool
	DB        string
}

// solveStepJSON is one step of the JSON solve payload.
type solveStepJSON struct {
	Rule    string `json:"rule"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Value   int    `json:"value"`
	Board   string `json:"board"`
	ProofID string `json:"proof_id"`
}

// solveJSON is the JSON payload of the solve command.
type solveJSON struct {
	Puzzle    string          `json:"puzzle"`
	Size      int             `json:"size"`
	Status    string          `json:"status"`
	Diagnosis string          `json:"diagnosis,omitempty"`
	Steps     []solveStepJSON `json:"steps"`
	Solution  string          `json:"solution,omitempty"`
	SessionID string          `json:"session_id,omitempty"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{}

	cmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve a puzzle and print the proof of every placement",
		Long: `Solve a puzzle by forward inference.

The puzzle is a row-major digit string with 0 for empty cells, given as an
argument or read from the first non-empty line of --file. Each placement is
printed with its proof at the chosen verbosity. A stuck puzzle is reported
with a diagnosis and exits with code 1.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, rootOpts, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "read the puzzle from a file")
	cmd.Flags().IntVar(&opts.Size, "size", 9, "board size")
	cmd.Flags().StringSliceVar(&opts.Rules, "rules", nil, "rules to apply in priority order (naked_single, hidden_single)")
	cmd.Flags().StringVar(&opts.Verbosity, "verbosity", "terse", "proof verbosity (full|normal|terse)")
	cmd.Flags().StringVar(&opts.Derive, "derive", "full", "derivation mode (full|direct)")
	cmd.Flags().BoolVar(&opts.Minimal, "minimal", false, "prefer placements with the smallest proof")
	cmd.Flags().StringVar(&opts.DB, "db", "", "record the session in a SQLite database at this path")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string, rootOpts *RootOptions, opts *SolveOptions) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	result, verbosity, err := runSolvePipeline(formatter, args, opts)
	if err != nil {
		return err
	}

	sessionID := ""
	if opts.DB != "" {
		sessionID = uuid.NewString()
		db, err := store.Open(opts.DB)
		if err != nil {
			return WrapExitError(ExitCommandError, "opening session database", err)
		}
		defer db.Close()
		if err := db.WriteResult(cmd.Context(), sessionID, result); err != nil {
			return WrapExitError(ExitCommandError, "recording session", err)
		}
		formatter.VerboseLog("recorded session %s in %s", sessionID, opts.DB)
	}

	if rootOpts.Format == "json" {
		if err := formatter.JSON(solveResponse(result, sessionID)); err != nil {
			return err
		}
	} else {
		if err := formatter.Text(narration.FormatProof(result, verbosity)); err != nil {
			return err
		}
		if sessionID != "" {
			if err := formatter.Text("Session: " + sessionID); err != nil {
				return err
			}
		}
	}

	return stuckError(result)
}

// runSolvePipeline parses the puzzle, builds the solver from flags, and
// runs it. Shared by solve and explain.
func runSolvePipeline(formatter *OutputFormatter, args []string, opts *SolveOptions) (*solver.SolveResult, proof.Verbosity, error) {
	puzzle, err := readPuzzle(args, opts.File)
	if err != nil {
		return nil, 0, err
	}

	verbosity, err := proof.ParseVerbosity(opts.Verbosity)
	if err != nil {
		return nil, 0, WrapExitError(ExitCommandError, "invalid --verbosity", err)
	}

	ruleSet, err := resolveRules(opts.Rules)
	if err != nil {
		return nil, 0, err
	}

	var solverOpts []solver.SolverOption
	switch opts.Derive {
	case "", "full":
	case "direct":
		solverOpts = append(solverOpts, solver.WithDeriveOptions(proof.WithoutPairs(), proof.WithoutPointing()))
	default:
		return nil, 0, NewExitError(ExitCommandError, fmt.Sprintf("invalid --derive %q: must be full or direct", opts.Derive))
	}
	if opts.Minimal {
		solverOpts = append(solverOpts, solver.WithScorer(proof.ProofSize))
	}

	b, err := board.Parse(puzzle, opts.Size)
	if err != nil {
		formatter.Error(boardErrorCode(err), err.Error())
		return nil, 0, WrapExitError(ExitFailure, "invalid puzzle", err)
	}

	result, err := solver.New(ruleSet, solverOpts...).Solve(b)
	if err != nil {
		return nil, 0, WrapExitError(ExitCommandError, "solving", err)
	}
	return result, verbosity, nil
}

func solveResponse(result *solver.SolveResult, sessionID string) solveJSON {
	resp := solveJSON{
		Puzzle:    result.Initial.String(),
		Size:      result.Initial.Size(),
		Status:    string(result.Status),
		Diagnosis: result.Diagnosis,
		Steps:     []solveStepJSON{},
		SessionID: sessionID,
	}
	for _, step := range result.Steps {
		resp.Steps = append(resp.Steps, solveStepJSON{
			Rule:    step.Theorem.Rule,
			Row:     step.Theorem.Cell.Row,
			Col:     step.Theorem.Cell.Col,
			Value:   step.Theorem.Value,
			Board:   step.Board.String(),
			ProofID: proof.ID(step.Theorem),
		})
	}
	if result.Status == solver.StatusSolved {
		resp.Solution = result.FinalBoard().String()
	}
	return resp
}
