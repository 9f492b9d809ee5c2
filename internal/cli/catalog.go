package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sudologue/internal/catalog"
	"github.com/roach88/sudologue/internal/solver"
)

// CatalogOptions holds flags for the catalog command.
type CatalogOptions struct {
	Solve    bool
	FailFast bool
	Rules    []string
}

// catalogPuzzleJSON is one pack entry of the JSON catalog payload.
type catalogPuzzleJSON struct {
	Name     string `json:"name"`
	Size     int    `json:"size"`
	Note     string `json:"note,omitempty"`
	Status   string `json:"status,omitempty"`   // set with --solve
	Steps    int    `json:"steps,omitempty"`    // set with --solve
	Solution string `json:"solution,omitempty"` // set with --solve on a solved puzzle
	Match    string `json:"match,omitempty"`    // "ok"/"mismatch" against a declared solution
}

// catalogJSON is the JSON payload of the catalog command.
type catalogJSON struct {
	Dir     string              `json:"dir"`
	Files   int                 `json:"files"`
	Puzzles []catalogPuzzleJSON `json:"puzzles"`
	Errors  []string            `json:"errors,omitempty"`
}

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CatalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog <dir>",
		Short: "Load a CUE puzzle pack and optionally solve it",
		Long: `Load and validate a directory of CUE puzzle declarations.

With --solve, each puzzle is solved and, when the pack declares a
solution, the result is checked against it. Exits 1 when the pack has
errors, a puzzle gets stuck, or a solution does not match.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, args[0], rootOpts, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Solve, "solve", false, "solve every puzzle in the pack")
	cmd.Flags().BoolVar(&opts.FailFast, "fail-fast", false, "stop at the first pack error")
	cmd.Flags().StringSliceVar(&opts.Rules, "rules", nil, "rules to apply in priority order (naked_single, hidden_single)")

	return cmd
}

func runCatalog(cmd *cobra.Command, dir string, rootOpts *RootOptions, opts *CatalogOptions) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	mode := catalog.LoadModeCollectAll
	if opts.FailFast {
		mode = catalog.LoadModeFailFast
	}

	ruleSet, err := resolveRules(opts.Rules)
	if err != nil {
		return err
	}

	result, loadErrs := catalog.Load(dir, mode)
	if result == nil {
		// Nothing loaded at all: directory missing or unscannable.
		for _, e := range loadErrs {
			formatter.Error(catalogErrorCode(e), e.Error())
		}
		return NewExitError(ExitCommandError, fmt.Sprintf("loading pack %s failed", dir))
	}

	resp := catalogJSON{Dir: dir, Files: result.FileCount, Puzzles: []catalogPuzzleJSON{}}
	for _, e := range loadErrs {
		resp.Errors = append(resp.Errors, e.Error())
	}

	failed := len(loadErrs) > 0
	sv := solver.New(ruleSet)
	for _, puzzle := range result.Puzzles {
		entry := catalogPuzzleJSON{Name: puzzle.Name, Size: puzzle.Size, Note: puzzle.Note}
		if opts.Solve {
			solve, err := sv.Solve(puzzle.Board)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("solving %s", puzzle.Name), err)
			}
			entry.Status = string(solve.Status)
			entry.Steps = len(solve.Steps)
			if solve.Status == solver.StatusSolved {
				entry.Solution = solve.FinalBoard().String()
			} else {
				failed = true
			}
			if puzzle.Solution != "" {
				if solve.FinalBoard().String() == puzzle.Solution {
					entry.Match = "ok"
				} else {
					entry.Match = "mismatch"
					failed = true
				}
			}
		}
		resp.Puzzles = append(resp.Puzzles, entry)
	}

	if rootOpts.Format == "json" {
		if err := formatter.JSON(resp); err != nil {
			return err
		}
	} else {
		if err := formatter.Text(formatCatalog(resp, opts.Solve)); err != nil {
			return err
		}
	}

	if failed {
		return NewExitError(ExitFailure, fmt.Sprintf("pack %s has failures", dir))
	}
	return nil
}

func formatCatalog(resp catalogJSON, solved bool) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Pack %s: %d file(s), %d puzzle(s)", resp.Dir, resp.Files, len(resp.Puzzles)))
	for _, p := range resp.Puzzles {
		line := fmt.Sprintf("  %s (%dx%d)", p.Name, p.Size, p.Size)
		if p.Note != "" {
			line += " - " + p.Note
		}
		if solved {
			line += fmt.Sprintf(": %s in %d steps", p.Status, p.Steps)
			if p.Match != "" {
				line += ", declared solution " + p.Match
			}
		}
		lines = append(lines, line)
	}
	for _, e := range resp.Errors {
		lines = append(lines, "  error: "+e)
	}
	return strings.Join(lines, "\n")
}

// catalogErrorCode extracts the pack error code, falling back to the
// generic one.
func catalogErrorCode(err error) string {
	if le, ok := err.(*catalog.LoadError); ok {
		return le.Code
	}
	return catalog.ErrCodeGeneric
}
