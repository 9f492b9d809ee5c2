package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sudologue/internal/proof"
	"github.com/roach88/sudologue/internal/solver"
)

// explainStepJSON is one explained step of the JSON explain payload.
type explainStepJSON struct {
	Step         int      `json:"step"`
	Rule         string   `json:"rule"`
	Placement    string   `json:"placement"`
	ProofID      string   `json:"proof_id"`
	ProofSize    int      `json:"proof_size"`
	Propositions []string `json:"propositions"`
}

// explainJSON is the JSON payload of the explain command.
type explainJSON struct {
	Puzzle    string            `json:"puzzle"`
	Size      int               `json:"size"`
	Status    string            `json:"status"`
	Verbosity string            `json:"verbosity"`
	Steps     []explainStepJSON `json:"steps"`
}

// NewExplainCommand creates the explain command.
func NewExplainCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{}
	step := 0

	cmd := &cobra.Command{
		Use:   "explain [puzzle]",
		Short: "Show the proof slice behind each placement",
		Long: `Solve a puzzle and print, per placement, the deduplicated proof slice
at the chosen verbosity: every proposition the placement transitively
depends on, root first. Use --step to focus on a single placement.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(cmd, args, rootOpts, opts, step)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "read the puzzle from a file")
	cmd.Flags().IntVar(&opts.Size, "size", 9, "board size")
	cmd.Flags().StringSliceVar(&opts.Rules, "rules", nil, "rules to apply in priority order (naked_single, hidden_single)")
	cmd.Flags().StringVar(&opts.Verbosity, "verbosity", "full", "proof verbosity (full|normal|terse)")
	cmd.Flags().StringVar(&opts.Derive, "derive", "full", "derivation mode (full|direct)")
	cmd.Flags().IntVar(&step, "step", 0, "explain only this step (1-based, 0 for all)")

	return cmd
}

func runExplain(cmd *cobra.Command, args []string, rootOpts *RootOptions, opts *SolveOptions, step int) error {
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

	steps := result.Steps
	if step != 0 {
		if step < 1 || step > len(steps) {
			return NewExitError(ExitCommandError,
				fmt.Sprintf("step %d out of range: solve has %d steps", step, len(steps)))
		}
		steps = steps[step-1 : step]
	}

	if rootOpts.Format == "json" {
		resp := explainJSON{
			Puzzle:    result.Initial.String(),
			Size:      result.Initial.Size(),
			Status:    string(result.Status),
			Verbosity: verbosity.String(),
			Steps:     []explainStepJSON{},
		}
		for i, s := range steps {
			index := i + 1
			if step != 0 {
				index = step
			}
			slice := proof.SliceProof(s.Theorem, verbosity)
			props := make([]string, len(slice))
			for j, p := range slice {
				props[j] = p.String()
			}
			resp.Steps = append(resp.Steps, explainStepJSON{
				Step:         index,
				Rule:         s.Theorem.Rule,
				Placement:    s.Theorem.String(),
				ProofID:      proof.ID(s.Theorem),
				ProofSize:    proof.ProofSize(s.Theorem),
				Propositions: props,
			})
		}
		if err := formatter.JSON(resp); err != nil {
			return err
		}
		return stuckError(result)
	}

	var blocks []string
	for i, s := range steps {
		index := i + 1
		if step != 0 {
			index = step
		}
		blocks = append(blocks, explainStep(index, s, verbosity))
	}
	if result.Status == solver.StatusStuck {
		blocks = append(blocks, "Stuck: "+result.Diagnosis)
	}
	if len(blocks) == 0 {
		blocks = append(blocks, "Nothing to explain: no placements were made.")
	}
	if err := formatter.Text(strings.Join(blocks, "\n\n")); err != nil {
		return err
	}
	return stuckError(result)
}

// stuckError maps a stuck solve to the failure exit code.
func stuckError(result *solver.SolveResult) error {
	if result.Status != solver.StatusStuck {
		return nil
	}
	return NewExitError(ExitFailure, "puzzle not solved: "+result.Diagnosis)
}

// explainStep renders one placement and its proof slice, root first.
func explainStep(index int, s solver.Step, verbosity proof.Verbosity) string {
	thm := s.Theorem
	lines := []string{fmt.Sprintf("Step %d: %s [%s]", index, thm, thm.Rule)}
	// SliceProof returns the root first; skip it, it is already the header.
	for _, p := range proof.SliceProof(thm, verbosity)[1:] {
		lines = append(lines, "  "+p.String())
	}
	return strings.Join(lines, "\n")
}
