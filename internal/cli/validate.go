package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sudologue/internal/board"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	File string
	Size int
}

// validateJSON is the JSON payload of the validate command.
type validateJSON struct {
	Valid    bool   `json:"valid"`
	Size     int    `json:"size"`
	Givens   int    `json:"givens"`
	Empty    int    `json:"empty"`
	Complete bool   `json:"complete"`
	Puzzle   string `json:"puzzle"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{}

	cmd := &cobra.Command{
		Use:   "validate [puzzle]",
		Short: "Check a puzzle string without solving it",
		Long: `Check that a puzzle string parses as a consistent board.

Reports length, character, and duplicate-value violations. Exits 0 for a
valid puzzle, 1 for an invalid one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, rootOpts, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "read the puzzle from a file")
	cmd.Flags().IntVar(&opts.Size, "size", 9, "board size")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string, rootOpts *RootOptions, opts *ValidateOptions) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	puzzle, err := readPuzzle(args, opts.File)
	if err != nil {
		return err
	}

	b, err := board.Parse(puzzle, opts.Size)
	if err != nil {
		formatter.Error(boardErrorCode(err), err.Error())
		return WrapExitError(ExitFailure, "invalid puzzle", err)
	}

	empty := len(b.EmptyCells())
	if rootOpts.Format == "json" {
		return formatter.JSON(validateJSON{
			Valid:    true,
			Size:     b.Size(),
			Givens:   b.Size()*b.Size() - empty,
			Empty:    empty,
			Complete: b.IsComplete(),
			Puzzle:   b.String(),
		})
	}

	if b.IsComplete() {
		return formatter.Text(fmt.Sprintf("Puzzle is valid and complete (%dx%d).", b.Size(), b.Size()))
	}
	return formatter.Text(fmt.Sprintf("Puzzle is valid (%dx%d, %d givens, %d empty).",
		b.Size(), b.Size(), b.Size()*b.Size()-empty, empty))
}
