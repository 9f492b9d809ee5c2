package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/roach88/sudologue/internal/board"
	"github.com/roach88/sudologue/internal/rules"
)

// readPuzzle resolves the puzzle string from a positional argument or a
// --file path. The file form takes the first non-empty line, so puzzle
// files can carry trailing comments or blank lines.
func readPuzzle(args []string, file string) (string, error) {
	if len(args) > 0 && file != "" {
		return "", NewExitError(ExitCommandError, "give a puzzle argument or --file, not both")
	}
	if len(args) > 0 {
		return args[0], nil
	}
	if file == "" {
		return "", NewExitError(ExitCommandError, "a puzzle argument or --file is required")
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", WrapExitError(ExitCommandError, "reading puzzle file", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
	}
	return "", NewExitError(ExitCommandError, fmt.Sprintf("no puzzle found in %s", file))
}

// resolveRules maps --rules names to rule implementations in flag order.
// Empty means both singles, naked first.
func resolveRules(names []string) ([]rules.Rule, error) {
	if len(names) == 0 {
		return []rules.Rule{rules.NakedSingle{}, rules.HiddenSingle{}}, nil
	}
	var out []rules.Rule
	for _, name := range names {
		switch name {
		case "naked_single":
			out = append(out, rules.NakedSingle{})
		case "hidden_single":
			out = append(out, rules.HiddenSingle{})
		default:
			return nil, NewExitError(ExitCommandError, fmt.Sprintf("unknown rule %q (known: naked_single, hidden_single)", name))
		}
	}
	return out, nil
}

// boardErrorCode extracts the board validation code from an error, falling
// back to a generic code for non-board errors.
func boardErrorCode(err error) string {
	var bErr *board.Error
	if errors.As(err, &bErr) {
		return string(bErr.Code)
	}
	return "INVALID"
}
