// Command sudologue solves sudoku puzzles by forward inference and prints
// a verifiable proof for every placement.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/sudologue/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
