package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nilhecke/internal/buildinfo"
)

var rootCmd = &cobra.Command{
	Use:   "nilhecke",
	Short: "Interactive shell for the odd polynomial ring",
	Long: `nilhecke is an interactive calculator for a graded polynomial ring in
finitely many odd generators, with recursive divided-difference
operators and Schubert-type closure enumeration on top.

Without a subcommand it starts the interactive shell.

Shell functions:
  print  - parse and pretty-print a polynomial
  add    - add two polynomials
  mul    - multiply two polynomials
  p      - apply a word of operators (e.g. "s1 b1 d2") to a polynomial
  schud  - enumerate Schubert-type polynomials for a rank
  quit   - leave the shell`,
	Version: buildinfo.Get().String(),
	RunE:    runShell,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
