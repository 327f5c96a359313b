package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nilhecke/schubert"
)

var schubertRank int

var schubertCmd = &cobra.Command{
	Use:   "schubert",
	Short: "Enumerate Schubert-type polynomials for a rank",
	Long: `Enumerates every polynomial reachable from the staircase seed under
the divided-difference operator generating set of the given rank, and
prints the distinct results in canonical order.

Example:
  nilhecke schubert --rank 3`,
	RunE: runSchubert,
}

func init() {
	rootCmd.AddCommand(schubertCmd)

	schubertCmd.Flags().IntVarP(&schubertRank, "rank", "n", 2, "rank of the enumeration (>= 2)")
}

func runSchubert(cmd *cobra.Command, args []string) error {
	set, degree, err := schubert.Generate(schubertRank)
	if err != nil {
		return err
	}

	fmt.Printf("rank %d, %d rounds, %d polynomials:\n", schubertRank, degree, set.Len())
	for _, p := range set.Polynomials() {
		fmt.Println(p)
	}

	return nil
}
