package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "moncat",
	Short: "Moncat: free monoidal categories and weighted grammars",
	Long: `Moncat encodes context-free grammars as diagrams in a free monoidal
category and evaluates monoidal functors into the delooping of a
commutative monoid, reproducing the classical weight of a derivation.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
