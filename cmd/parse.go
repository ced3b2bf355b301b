package cmd

import (
	"fmt"

	"github.com/agentic-research/moncat/internal/moncat"
	"github.com/agentic-research/moncat/internal/pregroup"
	"github.com/spf13/cobra"
)

var parseTarget string

func init() {
	parseCmd.Flags().StringVarP(&parseTarget, "target", "t", "s",
		"Target type symbol to reduce the sentence to")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse [words...]",
	Short: "Eager-parse a sentence with the demo pregroup lexicon",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, words := demoLexicon()
		sentence := demoSentence
		if len(args) > 0 {
			sentence = args
		}

		boxes := make([]*moncat.Box, len(sentence))
		for i, w := range sentence {
			box, ok := words[w]
			if !ok {
				return fmt.Errorf("word %q is not in the demo lexicon", w)
			}
			boxes[i] = box
		}

		parse, err := pregroup.EagerParse(moncat.NewTy(parseTarget), boxes...)
		if err != nil {
			return fmt.Errorf("parse: %w", err)
		}
		fmt.Printf("%s\n", parse)
		fmt.Printf("offsets: %v\n", parse.Offsets())
		return nil
	},
}
