package cmd

import (
	"fmt"

	"github.com/agentic-research/moncat/internal/draw"
	"github.com/agentic-research/moncat/internal/moncat"
	"github.com/agentic-research/moncat/internal/pregroup"
	"github.com/spf13/cobra"
)

var drawPregroup bool

func init() {
	drawCmd.Flags().BoolVar(&drawPregroup, "pregroup", false,
		"Draw the pregroup parse instead of the CFG derivation")
	rootCmd.AddCommand(drawCmd)
}

var drawCmd = &cobra.Command{
	Use:   "draw [words...]",
	Short: "Print the DOT rendering of a derivation diagram",
	RunE: func(cmd *cobra.Command, args []string) error {
		sentence := demoSentence
		if len(args) > 0 {
			sentence = args
		}

		var diagram *moncat.Diagram
		if drawPregroup {
			target, words := demoLexicon()
			boxes := make([]*moncat.Box, len(sentence))
			for i, w := range sentence {
				box, ok := words[w]
				if !ok {
					return fmt.Errorf("word %q is not in the demo lexicon", w)
				}
				boxes[i] = box
			}
			parse, err := pregroup.EagerParse(target, boxes...)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			diagram = parse
		} else {
			weighted, err := loadDemo(nil)
			if err != nil {
				return err
			}
			derivation, err := weighted.EagerDerive(sentence...)
			if err != nil {
				return fmt.Errorf("derive: %w", err)
			}
			diagram = derivation.Diagram()
		}

		fmt.Print(draw.Layout(diagram).DOT())
		return nil
	},
}
