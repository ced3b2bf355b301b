package cmd

import (
	"fmt"

	"github.com/agentic-research/moncat/api"
	"github.com/ohler55/ojg/alt"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
)

var (
	weighJSON      bool
	weighSelect    string
	weighOverrides []string
)

func init() {
	weighCmd.Flags().BoolVar(&weighJSON, "json", false, "Emit the report as JSON")
	weighCmd.Flags().StringVar(&weighSelect, "select", "",
		"JSONPath over the report, e.g. $.weight")
	weighCmd.Flags().StringArrayVarP(&weighOverrides, "weight", "w", nil,
		"Override a rule or word weight (name=value, repeatable)")
	rootCmd.AddCommand(weighCmd)
}

var weighCmd = &cobra.Command{
	Use:   "weigh [words...]",
	Short: "Derive a sentence of the demo grammar and weigh it",
	RunE: func(cmd *cobra.Command, args []string) error {
		weighted, err := loadDemo(weighOverrides)
		if err != nil {
			return err
		}
		sentence := demoSentence
		if len(args) > 0 {
			sentence = args
		}

		derivation, err := weighted.EagerDerive(sentence...)
		if err != nil {
			return fmt.Errorf("derive: %w", err)
		}
		weight, err := weighted.Weigh(derivation)
		if err != nil {
			return fmt.Errorf("weigh: %w", err)
		}

		report := &api.Report{
			Sentence:    sentence,
			Weight:      weight,
			Diagram:     derivation.Diagram().String(),
			Boxes:       derivation.Diagram().Len(),
			UnusedRules: weighted.Unused(derivation),
		}
		if weighSelect != "" {
			x, err := jp.ParseString(weighSelect)
			if err != nil {
				return fmt.Errorf("invalid jsonpath '%s': %w", weighSelect, err)
			}
			for _, r := range x.Get(alt.Decompose(report)) {
				fmt.Println(oj.JSON(r))
			}
			return nil
		}
		if weighJSON {
			out, err := oj.Marshal(report, 2)
			if err != nil {
				return fmt.Errorf("marshal report: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}
		fmt.Printf("%s\n", report.Diagram)
		fmt.Printf("weight(%v) = %g\n", sentence, weight)
		if len(report.UnusedRules) > 0 {
			fmt.Printf("unused rules: %v\n", report.UnusedRules)
		}
		return nil
	},
}
