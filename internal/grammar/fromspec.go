package grammar

import (
	"github.com/agentic-research/moncat/api"
)

// FromSpec builds a weighted grammar from its public description. Entry
// weights of zero are treated as unset and default to 1.
func FromSpec(spec *api.Grammar) (*Weighted, error) {
	g := New(spec.Start)
	weights := make(map[string]float64, len(spec.Rules)+len(spec.Lexicon))
	for _, r := range spec.Rules {
		if _, err := g.Rule(r.Name, r.LHS, r.RHS...); err != nil {
			return nil, err
		}
		weights[r.Name] = r.Weight
	}
	for _, e := range spec.Lexicon {
		if _, err := g.Word(e.Word, e.Category); err != nil {
			return nil, err
		}
		if e.Weight != 0 {
			weights[e.Word] = e.Weight
		}
	}
	return g.Weighted(weights)
}
