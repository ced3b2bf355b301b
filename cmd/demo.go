package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentic-research/moncat/api"
	"github.com/agentic-research/moncat/internal/grammar"
	"github.com/agentic-research/moncat/internal/moncat"
	"github.com/agentic-research/moncat/internal/pregroup"
)

// demoGrammar is the built-in weighted grammar: a sentence is a noun
// followed by an intransitive verb phrase, a verb phrase is a transitive
// verb followed by a noun.
func demoGrammar() *api.Grammar {
	return &api.Grammar{
		Start: "s",
		Rules: []api.Rule{
			{Name: "r0", LHS: "s", RHS: []string{"n", "itv"}, Weight: 0.8},
			{Name: "r1", LHS: "itv", RHS: []string{"tv", "n"}, Weight: 0.9},
		},
		Lexicon: []api.Entry{
			{Word: "Alice", Category: "n"},
			{Word: "Bob", Category: "n"},
			{Word: "loves", Category: "tv"},
		},
	}
}

// demoSentence is the default derivation input.
var demoSentence = []string{"Alice", "loves", "Bob"}

// loadDemo builds the demo grammar with any --weight overrides applied.
func loadDemo(overrides []string) (*grammar.Weighted, error) {
	spec := demoGrammar()
	for _, o := range overrides {
		name, value, ok := strings.Cut(o, "=")
		if !ok {
			return nil, fmt.Errorf("invalid weight override %q, want name=value", o)
		}
		w, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight override %q: %w", o, err)
		}
		found := false
		for i := range spec.Rules {
			if spec.Rules[i].Name == name {
				spec.Rules[i].Weight = w
				found = true
			}
		}
		for i := range spec.Lexicon {
			if spec.Lexicon[i].Word == name {
				spec.Lexicon[i].Weight = w
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("weight override %q names no rule or word", name)
		}
	}
	return grammar.FromSpec(spec)
}

// demoLexicon is the pregroup rendition of the same vocabulary: nouns are
// states of type n, the transitive verb expects a noun on each side.
func demoLexicon() (target moncat.Ty, words map[string]*moncat.Box) {
	s, n := moncat.NewTy("s"), moncat.NewTy("n")
	words = map[string]*moncat.Box{
		"Alice": pregroup.Word("Alice", n),
		"Bob":   pregroup.Word("Bob", n),
		"loves": pregroup.Word("loves", pregroup.R(n).Tensor(s, pregroup.L(n))),
	}
	return s, words
}
