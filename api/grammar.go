// Package api holds the public description types for weighted context-free
// grammars. They are an in-process contract: the CLI renders them as JSON
// for display, nothing reads them back from storage.
package api

// Grammar describes a weighted context-free grammar: a start symbol,
// production rules and a lexicon.
type Grammar struct {
	// Start symbol of the grammar.
	Start string `json:"start"`
	// Rules are the productions.
	Rules []Rule `json:"rules"`
	// Lexicon maps terminal words to their categories.
	Lexicon []Entry `json:"lexicon,omitempty"`
}

// Rule is a production LHS → RHS with a scalar weight.
type Rule struct {
	// Name identifies the rule; names are unique within a grammar.
	Name string `json:"name"`
	// LHS is the produced symbol.
	LHS string `json:"lhs"`
	// RHS is the sequence of symbols the rule expands to.
	RHS []string `json:"rhs"`
	// Weight of the rule (1 is neutral).
	Weight float64 `json:"weight"`
}

// Entry is a terminal word with its category and weight.
type Entry struct {
	Word     string  `json:"word"`
	Category string  `json:"category"`
	Weight   float64 `json:"weight,omitempty"`
}

// Report is the result of weighing one derivation.
type Report struct {
	// Sentence is the derived word sequence.
	Sentence []string `json:"sentence"`
	// Weight is the product of the weights of every box in the derivation.
	Weight float64 `json:"weight"`
	// Diagram is the rendered composition, layer by layer.
	Diagram string `json:"diagram"`
	// Boxes is the number of boxes in the derivation.
	Boxes int `json:"boxes"`
	// UnusedRules lists rules the derivation never applied.
	UnusedRules []string `json:"unused_rules,omitempty"`
}
