// Package grammar encodes context-free grammars as diagrams in a free
// monoidal category. Production rules and lexicon entries become generating
// boxes, a derivation becomes a diagram reducing a row of words to the start
// symbol, and a weight assignment becomes a monoidal functor into the
// delooping of the reals whose value on a derivation is the product of the
// weights of the rules used.
package grammar

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring"
	"github.com/agentic-research/moncat/internal/delooping"
	"github.com/agentic-research/moncat/internal/moncat"
)

var (
	// ErrDuplicate is returned when a rule or word name is registered twice.
	ErrDuplicate = errors.New("grammar: duplicate name")
	// ErrUnknownWord is returned when a sentence uses a word outside the lexicon.
	ErrUnknownWord = errors.New("grammar: unknown word")
	// ErrUnknownRule is returned when a derivation applies an unregistered rule.
	ErrUnknownRule = errors.New("grammar: unknown rule")
	// ErrNoDerivation is returned when greedy reduction cannot reach the
	// start symbol.
	ErrNoDerivation = errors.New("grammar: no derivation")
)

// MaxDeriveSteps caps greedy reduction; grammars with cyclic unary or
// epsilon productions would otherwise reduce forever.
const MaxDeriveSteps = 10000

// Rule is a production LHS → RHS. Its box runs bottom-up: from the RHS type
// to the single-symbol LHS type, so derivations reduce towards the start
// symbol.
type Rule struct {
	Name string
	LHS  moncat.Ob
	RHS  moncat.Ty

	box   *moncat.Box
	index uint32
}

// Box returns the rule's generator.
func (r *Rule) Box() *moncat.Box { return r.box }

// Entry is a lexicon entry: a terminal word with its category. Its box has
// empty domain, producing the category out of nothing.
type Entry struct {
	Word string
	Cat  moncat.Ob

	box   *moncat.Box
	index uint32
}

// Box returns the entry's generator.
func (e *Entry) Box() *moncat.Box { return e.box }

// Grammar is a vocabulary of production rules and lexicon entries over a
// start symbol. Every box gets a monotonically assigned index used by the
// coverage bitmaps.
type Grammar struct {
	start   moncat.Ob
	rules   []*Rule
	entries []*Entry

	ruleByName  map[string]*Rule
	entryByWord map[string]*Entry
	names       []string // index → name, rules and entries in one space
}

// New builds an empty grammar with the given start symbol.
func New(start string) *Grammar {
	return &Grammar{
		start:       moncat.Ob{Name: start},
		ruleByName:  make(map[string]*Rule),
		entryByWord: make(map[string]*Entry),
	}
}

// Start returns the start type.
func (g *Grammar) Start() moncat.Ty {
	return moncat.TyOf(g.start)
}

// Rule registers a production lhs → rhs. Rule names share a namespace with
// each other but not with lexicon words.
func (g *Grammar) Rule(name, lhs string, rhs ...string) (*Rule, error) {
	if _, dup := g.ruleByName[name]; dup {
		return nil, fmt.Errorf("%w: rule %q", ErrDuplicate, name)
	}
	r := &Rule{
		Name:  name,
		LHS:   moncat.Ob{Name: lhs},
		RHS:   moncat.NewTy(rhs...),
		index: uint32(len(g.names)),
	}
	r.box = moncat.NewBox(name, r.RHS, moncat.TyOf(r.LHS))
	g.rules = append(g.rules, r)
	g.ruleByName[name] = r
	g.names = append(g.names, name)
	return r, nil
}

// Word registers a lexicon entry.
func (g *Grammar) Word(word, category string) (*Entry, error) {
	if _, dup := g.entryByWord[word]; dup {
		return nil, fmt.Errorf("%w: word %q", ErrDuplicate, word)
	}
	e := &Entry{
		Word:  word,
		Cat:   moncat.Ob{Name: category},
		index: uint32(len(g.names)),
	}
	e.box = moncat.NewBox(word, moncat.Ty{}, moncat.TyOf(e.Cat))
	g.entries = append(g.entries, e)
	g.entryByWord[word] = e
	g.names = append(g.names, word)
	return e, nil
}

// Rules returns the registered rules in registration order.
func (g *Grammar) Rules() []*Rule { return append([]*Rule(nil), g.rules...) }

// Lexicon returns the registered entries in registration order.
func (g *Grammar) Lexicon() []*Entry { return append([]*Entry(nil), g.entries...) }

// Derivation builds the diagram of a parse step by step: first the row of
// word boxes, then rule applications reducing the running type towards the
// start symbol. It tracks which boxes it used in a bitmap.
type Derivation struct {
	g       *Grammar
	diagram *moncat.Diagram
	used    *roaring.Bitmap
}

// Sentence starts a derivation: the parallel row of the words' boxes.
func (g *Grammar) Sentence(words ...string) (*Derivation, error) {
	used := roaring.New()
	parts := make([]*moncat.Diagram, 0, len(words))
	for _, w := range words {
		e, ok := g.entryByWord[w]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWord, w)
		}
		parts = append(parts, e.box.Diagram())
		used.Add(e.index)
	}
	return &Derivation{g: g, diagram: moncat.TensorAll(parts...), used: used}, nil
}

// Apply reduces the running type with a rule at the given wire offset: the
// layer Id(left) ⊗ rule ⊗ Id(right) is composed onto the codomain. A
// composition mismatch surfaces as moncat.ErrCompose.
func (d *Derivation) Apply(rule string, offset int) error {
	r, ok := d.g.ruleByName[rule]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRule, rule)
	}
	scan := d.diagram.Cod()
	if offset < 0 || offset+r.RHS.Len() > scan.Len() {
		return fmt.Errorf("%w: offset %d out of range for %s", moncat.ErrCompose, offset, scan)
	}
	layer := moncat.TensorAll(
		moncat.Id(scan.Slice(0, offset)),
		r.box.Diagram(),
		moncat.Id(scan.Slice(offset+r.RHS.Len(), scan.Len())),
	)
	next, err := d.diagram.Then(layer)
	if err != nil {
		return err
	}
	d.diagram = next
	d.used.Add(r.index)
	return nil
}

// Diagram returns the derivation's diagram.
func (d *Derivation) Diagram() *moncat.Diagram { return d.diagram }

// Complete reports whether the derivation has reduced to exactly the start
// symbol.
func (d *Derivation) Complete() bool {
	return d.diagram.Cod().Equal(d.g.Start())
}

// Used returns the bitmap of box indices this derivation consumed.
func (d *Derivation) Used() *roaring.Bitmap {
	return d.used.Clone()
}

// EagerDerive parses a sentence greedily: starting from the word row, it
// repeatedly applies the first rule whose RHS occurs in the running type, at
// the leftmost occurrence, until the start symbol is reached. Greedy
// reduction is not complete; sentences it cannot reduce fail with
// ErrNoDerivation even when a cleverer order would succeed.
func (g *Grammar) EagerDerive(words ...string) (*Derivation, error) {
	d, err := g.Sentence(words...)
	if err != nil {
		return nil, err
	}
	for step := 0; step < MaxDeriveSteps; step++ {
		if d.Complete() {
			return d, nil
		}
		scan := d.diagram.Cod()
		applied := false
		for _, r := range g.rules {
			if r.RHS.Len() == 0 {
				continue
			}
			for off := 0; off+r.RHS.Len() <= scan.Len(); off++ {
				if scan.Slice(off, off+r.RHS.Len()).Equal(r.RHS) {
					if err := d.Apply(r.Name, off); err != nil {
						return nil, err
					}
					applied = true
					break
				}
			}
			if applied {
				break
			}
		}
		if !applied {
			return nil, fmt.Errorf("%w: stuck at %s", ErrNoDerivation, scan)
		}
	}
	return nil, fmt.Errorf("%w: no progress after %d steps", ErrNoDerivation, MaxDeriveSteps)
}

// Coverage unions the used-box bitmaps of the given derivations.
func (g *Grammar) Coverage(derivs ...*Derivation) *roaring.Bitmap {
	covered := roaring.New()
	for _, d := range derivs {
		covered.Or(d.used)
	}
	return covered
}

// Unused names the rules never exercised by the given derivations.
func (g *Grammar) Unused(derivs ...*Derivation) []string {
	covered := g.Coverage(derivs...)
	var unused []string
	for _, r := range g.rules {
		if !covered.Contains(r.index) {
			unused = append(unused, r.Name)
		}
	}
	return unused
}

// Weighted pairs a grammar with a weight per box name. Lexicon entries
// without an explicit weight default to 1.
type Weighted struct {
	*Grammar
	weights map[string]float64
}

// Weighted attaches weights to the grammar. Every rule must be weighted;
// missing lexicon weights default to the unit.
func (g *Grammar) Weighted(weights map[string]float64) (*Weighted, error) {
	copied := make(map[string]float64, len(weights))
	for name, w := range weights {
		copied[name] = w
	}
	for _, r := range g.rules {
		if _, ok := copied[r.Name]; !ok {
			return nil, fmt.Errorf("%w: rule %q", delooping.ErrUnweighted, r.Name)
		}
	}
	for _, e := range g.entries {
		if _, ok := copied[e.Word]; !ok {
			copied[e.Word] = 1
		}
	}
	return &Weighted{Grammar: g, weights: copied}, nil
}

// Functor builds the weight functor into the delooping of the reals under
// multiplication.
func (w *Weighted) Functor() *delooping.Weight[float64] {
	return delooping.NewWeight(delooping.New(delooping.Real()), w.weights)
}

// Weight looks up a single box weight.
func (w *Weighted) Weight(name string) (float64, bool) {
	v, ok := w.weights[name]
	return v, ok
}

// Weigh applies the weight functor to a derivation's diagram.
func (w *Weighted) Weigh(d *Derivation) (float64, error) {
	s, err := w.Functor().Apply(d.Diagram())
	if err != nil {
		return 0, err
	}
	return s.V, nil
}
