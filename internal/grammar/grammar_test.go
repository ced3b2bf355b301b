package grammar

import (
	"testing"

	"github.com/agentic-research/moncat/api"
	"github.com/agentic-research/moncat/internal/moncat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// aliceLovesBob is the running example: s → n·itv (0.8), itv → tv·n (0.9),
// words Alice/Bob of category n and loves of category tv, each weight 1.
func aliceLovesBob(t *testing.T) *Weighted {
	t.Helper()
	g := New("s")
	_, err := g.Rule("r0", "s", "n", "itv")
	require.NoError(t, err)
	_, err = g.Rule("r1", "itv", "tv", "n")
	require.NoError(t, err)
	for word, cat := range map[string]string{"Alice": "n", "loves": "tv", "Bob": "n"} {
		_, err = g.Word(word, cat)
		require.NoError(t, err)
	}
	w, err := g.Weighted(map[string]float64{"r0": 0.8, "r1": 0.9})
	require.NoError(t, err)
	return w
}

func deriveSentence(t *testing.T, w *Weighted) *Derivation {
	t.Helper()
	d, err := w.Sentence("Alice", "loves", "Bob")
	require.NoError(t, err)
	require.NoError(t, d.Apply("r1", 1))
	require.NoError(t, d.Apply("r0", 0))
	return d
}

func TestGrammar_Registration(t *testing.T) {
	g := New("s")
	_, err := g.Rule("r0", "s", "n", "itv")
	require.NoError(t, err)
	_, err = g.Rule("r0", "s", "n")
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = g.Word("Alice", "n")
	require.NoError(t, err)
	_, err = g.Word("Alice", "tv")
	assert.ErrorIs(t, err, ErrDuplicate)

	require.Len(t, g.Rules(), 1)
	require.Len(t, g.Lexicon(), 1)
	assert.True(t, g.Start().Equal(moncat.NewTy("s")))
}

func TestGrammar_RuleBoxOrientation(t *testing.T) {
	g := New("s")
	r, err := g.Rule("r0", "s", "n", "itv")
	require.NoError(t, err)
	// Bottom-up: the box reduces the RHS to the LHS.
	assert.True(t, r.Box().Dom.Equal(moncat.NewTy("n", "itv")))
	assert.True(t, r.Box().Cod.Equal(moncat.NewTy("s")))

	e, err := g.Word("Alice", "n")
	require.NoError(t, err)
	assert.True(t, e.Box().Dom.Equal(moncat.Ty{}))
	assert.True(t, e.Box().Cod.Equal(moncat.NewTy("n")))
}

func TestDerivation_AliceLovesBob(t *testing.T) {
	w := aliceLovesBob(t)
	d := deriveSentence(t, w)

	assert.True(t, d.Complete())
	assert.True(t, d.Diagram().Dom().Equal(moncat.Ty{}))
	assert.True(t, d.Diagram().Cod().Equal(moncat.NewTy("s")))
	assert.Equal(t, 5, d.Diagram().Len())

	weight, err := w.Weigh(d)
	require.NoError(t, err)
	assert.InDelta(t, 0.72, weight, 1e-12)
}

func TestDerivation_GroupingIrrelevant(t *testing.T) {
	w := aliceLovesBob(t)

	// A different word order with the same boxes weighs the same: the
	// product only depends on which boxes appear, not where.
	d, err := w.Sentence("Bob", "loves", "Alice")
	require.NoError(t, err)
	require.NoError(t, d.Apply("r1", 1))
	require.NoError(t, d.Apply("r0", 0))
	require.True(t, d.Complete())

	weight, err := w.Weigh(d)
	require.NoError(t, err)
	assert.InDelta(t, 0.72, weight, 1e-12)
}

func TestDerivation_Errors(t *testing.T) {
	w := aliceLovesBob(t)

	_, err := w.Sentence("Alice", "hates", "Bob")
	assert.ErrorIs(t, err, ErrUnknownWord)

	d, err := w.Sentence("Alice", "loves", "Bob")
	require.NoError(t, err)
	assert.ErrorIs(t, d.Apply("r9", 0), ErrUnknownRule)

	// r1 wants tv·n; offset 0 points at n·tv.
	assert.ErrorIs(t, d.Apply("r1", 0), moncat.ErrCompose)
	assert.ErrorIs(t, d.Apply("r1", 5), moncat.ErrCompose)
	assert.False(t, d.Complete())
}

func TestCoverage(t *testing.T) {
	w := aliceLovesBob(t)
	d := deriveSentence(t, w)

	covered := w.Coverage(d)
	assert.Equal(t, uint64(5), covered.GetCardinality())
	assert.Empty(t, w.Unused(d))

	// A bare sentence uses no rules at all.
	row, err := w.Sentence("Alice", "loves", "Bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"r0", "r1"}, w.Unused(row))
	assert.Equal(t, uint64(3), w.Coverage(row).GetCardinality())
}

func TestEagerDerive(t *testing.T) {
	w := aliceLovesBob(t)

	d, err := w.EagerDerive("Alice", "loves", "Bob")
	require.NoError(t, err)
	assert.True(t, d.Complete())
	assert.True(t, d.Diagram().Equal(deriveSentence(t, w).Diagram()))

	weight, err := w.Weigh(d)
	require.NoError(t, err)
	assert.InDelta(t, 0.72, weight, 1e-12)

	// Two nouns in a row never reduce.
	_, err = w.EagerDerive("Alice", "Bob")
	assert.ErrorIs(t, err, ErrNoDerivation)

	_, err = w.EagerDerive("Alice", "hates", "Bob")
	assert.ErrorIs(t, err, ErrUnknownWord)
}

func TestWeighted_MissingRuleWeight(t *testing.T) {
	g := New("s")
	_, err := g.Rule("r0", "s", "n")
	require.NoError(t, err)
	_, err = g.Weighted(nil)
	assert.Error(t, err)
}

func TestFromSpec(t *testing.T) {
	spec := &api.Grammar{
		Start: "s",
		Rules: []api.Rule{
			{Name: "r0", LHS: "s", RHS: []string{"n", "itv"}, Weight: 0.8},
			{Name: "r1", LHS: "itv", RHS: []string{"tv", "n"}, Weight: 0.9},
		},
		Lexicon: []api.Entry{
			{Word: "Alice", Category: "n"},
			{Word: "loves", Category: "tv"},
			{Word: "Bob", Category: "n"},
		},
	}
	w, err := FromSpec(spec)
	require.NoError(t, err)

	d := deriveSentence(t, w)
	weight, err := w.Weigh(d)
	require.NoError(t, err)
	assert.InDelta(t, 0.72, weight, 1e-12)

	aliceWeight, ok := w.Weight("Alice")
	assert.True(t, ok)
	assert.Equal(t, 1.0, aliceWeight)
}
