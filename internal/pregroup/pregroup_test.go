package pregroup

import (
	"testing"

	"github.com/agentic-research/moncat/internal/moncat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjoints(t *testing.T) {
	n, s := moncat.NewTy("n"), moncat.NewTy("s")

	assert.Equal(t, "n.r", R(n).String())
	assert.Equal(t, "n.l", L(n).String())
	assert.Equal(t, "n.l.l", L(L(n)).String())

	// Adjunctions cancel.
	assert.True(t, L(R(n)).Equal(n))
	assert.True(t, R(L(n)).Equal(n))

	// Adjoints reverse tensors.
	ns := n.Tensor(s)
	assert.True(t, L(ns).Equal(L(s).Tensor(L(n))))
	assert.True(t, R(ns).Equal(R(s).Tensor(R(n))))
	assert.True(t, L(moncat.Ty{}).Equal(moncat.Ty{}))
}

func TestCup(t *testing.T) {
	n := moncat.NewTy("n")

	cup, err := Cup(n, R(n))
	require.NoError(t, err)
	assert.True(t, cup.Dom.Equal(n.Tensor(R(n))))
	assert.True(t, cup.Cod.Equal(moncat.Ty{}))

	_, err = Cup(L(n), n)
	require.NoError(t, err)

	_, err = Cup(n, n)
	assert.ErrorIs(t, err, ErrBadCup)
	_, err = Cup(n.Tensor(n), R(n))
	assert.ErrorIs(t, err, ErrBadCup)
	_, err = Cup(R(n), n)
	assert.ErrorIs(t, err, ErrBadCup)
}

// lexicon builds the Alice-loves-Bob pregroup vocabulary.
func lexicon() (s, n moncat.Ty, alice, loves, bob *moncat.Box) {
	s, n = moncat.NewTy("s"), moncat.NewTy("n")
	alice = Word("Alice", n)
	loves = Word("loves", R(n).Tensor(s, L(n)))
	bob = Word("Bob", n)
	return s, n, alice, loves, bob
}

func TestEagerParse_Sentence(t *testing.T) {
	s, n, alice, loves, bob := lexicon()

	parse, err := EagerParse(s, alice, loves, bob)
	require.NoError(t, err)

	// The parse is the word row followed by the two contractions.
	cupRight, err := Cup(n, R(n))
	require.NoError(t, err)
	cupLeft, err := Cup(L(n), n)
	require.NoError(t, err)
	grammar := cupRight.Tensor(moncat.Id(s)).Tensor(cupLeft.Diagram())
	row := moncat.TensorAll(alice.Diagram(), loves.Diagram(), bob.Diagram())
	want, err := row.Then(grammar)
	require.NoError(t, err)
	assert.True(t, parse.Equal(want))
}

func TestEagerParse_SingleWord(t *testing.T) {
	_, n, alice, _, _ := lexicon()
	parse, err := EagerParse(n, alice)
	require.NoError(t, err)
	assert.True(t, parse.Equal(alice.Diagram()))
}

func TestEagerParse_Offsets(t *testing.T) {
	s, n, alice, loves, bob := lexicon()
	who := Word("who", R(n).Tensor(n, L(s), n))

	parse, err := EagerParse(n, bob, who, loves, alice)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 5, 8, 0, 2, 1, 1}, parse.Offsets())
}

func TestEagerParse_Failures(t *testing.T) {
	s, n, alice, loves, bob := lexicon()

	_, err := EagerParse(s, alice, bob, loves)
	assert.ErrorIs(t, err, ErrNoParse)

	who := Word("who", R(n).Tensor(n, L(s), n))
	_, err = EagerParse(s, alice, loves, bob, who, loves, alice)
	assert.ErrorIs(t, err, ErrNoParse)
}

func TestBruteForce(t *testing.T) {
	s, n, alice, loves, bob := lexicon()

	e := BruteForce(s, alice, loves, bob)
	var sentences []string
	for {
		parse, ok := e.Next()
		if !ok {
			break
		}
		if parse.Len() > 5 {
			break // past length 3, sentences repeat with padding
		}
		sentences = append(sentences, parse.String())
	}
	require.GreaterOrEqual(t, len(sentences), 4)

	// The first four parses are the length-3 sentences in lexicographic
	// order over the vocabulary.
	first := func(who, whom *moncat.Box) string {
		row := moncat.TensorAll(who.Diagram(), loves.Diagram(), whom.Diagram())
		parse, err := EagerParse(s, who, loves, whom)
		require.NoError(t, err)
		require.True(t, parse.Dom().Equal(row.Dom()))
		return parse.String()
	}
	assert.Equal(t, first(alice, alice), sentences[0])
	assert.Equal(t, first(alice, bob), sentences[1])
	assert.Equal(t, first(bob, alice), sentences[2])
	assert.Equal(t, first(bob, bob), sentences[3])

	// Targeting a noun yields the bare words.
	e = BruteForce(n, alice, loves, bob)
	parse, ok := e.Next()
	require.True(t, ok)
	assert.True(t, parse.Equal(alice.Diagram()))
	parse, ok = e.Next()
	require.True(t, ok)
	assert.True(t, parse.Equal(bob.Diagram()))
}
