// Package pregroup implements pregroup grammars on top of the free monoidal
// category: types carry left and right adjoints, words are boxes from the
// unit type, and cups contract adjoint pairs. EagerParse reduces a sentence
// greedily, BruteForce enumerates the sentences of a vocabulary that parse.
package pregroup

import (
	"errors"
	"fmt"

	"github.com/agentic-research/moncat/internal/moncat"
)

// ErrBadCup is returned when a cup is requested on types that are not an
// adjoint pair.
var ErrBadCup = errors.New("pregroup: not an adjoint pair")

// ErrNoParse is returned when no sequence of contractions reduces a sentence
// to the target type.
var ErrNoParse = errors.New("pregroup: no parse")

// MaxSentenceLen caps brute-force enumeration; sentences longer than this
// are never tried.
const MaxSentenceLen = 6

// L returns the left adjoint of a type: objects reversed, winding shifted
// down. L(R(t)) == t == R(L(t)).
func L(t moncat.Ty) moncat.Ty {
	return adjoint(t, -1)
}

// R returns the right adjoint of a type: objects reversed, winding shifted
// up.
func R(t moncat.Ty) moncat.Ty {
	return adjoint(t, +1)
}

func adjoint(t moncat.Ty, shift int) moncat.Ty {
	objects := t.Objects()
	flipped := make([]moncat.Ob, len(objects))
	for i, o := range objects {
		flipped[len(objects)-1-i] = moncat.Ob{Name: o.Name, Z: o.Z + shift}
	}
	return moncat.TyOf(flipped...)
}

// Word builds a word box: a state of the given type.
func Word(name string, t moncat.Ty) *moncat.Box {
	return moncat.NewBox(name, moncat.Ty{}, t)
}

// Cup builds the contraction x ⊗ y → Ty(). The operands must be single
// objects with y the right adjoint of x; this covers both n ⊗ n.r and
// n.l ⊗ n.
func Cup(x, y moncat.Ty) (*moncat.Box, error) {
	if x.Len() != 1 || y.Len() != 1 || !R(x).Equal(y) {
		return nil, fmt.Errorf("%w: %s and %s", ErrBadCup, x, y)
	}
	name := fmt.Sprintf("Cup(%s, %s)", x, y)
	return moncat.NewBox(name, x.Tensor(y), moncat.Ty{}), nil
}

// EagerParse tensors the words into one row and greedily contracts the
// leftmost adjoint pair until the codomain equals the target. It fails with
// ErrNoParse when no contraction applies and the target is not reached.
func EagerParse(target moncat.Ty, words ...*moncat.Box) (*moncat.Diagram, error) {
	parts := make([]*moncat.Diagram, len(words))
	for i, w := range words {
		parts[i] = w.Diagram()
	}
	result := moncat.TensorAll(parts...)
	for {
		scan := result.Cod()
		contracted := false
		for i := 0; i+1 < scan.Len(); i++ {
			x, y := scan.Slice(i, i+1), scan.Slice(i+1, i+2)
			if !R(x).Equal(y) {
				continue
			}
			cup, err := Cup(x, y)
			if err != nil {
				return nil, err
			}
			layer := moncat.TensorAll(
				moncat.Id(scan.Slice(0, i)),
				cup.Diagram(),
				moncat.Id(scan.Slice(i+2, scan.Len())),
			)
			if result, err = result.Then(layer); err != nil {
				return nil, err
			}
			contracted = true
			break
		}
		if result.Cod().Equal(target) {
			return result, nil
		}
		if !contracted {
			return nil, fmt.Errorf("%w: stuck at %s", ErrNoParse, result.Cod())
		}
	}
}

// Enumerator walks the sentences over a vocabulary in order of increasing
// length, lexicographic within a length, and yields those that parse to the
// target. The walk stops at MaxSentenceLen.
type Enumerator struct {
	vocab  []*moncat.Box
	target moncat.Ty
	digits []int
	done   bool
}

// BruteForce starts an enumeration over the vocabulary.
func BruteForce(target moncat.Ty, vocab ...*moncat.Box) *Enumerator {
	e := &Enumerator{vocab: vocab, target: target, digits: []int{0}}
	if len(vocab) == 0 {
		e.done = true
	}
	return e
}

// Next returns the next parsable sentence, or false when the enumeration is
// exhausted.
func (e *Enumerator) Next() (*moncat.Diagram, bool) {
	for !e.done {
		words := make([]*moncat.Box, len(e.digits))
		for i, d := range e.digits {
			words[i] = e.vocab[d]
		}
		e.advance()
		if parse, err := EagerParse(e.target, words...); err == nil {
			return parse, true
		}
	}
	return nil, false
}

// advance increments the sentence like a counter in base len(vocab),
// growing the length on overflow.
func (e *Enumerator) advance() {
	for i := len(e.digits) - 1; i >= 0; i-- {
		e.digits[i]++
		if e.digits[i] < len(e.vocab) {
			return
		}
		e.digits[i] = 0
	}
	if len(e.digits) >= MaxSentenceLen {
		e.done = true
		return
	}
	e.digits = append(e.digits, 0)
	for i := range e.digits {
		e.digits[i] = 0
	}
}
