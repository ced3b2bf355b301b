// Package delooping implements the delooping of a commutative monoid: the
// one-object monoidal category whose arrows are the monoid's elements, with
// sequential and parallel composition both given by the monoid product and
// the identity given by the unit. Functors into it assign a weight to every
// generator; evaluating such a functor on a diagram multiplies out the
// weights of its boxes, which is the classical weight of a derivation.
package delooping

import (
	"errors"
	"fmt"

	"github.com/agentic-research/moncat/internal/moncat"
)

// ErrNonUnitIdentity is returned when an identity arrow is requested on a
// type other than the unit type, the delooping's only object.
var ErrNonUnitIdentity = errors.New("delooping: identity requested on a non-unit type")

// ErrNotScalar is returned when a box that is not a scalar (non-empty domain
// or codomain, or a payload of the wrong kind) is used where an arrow of the
// delooping is required.
var ErrNotScalar = errors.New("delooping: operand is not a scalar")

// ErrUnweighted is returned by the weight functor when a diagram contains a
// box with no assigned weight.
var ErrUnweighted = errors.New("delooping: box has no assigned weight")

// Monoid is a commutative monoid presented by its unit and product. The
// product must be associative and commutative; nothing here checks that.
type Monoid[M comparable] struct {
	Name    string
	Unit    M
	Product func(M, M) M
}

// Real is the multiplicative monoid of the reals, the usual probability
// semiring product for weighted grammars.
func Real() Monoid[float64] {
	return Monoid[float64]{
		Name:    "real",
		Unit:    1,
		Product: func(a, b float64) float64 { return a * b },
	}
}

// Tropical is the tropical product: addition with unit zero. Weights behave
// as additive costs (negative log probabilities).
func Tropical() Monoid[float64] {
	return Monoid[float64]{
		Name:    "tropical",
		Unit:    0,
		Product: func(a, b float64) float64 { return a + b },
	}
}

// Boolean is conjunction with unit true: a derivation weighs true exactly
// when every box is admitted.
func Boolean() Monoid[bool] {
	return Monoid[bool]{
		Name:    "boolean",
		Unit:    true,
		Product: func(a, b bool) bool { return a && b },
	}
}

// Scalar is an arrow of the delooping: a bare payload. Its domain and
// codomain are always the unit type.
type Scalar[M comparable] struct {
	V M
}

// Delooping is the one-object category over a commutative monoid.
type Delooping[M comparable] struct {
	monoid Monoid[M]
}

// New builds the delooping of a monoid.
func New[M comparable](monoid Monoid[M]) Delooping[M] {
	return Delooping[M]{monoid: monoid}
}

// Monoid returns the underlying monoid.
func (c Delooping[M]) Monoid() Monoid[M] { return c.monoid }

// Scalar wraps a monoid element as an arrow.
func (c Delooping[M]) Scalar(v M) Scalar[M] { return Scalar[M]{V: v} }

// Identity returns the unit scalar for the unit type, the delooping's only
// object. Any other type fails with ErrNonUnitIdentity.
func (c Delooping[M]) Identity(t moncat.Ty) (Scalar[M], error) {
	if t.Len() != 0 {
		return Scalar[M]{}, fmt.Errorf("%w: %s", ErrNonUnitIdentity, t)
	}
	return Scalar[M]{V: c.monoid.Unit}, nil
}

// Then composes sequentially: the monoid product.
func (c Delooping[M]) Then(a, b Scalar[M]) Scalar[M] {
	return Scalar[M]{V: c.monoid.Product(a.V, b.V)}
}

// Tensor composes in parallel. On the delooping this coincides with Then
// because the sole object is the unit; the operations are kept separate so
// that richer target categories can implement them differently against the
// same Algebra interface.
func (c Delooping[M]) Tensor(a, b Scalar[M]) Scalar[M] {
	return Scalar[M]{V: c.monoid.Product(a.V, b.V)}
}

// FromBox reads a box back as a scalar: the box must have empty domain and
// codomain and carry a payload of the monoid's element type.
func (c Delooping[M]) FromBox(b *moncat.Box) (Scalar[M], error) {
	if b.Dom.Len() != 0 || b.Cod.Len() != 0 {
		return Scalar[M]{}, fmt.Errorf("%w: %s has boundary %s -> %s", ErrNotScalar, b, b.Dom, b.Cod)
	}
	v, ok := b.Data.(M)
	if !ok {
		return Scalar[M]{}, fmt.Errorf("%w: %s carries %T", ErrNotScalar, b, b.Data)
	}
	return Scalar[M]{V: v}, nil
}

// Box wraps a scalar as a moncat generator on the unit type, carrying the
// payload as box data. FromBox inverts it.
func (c Delooping[M]) Box(name string, s Scalar[M]) *moncat.Box {
	return moncat.NewBoxData(name, moncat.Ty{}, moncat.Ty{}, s.V)
}
