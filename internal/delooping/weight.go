package delooping

import (
	"fmt"

	"github.com/agentic-research/moncat/internal/moncat"
)

// Weight is a monoidal functor into the delooping: every atomic symbol maps
// to the unit type and every generator name to a monoid element. Evaluating
// it on a diagram yields the product of the weights of the diagram's boxes;
// order of composition is irrelevant because the monoid is commutative.
type Weight[M comparable] struct {
	cat Delooping[M]
	ars map[string]M
}

// NewWeight builds a weight functor over the given delooping from a
// generator-name-to-weight assignment.
func NewWeight[M comparable](cat Delooping[M], ars map[string]M) *Weight[M] {
	copied := make(map[string]M, len(ars))
	for name, w := range ars {
		copied[name] = w
	}
	return &Weight[M]{cat: cat, ars: copied}
}

// Ob implements moncat.Algebra: every symbol collapses to the unit type.
func (f *Weight[M]) Ob(moncat.Ob) (moncat.Ty, error) {
	return moncat.Ty{}, nil
}

// Arrow implements moncat.Algebra. Daggered generators weigh the same as
// their base generator: a commutative monoid is its own opposite.
func (f *Weight[M]) Arrow(b *moncat.Box) (Scalar[M], error) {
	w, ok := f.ars[b.Name]
	if !ok {
		return Scalar[M]{}, fmt.Errorf("%w: %s", ErrUnweighted, b)
	}
	return f.cat.Scalar(w), nil
}

// Identity implements moncat.Algebra.
func (f *Weight[M]) Identity(t moncat.Ty) (Scalar[M], error) {
	return f.cat.Identity(t)
}

// Then implements moncat.Algebra.
func (f *Weight[M]) Then(a, b Scalar[M]) (Scalar[M], error) {
	return f.cat.Then(a, b), nil
}

// Tensor implements moncat.Algebra.
func (f *Weight[M]) Tensor(a, b Scalar[M]) (Scalar[M], error) {
	return f.cat.Tensor(a, b), nil
}

// Apply evaluates the functor on a diagram.
func (f *Weight[M]) Apply(d *moncat.Diagram) (Scalar[M], error) {
	return moncat.Eval[Scalar[M]](f, d)
}
