package moncat

import (
	"errors"
	"fmt"
)

// ErrUnmappedOb is returned when a functor meets an object symbol without an
// image.
var ErrUnmappedOb = errors.New("moncat: no image for object")

// ErrUnmappedBox is returned when a functor meets a generator without an
// image.
var ErrUnmappedBox = errors.New("moncat: no image for box")

// Algebra is the target of diagram evaluation: a monoidal category presented
// by its operations. Ob gives the image of an atomic symbol (extended
// symbol-wise over types), Arrow the image of a generator, Identity the
// identity arrow on an image type, and Then/Tensor the two compositions.
//
// Eval is the homomorphic extension: it commutes with Then and Tensor by
// construction, so implementations only need the pointwise maps and the two
// binary operations to obtain a monoidal functor.
type Algebra[A any] interface {
	Ob(Ob) (Ty, error)
	Arrow(*Box) (A, error)
	Identity(Ty) (A, error)
	Then(A, A) (A, error)
	Tensor(A, A) (A, error)
}

// MapTy applies the algebra's object map symbol-wise and concatenates.
func MapTy[A any](alg Algebra[A], t Ty) (Ty, error) {
	result := Ty{}
	for _, o := range t.Objects() {
		image, err := alg.Ob(o)
		if err != nil {
			return Ty{}, err
		}
		result = result.Tensor(image)
	}
	return result, nil
}

// Eval folds a diagram through the algebra, rebuilding the same sequence of
// Then and Tensor operations around each generator image.
func Eval[A any](alg Algebra[A], d *Diagram) (A, error) {
	var zero A
	domImage, err := MapTy(alg, d.Dom())
	if err != nil {
		return zero, err
	}
	result, err := alg.Identity(domImage)
	if err != nil {
		return zero, err
	}
	scan := d.Dom()
	for k, box := range d.boxes {
		off := d.offsets[k]
		step, err := evalLayer(alg, scan, box, off)
		if err != nil {
			return zero, err
		}
		if result, err = alg.Then(result, step); err != nil {
			return zero, err
		}
		scan = splice(scan, off, box)
	}
	return result, nil
}

// evalLayer builds the image of Id(left) ⊗ box ⊗ Id(right) for one box of
// the axiom scan.
func evalLayer[A any](alg Algebra[A], scan Ty, box *Box, off int) (A, error) {
	var zero A
	leftTy, err := MapTy(alg, scan.Slice(0, off))
	if err != nil {
		return zero, err
	}
	rightTy, err := MapTy(alg, scan.Slice(off+box.Dom.Len(), scan.Len()))
	if err != nil {
		return zero, err
	}
	idLeft, err := alg.Identity(leftTy)
	if err != nil {
		return zero, err
	}
	idRight, err := alg.Identity(rightTy)
	if err != nil {
		return zero, err
	}
	arrow, err := alg.Arrow(box)
	if err != nil {
		return zero, err
	}
	step, err := alg.Tensor(idLeft, arrow)
	if err != nil {
		return zero, err
	}
	return alg.Tensor(step, idRight)
}

// Functor is a monoidal functor from the free category to itself: an object
// map over atomic symbols and an arrow map over generator names. Generators
// are identified by name, so names must be unique across a functor's domain;
// a daggered generator maps to the dagger of its image.
type Functor struct {
	Obs map[Ob]Ty
	Ars map[string]*Diagram
}

// NewFunctor builds a diagram-valued functor from its two assignments.
func NewFunctor(obs map[Ob]Ty, ars map[string]*Diagram) *Functor {
	return &Functor{Obs: obs, Ars: ars}
}

// Ob implements Algebra.
func (f *Functor) Ob(o Ob) (Ty, error) {
	image, ok := f.Obs[o]
	if !ok {
		return Ty{}, fmt.Errorf("%w: %s", ErrUnmappedOb, o)
	}
	return image, nil
}

// Arrow implements Algebra.
func (f *Functor) Arrow(b *Box) (*Diagram, error) {
	image, ok := f.Ars[b.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnmappedBox, b)
	}
	if b.IsDagger() {
		return image.Dagger(), nil
	}
	return image, nil
}

// Identity implements Algebra.
func (f *Functor) Identity(t Ty) (*Diagram, error) {
	return Id(t), nil
}

// Then implements Algebra.
func (f *Functor) Then(a, b *Diagram) (*Diagram, error) {
	return a.Then(b)
}

// Tensor implements Algebra.
func (f *Functor) Tensor(a, b *Diagram) (*Diagram, error) {
	return a.Tensor(b), nil
}

// Apply evaluates the functor on a diagram.
func (f *Functor) Apply(d *Diagram) (*Diagram, error) {
	return Eval[*Diagram](f, d)
}

// ApplyTy evaluates the functor's object map on a type.
func (f *Functor) ApplyTy(t Ty) (Ty, error) {
	return MapTy[*Diagram](f, t)
}
