// Package moncat implements free monoidal categories: types as words over
// an alphabet of objects, boxes as generating morphisms, and diagrams as
// compositions of boxes via sequential (Then) and parallel (Tensor)
// composition. All values are immutable; every operation returns a new value.
package moncat

import "strings"

// Ob is an atomic object symbol. Z is the adjoint winding number, zero for
// plain monoidal use; the pregroup package shifts it to build left and right
// adjoints. Ob is comparable and usable as a map key.
type Ob struct {
	Name string
	Z    int
}

func (o Ob) String() string {
	var b strings.Builder
	b.WriteString(o.Name)
	for z := o.Z; z < 0; z++ {
		b.WriteString(".l")
	}
	for z := o.Z; z > 0; z-- {
		b.WriteString(".r")
	}
	return b.String()
}

// Ty is an ordered sequence of objects, the free monoid on Ob with Tensor as
// product. The zero value is the unit type.
type Ty struct {
	objects []Ob
}

// NewTy builds a type from plain symbol names.
func NewTy(names ...string) Ty {
	obs := make([]Ob, len(names))
	for i, n := range names {
		obs[i] = Ob{Name: n}
	}
	return Ty{objects: obs}
}

// TyOf builds a type from objects.
func TyOf(obs ...Ob) Ty {
	return Ty{objects: append([]Ob(nil), obs...)}
}

// Len returns the number of objects in the type.
func (t Ty) Len() int { return len(t.objects) }

// At returns the i-th object.
func (t Ty) At(i int) Ob { return t.objects[i] }

// Objects returns a copy of the object list.
func (t Ty) Objects() []Ob {
	return append([]Ob(nil), t.objects...)
}

// Slice returns the sub-type t[i:j].
func (t Ty) Slice(i, j int) Ty {
	return Ty{objects: append([]Ob(nil), t.objects[i:j]...)}
}

// Tensor concatenates types. The unit type is the neutral element.
func (t Ty) Tensor(others ...Ty) Ty {
	objs := append([]Ob(nil), t.objects...)
	for _, o := range others {
		objs = append(objs, o.objects...)
	}
	return Ty{objects: objs}
}

// Pow iterates Tensor n times. Pow(0) is the unit type.
func (t Ty) Pow(n int) Ty {
	result := Ty{}
	for i := 0; i < n; i++ {
		result = result.Tensor(t)
	}
	return result
}

// Equal reports structural equality: same length, elementwise equal objects.
func (t Ty) Equal(other Ty) bool {
	if len(t.objects) != len(other.objects) {
		return false
	}
	for i, o := range t.objects {
		if o != other.objects[i] {
			return false
		}
	}
	return true
}

func (t Ty) String() string {
	if len(t.objects) == 0 {
		return "Ty()"
	}
	parts := make([]string, len(t.objects))
	for i, o := range t.objects {
		parts[i] = o.String()
	}
	return strings.Join(parts, " @ ")
}
