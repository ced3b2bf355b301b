package moncat

import (
	"fmt"
	"reflect"
)

// Box is a named generating morphism with a fixed domain and codomain.
// Data is an optional payload carried along unchanged by composition;
// the delooping package reads it back out as a monoid element.
// Boxes are immutable once created.
type Box struct {
	Name     string
	Dom, Cod Ty
	Data     any
	daggered bool
}

// NewBox builds a generator.
func NewBox(name string, dom, cod Ty) *Box {
	return &Box{Name: name, Dom: dom, Cod: cod}
}

// NewBoxData builds a generator carrying a payload.
func NewBoxData(name string, dom, cod Ty, data any) *Box {
	return &Box{Name: name, Dom: dom, Cod: cod, Data: data}
}

// Dagger returns the adjoint generator: domain and codomain swapped.
// It is involutive: b.Dagger().Dagger() equals b.
func (b *Box) Dagger() *Box {
	return &Box{
		Name:     b.Name,
		Dom:      b.Cod,
		Cod:      b.Dom,
		Data:     b.Data,
		daggered: !b.daggered,
	}
}

// IsDagger reports whether this box is the dagger of a generator.
func (b *Box) IsDagger() bool { return b.daggered }

// Equal reports value equality: name, domain, codomain, dagger flag and
// payload must all agree. Payloads compare deeply, so slice-valued data is
// allowed.
func (b *Box) Equal(other *Box) bool {
	if other == nil {
		return false
	}
	return b.Name == other.Name &&
		b.Dom.Equal(other.Dom) && b.Cod.Equal(other.Cod) &&
		b.daggered == other.daggered && reflect.DeepEqual(b.Data, other.Data)
}

// Diagram returns the one-box diagram wrapping this generator.
func (b *Box) Diagram() *Diagram {
	return &Diagram{dom: b.Dom, cod: b.Cod, boxes: []*Box{b}, offsets: []int{0}}
}

// Then composes this box's diagram with another diagram.
func (b *Box) Then(other *Diagram) (*Diagram, error) {
	return b.Diagram().Then(other)
}

// Tensor puts this box's diagram side by side with another diagram.
func (b *Box) Tensor(other *Diagram) *Diagram {
	return b.Diagram().Tensor(other)
}

func (b *Box) String() string {
	if b.daggered {
		return b.Name + "†"
	}
	return b.Name
}

// key is the canonical form used for diagram equality caches.
func (b *Box) key() string {
	return fmt.Sprintf("%s/%v/%s>%s", b.Name, b.daggered, b.Dom, b.Cod)
}
