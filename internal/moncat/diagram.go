package moncat

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCompose is returned when sequential composition is attempted between a
// codomain and a domain that differ.
var ErrCompose = errors.New("moncat: domain/codomain mismatch")

// Diagram is an ordered composition of boxes over identity wires, stored in
// the boxes-and-offsets representation: box k acts at wire offset offsets[k]
// of the running type scan. The domain and codomain are determined
// compositionally and checked at construction.
type Diagram struct {
	dom, cod Ty
	boxes    []*Box
	offsets  []int
}

// NewDiagram builds a diagram and verifies the axiom scan: each box's domain
// must occur at its offset in the running type, and the final running type
// must equal the declared codomain.
func NewDiagram(dom, cod Ty, boxes []*Box, offsets []int) (*Diagram, error) {
	if len(boxes) != len(offsets) {
		return nil, fmt.Errorf("moncat: %d boxes with %d offsets", len(boxes), len(offsets))
	}
	scan := dom
	for k, box := range boxes {
		off := offsets[k]
		if off < 0 || off+box.Dom.Len() > scan.Len() {
			return nil, fmt.Errorf("%w: offset %d out of range for %s", ErrCompose, off, scan)
		}
		if !scan.Slice(off, off+box.Dom.Len()).Equal(box.Dom) {
			return nil, fmt.Errorf("%w: expected %s at offset %d, got %s",
				ErrCompose, box.Dom, off, scan.Slice(off, off+box.Dom.Len()))
		}
		scan = splice(scan, off, box)
	}
	if !scan.Equal(cod) {
		return nil, fmt.Errorf("%w: codomain %s expected, got %s", ErrCompose, cod, scan)
	}
	return &Diagram{dom: dom, cod: cod, boxes: append([]*Box(nil), boxes...),
		offsets: append([]int(nil), offsets...)}, nil
}

// splice replaces box.Dom by box.Cod at the given offset of the running type.
func splice(scan Ty, off int, box *Box) Ty {
	return scan.Slice(0, off).Tensor(box.Cod, scan.Slice(off+box.Dom.Len(), scan.Len()))
}

// Id returns the identity diagram on a type: no boxes, just wires.
func Id(t Ty) *Diagram {
	return &Diagram{dom: t, cod: t}
}

// Dom returns the diagram's domain.
func (d *Diagram) Dom() Ty { return d.dom }

// Cod returns the diagram's codomain.
func (d *Diagram) Cod() Ty { return d.cod }

// Len returns the number of boxes.
func (d *Diagram) Len() int { return len(d.boxes) }

// Boxes returns a copy of the box list.
func (d *Diagram) Boxes() []*Box { return append([]*Box(nil), d.boxes...) }

// Offsets returns a copy of the offset list.
func (d *Diagram) Offsets() []int { return append([]int(nil), d.offsets...) }

// Then composes sequentially: d first, then other. Fails with ErrCompose
// when d's codomain differs from other's domain.
func (d *Diagram) Then(other *Diagram) (*Diagram, error) {
	if !d.cod.Equal(other.dom) {
		return nil, fmt.Errorf("%w: %s then %s", ErrCompose, d.cod, other.dom)
	}
	return &Diagram{
		dom:     d.dom,
		cod:     other.cod,
		boxes:   append(d.Boxes(), other.boxes...),
		offsets: append(d.Offsets(), other.offsets...),
	}, nil
}

// Tensor composes in parallel: d on the left, other on the right. Always
// defined; domains and codomains concatenate, the right operand's offsets
// shift past d's codomain.
func (d *Diagram) Tensor(other *Diagram) *Diagram {
	offsets := d.Offsets()
	for _, off := range other.offsets {
		offsets = append(offsets, off+d.cod.Len())
	}
	return &Diagram{
		dom:     d.dom.Tensor(other.dom),
		cod:     d.cod.Tensor(other.cod),
		boxes:   append(d.Boxes(), other.boxes...),
		offsets: offsets,
	}
}

// Compose folds Then over its arguments, left to right.
func Compose(first *Diagram, rest ...*Diagram) (*Diagram, error) {
	result := first
	var err error
	for _, d := range rest {
		if result, err = result.Then(d); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// TensorAll folds Tensor over its arguments, left to right.
// With no arguments it returns the identity on the unit type.
func TensorAll(parts ...*Diagram) *Diagram {
	result := Id(Ty{})
	for _, d := range parts {
		result = result.Tensor(d)
	}
	return result
}

// Dagger reverses the diagram: boxes daggered in reverse order, offsets
// reversed.
func (d *Diagram) Dagger() *Diagram {
	n := len(d.boxes)
	boxes := make([]*Box, n)
	offsets := make([]int, n)
	for k := 0; k < n; k++ {
		boxes[k] = d.boxes[n-1-k].Dagger()
		offsets[k] = d.offsets[n-1-k]
	}
	return &Diagram{dom: d.cod, cod: d.dom, boxes: boxes, offsets: offsets}
}

// Equal reports structural equality: same domain, codomain, boxes and
// offsets. An identity diagram equals any box-free diagram on the same type.
func (d *Diagram) Equal(other *Diagram) bool {
	if other == nil || !d.dom.Equal(other.dom) || !d.cod.Equal(other.cod) {
		return false
	}
	if len(d.boxes) != len(other.boxes) {
		return false
	}
	for k, box := range d.boxes {
		if d.offsets[k] != other.offsets[k] || !box.Equal(other.boxes[k]) {
			return false
		}
	}
	return true
}

// String renders the diagram layer by layer, e.g. "f0 @ Id(z) >> Id(y) @ f1".
func (d *Diagram) String() string {
	if len(d.boxes) == 0 {
		return "Id(" + d.dom.String() + ")"
	}
	line := func(scan Ty, box *Box, off int) string {
		var b strings.Builder
		if off > 0 {
			fmt.Fprintf(&b, "Id(%s) @ ", scan.Slice(0, off))
		}
		b.WriteString(box.String())
		if off+box.Dom.Len() < scan.Len() {
			fmt.Fprintf(&b, " @ Id(%s)", scan.Slice(off+box.Dom.Len(), scan.Len()))
		}
		return b.String()
	}
	scan := d.dom
	result := line(scan, d.boxes[0], d.offsets[0])
	scan = splice(scan, d.offsets[0], d.boxes[0])
	for k := 1; k < len(d.boxes); k++ {
		result += " >> " + line(scan, d.boxes[k], d.offsets[k])
		scan = splice(scan, d.offsets[k], d.boxes[k])
	}
	return result
}

// key is a canonical form for cycle-detection caches: equal diagrams have
// equal keys.
func (d *Diagram) key() string {
	var b strings.Builder
	b.WriteString(d.dom.String())
	for k, box := range d.boxes {
		fmt.Fprintf(&b, "|%d:%s", d.offsets[k], box.key())
	}
	return b.String()
}
