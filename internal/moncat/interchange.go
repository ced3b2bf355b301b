package moncat

import (
	"errors"
	"fmt"
)

// ErrInterchange is returned when two boxes cannot be exchanged because they
// share a wire.
var ErrInterchange = errors.New("moncat: boxes do not commute")

// ErrDisconnected is returned by NormalForm when the diagram admits no
// normal form: floating scalar boxes can be exchanged forever.
var ErrDisconnected = errors.New("moncat: diagram is not connected")

// MaxNormalizeSteps caps interchanger rewriting. A connected diagram reaches
// its normal form well before this; the cap guards the cycle detector.
const MaxNormalizeSteps = 10000

// Interchange exchanges boxes i and j, walking one adjacent swap at a time
// when they are not neighbours. When exchanging two adjacent boxes that could
// move either way, the right interchange move is taken unless left is set;
// the walk itself always takes right moves.
func (d *Diagram) Interchange(i, j int, left bool) (*Diagram, error) {
	n := len(d.boxes)
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, fmt.Errorf("moncat: interchange indices (%d, %d) out of range(%d)", i, j, n)
	}
	if i == j {
		return d, nil
	}
	if j < i-1 {
		result := d
		var err error
		for k := 0; k < i-j; k++ {
			if result, err = result.Interchange(i-k, i-k-1, false); err != nil {
				return nil, err
			}
		}
		return result, nil
	}
	if j > i+1 {
		result := d
		var err error
		for k := 0; k < j-i; k++ {
			if result, err = result.Interchange(i+k, i+k+1, false); err != nil {
				return nil, err
			}
		}
		return result, nil
	}
	if j < i {
		i, j = j, i
	}
	box0, box1 := d.boxes[i], d.boxes[j]
	off0, off1 := d.offsets[i], d.offsets[j]
	switch {
	case left && off1 >= off0+box0.Cod.Len():
		off1 = off1 - box0.Cod.Len() + box0.Dom.Len()
	case off0 >= off1+box1.Dom.Len(): // box0 right of box1
		off0 = off0 - box1.Dom.Len() + box1.Cod.Len()
	case off1 >= off0+box0.Cod.Len(): // box0 left of box1
		off1 = off1 - box0.Cod.Len() + box0.Dom.Len()
	default:
		return nil, fmt.Errorf("%w: %s and %s", ErrInterchange, box0, box1)
	}
	boxes := d.Boxes()
	offsets := d.Offsets()
	boxes[i], boxes[j] = box1, box0
	offsets[i], offsets[j] = off1, off0
	return &Diagram{dom: d.dom, cod: d.cod, boxes: boxes, offsets: offsets}, nil
}

// normalizeStep applies the first available exchange move and reports whether
// anything changed. With left unset, boxes standing to the right of a later
// box are pushed down; with left set, the mirror moves apply.
func (d *Diagram) normalizeStep(left bool) (*Diagram, bool) {
	for i := 0; i < len(d.boxes)-1; i++ {
		box0, box1 := d.boxes[i], d.boxes[i+1]
		off0, off1 := d.offsets[i], d.offsets[i+1]
		if (left && off1 >= off0+box0.Cod.Len()) ||
			(!left && off0 >= off1+box1.Dom.Len()) {
			if next, err := d.Interchange(i, i+1, left); err == nil {
				return next, true
			}
		}
	}
	return d, false
}

// Normalize returns the intermediate diagrams on the way to normal form.
// It fails with ErrDisconnected when rewriting revisits a diagram, which
// happens exactly when floating scalars chase each other around.
func (d *Diagram) Normalize(left bool) ([]*Diagram, error) {
	var steps []*Diagram
	seen := map[string]struct{}{d.key(): {}}
	current := d
	for step := 0; step < MaxNormalizeSteps; step++ {
		next, moved := current.normalizeStep(left)
		if !moved {
			return steps, nil
		}
		if _, dup := seen[next.key()]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDisconnected, d)
		}
		seen[next.key()] = struct{}{}
		steps = append(steps, next)
		current = next
	}
	return nil, fmt.Errorf("%w: %s", ErrDisconnected, d)
}

// NormalForm rewrites the diagram to its interchanger normal form, see
// arXiv:1804.07832. By default only right exchange moves are applied.
// Floating scalars that can reach each other cycle forever; Normalize's
// duplicate detection turns that into ErrDisconnected.
func (d *Diagram) NormalForm(left bool) (*Diagram, error) {
	steps, err := d.Normalize(left)
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return d, nil
	}
	return steps[len(steps)-1], nil
}

// Slices partitions the diagram into parallel layers: each returned diagram
// holds the boxes that can be brought side by side by interchangers. The
// layers compose back to the original up to normal form.
func (d *Diagram) Slices() []*Diagram {
	diagram := d
	var slices []*Diagram
	i, cod := 0, d.dom
	for i < len(diagram.boxes) {
		dom, nBoxes := cod, 0
		for j := i + 1; j < len(diagram.boxes); j++ {
			if moved, err := diagram.Interchange(j, i, false); err == nil {
				diagram = moved
				nBoxes++
			}
		}
		for j := i; j < i+nBoxes+1; j++ {
			cod = splice(cod, diagram.offsets[j], diagram.boxes[j])
		}
		slices = append(slices, &Diagram{
			dom:     dom,
			cod:     cod,
			boxes:   append([]*Box(nil), diagram.boxes[i:i+nBoxes+1]...),
			offsets: append([]int(nil), diagram.offsets[i:i+nBoxes+1]...),
		})
		i += nBoxes + 1
	}
	return slices
}

// Depth is the number of parallel layers of the diagram. Identities have
// depth zero.
func (d *Diagram) Depth() int {
	return len(d.Slices())
}
