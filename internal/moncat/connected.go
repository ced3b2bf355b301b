package moncat

import "github.com/RoaringBitmap/roaring"

// Components groups the diagram's boxes by wire connectivity: two boxes land
// in the same component when a wire path connects them. Each component is a
// bitmap of box indices. Wires are numbered left to right through the axiom
// scan, so the grouping is deterministic.
func (d *Diagram) Components() []*roaring.Bitmap {
	bitmaps, _ := d.components()
	return bitmaps
}

// components also counts the components that touch neither the domain nor
// the codomain boundary. Two of those floating pieces interchanging past each
// other is what makes normal forms undefined (Eckmann-Hilton).
func (d *Diagram) components() ([]*roaring.Bitmap, int) {
	nBoxes := len(d.boxes)
	if nBoxes == 0 {
		return nil, 0
	}
	// Elements 0..nWires-1 are wire segments, nWires..nWires+nBoxes-1 are
	// boxes. Wires are allocated as the scan advances.
	nWires := d.dom.Len()
	for _, box := range d.boxes {
		nWires += box.Cod.Len()
	}
	parent := make([]int, nWires+nBoxes)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		parent[find(a)] = find(b)
	}

	scan := make([]int, d.dom.Len())
	for i := range scan {
		scan[i] = i
	}
	next := d.dom.Len()
	for k, box := range d.boxes {
		boxElem := nWires + k
		off := d.offsets[k]
		for _, wire := range scan[off : off+box.Dom.Len()] {
			union(boxElem, wire)
		}
		produced := make([]int, box.Cod.Len())
		for i := range produced {
			produced[i] = next
			next++
			union(boxElem, produced[i])
		}
		scan = append(append(append([]int(nil), scan[:off]...), produced...),
			scan[off+box.Dom.Len():]...)
	}

	// Boundary wires: the initial domain segments and whatever survives in
	// the final scan.
	boundary := roaring.New()
	for i := 0; i < d.dom.Len(); i++ {
		boundary.Add(uint32(find(i)))
	}
	for _, wire := range scan {
		boundary.Add(uint32(find(wire)))
	}

	byRoot := make(map[int]*roaring.Bitmap)
	var order []int
	for k := range d.boxes {
		root := find(nWires + k)
		if byRoot[root] == nil {
			byRoot[root] = roaring.New()
			order = append(order, root)
		}
		byRoot[root].Add(uint32(k))
	}
	components := make([]*roaring.Bitmap, 0, len(order))
	floating := 0
	for _, root := range order {
		components = append(components, byRoot[root])
		if !boundary.Contains(uint32(root)) {
			floating++
		}
	}
	return components, floating
}

// Connected reports whether the diagram's boxes form a single component that
// touches the boundary, or the diagram is an identity.
func (d *Diagram) Connected() bool {
	components, floating := d.components()
	return len(components) <= 1 && floating == 0
}
