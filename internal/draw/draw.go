// Package draw lays out diagrams on a grid and renders them as Graphviz
// text. Inputs sit on the top row, one row per box below, outputs at the
// bottom; wire nodes mark where a wire crosses a row without meeting a box.
package draw

import (
	"fmt"
	"strings"

	"github.com/agentic-research/moncat/internal/moncat"
)

// Node is a positioned element of the layout. Wires have an empty label.
type Node struct {
	ID    string
	Label string
	X     float64
	Y     int
}

// Edge connects two node IDs, oriented from input row to output row.
type Edge struct {
	From, To string
}

// Graph is the layout of one diagram.
type Graph struct {
	Nodes []Node
	Edges []Edge

	byID map[string]int
}

// Node looks a node up by ID.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.byID[id]
	if !ok {
		return Node{}, false
	}
	return g.Nodes[i], true
}

func (g *Graph) add(id string, x float64, y int, label string) {
	g.byID[id] = len(g.Nodes)
	g.Nodes = append(g.Nodes, Node{ID: id, Label: label, X: x, Y: y})
}

func (g *Graph) connect(from, to string) {
	g.Edges = append(g.Edges, Edge{From: from, To: to})
}

// Layout places a diagram on the grid. Node IDs follow the input_i, box_i,
// wire_i_j, output_i scheme; positions are deterministic in the diagram's
// boxes and offsets.
func Layout(d *moncat.Diagram) *Graph {
	g := &Graph{byID: make(map[string]int)}
	dom := d.Dom()
	height := d.Len() + 1

	scan := make([]string, dom.Len())
	for i := 0; i < dom.Len(); i++ {
		id := fmt.Sprintf("input_%d", i)
		g.add(id, -0.5*float64(dom.Len())+float64(i), height, dom.At(i).String())
		scan[i] = id
	}

	boxes, offsets := d.Boxes(), d.Offsets()
	for i, box := range boxes {
		off := offsets[i]
		row := height - 1 - i
		pad := -0.5 * float64(len(scan)-box.Dom.Len()+1)
		boxID := fmt.Sprintf("box_%d", i)
		g.add(boxID, pad+float64(off), row, box.String())
		for j := 0; j < box.Dom.Len(); j++ {
			g.connect(scan[off+j], boxID)
		}
		for j := 0; j < off; j++ {
			wireID := fmt.Sprintf("wire_%d_%d", i, j)
			g.add(wireID, pad+float64(j), row, "")
			g.connect(scan[j], wireID)
			scan[j] = wireID
		}
		for j := 0; j < len(scan)-off-box.Dom.Len(); j++ {
			wireID := fmt.Sprintf("wire_%d_%d", i, off+j+1)
			g.add(wireID, pad+float64(off+j+1), row, "")
			g.connect(scan[off+box.Dom.Len()+j], wireID)
			scan[off+box.Dom.Len()+j] = wireID
		}
		next := make([]string, 0, len(scan)-box.Dom.Len()+box.Cod.Len())
		next = append(next, scan[:off]...)
		for j := 0; j < box.Cod.Len(); j++ {
			next = append(next, boxID)
		}
		next = append(next, scan[off+box.Dom.Len():]...)
		scan = next
	}

	cod := d.Cod()
	for i := 0; i < cod.Len(); i++ {
		id := fmt.Sprintf("output_%d", i)
		g.add(id, -0.5*float64(len(scan))+float64(i), 0, cod.At(i).String())
		g.connect(scan[i], id)
	}
	return g
}

// DOT renders the layout as a Graphviz digraph. Boxes come out as filled
// rectangles, boundary nodes as plain labels, wire nodes as points.
func (g *Graph) DOT() string {
	var b strings.Builder
	b.WriteString("digraph {\n")
	b.WriteString("  rankdir=TB;\n")
	for _, n := range g.Nodes {
		switch {
		case strings.HasPrefix(n.ID, "box_"):
			fmt.Fprintf(&b, "  %s [label=%q shape=box style=filled fillcolor=white pos=\"%g,%d!\"];\n",
				n.ID, n.Label, n.X, n.Y)
		case n.Label == "":
			fmt.Fprintf(&b, "  %s [shape=point width=0 pos=\"%g,%d!\"];\n", n.ID, n.X, n.Y)
		default:
			fmt.Fprintf(&b, "  %s [label=%q shape=plaintext pos=\"%g,%d!\"];\n",
				n.ID, n.Label, n.X, n.Y)
		}
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "  %s -> %s [arrowhead=none];\n", e.From, e.To)
	}
	b.WriteString("}\n")
	return b.String()
}
