package draw

import (
	"sort"
	"strings"
	"testing"

	"github.com/agentic-research/moncat/internal/moncat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_TwoBoxes(t *testing.T) {
	x, y, z, w := moncat.NewTy("x"), moncat.NewTy("y"), moncat.NewTy("z"), moncat.NewTy("w")
	f0, f1 := moncat.NewBox("f0", x, y), moncat.NewBox("f1", z, w)
	g := Layout(f0.Tensor(f1.Diagram()))

	wantLabels := map[string]string{
		"box_0": "f0", "box_1": "f1",
		"input_0": "x", "input_1": "z",
		"output_0": "y", "output_1": "w",
	}
	for id, label := range wantLabels {
		n, ok := g.Node(id)
		require.True(t, ok, id)
		assert.Equal(t, label, n.Label, id)
	}

	wantPos := map[string][2]float64{
		"box_0":    {-1.0, 2},
		"box_1":    {0.0, 1},
		"input_0":  {-1.0, 3},
		"input_1":  {0.0, 3},
		"output_0": {-1.0, 0},
		"output_1": {0.0, 0},
		"wire_0_1": {0.0, 2},
		"wire_1_0": {-1.0, 1},
	}
	require.Len(t, g.Nodes, len(wantPos))
	for id, pos := range wantPos {
		n, ok := g.Node(id)
		require.True(t, ok, id)
		assert.Equal(t, pos[0], n.X, id)
		assert.Equal(t, int(pos[1]), n.Y, id)
	}

	var edges []string
	for _, e := range g.Edges {
		edges = append(edges, e.From+" -> "+e.To)
	}
	sort.Strings(edges)
	assert.Equal(t, []string{
		"box_0 -> wire_1_0",
		"box_1 -> output_1",
		"input_0 -> box_0",
		"input_1 -> wire_0_1",
		"wire_0_1 -> box_1",
		"wire_1_0 -> output_0",
	}, edges)
}

func TestLayout_Identity(t *testing.T) {
	g := Layout(moncat.Id(moncat.NewTy("x")))
	require.Len(t, g.Nodes, 2)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, Edge{From: "input_0", To: "output_0"}, g.Edges[0])
}

func TestLayout_Scalar(t *testing.T) {
	s0 := moncat.NewBox("s0", moncat.Ty{}, moncat.Ty{})
	g := Layout(s0.Diagram())
	require.Len(t, g.Nodes, 1)
	assert.Empty(t, g.Edges)
	n, ok := g.Node("box_0")
	require.True(t, ok)
	assert.Equal(t, "s0", n.Label)
}

func TestDOT(t *testing.T) {
	x, y := moncat.NewTy("x"), moncat.NewTy("y")
	f := moncat.NewBox("f", x, y)
	out := Layout(f.Diagram()).DOT()

	assert.True(t, strings.HasPrefix(out, "digraph {"))
	assert.Contains(t, out, `box_0 [label="f" shape=box`)
	assert.Contains(t, out, "input_0 -> box_0 [arrowhead=none];")
	assert.Contains(t, out, "box_0 -> output_0 [arrowhead=none];")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}
