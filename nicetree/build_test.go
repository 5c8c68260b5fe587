package nicetree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colorcode-go/subiso/graph"
	"github.com/colorcode-go/subiso/nicetree"
	"github.com/colorcode-go/subiso/treedecomp"
)

func undirectedEdge(g *graph.Graph, u, v int) {
	_ = g.AddEdge(u, v)
	_ = g.AddEdge(v, u)
}

func triangle() *graph.Graph {
	g := graph.NewGraph(3)
	undirectedEdge(g, 0, 1)
	undirectedEdge(g, 1, 2)
	undirectedEdge(g, 2, 0)
	return g
}

func TestFromTreeDecompTriangleSatisfiesInvariants(t *testing.T) {
	tree, err := treedecomp.Build(triangle())
	require.NoError(t, err)
	assert.Equal(t, 2, tree.TW)

	d := nicetree.FromTreeDecomp(tree)
	require.NoError(t, nicetree.CheckInvariants(d))

	var leaves, introduces, forgets, joins int
	for _, n := range d.Nodes {
		switch n.Kind {
		case nicetree.Leaf:
			leaves++
		case nicetree.Introduce:
			introduces++
		case nicetree.Forget:
			forgets++
		case nicetree.Join:
			joins++
		}
	}
	assert.Positive(t, leaves)
	assert.Positive(t, introduces)
	assert.Positive(t, forgets)

	// K3's elimination order chains linearly (each vertex's bag attaches
	// to the bag of the vertex eliminated right after it), so its tree
	// decomposition is a simple path and no Join is ever needed.
	assert.Equal(t, 0, joins)
}

func TestFromTreeDecompSingleVertex(t *testing.T) {
	g := graph.NewGraph(1)
	tree, err := treedecomp.Build(g)
	require.NoError(t, err)

	d := nicetree.FromTreeDecomp(tree)
	require.NoError(t, nicetree.CheckInvariants(d))
	assert.True(t, d.Nodes[d.Root].Bag.Empty())
}

func TestFromTreeDecompEmptyGraph(t *testing.T) {
	g := graph.NewGraph(0)
	tree, err := treedecomp.Build(g)
	require.NoError(t, err)

	d := nicetree.FromTreeDecomp(tree)
	require.NoError(t, nicetree.CheckInvariants(d))
	require.Len(t, d.Nodes, 1)
	assert.Equal(t, nicetree.Leaf, d.Nodes[0].Kind)
}

func TestFromTreeDecompStarProducesJoinForBranching(t *testing.T) {
	// A star graph centered on 0 forces the center's bag to merge
	// contributions from multiple leaf branches: a Join node should
	// appear somewhere.
	g := graph.NewGraph(4)
	undirectedEdge(g, 0, 1)
	undirectedEdge(g, 0, 2)
	undirectedEdge(g, 0, 3)

	tree, err := treedecomp.Build(g)
	require.NoError(t, err)

	d := nicetree.FromTreeDecomp(tree)
	require.NoError(t, nicetree.CheckInvariants(d))

	var joins int
	for _, n := range d.Nodes {
		if n.Kind == nicetree.Join {
			joins++
		}
	}
	assert.Positive(t, joins)
}
