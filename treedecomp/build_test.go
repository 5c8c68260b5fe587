package treedecomp_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colorcode-go/subiso/graph"
	"github.com/colorcode-go/subiso/treedecomp"
)

func undirectedEdge(g *graph.Graph, u, v int) {
	_ = g.AddEdge(u, v)
	_ = g.AddEdge(v, u)
}

func TestBuildSingleVertexHasWidthZero(t *testing.T) {
	g := graph.NewGraph(1)
	tree, err := treedecomp.Build(g)
	require.NoError(t, err)
	assert.Equal(t, 0, tree.TW)
	require.Len(t, tree.Nodes, 1)
}

func TestBuildEmptyGraph(t *testing.T) {
	g := graph.NewGraph(0)
	tree, err := treedecomp.Build(g)
	require.NoError(t, err)
	assert.Equal(t, -1, tree.TW)
	assert.Empty(t, tree.Nodes)
}

func TestBuildTreeHasWidthOne(t *testing.T) {
	// A path 0-1-2-3 is itself a tree: treewidth 1.
	g := graph.NewGraph(4)
	undirectedEdge(g, 0, 1)
	undirectedEdge(g, 1, 2)
	undirectedEdge(g, 2, 3)

	tree, err := treedecomp.Build(g)
	require.NoError(t, err)
	assert.Equal(t, 1, tree.TW)
}

func TestBuildTriangleHasWidthTwo(t *testing.T) {
	// K3: every vertex mutually adjacent, so the whole vertex set must
	// share a bag: width 2.
	g := graph.NewGraph(3)
	undirectedEdge(g, 0, 1)
	undirectedEdge(g, 1, 2)
	undirectedEdge(g, 2, 0)

	tree, err := treedecomp.Build(g)
	require.NoError(t, err)
	assert.Equal(t, 2, tree.TW)
}

func TestBuildCoversEveryVertexAndEdge(t *testing.T) {
	g := graph.NewGraph(5)
	undirectedEdge(g, 0, 1)
	undirectedEdge(g, 1, 2)
	undirectedEdge(g, 2, 3)
	undirectedEdge(g, 3, 4)
	undirectedEdge(g, 4, 0)

	tree, err := treedecomp.Build(g)
	require.NoError(t, err)

	// Every vertex appears in some bag.
	for v := 0; v < g.N(); v++ {
		found := false
		for _, node := range tree.Nodes {
			if node.Bag.Test(v) {
				found = true
				break
			}
		}
		assert.True(t, found, "vertex %d missing from all bags", v)
	}

	// Every edge is covered by some bag containing both endpoints.
	for u := 0; u < g.N(); u++ {
		for _, v := range g.Neighbors(u) {
			found := false
			for _, node := range tree.Nodes {
				if node.Bag.Test(u) && node.Bag.Test(v) {
					found = true
					break
				}
			}
			assert.True(t, found, "edge (%d,%d) missing from all bags", u, v)
		}
	}
}

func TestTreeParentRootIsNegativeOne(t *testing.T) {
	g := graph.NewGraph(3)
	undirectedEdge(g, 0, 1)
	undirectedEdge(g, 1, 2)

	tree, err := treedecomp.Build(g)
	require.NoError(t, err)
	assert.Equal(t, -1, tree.Parent(0))
}

// Build has no RNG or map iteration in its hot path, so two runs over the
// same graph must produce byte-for-byte identical trees; cmp.Diff gives a
// readable field-by-field breakdown if that ever regresses.
func TestBuildIsDeterministic(t *testing.T) {
	g := graph.NewGraph(5)
	undirectedEdge(g, 0, 1)
	undirectedEdge(g, 1, 2)
	undirectedEdge(g, 2, 3)
	undirectedEdge(g, 3, 4)
	undirectedEdge(g, 4, 0)
	undirectedEdge(g, 0, 2)

	first, err := treedecomp.Build(g)
	require.NoError(t, err)
	second, err := treedecomp.Build(g)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Build is not deterministic (-first +second):\n%s", diff)
	}
}
