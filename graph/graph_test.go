package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colorcode-go/subiso/graph"
)

func triangle() *graph.Graph {
	g := graph.NewGraph(3)
	undirectedEdge(g, 0, 1)
	undirectedEdge(g, 1, 2)
	undirectedEdge(g, 2, 0)
	return g
}

func undirectedEdge(g *graph.Graph, u, v int) {
	_ = g.AddEdge(u, v)
	_ = g.AddEdge(v, u)
}

func TestAddEdgeIsIdempotentAndSymmetricByCaller(t *testing.T) {
	g := triangle()
	assert.True(t, g.IsAdjacent(0, 1))
	assert.True(t, g.IsAdjacent(1, 0))
	assert.True(t, g.IsAdjacent(2, 0))

	require.NoError(t, g.AddEdge(0, 1))
	assert.Equal(t, 2, g.Degree(0))
}

func TestAddEdgeRejectsOutOfRangeVertices(t *testing.T) {
	g := graph.NewGraph(2)
	err := g.AddEdge(0, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

func TestNeighborsAreSortedAndCached(t *testing.T) {
	g := graph.NewGraph(4)
	undirectedEdge(g, 0, 3)
	undirectedEdge(g, 0, 1)
	undirectedEdge(g, 0, 2)

	assert.Equal(t, []int{1, 2, 3}, g.Neighbors(0))

	require.NoError(t, g.AddEdge(0, 1))
	assert.Equal(t, []int{1, 2, 3}, g.Neighbors(0))
}

func TestCloneIsIndependent(t *testing.T) {
	g := triangle()
	clone := g.Clone()

	require.NoError(t, clone.AddEdge(0, 2))
	assert.True(t, clone.IsAdjacent(0, 2))
	assert.False(t, g.IsAdjacent(0, 2))
}

func TestDegreeAndNOutOfRange(t *testing.T) {
	g := graph.NewGraph(3)
	assert.Equal(t, 3, g.N())
	assert.Equal(t, 0, g.Degree(-1))
	assert.Equal(t, 0, g.Degree(10))
	assert.Nil(t, g.Neighbors(10))
}
