package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colorcode-go/subiso/graph"
)

// path builds the path graph 0-1-2-...-(n-1).
func path(n int) *graph.Graph {
	g := graph.NewGraph(n)
	for v := 0; v+1 < n; v++ {
		undirectedEdge(g, v, v+1)
	}
	return g
}

func TestBFSDistancesUnbounded(t *testing.T) {
	g := path(5)
	dist := g.BFSDistances(0, 0)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 4}, dist)
}

func TestBFSDistancesBounded(t *testing.T) {
	g := path(5)
	dist := g.BFSDistances(0, 2)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 2}, dist)
	assert.NotContains(t, dist, 3)
}

func TestBFSDistancesOutOfRangeSource(t *testing.T) {
	g := path(3)
	dist := g.BFSDistances(10, 0)
	assert.Empty(t, dist)
}

func TestEccentricityOnPath(t *testing.T) {
	g := path(5)
	assert.Equal(t, 4, g.Eccentricity(0))
	assert.Equal(t, 2, g.Eccentricity(2))
	assert.Equal(t, 4, g.Eccentricity(4))
}

func TestEccentricitiesMatchesPerVertexEccentricity(t *testing.T) {
	g := triangle()
	ecc := g.Eccentricities()
	for v := 0; v < g.N(); v++ {
		assert.Equal(t, g.Eccentricity(v), ecc[v])
	}
	assert.Equal(t, []int{1, 1, 1}, ecc)
}
