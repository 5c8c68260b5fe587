// Package testgraphs builds small, deterministic topologies for exercising
// the engine end to end, the way builder's impl_*.go constructors build
// fixtures for lvlath's own test suite. Each function here is the same
// contract (minimum vertex count, deterministic edge emission order) as
// its builder counterpart, adapted from string-keyed core.Graph vertices
// plus a builderConfig to this module's integer-keyed *graph.Graph, which
// has no vertex-ID scheme or weight policy to thread through.
package testgraphs

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/colorcode-go/subiso/graph"
)

// ErrTooFewVertices is returned when a constructor's vertex count falls
// below the minimum its topology requires.
var ErrTooFewVertices = errors.New("testgraphs: too few vertices")

func undirected(g *graph.Graph, u, v int) {
	_ = g.AddEdge(u, v)
	_ = g.AddEdge(v, u)
}

// Path returns the path graph P_n: vertices 0..n-1 connected in a line.
// Grounded on builder/impl_path.go's Path(n) constructor.
func Path(n int) (*graph.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
	}
	g := graph.NewGraph(n)
	for i := 0; i+1 < n; i++ {
		undirected(g, i, i+1)
	}
	return g, nil
}

// Cycle returns the cycle graph C_n: a ring of n vertices. Grounded on
// builder/impl_cycle.go's Cycle(n) constructor, including its n >= 3
// contract (a cycle on fewer vertices degenerates).
func Cycle(n int) (*graph.Graph, error) {
	const minCycleNodes = 3
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}
	g := graph.NewGraph(n)
	for i := 0; i < n; i++ {
		undirected(g, i, (i+1)%n)
	}
	return g, nil
}

// Complete returns the complete graph K_n: every pair of distinct vertices
// adjacent. Grounded on builder/impl_complete.go's Complete(n), including
// its lexicographic {i,j}, i<j emission order.
func Complete(n int) (*graph.Graph, error) {
	const minCompleteNodes = 1
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}
	g := graph.NewGraph(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			undirected(g, i, j)
		}
	}
	return g, nil
}

// Star returns the star graph with hub vertex 0 and n-1 leaves 1..n-1.
// Grounded on builder/impl_star.go's Star(n), substituting a fixed hub
// index for its fixed hub ID "Center".
func Star(n int) (*graph.Graph, error) {
	const minStarNodes = 2
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}
	g := graph.NewGraph(n)
	for leaf := 1; leaf < n; leaf++ {
		undirected(g, 0, leaf)
	}
	return g, nil
}

// Wheel returns the wheel graph W_n: a cycle C_(n-1) over vertices 1..n-1
// plus a hub vertex 0 connected to every cycle vertex. Grounded on
// builder/impl_wheel.go's Wheel(n) = Cycle(n-1) + hub, including its
// n >= 4 contract (the outer ring must itself be a valid cycle).
func Wheel(n int) (*graph.Graph, error) {
	const minWheelNodes = 4
	if n < minWheelNodes {
		return nil, fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
	}
	g := graph.NewGraph(n)
	for i := 0; i < n-1; i++ {
		undirected(g, 1+i, 1+(i+1)%(n-1))
	}
	for ring := 1; ring < n; ring++ {
		undirected(g, 0, ring)
	}
	return g, nil
}

// Empty returns the edgeless graph on n vertices. Grounded on
// builder/impl_bipartite.go's zero-probability corner case, generalized
// to its own named constructor since this module has no bipartite
// component to attach it to.
func Empty(n int) (*graph.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("Empty: n=%d: %w", n, ErrTooFewVertices)
	}
	return graph.NewGraph(n), nil
}

// RandomSparse samples an Erdos-Renyi graph over n vertices, including
// each undirected pair independently with probability p, using rng.
// Grounded on builder/impl_random_sparse.go's RandomSparse(n, p),
// including its stable i-ascending, j-ascending (j>i) trial order so
// results are reproducible for a fixed rng stream.
func RandomSparse(n int, p float64, rng *rand.Rand) (*graph.Graph, error) {
	const minRandomSparseVertices = 1
	if n < minRandomSparseVertices {
		return nil, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%.6f not in [0,1]", p)
	}
	g := graph.NewGraph(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				undirected(g, i, j)
			}
		}
	}
	return g, nil
}
