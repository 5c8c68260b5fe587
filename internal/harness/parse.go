// Package harness wires the rest of the module into a runnable program:
// parsing graph files, driving one engine run, and reporting results —
// the glue cmd/grs's main calls into, kept separate so it stays testable
// without a process boundary.
package harness

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle"

	"github.com/colorcode-go/subiso/graph"
)

// ErrMalformedInput is returned when a graph file doesn't match the
// expected grammar, or declares an edge referencing an out-of-range
// vertex.
var ErrMalformedInput = errors.New("harness: malformed graph file")

// edgeLine is one "u v" pair in a graph file.
type edgeLine struct {
	U int `@Int`
	V int `@Int`
}

// graphFile is the grammar for the module's plain-text graph format: a
// vertex count declaration followed by whitespace-separated edge pairs.
// Grounded on lvlath sibling example BalancedGo/lib/parser.go's use of
// participle for its own (differently shaped) graph text format — both
// reach for a grammar-based parser instead of a hand-rolled scanner so bad
// input gets a precise parse-error location instead of a silent misread.
type graphFile struct {
	N     int        `"n" @Int`
	Edges []edgeLine `( @@ )*`
}

var grammar = participle.MustBuild(&graphFile{})

// ParseGraph parses s (the contents of a graph file) into a *graph.Graph.
// Every declared edge is inserted in both directions, since the module's
// Graph type stores directed adjacency and undirected graphs are modeled
// by the caller doing so explicitly.
func ParseGraph(s string) (*graph.Graph, error) {
	var gf graphFile
	if err := grammar.ParseString(s, &gf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	g := graph.NewGraph(gf.N)
	for _, e := range gf.Edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		if err := g.AddEdge(e.V, e.U); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
	}
	return g, nil
}
