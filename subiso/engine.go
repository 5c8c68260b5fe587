package subiso

import (
	"github.com/colorcode-go/subiso/bitmask"
	"github.com/colorcode-go/subiso/graph"
	"github.com/colorcode-go/subiso/mappingstore"
	"github.com/colorcode-go/subiso/nicetree"
	"github.com/colorcode-go/subiso/resultbuffer"
	"github.com/colorcode-go/subiso/treedecomp"
)

// Options configures an Engine. Use the With* constructors; the zero value
// is not meant to be constructed directly, matching lvlath's builderConfig
// functional-options pattern.
type Options struct {
	seed       int64
	iterations int
}

// Option configures an Engine at construction time.
type Option func(*Options)

// WithSeed fixes the RNG seed driving every iteration's random coloring.
// Seed 0 (the default) falls back to a fixed, reproducible stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithIterations overrides the number of random colorings the engine runs.
// The package default is 3^|V(F)|, the standard color-coding repetition
// count that makes finding any particular copy of F likely.
func WithIterations(n int) Option {
	return func(o *Options) { o.iterations = n }
}

func defaultIterations(k int) int {
	n := 1
	for i := 0; i < k; i++ {
		n *= 3
	}
	return n
}

// Engine finds colorful embeddings of a pattern graph into a host graph by
// repeated random coloring and tree-DP over a nice tree decomposition of
// the pattern.
type Engine struct {
	host    *graph.Graph
	pattern *graph.Graph
	decomp  *nicetree.Decomposition
	opts    Options
}

// NewEngine builds an Engine for finding copies of pattern within host.
func NewEngine(host, pattern *graph.Graph, opts ...Option) (*Engine, error) {
	if pattern.N() > bitmask.MaxVertices {
		return nil, ErrPatternTooLarge
	}
	if host.N() < pattern.N() {
		return nil, ErrHostTooSmall
	}

	tree, err := treedecomp.Build(pattern)
	if err != nil {
		return nil, err
	}
	decomp := nicetree.FromTreeDecomp(tree)

	o := Options{seed: 0, iterations: defaultIterations(pattern.N())}
	for _, opt := range opts {
		opt(&o)
	}
	if o.iterations <= 0 {
		return nil, ErrNonPositiveIterations
	}

	return &Engine{host: host, pattern: pattern, decomp: decomp, opts: o}, nil
}

// Decomposition exposes the nice tree decomposition the engine built for
// its pattern graph, mainly so callers and tests can inspect its shape.
func (e *Engine) Decomposition() *nicetree.Decomposition {
	return e.decomp
}

// Run executes every configured iteration and returns the accumulated
// store of distinct discovered embeddings.
//
// Grounded on original_source/src/subiso.c: subiso_run's outer loop —
// fresh coloring, bottom-up DP, top-down reconstruction, accumulate into
// global memory — each iteration here following the same four steps.
func (e *Engine) Run() *mappingstore.Store {
	store := mappingstore.NewStore()
	rng := rngFromSeed(e.opts.seed)
	k := e.pattern.N()
	full := bitmask.Full(k)

	for it := 0; it < e.opts.iterations; it++ {
		coloring := randomColoring(rng, e.host.N(), k)
		buffers := make([]*resultbuffer.Buffer, len(e.decomp.Nodes))
		e.processNode(e.decomp.Root, coloring, buffers)

		root := buffers[e.decomp.Root]
		root.SetMode(resultbuffer.Read)
		for {
			phi, colors, ok, _ := root.Read()
			if !ok {
				break
			}
			for _, mask := range colors {
				if bitmask.Mask(mask) != full {
					continue
				}
				for _, psi := range reconstruct(e.decomp, e.decomp.Root, phi, mask, coloring, k, buffers) {
					mapping := make([]int, k)
					for i, v := range psi {
						mapping[i] = int(v)
					}
					store.Add(&mappingstore.Result{Mapping: mapping, Colors: mask})
				}
			}
		}
	}

	return store
}

func (e *Engine) processNode(idx int, coloring []int, buffers []*resultbuffer.Buffer) {
	n := e.decomp.Nodes[idx]
	switch n.Kind {
	case nicetree.Leaf:
		buffers[idx] = processLeaf(n, e.host, coloring)
	case nicetree.Introduce:
		e.processNode(n.Child1, coloring, buffers)
		buffers[idx] = processIntroduce(n, e.decomp.Nodes[n.Child1], e.pattern, e.host, coloring, buffers[n.Child1])
	case nicetree.Forget:
		e.processNode(n.Child1, coloring, buffers)
		buffers[idx] = processForget(n, buffers[n.Child1])
	case nicetree.Join:
		e.processNode(n.Child1, coloring, buffers)
		e.processNode(n.Child2, coloring, buffers)
		buffers[idx] = processJoin(n, coloring, buffers[n.Child1], buffers[n.Child2])
	}
}
