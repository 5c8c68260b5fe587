package harness

import (
	"time"

	"github.com/colorcode-go/subiso/subiso"
)

// RunInput bundles everything a single engine invocation needs, already
// parsed. This is what cmd/grs's main builds from flag values and file
// contents before handing off to Run.
type RunInput struct {
	Host       string
	Pattern    string
	Seed       int64
	Iterations int // 0 means "use the engine default"
}

// Run parses both graph files, builds an Engine and executes it, returning
// a Report ready for WriteText or WriteJSON.
func Run(in RunInput) (Report, error) {
	host, err := ParseGraph(in.Host)
	if err != nil {
		return Report{}, err
	}
	pattern, err := ParseGraph(in.Pattern)
	if err != nil {
		return Report{}, err
	}

	opts := []subiso.Option{subiso.WithSeed(in.Seed)}
	if in.Iterations > 0 {
		opts = append(opts, subiso.WithIterations(in.Iterations))
	}

	eng, err := subiso.NewEngine(host, pattern, opts...)
	if err != nil {
		return Report{}, err
	}

	start := time.Now()
	store := eng.Run()
	elapsed := time.Since(start)

	iterations := in.Iterations
	if iterations <= 0 {
		iterations = defaultIterationsFor(pattern.N())
	}

	return BuildReport(host.N(), pattern.N(), eng.Decomposition().TW, in.Seed, iterations, elapsed, store), nil
}

// defaultIterationsFor mirrors subiso's unexported defaultIterations so the
// report can state the iteration count actually used even when the caller
// didn't override it.
func defaultIterationsFor(k int) int {
	n := 1
	for i := 0; i < k; i++ {
		n *= 3
	}
	return n
}
