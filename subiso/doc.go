// Package subiso runs the randomized colored-subgraph-isomorphism search:
// repeated random colorings of the host graph, a bottom-up tree-DP pass
// over a nice tree decomposition of the pattern graph looking for a
// colorful embedding, and a top-down reconstruction pass turning each one
// found into a concrete vertex mapping.
//
// Key features:
//   - Engine wraps the whole pipeline behind NewEngine/Run.
//   - Deterministic given a seed (WithSeed); defaults to 3^|V(F)| iterations
//     (WithIterations), the standard color-coding repetition count.
//
// Complexity: per iteration, the DP table at a node holds up to
// |V(G)|^|bag| candidate images (|bag| <= tw+1, tw the pattern's
// treewidth), each with up to 2^|V(F)| color subsets, and Introduce scans
// all of V(G) for every child record.
//
// Errors: ErrPatternTooLarge, ErrHostTooSmall, ErrNonPositiveIterations.
package subiso
