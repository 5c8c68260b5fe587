// Package colorcode finds subgraphs of a large host graph G isomorphic to a
// small pattern graph F (|V(F)| ≤ 20), using the color-coding technique of
// Alon–Yuster–Zwick combined with dynamic programming over a nice tree
// decomposition of F.
//
// The package is organized the way the search itself is structured,
// leaves first:
//
//	bitmask/       — 32-bit subsets of V(F), bit ops
//	graph/         — adjacency sets over integer vertices
//	treedecomp/    — bitmask-DP treewidth + elimination ordering + tree decomposition
//	nicetree/      — nice (Leaf/Introduce/Forget/Join) tree decomposition
//	resultbuffer/  — varint+delta streaming partial-mapping tables
//	mappingstore/  — deduplicated store of discovered vertex-subsets of G
//	subiso/        — per-iteration coloring, bottom-up DP, top-down reconstruction
//	internal/harness/ — file loading, the run loop, and reporting
//	cmd/grs/       — command-line entry point
//
// Each iteration draws a fresh random coloring of V(G), runs the tree-DP
// bottom-up to discover colorful images of F, reconstructs concrete vertex
// mappings top-down, and accumulates distinct vertex-subsets of G across
// iterations in the mapping store. Repeating enough times makes it likely,
// for any particular copy of F in G, that some iteration colors it
// colorfully.
//
// This package gives no guarantee of exactness (a randomized algorithm) and
// does not enumerate every isomorphic mapping — only one representative per
// vertex-subset of G. See the subiso package for the engine entry point and
// cmd/grs for a runnable CLI built on top of it.
package colorcode
