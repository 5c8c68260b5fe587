// Package treedecomp computes an (exact, optimal-width) tree decomposition
// of a small graph F (|V(F)| ≤ bitmask.MaxVertices) by bitmask dynamic
// programming over elimination orderings, the same permutation-DP shape
// lvlath/tsp/exact.go uses for Held-Karp: a flat DP table indexed by
// subset, masks grouped by popcount so each layer only depends on smaller
// ones, and math/bits for popcount/iteration.
//
// Complexity: O(2^n · n^2) time and O(2^n) memory, where n = |V(F)|. This
// is exact treewidth, not an approximation, which is only tractable
// because the spec bounds n to at most bitmask.MaxVertices.
//
// Errors: ErrTooManyVertices if F exceeds that bound.
package treedecomp

import "github.com/colorcode-go/subiso/bitmask"

// Node is one bag of a tree decomposition: a subset of V(F) together with
// the bitmask of other node indices it is adjacent to in the decomposition
// tree. Nodes are identified by their index into Tree.Nodes.
type Node struct {
	Bag bitmask.Mask
	Adj bitmask.Mask
}

// Tree is a tree decomposition of some graph F: a set of bags (Nodes)
// connected into a tree, with TW the decomposition's width (its largest
// bag size minus one).
type Tree struct {
	TW    int
	Nodes []Node
}

// Parent returns the index of n's parent in the tree, rooted at Nodes[0],
// or -1 if n is the root. Implemented by a single BFS from the root since
// Tree carries only undirected adjacency.
func (t *Tree) Parent(n int) int {
	parent := make([]int, len(t.Nodes))
	for i := range parent {
		parent[i] = -2 // unvisited
	}
	parent[0] = -1
	queue := []int{0}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range t.Nodes[cur].Adj.Bits() {
			if parent[next] != -2 {
				continue
			}
			parent[next] = cur
			queue = append(queue, next)
		}
	}
	if n < 0 || n >= len(parent) {
		return -1
	}
	return parent[n]
}
