package treedecomp

import (
	"errors"

	"github.com/colorcode-go/subiso/bitmask"
	"github.com/colorcode-go/subiso/graph"
)

// ErrTooManyVertices is returned when f has more vertices than
// bitmask.MaxVertices, the permutation DP's hard limit.
var ErrTooManyVertices = errors.New("treedecomp: graph exceeds bitmask.MaxVertices")

// Build computes an exact-width tree decomposition of f via the
// elimination-ordering permutation DP (grounded on
// original_source/src/tree_dec.c: get_q_component/q_function compute the
// same "monotone adjacency" this DP calls reach, get_perm_dp is the same
// memoized recursion over subsets, get_best_perm/get_inv_perm the same
// argmin-driven reconstruction).
//
// For S a subset of V(f), dp[S] is the minimum, over orderings in which to
// eliminate S, of the largest fill-in degree any vertex acquires at the
// moment of its elimination. The recursive step removes one vertex v from
// S at a time:
//
//	dp[S] = min over v in S of max(dp[S\{v}], |reach(f, S, v)|)
//
// where reach(f, S, v) is the set of vertices outside S adjacent (through
// S) to v's connected component within f restricted to S — exactly
// get_q_component followed by q_function in the original. dp[Full] is the
// decomposition's width.
func Build(f *graph.Graph) (*Tree, error) {
	n := f.N()
	if n > bitmask.MaxVertices {
		return nil, ErrTooManyVertices
	}
	if n == 0 {
		return &Tree{TW: -1, Nodes: nil}, nil
	}

	total := 1 << uint(n)
	full := bitmask.Full(n)

	// masksBySize buckets every subset of V(f) by popcount so the DP can
	// be filled in increasing subset-size order, mirroring
	// lvlath/tsp/exact.go's masksBySize precomputation.
	masksBySize := make([][]bitmask.Mask, n+1)
	for m := 0; m < total; m++ {
		mask := bitmask.Mask(m)
		sz := mask.Popcount()
		masksBySize[sz] = append(masksBySize[sz], mask)
	}

	dp := make([]int, total)
	choice := make([]int, total)
	reachAt := make([]bitmask.Mask, total)
	for i := range choice {
		choice[i] = -1
	}

	for size := 1; size <= n; size++ {
		for _, s := range masksBySize[size] {
			best := -1
			bestV := -1
			var bestReach bitmask.Mask
			for _, v := range s.Bits() {
				rest := s.Unset(v)
				comp := component(f, s, v)
				r := reach(f, s, comp)
				width := r.Popcount()
				w := dp[rest]
				if width > w {
					w = width
				}
				if best == -1 || w < best {
					best = w
					bestV = v
					bestReach = r
				}
			}
			dp[s] = best
			choice[s] = bestV
			reachAt[s] = bestReach
		}
	}

	tw := dp[full]

	// Reconstruct: walk the elimination order the DP chose, from the full
	// set down to empty, recording one bag per eliminated vertex (its
	// reach set plus itself) — same shape as td_perm_rec/td_from_perm in
	// the original, which turn the chosen permutation back into bags.
	//
	// dp[S] picks, for S the vertices still standing, which one to retire
	// last; the recursive call then orders S minus that vertex. So this
	// loop, walking from S=full down to empty, visits vertices from
	// last-eliminated to first-eliminated — the reverse of the true
	// elimination order. rank[v] undoes that reversal (rank 0 = v is the
	// first vertex eliminated), matching perm[n-1-i]/inv_perm in
	// original_source/src/tree_dec.c.
	order := make([]int, 0, n)
	bagOf := make([]bitmask.Mask, n)
	rank := make([]int, n)
	s := full
	for i := 0; i < n; i++ {
		v := choice[s]
		order = append(order, v)
		bagOf[v] = reachAt[s].Set(v)
		rank[v] = n - 1 - i
		s = s.Unset(v)
	}

	// Connect each eliminated vertex's bag to whichever of its
	// not-yet-eliminated reach-set neighbors is eliminated soonest: the
	// standard construction turning a perfect elimination ordering into a
	// tree decomposition (each bag is a clique of the chordal completion,
	// parent = lowest-ranked, i.e. earliest-eliminated, remaining
	// neighbor — tree_dec.c:235's low_nbr_pos = MIN(low_nbr_pos,
	// inv_perm[w])).
	nodes := make([]Node, n)
	for v := 0; v < n; v++ {
		nodes[v].Bag = bagOf[v]
	}
	for v := 0; v < n; v++ {
		rest := bagOf[v].Unset(v)
		if rest.Empty() {
			continue
		}
		parent := -1
		for _, u := range rest.Bits() {
			if parent == -1 || rank[u] < rank[parent] {
				parent = u
			}
		}
		nodes[v].Adj = nodes[v].Adj.Set(parent)
		nodes[parent].Adj = nodes[parent].Adj.Set(v)
	}

	// A disconnected f (e.g. one with no edges) leaves one parentless bag
	// per connected component. Link each of them to the first, so Nodes
	// forms a single tree; bags of different components share no vertex,
	// so the new edges keep every vertex's bags connected.
	first := -1
	for v := 0; v < n; v++ {
		if !bagOf[v].Unset(v).Empty() {
			continue
		}
		if first == -1 {
			first = v
			continue
		}
		nodes[v].Adj = nodes[v].Adj.Set(first)
		nodes[first].Adj = nodes[first].Adj.Set(v)
	}

	return &Tree{TW: tw, Nodes: nodes}, nil
}

// component returns the vertices of S reachable from v using only edges
// between vertices of S (v's connected component within f restricted to
// S), via get_q_component's plain DFS.
func component(f *graph.Graph, s bitmask.Mask, v int) bitmask.Mask {
	visited := bitmask.Single(v)
	stack := []int{v}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range f.Neighbors(cur) {
			if s.Test(w) && !visited.Test(w) {
				visited = visited.Set(w)
				stack = append(stack, w)
			}
		}
	}
	return visited
}

// reach returns the vertices outside s adjacent to any vertex of comp,
// q_function's monotone-adjacency count.
func reach(f *graph.Graph, s bitmask.Mask, comp bitmask.Mask) bitmask.Mask {
	var out bitmask.Mask
	for _, u := range comp.Bits() {
		for _, w := range f.Neighbors(u) {
			if !s.Test(w) {
				out = out.Set(w)
			}
		}
	}
	return out
}
