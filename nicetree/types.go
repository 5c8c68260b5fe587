// Package nicetree turns a treedecomp.Tree into a nice tree decomposition:
// a rooted binary tree of Leaf, Introduce, Forget and Join nodes where
// successive bags differ by exactly one vertex (Introduce, Forget) or
// repeat identically across a branch (Join), the shape subiso's bottom-up
// DP walks one node at a time.
//
// Grounded on original_source/src/nice_tree_dec.c: add_nice_tree_dec_node,
// ntd_connect and td_dfs build the same Introduce/Forget chains and
// balanced Join trees; ntd_preprocess computes the same per-node
// bag_cont/chng_vertex/chng_index fields subiso's Introduce and Forget
// handlers read to group child records by prefix.
package nicetree

import "github.com/colorcode-go/subiso/bitmask"

// Kind identifies a nice-tree-decomposition node's role.
type Kind int

const (
	// Leaf nodes have a singleton bag and no children, except the single
	// node of the decomposition built from an empty pattern graph, whose
	// bag is empty since there is no vertex to seed it with.
	Leaf Kind = iota
	// Introduce nodes add one vertex (ChangeVertex) to their child's bag.
	Introduce
	// Forget nodes remove one vertex (ChangeVertex) from their child's bag.
	Forget
	// Join nodes have two children sharing this node's exact bag.
	Join
)

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "Leaf"
	case Introduce:
		return "Introduce"
	case Forget:
		return "Forget"
	case Join:
		return "Join"
	default:
		return "Unknown"
	}
}

// Node is one bag of a nice tree decomposition.
type Node struct {
	Idx  int
	Kind Kind
	Bag  bitmask.Mask

	// BagSorted is Bag's members in ascending order, cached so the
	// engine doesn't recompute it per record it processes.
	BagSorted []int

	// ChangeVertex is the vertex an Introduce or Forget node adds or
	// removes; -1 for Leaf and Join.
	ChangeVertex int

	// ChangeIndex is ChangeVertex's position within the larger of this
	// node's and its child's sorted bag (the bag that actually contains
	// it). Introduce/Forget handlers use it to group child records by
	// the shared prefix that doesn't involve ChangeVertex.
	ChangeIndex int

	Parent int // -1 for the root
	Child1 int // -1 for Leaf
	Child2 int // -1 unless Kind == Join
}

// Decomposition is a complete nice tree decomposition.
type Decomposition struct {
	TW    int
	Root  int
	Nodes []Node
}
