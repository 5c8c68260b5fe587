package nicetree

import (
	"github.com/colorcode-go/subiso/bitmask"
	"github.com/colorcode-go/subiso/treedecomp"
)

// builder accumulates Nodes while FromTreeDecomp walks the source tree.
type builder struct {
	nodes []Node
}

func (b *builder) add(n Node) int {
	n.Idx = len(b.nodes)
	b.nodes = append(b.nodes, n)
	return n.Idx
}

// connect appends an Introduce/Forget chain turning a node of bag fromBag
// into one of bag toBag, returning the final node's index. Forgets run
// first so intermediate bags never grow larger than max(fromBag, toBag)
// needs, then introduces bring in whatever toBag still needs.
func (b *builder) connect(fromIdx int, fromBag, toBag bitmask.Mask) int {
	cur := fromIdx
	curBag := fromBag

	toRemove := curBag &^ toBag
	for _, v := range toRemove.Bits() {
		curBag = curBag.Unset(v)
		cur = b.add(Node{Kind: Forget, Bag: curBag, ChangeVertex: v, Child1: cur, Child2: -1})
	}

	toAdd := toBag &^ curBag
	for _, v := range toAdd.Bits() {
		curBag = curBag.Set(v)
		cur = b.add(Node{Kind: Introduce, Bag: curBag, ChangeVertex: v, Child1: cur, Child2: -1})
	}

	return cur
}

// buildRec returns the index of a nice-tree node whose bag equals
// t.Nodes[tdIdx].Bag, built from a Leaf (if tdIdx has no other children in
// the source tree) or from its children's finished subtrees merged through
// a balanced binary tree of Join nodes, matching td_dfs's recursive structure.
func buildRec(t *treedecomp.Tree, tdIdx, parent int, b *builder) int {
	bag := t.Nodes[tdIdx].Bag

	var children []int
	for _, adj := range t.Nodes[tdIdx].Adj.Bits() {
		if adj != parent {
			children = append(children, adj)
		}
	}

	if len(children) == 0 {
		// A Leaf starts from a singleton bag, not an empty one: seed it
		// with one vertex of bag (any will do; connect below introduces
		// the rest), folding the first Introduce step into the Leaf
		// itself as ntd_dfs's base case does.
		seed, _ := bag.Lowest()
		seedBag := bitmask.Single(seed)
		leaf := b.add(Node{Kind: Leaf, Bag: seedBag, ChangeVertex: -1, Child1: -1, Child2: -1})
		return b.connect(leaf, seedBag, bag)
	}

	results := make([]int, len(children))
	for i, c := range children {
		sub := buildRec(t, c, tdIdx, b)
		results[i] = b.connect(sub, t.Nodes[c].Bag, bag)
	}

	level := results
	for len(level) > 1 {
		var next []int
		for i := 0; i+1 < len(level); i += 2 {
			next = append(next, b.add(Node{Kind: Join, Bag: bag, ChangeVertex: -1, Child1: level[i], Child2: level[i+1]}))
		}
		if len(level)%2 == 1 {
			next = append(next, level[len(level)-1])
		}
		level = next
	}
	return level[0]
}

// FromTreeDecomp builds a nice tree decomposition from t. An empty t
// (n == 0) yields a decomposition with a single empty-bag Leaf node.
func FromTreeDecomp(t *treedecomp.Tree) *Decomposition {
	b := &builder{}

	var root int
	if len(t.Nodes) == 0 {
		root = b.add(Node{Kind: Leaf, Bag: bitmask.Empty, ChangeVertex: -1, Child1: -1, Child2: -1})
	} else {
		top := buildRec(t, 0, -1, b)
		// Dummy root: nice_tree_dec.c always closes the tree with an empty
		// bag at the top via a Forget chain, giving the engine a single
		// well-defined starting point for top-down reconstruction.
		root = b.connect(top, t.Nodes[0].Bag, bitmask.Empty)
	}

	d := &Decomposition{TW: t.TW, Root: root, Nodes: b.nodes}
	d.wireParents()
	d.preprocess()
	return d
}

func (d *Decomposition) wireParents() {
	for i := range d.Nodes {
		d.Nodes[i].Parent = -1
	}
	for i, n := range d.Nodes {
		if n.Child1 >= 0 {
			d.Nodes[n.Child1].Parent = i
		}
		if n.Child2 >= 0 {
			d.Nodes[n.Child2].Parent = i
		}
	}
}

func (d *Decomposition) preprocess() {
	for i := range d.Nodes {
		n := &d.Nodes[i]
		n.BagSorted = n.Bag.Bits()

		switch n.Kind {
		case Introduce:
			n.ChangeIndex = indexOf(n.BagSorted, n.ChangeVertex)
		case Forget:
			child := d.Nodes[n.Child1]
			n.ChangeIndex = indexOf(child.BagSorted, n.ChangeVertex)
		default:
			n.ChangeIndex = -1
		}
	}
}

func indexOf(sorted []int, v int) int {
	for i, x := range sorted {
		if x == v {
			return i
		}
	}
	return -1
}
