package nicetree

import (
	"errors"
	"fmt"

	"github.com/spakin/disjoint"

	"github.com/colorcode-go/subiso/bitmask"
)

// Sentinel errors returned by CheckInvariants' individual failure modes,
// matching the structural checks lvlath-style packages validate with named
// sentinels rather than ad-hoc strings. CheckInvariants wraps these with
// fmt.Errorf("%w: ...") so callers can still errors.Is against the class of
// failure while getting a node index in the message.
var (
	ErrNotATree           = errors.New("nicetree: nodes do not form a single connected tree")
	ErrBadLeaf            = errors.New("nicetree: leaf node violates its shape")
	ErrBadIntroduce       = errors.New("nicetree: introduce node violates its shape")
	ErrBadForget          = errors.New("nicetree: forget node violates its shape")
	ErrBadJoin            = errors.New("nicetree: join node violates its shape")
	ErrRootBagNotEmpty    = errors.New("nicetree: root bag is not empty")
	ErrVertexDisconnected = errors.New("nicetree: a vertex's bags do not form a connected subtree")
)

// CheckInvariants validates the structural shape nice_tree_dec.c's
// test_nice_tree_dec enforces: Leaf nodes carry a singleton bag (empty only
// for the single-node decomposition of an empty pattern graph) and no
// children; Introduce/Forget nodes have exactly one child and their bag
// differs from it by exactly ChangeVertex; Join nodes have exactly two
// children, both sharing this node's bag; the whole node set forms one
// connected tree rooted at d.Root with an empty bag; and, for every vertex
// of the underlying pattern, the set of nodes whose bag contains it forms a
// connected subtree (the running-intersection property dfs_trv_td and
// dfs_trv_ntd in original_source/src/tests.c check by restricting their
// walk to exactly those nodes).
//
// Tree-shape connectivity is cross-validated two ways: a DFS from the root
// (parent/child pointers) and, independently, a spakin/disjoint union-find
// over every parent-child edge — the two must agree on "one component" for
// the result to be trusted, catching bugs that corrupt one representation
// but not the other. Neither of those checks bag contents, so they cannot
// by themselves catch a malformed decomposition whose nodes are connected
// as a tree but whose per-vertex bag placement is not — that is what
// checkPerVertexConnectivity is for.
func CheckInvariants(d *Decomposition) error {
	if d.Root < 0 || d.Root >= len(d.Nodes) {
		return fmt.Errorf("%w: root index %d out of range", ErrNotATree, d.Root)
	}
	if !d.Nodes[d.Root].Bag.Empty() {
		return fmt.Errorf("%w: root %d has bag %v", ErrRootBagNotEmpty, d.Root, d.Nodes[d.Root].Bag.Bits())
	}

	for i, n := range d.Nodes {
		switch n.Kind {
		case Leaf:
			singleton := n.Bag.Popcount() == 1
			degenerate := n.Bag.Empty() && len(d.Nodes) == 1
			if (!singleton && !degenerate) || n.Child1 != -1 || n.Child2 != -1 {
				return fmt.Errorf("%w: node %d", ErrBadLeaf, i)
			}
		case Introduce:
			if n.Child2 != -1 || n.Child1 < 0 {
				return fmt.Errorf("%w: node %d has wrong child count", ErrBadIntroduce, i)
			}
			child := d.Nodes[n.Child1]
			if child.Bag.Set(n.ChangeVertex) != n.Bag || child.Bag.Test(n.ChangeVertex) {
				return fmt.Errorf("%w: node %d bag does not add exactly ChangeVertex", ErrBadIntroduce, i)
			}
		case Forget:
			if n.Child2 != -1 || n.Child1 < 0 {
				return fmt.Errorf("%w: node %d has wrong child count", ErrBadForget, i)
			}
			child := d.Nodes[n.Child1]
			if n.Bag.Set(n.ChangeVertex) != child.Bag || n.Bag.Test(n.ChangeVertex) {
				return fmt.Errorf("%w: node %d bag does not remove exactly ChangeVertex", ErrBadForget, i)
			}
		case Join:
			if n.Child1 < 0 || n.Child2 < 0 {
				return fmt.Errorf("%w: node %d has wrong child count", ErrBadJoin, i)
			}
			if d.Nodes[n.Child1].Bag != n.Bag || d.Nodes[n.Child2].Bag != n.Bag {
				return fmt.Errorf("%w: node %d children disagree on bag", ErrBadJoin, i)
			}
		}
	}

	if err := checkReachableFromRoot(d); err != nil {
		return err
	}
	if err := checkSingleComponent(d); err != nil {
		return err
	}
	return checkPerVertexConnectivity(d)
}

// checkPerVertexConnectivity verifies the running-intersection property:
// for every vertex v of the underlying pattern, the nodes whose bag
// contains v form a connected subtree. It walks each node's neighbors
// (Parent, Child1, Child2) restricted to that vertex's own node set, the
// same bag-restricted traversal dfs_trv_td/dfs_trv_ntd in
// original_source/src/tests.c:86-97,177-190 run before failing on more than
// one component.
func checkPerVertexConnectivity(d *Decomposition) error {
	var universe bitmask.Mask
	for _, n := range d.Nodes {
		universe = universe.Union(n.Bag)
	}

	for _, v := range universe.Bits() {
		has := make([]bool, len(d.Nodes))
		start := -1
		for i, n := range d.Nodes {
			if n.Bag.Test(v) {
				has[i] = true
				if start == -1 {
					start = i
				}
			}
		}
		if start == -1 {
			continue
		}

		seen := make([]bool, len(d.Nodes))
		var walk func(i int)
		count := 0
		walk = func(i int) {
			if i < 0 || !has[i] || seen[i] {
				return
			}
			seen[i] = true
			count++
			n := d.Nodes[i]
			walk(n.Parent)
			walk(n.Child1)
			walk(n.Child2)
		}
		walk(start)

		total := 0
		for _, ok := range has {
			if ok {
				total++
			}
		}
		if count != total {
			return fmt.Errorf("%w: vertex %d appears in %d nodes but only %d are connected", ErrVertexDisconnected, v, total, count)
		}
	}
	return nil
}

func checkReachableFromRoot(d *Decomposition) error {
	seen := make([]bool, len(d.Nodes))
	var walk func(i int)
	count := 0
	walk = func(i int) {
		if i < 0 || seen[i] {
			return
		}
		seen[i] = true
		count++
		n := d.Nodes[i]
		walk(n.Child1)
		walk(n.Child2)
	}
	walk(d.Root)
	if count != len(d.Nodes) {
		return fmt.Errorf("%w: only %d/%d nodes reachable from root", ErrNotATree, count, len(d.Nodes))
	}
	return nil
}

func checkSingleComponent(d *Decomposition) error {
	elems := make([]*disjoint.Element, len(d.Nodes))
	for i := range elems {
		elems[i] = disjoint.NewElement()
	}
	for i, n := range d.Nodes {
		if n.Child1 >= 0 {
			disjoint.Union(elems[i], elems[n.Child1])
		}
		if n.Child2 >= 0 {
			disjoint.Union(elems[i], elems[n.Child2])
		}
	}
	rep := elems[d.Root].Find()
	for i, e := range elems {
		if e.Find() != rep {
			return fmt.Errorf("%w: node %d is in a different union-find component than the root", ErrNotATree, i)
		}
	}
	return nil
}
