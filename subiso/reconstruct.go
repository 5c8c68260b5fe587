package subiso

import (
	"github.com/colorcode-go/subiso/nicetree"
	"github.com/colorcode-go/subiso/resultbuffer"
)

// reconstruct walks down from idx, given a concrete (targetPhi, targetMask)
// known (by the bottom-up pass) to be achievable there, and returns every
// distinct completed assignment of V(F) -> V(G) consistent with it. Each
// returned slice is indexed by pattern vertex id, -1 where this subtree has
// nothing to say (always fully resolved by the time the caller reaches the
// root, since every pattern vertex is introduced exactly once on the path
// from a leaf to the root).
//
// Several child records can collapse onto the same (phi, mask) at a Forget
// node, each corresponding to a different forgotten vertex's image —
// exploring only the first, as the original's can_add effectively does for
// a single embedding, would under-report how many distinct subgraphs a
// coloring actually witnesses (most visibly when |V(F)| == 1 and every
// vertex shares the coloring's only color). Exploring all of them here
// trades that undercount for possible duplicate work, bounded by the
// pattern's own small size.
//
// Grounded on original_source/src/subiso.c: subiso_reconstruct recurses
// the same way — Leaf terminates, Introduce recurses on the smaller bag,
// Forget re-scans its child's table for a witness, Join threads the split
// mask through both children.
func reconstruct(d *nicetree.Decomposition, idx int, targetPhi []int32, targetMask uint32, coloring []int, kFull int, buffers []*resultbuffer.Buffer) [][]int32 {
	n := d.Nodes[idx]
	switch n.Kind {
	case nicetree.Leaf:
		base := make([]int32, kFull)
		for i := range base {
			base[i] = -1
		}
		if len(n.BagSorted) == 1 {
			base[n.BagSorted[0]] = targetPhi[0]
		}
		return [][]int32{base}

	case nicetree.Introduce:
		childPhi := removeAt(targetPhi, n.ChangeIndex)
		color := coloring[targetPhi[n.ChangeIndex]]
		childMask := targetMask &^ (uint32(1) << uint(color))
		results := reconstruct(d, n.Child1, childPhi, childMask, coloring, kFull, buffers)
		for _, r := range results {
			r[n.ChangeVertex] = targetPhi[n.ChangeIndex]
		}
		return results

	case nicetree.Forget:
		buf := buffers[n.Child1]
		buf.SetMode(resultbuffer.Read)
		var all [][]int32
		for {
			phi, colors, ok, _ := buf.Read()
			if !ok {
				break
			}
			if !equalPhiAfterRemoving(phi, n.ChangeIndex, targetPhi) {
				continue
			}
			if !containsMask(colors, targetMask) {
				continue
			}
			results := reconstruct(d, n.Child1, phi, targetMask, coloring, kFull, buffers)
			forgottenHost := phi[n.ChangeIndex]
			for _, r := range results {
				r[n.ChangeVertex] = forgottenHost
			}
			all = append(all, results...)
		}
		return all

	case nicetree.Join:
		var bagMask uint32
		for _, p := range targetPhi {
			bagMask |= uint32(1) << uint(coloring[p])
		}

		leftColors := colorsMatching(buffers[n.Child1], targetPhi)
		rightColors := colorsMatching(buffers[n.Child2], targetPhi)

		var all [][]int32
		for _, c1 := range leftColors {
			for _, c2 := range rightColors {
				if c1&c2 != bagMask || c1|c2 != targetMask {
					continue
				}
				leftResults := reconstruct(d, n.Child1, targetPhi, c1, coloring, kFull, buffers)
				rightResults := reconstruct(d, n.Child2, targetPhi, c2, coloring, kFull, buffers)
				for _, lr := range leftResults {
					for _, rr := range rightResults {
						all = append(all, mergeAssignments(lr, rr))
					}
				}
			}
		}
		return all

	default:
		return nil
	}
}

func mergeAssignments(a, b []int32) []int32 {
	out := make([]int32, len(a))
	for i := range out {
		switch {
		case a[i] != -1:
			out[i] = a[i]
		default:
			out[i] = b[i]
		}
	}
	return out
}

func equalPhiAfterRemoving(phi []int32, idx int, target []int32) bool {
	if len(phi) != len(target)+1 {
		return false
	}
	for i, v := range target {
		j := i
		if i >= idx {
			j = i + 1
		}
		if phi[j] != v {
			return false
		}
	}
	return true
}

func containsMask(colors []uint32, mask uint32) bool {
	for _, c := range colors {
		if c == mask {
			return true
		}
	}
	return false
}

func colorsMatching(buf *resultbuffer.Buffer, target []int32) []uint32 {
	buf.SetMode(resultbuffer.Read)
	var out []uint32
	for {
		phi, colors, ok, _ := buf.Read()
		if !ok {
			return out
		}
		if equalPhi(phi, target) {
			out = append(out, colors...)
		}
	}
}

func equalPhi(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
