package subiso

import (
	"sort"
	"strconv"
	"strings"

	"github.com/colorcode-go/subiso/graph"
	"github.com/colorcode-go/subiso/nicetree"
	"github.com/colorcode-go/subiso/resultbuffer"
)

// record is one entry of a node's in-memory DP table while it is being
// built: a candidate image phi of the node's bag, together with every
// distinct set of colors some partial embedding achieved for it.
type record struct {
	phi    []int32
	colors map[uint32]struct{}
}

// table groups records by phi during construction, mirroring the
// prefix-grouped rbtree_subiso the original keeps for the same purpose;
// here a plain Go map keyed by a string encoding of phi plays that role,
// with sort.Strings supplying deterministic iteration order afterward.
type table struct {
	entries map[string]*record
}

func newTable() *table {
	return &table{entries: make(map[string]*record)}
}

func phiKey(phi []int32) string {
	var b strings.Builder
	for i, v := range phi {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return b.String()
}

func (t *table) add(phi []int32, mask uint32) {
	key := phiKey(phi)
	e, ok := t.entries[key]
	if !ok {
		e = &record{phi: append([]int32(nil), phi...), colors: make(map[uint32]struct{})}
		t.entries[key] = e
	}
	e.colors[mask] = struct{}{}
}

func (t *table) sortedKeys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// toBuffer flushes t into a Buffer ready for its parent to Read, in
// ascending phi-key order.
func (t *table) toBuffer() *resultbuffer.Buffer {
	buf := resultbuffer.NewResultBuffer()
	for _, key := range t.sortedKeys() {
		rec := t.entries[key]
		colors := make([]uint32, 0, len(rec.colors))
		for c := range rec.colors {
			colors = append(colors, c)
		}
		sort.Slice(colors, func(i, j int) bool { return colors[i] < colors[j] })
		_ = buf.Push(rec.phi, colors)
	}
	buf.SetMode(resultbuffer.Read)
	return buf
}

// tableFromBuffer drains buf (rewinding it first) into an in-memory table.
func tableFromBuffer(buf *resultbuffer.Buffer) *table {
	buf.SetMode(resultbuffer.Read)
	t := newTable()
	for {
		phi, colors, ok, _ := buf.Read()
		if !ok {
			break
		}
		for _, c := range colors {
			t.add(phi, c)
		}
	}
	return t
}

func insertAt(s []int32, idx int, v int32) []int32 {
	out := make([]int32, 0, len(s)+1)
	out = append(out, s[:idx]...)
	out = append(out, v)
	out = append(out, s[idx:]...)
	return out
}

func removeAt(s []int32, idx int) []int32 {
	out := make([]int32, 0, len(s)-1)
	out = append(out, s[:idx]...)
	out = append(out, s[idx+1:]...)
	return out
}

// processLeaf seeds the base case: n's singleton bag vertex may map to any
// G-vertex, each recorded with that vertex's own color bit already spent.
// The one exception is the degenerate single-node decomposition of an
// empty pattern graph, whose Leaf carries an empty bag with exactly one
// possible image, the empty tuple, achieved with no colors used yet.
func processLeaf(n nicetree.Node, g *graph.Graph, coloring []int) *resultbuffer.Buffer {
	t := newTable()
	if n.Bag.Empty() {
		t.add(nil, 0)
		return t.toBuffer()
	}
	for s := 0; s < g.N(); s++ {
		bit := uint32(1) << uint(coloring[s])
		t.add([]int32{int32(s)}, bit)
	}
	return t.toBuffer()
}

// processIntroduce extends every record of child's table with every
// G-vertex s that is unused so far, respects F-adjacency against the
// bag's already-placed neighbors of the introduced vertex, and has not
// already contributed its color to the achieved mask — subiso_introduce's
// Case A/B candidate search collapsed into one direct scan, since an
// explicit common-neighbor or eccentricity-bounded-BFS search only matters
// for performance, not correctness, at pattern sizes this package targets.
func processIntroduce(n, child nicetree.Node, f, g *graph.Graph, coloring []int, childBuf *resultbuffer.Buffer) *resultbuffer.Buffer {
	childTable := tableFromBuffer(childBuf)
	out := newTable()

	neighborSet := make(map[int]bool)
	for _, nb := range f.Neighbors(n.ChangeVertex) {
		neighborSet[nb] = true
	}

	for _, key := range childTable.sortedKeys() {
		rec := childTable.entries[key]
		used := make(map[int32]bool, len(rec.phi))
		for _, p := range rec.phi {
			used[p] = true
		}

		for s := 0; s < g.N(); s++ {
			sv := int32(s)
			if used[sv] {
				continue
			}
			if !adjacencyOK(rec.phi, child.BagSorted, neighborSet, g, s) {
				continue
			}
			color := coloring[s]
			bit := uint32(1) << uint(color)
			phiNew := insertAt(rec.phi, n.ChangeIndex, sv)
			for mask := range rec.colors {
				if mask&bit != 0 {
					continue
				}
				out.add(phiNew, mask|bit)
			}
		}
	}
	return out.toBuffer()
}

func adjacencyOK(childPhi []int32, childBag []int, neighborSet map[int]bool, g *graph.Graph, s int) bool {
	for i, fv := range childBag {
		if neighborSet[fv] && !g.IsAdjacent(int(childPhi[i]), s) {
			return false
		}
	}
	return true
}

// processForget projects the forgotten position out of every child
// record, merging records that collapse onto the same remaining phi by
// unioning the color sets they achieved — subiso_forget's regrouping by
// the shared prefix.
func processForget(n nicetree.Node, childBuf *resultbuffer.Buffer) *resultbuffer.Buffer {
	childTable := tableFromBuffer(childBuf)
	out := newTable()
	for _, key := range childTable.sortedKeys() {
		rec := childTable.entries[key]
		phiNew := removeAt(rec.phi, n.ChangeIndex)
		for mask := range rec.colors {
			out.add(phiNew, mask)
		}
	}
	return out.toBuffer()
}

// processJoin merges matching phi entries from both children, keeping a
// combined mask only when the two branches agree exactly on the colors
// already spent by the shared bag (COL_OK in the original: (col_1 & col_2)
// == map_col) and otherwise contribute disjoint colors.
func processJoin(n nicetree.Node, coloring []int, leftBuf, rightBuf *resultbuffer.Buffer) *resultbuffer.Buffer {
	left := tableFromBuffer(leftBuf)
	right := tableFromBuffer(rightBuf)
	out := newTable()

	for _, key := range left.sortedKeys() {
		lrec := left.entries[key]
		rrec, ok := right.entries[key]
		if !ok {
			continue
		}
		var bagMask uint32
		for _, p := range lrec.phi {
			bagMask |= uint32(1) << uint(coloring[p])
		}
		for c1 := range lrec.colors {
			for c2 := range rrec.colors {
				if c1&c2 != bagMask {
					continue
				}
				out.add(lrec.phi, c1|c2)
			}
		}
	}
	return out.toBuffer()
}
