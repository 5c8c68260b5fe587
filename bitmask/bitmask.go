// Package bitmask implements fixed-width 32-bit subsets of V(F), the vertex
// set of the (small, |V(F)| ≤ 20) pattern graph. A Mask is a plain uint32
// passed and compared by value — the treewidth DP alone touches up to 2^20
// of them, so bitmask stays allocation-free and keeps the same flat,
// value-typed shape the teacher uses for its own bitmask DP in
// tsp/exact.go (dp/parent tables indexed by mask, math/bits for popcount).
//
// Complexity: every operation here is O(1) or O(MaxVertices).
package bitmask

import "math/bits"

// MaxVertices is the largest |V(F)| this package (and everything built on
// it) supports. A Mask is a uint32, so 20 leaves headroom for TD-node
// adjacency masks (indexed 0..|V(F)|-1 as well) without reworking the type.
const MaxVertices = 20

// Mask is a subset of {0, 1, ..., MaxVertices-1}, one bit per element.
type Mask uint32

// Empty is the subset containing no elements.
const Empty Mask = 0

// Full returns the subset {0, ..., n-1}. Panics if n is out of [0, MaxVertices].
func Full(n int) Mask {
	if n < 0 || n > MaxVertices {
		panic("bitmask: n out of range")
	}
	if n == 0 {
		return Empty
	}
	return Mask(uint64(1)<<uint(n) - 1)
}

// Single returns the subset {v}.
func Single(v int) Mask {
	return Mask(1) << uint(v)
}

// Test reports whether v is a member of m.
func (m Mask) Test(v int) bool {
	return m&(Mask(1)<<uint(v)) != 0
}

// Set returns m with v added.
func (m Mask) Set(v int) Mask {
	return m | (Mask(1) << uint(v))
}

// Unset returns m with v removed (a no-op if v was already absent).
func (m Mask) Unset(v int) Mask {
	return m &^ (Mask(1) << uint(v))
}

// Complement returns the complement of m within the universe {0, ..., n-1}.
func (m Mask) Complement(n int) Mask {
	return Full(n) &^ m
}

// Union returns the set union of m and other.
func (m Mask) Union(other Mask) Mask {
	return m | other
}

// Intersect returns the set intersection of m and other.
func (m Mask) Intersect(other Mask) Mask {
	return m & other
}

// Popcount returns |m|, the number of set bits.
func (m Mask) Popcount() int {
	return bits.OnesCount32(uint32(m))
}

// Empty reports whether m has no members.
func (m Mask) Empty() bool {
	return m == Empty
}

// Bits returns the members of m in ascending order.
func (m Mask) Bits() []int {
	out := make([]int, 0, m.Popcount())
	for x := m; x != 0; x &= x - 1 {
		out = append(out, bits.TrailingZeros32(uint32(x)))
	}
	return out
}

// Lowest returns the smallest set member of m and true, or (0, false) if m is empty.
func (m Mask) Lowest() (int, bool) {
	if m == 0 {
		return 0, false
	}
	return bits.TrailingZeros32(uint32(m)), true
}
