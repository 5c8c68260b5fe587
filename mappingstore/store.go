// Package mappingstore deduplicates the vertex-subsets of G the engine
// discovers across iterations. Two iterations (possibly with different
// colorings, possibly finding F mapped onto the same G-vertices in a
// different order) that land on the same subset of G count once.
//
// Grounded on original_source/src/graph_result.c: graph_result_glmemory_add
// sorts a candidate mapping into a scratch buffer, looks it up in a hash
// table keyed by the sorted vertex list, and only keeps the candidate if
// no equal key is already present. Store does the same lookup-or-insert
// with a Go map keyed by a string built from the sorted vertices, rather
// than a hand-rolled hash table.
package mappingstore

import (
	"sort"
	"strconv"
	"strings"
)

// Result is one discovered embedding of F into G.
type Result struct {
	// Mapping holds, for each pattern vertex i, the host-graph vertex it
	// was mapped to: Mapping[i] = phi(i).
	Mapping []int

	// Colors is the bitmask of colors the coloring that found this
	// mapping assigned across V(F); a complete embedding uses every
	// color exactly once.
	Colors uint32
}

// Store holds the distinct Results accumulated so far.
type Store struct {
	seen    map[string]struct{}
	results []*Result
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{seen: make(map[string]struct{})}
}

// Add inserts r if no previously added Result used the same set of
// host-graph vertices, regardless of which pattern vertex each was
// assigned to. Returns true if r was new.
func (s *Store) Add(r *Result) bool {
	key := sortedKey(r.Mapping)
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	s.results = append(s.results, r)
	return true
}

// Results returns every distinct Result added so far, in discovery order.
func (s *Store) Results() []*Result {
	return s.results
}

// Size returns the number of distinct Results accumulated.
func (s *Store) Size() int {
	return len(s.results)
}

func sortedKey(mapping []int) string {
	sorted := make([]int, len(mapping))
	copy(sorted, mapping)
	sort.Ints(sorted)

	var b strings.Builder
	for i, v := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
