package harness

import (
	"fmt"
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/colorcode-go/subiso/mappingstore"
)

// Report is the outcome of one engine run, in a shape suitable for either
// plain-text or JSON rendering.
type Report struct {
	HostVertices    int     `json:"host_vertices"`
	PatternVertices int     `json:"pattern_vertices"`
	Treewidth       int     `json:"treewidth"`
	Seed            int64   `json:"seed"`
	Iterations      int     `json:"iterations"`
	Elapsed         string  `json:"elapsed"`
	MatchCount      int     `json:"match_count"`
	Matches         [][]int `json:"matches"`
}

// BuildReport assembles a Report from a finished Store.
func BuildReport(hostN, patternN, treewidth int, seed int64, iterations int, elapsed time.Duration, store *mappingstore.Store) Report {
	matches := make([][]int, 0, store.Size())
	for _, r := range store.Results() {
		matches = append(matches, r.Mapping)
	}
	return Report{
		HostVertices:    hostN,
		PatternVertices: patternN,
		Treewidth:       treewidth,
		Seed:            seed,
		Iterations:      iterations,
		Elapsed:         elapsed.String(),
		MatchCount:      len(matches),
		Matches:         matches,
	}
}

// WriteJSON marshals r to w using json-iterator, configured in its
// std-compatible mode (matching encoding/json's field order and escaping,
// but without its reflection overhead) — the same configuration instance
// the pack's other json-iterator consumer reaches for rather than the
// package-level ConfigDefault.
func WriteJSON(w io.Writer, r Report) error {
	api := jsoniter.ConfigCompatibleWithStandardLibrary
	enc := api.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteText renders r as human-readable lines.
func WriteText(w io.Writer, r Report) {
	fmt.Fprintf(w, "host: %d vertices, pattern: %d vertices, treewidth: %d\n", r.HostVertices, r.PatternVertices, r.Treewidth)
	fmt.Fprintf(w, "seed: %d, iterations: %d, elapsed: %s\n", r.Seed, r.Iterations, r.Elapsed)
	fmt.Fprintf(w, "matches found: %d\n", r.MatchCount)
	for i, m := range r.Matches {
		fmt.Fprintf(w, "  [%d] %v\n", i, m)
	}
}
