package rgraph

import "sort"

// IntegrateNewEdges folds a newly appended, unsorted suffix of the edge
// array into the already-sorted prefix, so that afterward g.Edges() is
// non-decreasing by current Length.
//
// prefixLen is the length of the prefix that was sorted before the suffix
// was appended (via AppendEdges). Steps:
//  1. the suffix [prefixLen:] is sorted by length;
//  2. the two sorted runs [0:prefixLen) and [prefixLen:) are merged.
//
// Length ties are broken the same way Kruskal's algorithm breaks them: first-seen
// (stable) order wins, so sorting the suffix uses sort.SliceStable and the
// merge prefers the prefix run on equal lengths.
// Complexity: O(k log k + n) where k is the suffix length and n the total.
func (g *Graph) IntegrateNewEdges(prefixLen int) {
	suffix := g.edges[prefixLen:]
	sort.SliceStable(suffix, func(i, j int) bool {
		return g.Length(suffix[i]) < g.Length(suffix[j])
	})

	merged := make([]EdgeRef, 0, len(g.edges))
	i, j := 0, prefixLen
	for i < prefixLen && j < len(g.edges) {
		if g.Length(g.edges[j]) < g.Length(g.edges[i]) {
			merged = append(merged, g.edges[j])
			j++
		} else {
			merged = append(merged, g.edges[i])
			i++
		}
	}
	merged = append(merged, g.edges[i:prefixLen]...)
	merged = append(merged, g.edges[j:]...)
	g.edges = merged
}

// SortByLength re-sorts the entire edge array ascending by current Length,
// stably so ties keep their prior relative order. Used after a pruning
// pass re-splices edges, since splicing can change their lengths.
func (g *Graph) SortByLength() {
	sort.SliceStable(g.edges, func(i, j int) bool {
		return g.Length(g.edges[i]) < g.Length(g.edges[j])
	})
}
