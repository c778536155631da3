package steiner

import (
	"sort"

	"github.com/vlsiroute/steinerwire/point"
	"github.com/vlsiroute/steinerwire/rgraph"
)

// Prune removes, from the Steiner vertices added after the first netPts
// (pin) indices, every one whose final degree in g's edge list is 1 (a
// useless leaf) or 2 (a collinear pass-through). Degree-1 vertices are
// dropped along with their sole edge; degree-2 vertices are spliced out,
// replacing their two incident edges with one direct edge between their
// former neighbors. Pins (indices [0, netPts)) are never touched.
//
// A single scan-splice pass only propagates a splice one hop: when two
// newly-added vertices are adjacent to each other
// in the final tree and both end up degree <= 2, the first one's own outer
// edge gets rewritten to point at the second, but nothing revisits that
// edge once the second vertex is also marked for removal, leaving a stale
// reference to a vertex about to disappear. spliceOnce is therefore run
// to a fixed point — each pass re-derives degrees from the current edge
// list, so a vertex that drops to degree <= 2 only as a side effect of an
// earlier pass's splice gets its own chance to be spliced or dropped — and
// only then is vertex removal and index renumbering applied once.
// Complexity: O((E + V) * numAdded) worst case, O(E + V) for the common
// case of no adjacent prunable chain.
func Prune(g *rgraph.Graph, netPts int) {
	numAdded := g.VerticesLen() - netPts
	if numAdded <= 0 {
		return
	}

	removed := make([]bool, numAdded)
	for spliceOnce(g, netPts, numAdded, removed) {
	}

	mapping := g.EraseVerticesIf(func(_ point.Point, idx int) bool {
		if idx < netPts {
			return false
		}
		return removed[idx-netPts]
	})
	g.RemapEdges(mapping)
}

// spliceOnce runs one scan-splice pass over g's current edges, recomputing
// each added vertex's degree from scratch, tombstoning degree-1 edges and
// splicing degree-2 vertices, then compacting the edge list. removed[k] is
// overwritten to reflect this pass's degree for added vertex netPts+k; the
// caller loops while this returns true (some vertex still needed spliced).
func spliceOnce(g *rgraph.Graph, netPts, numAdded int, removed []bool) bool {
	degrees := make([]int, numAdded)
	// attached[k] holds up to two indices into g.Edges() incident to added
	// vertex netPts+k; both are meaningful only while degrees[k] <= 2.
	attached := make([][2]int, numAdded)

	edges := g.Edges()
	for idx, e := range edges {
		for _, v := range [2]rgraph.VIdx{e.From, e.To} {
			if int(v) < netPts {
				continue
			}
			k := int(v) - netPts
			degrees[k]++
			switch degrees[k] {
			case 1:
				attached[k][0], attached[k][1] = idx, -1
			case 2:
				attached[k][1] = idx
			default:
				attached[k][0], attached[k][1] = -1, -1
			}
		}
	}

	changed := false
	for k := 0; k < numAdded; k++ {
		v := rgraph.VIdx(netPts + k)
		removed[k] = degrees[k] <= 2
		switch degrees[k] {
		case 1:
			g.SetEdge(attached[k][0], rgraph.Tombstone)
			changed = true
		case 2:
			e1i, e2i := attached[k][0], attached[k][1]
			other := otherEndpoint(g.Edge(e2i), v)
			spliced := rgraph.Canon(replaceEndpoint(g.Edge(e1i), v, other))
			g.SetEdge(e1i, spliced)
			g.SetEdge(e2i, spliced)
			changed = true
		}
		// degree >= 3, or 0 for a vertex already fully spliced away in an
		// earlier pass: nothing left to do for it this pass.
	}

	g.EraseEdgesIf(func(e rgraph.EdgeRef) bool { return e == rgraph.Tombstone })
	dedupeEdges(g)

	return changed
}

// otherEndpoint returns whichever endpoint of e is not v.
func otherEndpoint(e rgraph.EdgeRef, v rgraph.VIdx) rgraph.VIdx {
	if e.From == v {
		return e.To
	}
	return e.From
}

// replaceEndpoint returns e with oldV replaced by newV at whichever
// endpoint held it.
func replaceEndpoint(e rgraph.EdgeRef, oldV, newV rgraph.VIdx) rgraph.EdgeRef {
	if e.From == oldV {
		e.From = newV
	} else if e.To == oldV {
		e.To = newV
	}
	return e
}

// dedupeEdges canonicalizes, sorts by (From, To), and removes adjacent
// duplicate edges. Duplicates can arise from the slot-2 overwrite in the
// degree-2 splice, or from two degree-2 splices meeting at the same pair.
func dedupeEdges(g *rgraph.Graph) {
	edges := append([]rgraph.EdgeRef(nil), g.Edges()...)
	for i, e := range edges {
		edges[i] = rgraph.Canon(e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	out := edges[:0]
	for i, e := range edges {
		if e == rgraph.Tombstone {
			continue
		}
		if i > 0 && e == out[len(out)-1] {
			continue
		}
		out = append(out, e)
	}
	g.PutEdges(out)
}
