package steiner

import (
	"github.com/vlsiroute/steinerwire/hanan"
	"github.com/vlsiroute/steinerwire/mst"
	"github.com/vlsiroute/steinerwire/octant"
	"github.com/vlsiroute/steinerwire/point"
	"github.com/vlsiroute/steinerwire/rgraph"
)

// Route builds a rectilinear Steiner tree spanning pins and returns the
// final graph: pins at indices [0, len(pins)), any inserted Steiner points
// after them, and an edge list that is the MST of that final vertex set.
//
// Outer loop: seed the graph with pins, reduce the complete graph among
// them to its MST, then repeatedly try every remaining Hanan candidate and
// keep the one that most reduces MST weight (strict improvement only — a
// tie is discarded, since accepting it would add a useless vertex and risk
// looping forever on symmetric inputs), commit it, prune degree-<=2 Steiner
// points, and repeat until no candidate helps or the candidate pool is
// exhausted. g.Edges() is a spanning tree of the current vertex set at
// every iteration boundary, including on return.
// Complexity: O(|Grid| * E log E) per outer iteration, where E is the
// (octant-bounded, near-linear) edge count per trial, and at most |Grid|
// outer iterations.
func Route(pins []point.Point) *rgraph.Graph {
	g := rgraph.New()
	g.PutVertices(append([]point.Point(nil), pins...))
	g.PutEdges(completeEdges(len(pins)))
	g.SortByLength()
	g.PutEdges(mst.Edges(g))
	g.SortByLength()

	minLen := totalLength(g)
	grid := hanan.Grid(pins)

	for changed := true; changed && len(grid) > 0; {
		changed = false
		oldN := rgraph.VIdx(g.VerticesLen())
		committed := g.TakeEdges()
		bestIdx := -1

		for i, cand := range grid {
			g.PushVertex(cand)
			g.PutEdges(cloneEdges(committed))
			newEdges := octant.Connect(g, oldN)
			g.AppendEdges(newEdges...)
			g.IntegrateNewEdges(len(committed))

			if newLen := mst.Weight(g); newLen < minLen {
				changed = true
				bestIdx = i
				minLen = newLen
			}

			g.PopVertex()
		}

		if changed {
			g.PushVertex(grid[bestIdx])
			g.PutEdges(cloneEdges(committed))
			newEdges := octant.Connect(g, oldN)
			g.AppendEdges(newEdges...)
			g.IntegrateNewEdges(len(committed))

			g.PutEdges(mst.Edges(g))
			Prune(g, len(pins))
			g.SortByLength()
			// Splicing during Prune can shorten edges (triangle inequality),
			// so re-derive MinLen from the actual post-prune tree rather than
			// carrying forward the pre-prune candidate weight.
			minLen = totalLength(g)

			grid[bestIdx] = grid[len(grid)-1]
			grid = grid[:len(grid)-1]
		} else {
			g.PutEdges(committed)
		}
	}

	return g
}

// totalLength sums the current length of every edge in g, assuming g.Edges()
// is already a valid spanning tree (used to re-tighten MinLen after Prune).
func totalLength(g *rgraph.Graph) point.Unit {
	var total point.Unit
	for _, e := range g.Edges() {
		total += g.Length(e)
	}
	return total
}

// completeEdges returns the canonical edge list of the complete graph on n
// vertices: every (i, j) with i < j.
func completeEdges(n int) []rgraph.EdgeRef {
	edges := make([]rgraph.EdgeRef, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, rgraph.EdgeRef{From: rgraph.VIdx(i), To: rgraph.VIdx(j)})
		}
	}
	return edges
}

// cloneEdges returns an independent copy of es, so a trial's mutations
// (via AppendEdges/IntegrateNewEdges) never alias the committed snapshot
// that a rejected trial must roll back to. Go slices sharing a backing
// array make an in-place swap-based rollback unsafe here, so a bounded
// O(E) copy per candidate buys back that safety without changing the
// complexity class (still dominated by the O(E log E) MST re-sort).
func cloneEdges(es []rgraph.EdgeRef) []rgraph.EdgeRef {
	out := make([]rgraph.EdgeRef, len(es), len(es)+8)
	copy(out, es)
	return out
}
