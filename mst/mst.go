package mst

import (
	"sort"

	"github.com/vlsiroute/steinerwire/point"
	"github.com/vlsiroute/steinerwire/rgraph"
	"github.com/vlsiroute/steinerwire/unionfind"
)

// sortedEdges returns a private, ascending-by-length copy of g's edges.
// A stable sort keeps equal-length edges in their original (first-seen)
// relative order, which is what makes both Weight and Edges deterministic
// given a deterministic input edge order.
func sortedEdges(g *rgraph.Graph) []rgraph.EdgeRef {
	edges := append([]rgraph.EdgeRef(nil), g.Edges()...)
	sort.SliceStable(edges, func(i, j int) bool {
		return g.Length(edges[i]) < g.Length(edges[j])
	})
	return edges
}

// run walks edges in ascending length order, unioning endpoints with a
// fresh disjoint-set forest over g's vertex indices and invoking accept for
// every edge that connects two previously-separate components. It stops
// once |V|-1 edges have been accepted (or the edges run out, for a
// disconnected graph — which cannot happen here, since the driver always
// starts from a complete graph on the pins, but the loop does not assume
// it).
func run(g *rgraph.Graph, edges []rgraph.EdgeRef, accept func(rgraph.EdgeRef)) {
	n := g.VerticesLen()
	if n == 0 {
		return
	}

	var uf unionfind.UnionFind[int]
	handles := make([]unionfind.Handle, n)
	for i := 0; i < n; i++ {
		handles[i] = uf.Make(i)
	}

	added := 0
	maxEdges := n - 1
	for _, e := range edges {
		if added == maxEdges {
			break
		}
		if uf.Connected(handles[e.From], handles[e.To]) {
			continue
		}
		uf.Union(handles[e.From], handles[e.To])
		accept(e)
		added++
	}
}

// Weight returns the total length of a minimum spanning tree of g.
// Complexity: O(E log E) for the sort, plus O(E*alpha(V)) for union-find.
func Weight(g *rgraph.Graph) point.Unit {
	edges := sortedEdges(g)
	var total point.Unit
	run(g, edges, func(e rgraph.EdgeRef) {
		total += g.Length(e)
	})
	return total
}

// Edges returns the |V|-1 edges of a minimum spanning tree of g, in the
// order Kruskal's algorithm accepted them (ascending by length).
// Complexity: O(E log E).
func Edges(g *rgraph.Graph) []rgraph.EdgeRef {
	edges := sortedEdges(g)
	out := make([]rgraph.EdgeRef, 0, g.VerticesLen()-1)
	run(g, edges, func(e rgraph.EdgeRef) {
		out = append(out, e)
	})
	return out
}
