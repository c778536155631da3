package rgraph

import "github.com/vlsiroute/steinerwire/point"

// PushVertex appends p to the vertex array and returns its new index.
// Complexity: O(1) amortized.
func (g *Graph) PushVertex(p point.Point) VIdx {
	g.vertices = append(g.vertices, p)
	return VIdx(len(g.vertices) - 1)
}

// PopVertex removes the last vertex. The caller guarantees no edge still
// references it. Complexity: O(1).
func (g *Graph) PopVertex() {
	g.vertices = g.vertices[:len(g.vertices)-1]
}

// Vertex returns the point stored at i.
func (g *Graph) Vertex(i VIdx) point.Point {
	return g.vertices[i]
}

// VerticesLen reports the number of vertices.
func (g *Graph) VerticesLen() int {
	return len(g.vertices)
}

// Vertices returns the live vertex slice. Callers must not retain it across
// a PushVertex/PopVertex/EraseVerticesIf call, since those may reallocate
// or shrink the backing array.
func (g *Graph) Vertices() []point.Point {
	return g.vertices
}

// PutVertices replaces the vertex array wholesale. Complexity: O(1).
func (g *Graph) PutVertices(vs []point.Point) {
	g.vertices = vs
}

// Edge returns the edge stored at i.
func (g *Graph) Edge(i int) EdgeRef {
	return g.edges[i]
}

// SetEdge overwrites the edge stored at i.
func (g *Graph) SetEdge(i int, e EdgeRef) {
	g.edges[i] = e
}

// EdgesLen reports the number of edges.
func (g *Graph) EdgesLen() int {
	return len(g.edges)
}

// Edges returns the live edge slice. Same aliasing caveat as Vertices.
func (g *Graph) Edges() []EdgeRef {
	return g.edges
}

// Length returns the current Manhattan length of edge e, read against the
// live vertex array.
func (g *Graph) Length(e EdgeRef) point.Unit {
	return point.Dist(g.vertices[e.From], g.vertices[e.To])
}

// AppendEdges appends es to the edge array, in place, without touching the
// existing prefix. Used to land a new vertex's octant edges as a suffix
// before IntegrateNewEdges folds them into sorted order.
func (g *Graph) AppendEdges(es ...EdgeRef) {
	g.edges = append(g.edges, es...)
}

// TakeEdges detaches the edge slice from the graph and returns it, leaving
// the graph with no edges. Complexity: O(1) — a pure slice-header transfer.
func (g *Graph) TakeEdges() []EdgeRef {
	es := g.edges
	g.edges = nil
	return es
}

// PutEdges installs es as the graph's edge array. Complexity: O(1).
func (g *Graph) PutEdges(es []EdgeRef) {
	g.edges = es
}

// EraseEdgesIf removes every edge for which pred returns true, preserving
// the relative order of the survivors. Complexity: O(E).
func (g *Graph) EraseEdgesIf(pred func(EdgeRef) bool) {
	kept := g.edges[:0]
	for _, e := range g.edges {
		if !pred(e) {
			kept = append(kept, e)
		}
	}
	g.edges = kept
}

// EraseVerticesIf removes every vertex for which pred(point, old index)
// returns true, preserving the relative order of the survivors, and
// returns a slice mapping each old VIdx to its new VIdx (or -1 if that
// vertex was removed). Callers must feed the mapping to RemapEdges before
// touching the edge list again. Complexity: O(V).
func (g *Graph) EraseVerticesIf(pred func(p point.Point, idx int) bool) []int {
	mapping := make([]int, len(g.vertices))
	kept := make([]point.Point, 0, len(g.vertices))
	for i, p := range g.vertices {
		if pred(p, i) {
			mapping[i] = -1
			continue
		}
		mapping[i] = len(kept)
		kept = append(kept, p)
	}
	g.vertices = kept
	return mapping
}

// RemapEdges rewrites every edge endpoint through mapping (as produced by
// EraseVerticesIf). Endpoints that map to -1 must not occur — callers are
// expected to have reduced such vertices to degree zero (via the pruner's
// tombstone-and-erase pass) before calling EraseVerticesIf.
func (g *Graph) RemapEdges(mapping []int) {
	for i, e := range g.edges {
		g.edges[i] = EdgeRef{From: VIdx(mapping[e.From]), To: VIdx(mapping[e.To])}
	}
}
