package octant

import (
	"github.com/vlsiroute/steinerwire/point"
	"github.com/vlsiroute/steinerwire/rgraph"
)

// numOctants is the number of angular buckets a new point's neighbors are
// sparsified into.
const numOctants = 8

// classify returns the octant (0..7) that the existing vertex lies in,
// relative to the new point, for a displacement (dx, dy) = new - existing.
// Bit layout:
//
//	bit1 = dx < 0
//	bit0 = dy < 0
//	base = bit1<<1 | bit0                 (quadrant, 0..3)
//	top  = dx < dy   if base in {0, 2}
//	       dx >= dy  otherwise
//	octant = top<<2 | base
func classify(dx, dy point.Unit) int {
	bit1 := 0
	if dx < 0 {
		bit1 = 1
	}
	bit0 := 0
	if dy < 0 {
		bit0 = 1
	}
	base := (bit1 << 1) | bit0

	var top bool
	if base == 0 || base == 2 {
		top = dx < dy
	} else {
		top = dx >= dy
	}
	topBit := 0
	if top {
		topBit = 1
	}
	return (topBit << 2) | base
}

// Connect computes, for the vertex newly pushed at index n, up to 8 edges
// to existing vertices [0, n): one per non-empty octant, to the single
// closest vertex in it (ties broken by first index seen, i.e. strict <).
// The vertex at n itself is never considered. Every returned edge has
// From < n == To, already in canonical order.
// Complexity: O(n).
func Connect(g *rgraph.Graph, n rgraph.VIdx) []rgraph.EdgeRef {
	v := g.Vertex(n)

	var bestIdx [numOctants]rgraph.VIdx
	var bestDist [numOctants]point.Unit
	var has [numOctants]bool

	for i := rgraph.VIdx(0); i < n; i++ {
		other := g.Vertex(i)
		dx := v.X - other.X
		dy := v.Y - other.Y
		oc := classify(dx, dy)

		d := point.Dist(v, other)
		if !has[oc] || d < bestDist[oc] {
			bestIdx[oc] = i
			bestDist[oc] = d
			has[oc] = true
		}
	}

	edges := make([]rgraph.EdgeRef, 0, numOctants)
	for oc := 0; oc < numOctants; oc++ {
		if has[oc] {
			edges = append(edges, rgraph.EdgeRef{From: bestIdx[oc], To: n})
		}
	}
	return edges
}
