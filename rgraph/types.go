package rgraph

import "github.com/vlsiroute/steinerwire/point"

// VIdx is a zero-based index into a Graph's vertex array.
type VIdx int

// EdgeRef is an undirected edge between two vertex indices. By convention
// every EdgeRef produced or mutated by this package satisfies From < To;
// Canon restores that invariant after a mutation that might violate it.
type EdgeRef struct {
	From, To VIdx
}

// Tombstone marks an edge pending removal during the degree-<=2 pruning
// pass. Erase it with EraseEdgesIf before relying on the edge list again.
var Tombstone = EdgeRef{From: 0, To: 0}

// Canon reorders e so that From < To. Any edge with From == To (a
// self-loop, which can arise from a degree-2 splice whose two neighbors
// coincide) is mapped to Tombstone so it is swept by the same dedup pass.
func Canon(e EdgeRef) EdgeRef {
	if e.From == e.To {
		return Tombstone
	}
	if e.From > e.To {
		e.From, e.To = e.To, e.From
	}
	return e
}

// Graph is the vertex/edge store the routing core mutates directly. The
// zero value is an empty graph ready to use.
type Graph struct {
	vertices []point.Point
	edges    []EdgeRef
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{}
}
