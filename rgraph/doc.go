// Package rgraph implements the index-based graph the routing core mutates
// in place: a vertex array of point.Point plus an edge array of position
// pairs into that array.
//
// Vertex indices (VIdx) are stable only until a vertex-erase operation;
// EraseVerticesIf returns the old-index -> new-index mapping a caller must
// use to renumber every edge endpoint afterward (RemapEdges does this).
// Between those operations the graph does not enforce simplicity (no
// self-loops, no duplicate undirected edges) on its own — callers that need
// that invariant re-establish it explicitly (see the steiner package's
// pruner).
//
// TakeEdges/PutEdges exist so a caller can snapshot the edge list in O(1)
// (pure slice-header ownership transfer, no copy), try a candidate mutation,
// and hand a fresh slice back in to roll the trial off. That pattern is what
// makes the iterated-Steiner driver's per-candidate evaluation loop cheap.
package rgraph
