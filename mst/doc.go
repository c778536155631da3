// Package mst computes a rectilinear minimum spanning tree over an
// rgraph.Graph via Kruskal's algorithm: sort the edges ascending, then walk
// them with a union-find forest, accepting each edge that joins two
// previously separate components.
//
// Two entry points share that traversal with different accumulators:
//
//   - Weight returns only the total MST length, the variant the iterated-
//     Steiner driver calls once per trial candidate (it never needs the
//     edge list itself, only whether the candidate improved the total).
//   - Edges returns the MST edge list, the variant the driver calls once a
//     candidate is committed (to replace the graph's working edge set).
//
// Neither variant assumes the graph's edges arrive pre-sorted: both sort a
// private copy before running union-find, so callers may pass an
// already-sorted edge list (the common case inside the driver) or an
// arbitrary one (for standalone use and tests) with identical results.
package mst
