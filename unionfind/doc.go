// Package unionfind implements a disjoint-set forest over an owned slice of
// payload values, with union-by-size and path compression.
//
// Each call to Make(x) returns a handle (an index into the internal node
// array); Find(h) walks to the representative node and returns the payload
// value stored there, and Union(h1, h2) merges the two sets owning h1 and
// h2. Both optimizations are required by the caller: the MST package sorts
// edges in O(E log E) and relies on union-find staying close to O(E*alpha(V))
// so the sort dominates.
package unionfind
