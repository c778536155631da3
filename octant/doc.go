// Package octant sparsifies the candidate-neighbor set for a newly
// appended graph vertex: instead of connecting it to every existing
// vertex (which would make each Steiner trial O(n) edges and the whole
// driver roughly O(n^2) MST computations), it keeps at most one edge per
// angular octant around the new point — the nearest vertex in each of the
// eight directions. That bounds a trial's edge fan-in to 8 regardless of
// how many vertices the graph already has.
package octant
