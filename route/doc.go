// Package route turns the final Steiner tree the steiner package builds
// into a two-layer wiring plan: horizontal runs on M2, vertical runs on
// M3, and the via points where the two meet.
//
// Decompose produces the per-edge L-shape decomposition and then
// finalizes it: dedup vias, dedup horizontal segments, and drop any
// zero-length stub a real segment already covers.
package route
