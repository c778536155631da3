// Package steinerwire computes a rectilinear Steiner tree approximation
// for a set of terminal points and decomposes it into a routable
// two-layer wiring plan.
//
// Route is the single public entry point: it validates an Input, runs
// the iterated-1-Steiner construction (package steiner) over the pin
// set, and decomposes the resulting tree into horizontal/vertical
// segments and vias (package route). The subpackages — point, unionfind,
// rgraph, mst, hanan, octant, steiner, route — are usable on their own
// but are normally reached only through Route.
package steinerwire
