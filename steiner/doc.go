// Package steiner implements the Iterated 1-Steiner construction: the
// iterative heuristic that turns a pin set's rectilinear MST into a
// shorter rectilinear Steiner tree by repeatedly inserting whichever Hanan
// candidate point reduces the tree's weight the most.
//
// Route is the outer push/evaluate/rollback driver; Prune is the
// degree-<=2 cleanup pass it runs after every commit to remove Steiner
// vertices a later insertion made redundant.
package steiner
