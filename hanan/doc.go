// Package hanan builds the Hanan-grid candidate set for a pin placement:
// the cross product of the pins' unique X and Y coordinates, minus the pins
// themselves. These are the only points that can ever shorten a rectilinear
// Steiner tree, so they are the full candidate pool the iterated-1-Steiner
// driver searches.
//
// Grid sorts and dedups the X's and Y's separately, takes their cross
// product, then drops any point already present in the pin set via a
// binary search over a sorted copy of the pins.
package hanan
