// Package point defines the integer grid geometry shared by every layer of
// the routing core: a coordinate wide enough to hold a Steiner-tree weight,
// a point, Manhattan distance, and an axis-aligned bounding box.
//
// Everything here is a value type with no hidden state; there is nothing to
// lock and nothing to validate beyond what Bounds.Contains already checks.
package point
