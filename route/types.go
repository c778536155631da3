package route

import "github.com/vlsiroute/steinerwire/point"

// Segment is a straight run of wire between two points on one layer.
// A and B need not be ordered; Decompose always produces A <= B
// lexicographically within each slice it builds. A zero-length segment
// (A == B) is a "stub": a pad marking a pin or via landing that has no
// associated wire run of its own.
type Segment struct {
	A, B point.Point
}

// Len reports the Manhattan length of s; zero for a stub.
func (s Segment) Len() point.Unit {
	return point.Dist(s.A, s.B)
}

// Net is the routable output of the core: the bounding box and pins the
// caller supplied, plus the M2/M3 wiring and via set Decompose derived
// from the final Steiner tree. Decompose establishes these invariants: no
// duplicate vias, no duplicate horizontal segments, no zero-length
// horizontal segment covered by a real one, and every vertical segment's
// endpoints present in Vias.
type Net struct {
	Bounds   point.Bounds
	Pins     []point.Point
	HorSegs  []Segment
	VertSegs []Segment
	Vias     []point.Point
}
