package hanan

import (
	"sort"

	"github.com/vlsiroute/steinerwire/point"
)

// Grid returns the Hanan candidate set for pins: every (x, y) pair where x
// is one of pins' unique X coordinates and y is one of its unique Y
// coordinates, excluding any point that is itself one of the pins. The
// order is deterministic (ascending X, then ascending Y) but otherwise
// unspecified by the caller's contract.
// Complexity: O(n log n) for the coordinate sorts plus O(|Xs|*|Ys|) for the
// cross product and the pin-membership filter.
func Grid(pins []point.Point) []point.Point {
	xs := uniqueSorted(pins, func(p point.Point) point.Unit { return p.X })
	ys := uniqueSorted(pins, func(p point.Point) point.Unit { return p.Y })

	pinSet := append([]point.Point(nil), pins...)
	sort.Slice(pinSet, func(i, j int) bool { return pinSet[i].Less(pinSet[j]) })

	grid := make([]point.Point, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			p := point.Point{X: x, Y: y}
			if !isPin(pinSet, p) {
				grid = append(grid, p)
			}
		}
	}
	return grid
}

func uniqueSorted(pins []point.Point, key func(point.Point) point.Unit) []point.Unit {
	vals := make([]point.Unit, len(pins))
	for i, p := range pins {
		vals[i] = key(p)
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })

	out := vals[:0]
	for i, v := range vals {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

func isPin(sortedPins []point.Point, p point.Point) bool {
	i := sort.Search(len(sortedPins), func(i int) bool { return !sortedPins[i].Less(p) })
	return i < len(sortedPins) && sortedPins[i] == p
}
