package steinerwire

import (
	"fmt"

	"github.com/vlsiroute/steinerwire/point"
	"github.com/vlsiroute/steinerwire/route"
	"github.com/vlsiroute/steinerwire/steiner"
)

// Input is the external request: a bounding box and the terminal points a
// routed tree must span. Every pin must lie within Bounds, inclusive of
// both corners, and there must be at least two of them.
type Input struct {
	Bounds point.Bounds
	Pins   []point.Point
}

// Validate reports whether in is well formed: bounds must be a valid box,
// there must be at least two pins, and every pin must lie within bounds.
func (in Input) Validate() error {
	if !in.Bounds.Valid() {
		return ErrInvalidBounds
	}
	if len(in.Pins) < 2 {
		return ErrTooFewPins
	}
	for _, p := range in.Pins {
		if !in.Bounds.Contains(p) {
			return fmt.Errorf("%w: %v not within %v", ErrPinOutOfBounds, p, in.Bounds)
		}
	}
	return nil
}

// Route validates in, runs the iterated-1-Steiner construction over its
// pins, and decomposes the resulting tree into a routable Net.
//
// Complexity: dominated by steiner.Route's O(|Grid| * E log E) per outer
// iteration.
func Route(in Input) (route.Net, error) {
	if err := in.Validate(); err != nil {
		return route.Net{}, fmt.Errorf("Route: %w", err)
	}

	g := steiner.Route(in.Pins)
	if got := g.EdgesLen(); got != g.VerticesLen()-1 {
		return route.Net{}, fmt.Errorf("Route: final graph has %d edges for %d vertices: %w",
			got, g.VerticesLen(), ErrInvariant)
	}

	return route.Decompose(g, in.Bounds, in.Pins), nil
}
