package route

import (
	"sort"

	"github.com/vlsiroute/steinerwire/point"
	"github.com/vlsiroute/steinerwire/rgraph"
)

// Decompose turns g (a tree spanning pins plus any retained Steiner
// points) into a routable Net. Each edge contributes an L-shaped run: a
// horizontal leg along its From endpoint's row out to the To endpoint's
// column, then a vertical leg up or down that column.
// Pure-horizontal edges produce no vertical leg or via; pure-vertical
// edges produce no real horizontal segment, only a zero-length stub pad
// at each endpoint (so a downstream renderer still has an M2 landing
// point for the via).
//
// Complexity: O(E log E) for the two finalization sorts, plus O(S*H) for
// the stub-coverage check (S stubs, H real horizontal segments).
func Decompose(g *rgraph.Graph, bounds point.Bounds, pins []point.Point) Net {
	var horSegs, vertSegs []Segment
	var vias []point.Point

	for _, e := range g.Edges() {
		a, b := g.Vertex(e.From), g.Vertex(e.To)

		if a.X != b.X {
			lo, hi := a, b
			if hi.X < lo.X {
				lo, hi = hi, lo
			}
			horSegs = append(horSegs, Segment{A: point.Point{X: lo.X, Y: a.Y}, B: point.Point{X: hi.X, Y: a.Y}})
		} else {
			horSegs = append(horSegs, Segment{A: a, B: a})
			horSegs = append(horSegs, Segment{A: b, B: b})
		}

		if a.Y != b.Y {
			corner := point.Point{X: b.X, Y: a.Y}
			lo, hi := corner, b
			if hi.Y < lo.Y {
				lo, hi = hi, lo
			}
			vertSegs = append(vertSegs, Segment{A: lo, B: hi})
			vias = append(vias, corner, b)
		}
	}

	return Net{
		Bounds:   bounds,
		Pins:     append([]point.Point(nil), pins...),
		HorSegs:  finalizeHorSegs(horSegs),
		VertSegs: vertSegs,
		Vias:     finalizeVias(vias),
	}
}

// pointLess is the lexicographic order point.Point.Less already defines,
// named here for readability at call sites that sort by it.
func pointLess(a, b point.Point) bool {
	return a.Less(b)
}

func segLess(a, b Segment) bool {
	if a.A != b.A {
		return pointLess(a.A, b.A)
	}
	return pointLess(a.B, b.B)
}

// finalizeVias sorts and deduplicates the raw via list a decomposition
// pass collected.
func finalizeVias(vias []point.Point) []point.Point {
	sorted := append([]point.Point(nil), vias...)
	sort.Slice(sorted, func(i, j int) bool { return pointLess(sorted[i], sorted[j]) })

	out := sorted[:0]
	for i, p := range sorted {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// finalizeHorSegs sorts and deduplicates the raw horizontal segment list
// (a mix of real segments and zero-length stubs), then drops any stub
// whose point is already covered by a real segment on the same row.
func finalizeHorSegs(segs []Segment) []Segment {
	sorted := append([]Segment(nil), segs...)
	sort.Slice(sorted, func(i, j int) bool { return segLess(sorted[i], sorted[j]) })

	deduped := sorted[:0]
	for i, s := range sorted {
		if i > 0 && s == deduped[len(deduped)-1] {
			continue
		}
		deduped = append(deduped, s)
	}

	var kept []Segment
	for _, s := range deduped {
		if s.Len() > 0 {
			kept = append(kept, s)
		}
	}

	out := make([]Segment, 0, len(deduped))
	for _, s := range deduped {
		if s.Len() == 0 && stubCovered(s, kept) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// stubCovered reports whether zero-length stub s (A == B) lies within a
// real horizontal segment in kept that runs along s's row.
func stubCovered(s Segment, kept []Segment) bool {
	for _, k := range kept {
		if k.A.Y != s.A.Y {
			continue
		}
		if s.A.X >= k.A.X && s.A.X <= k.B.X {
			return true
		}
	}
	return false
}
