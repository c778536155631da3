package mst_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlsiroute/steinerwire/mst"
	"github.com/vlsiroute/steinerwire/point"
	"github.com/vlsiroute/steinerwire/rgraph"
)

func completeGraph(pts []point.Point) *rgraph.Graph {
	g := rgraph.New()
	g.PutVertices(append([]point.Point(nil), pts...))
	var edges []rgraph.EdgeRef
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			edges = append(edges, rgraph.EdgeRef{From: rgraph.VIdx(i), To: rgraph.VIdx(j)})
		}
	}
	g.PutEdges(edges)
	return g
}

// TestMSTCorrectness checks, on random complete graphs, that Edges returns
// |V|-1 edges forming a spanning tree whose total length equals Weight. It
// is an internal-consistency check, not a comparison against an independent
// brute-force MST; the minimality property is exercised separately by
// TestUpperBoundAgainstAnySpanningTree.
func TestMSTCorrectness(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 3 + rng.Intn(8)
		pts := make([]point.Point, n)
		for i := range pts {
			pts[i] = point.Point{X: point.Unit(rng.Intn(50)), Y: point.Unit(rng.Intn(50))}
		}
		g := completeGraph(pts)

		edges := mst.Edges(g)
		weight := mst.Weight(g)

		require.Len(t, edges, n-1)
		var sum point.Unit
		for _, e := range edges {
			sum += g.Length(e)
		}
		assert.Equal(t, weight, sum)
		assertIsTree(t, n, edges)
	}
}

func TestMSTDeterminism(t *testing.T) {
	pts := []point.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, 5}}
	g1 := completeGraph(pts)
	g2 := completeGraph(pts)
	assert.Equal(t, mst.Edges(g1), mst.Edges(g2))
	assert.Equal(t, mst.Weight(g1), mst.Weight(g2))
}

func TestUpperBoundAgainstAnySpanningTree(t *testing.T) {
	pts := []point.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	g := completeGraph(pts)
	mstWeight := mst.Weight(g)

	// Any spanning tree (e.g. a simple path through the vertices in order)
	// must weigh at least as much as the MST.
	pathWeight := point.Dist(pts[0], pts[1]) + point.Dist(pts[1], pts[2]) + point.Dist(pts[2], pts[3])
	assert.LessOrEqual(t, mstWeight, pathWeight)
}

func assertIsTree(t *testing.T, n int, edges []rgraph.EdgeRef) {
	t.Helper()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	for _, e := range edges {
		a, b := find(int(e.From)), find(int(e.To))
		require.NotEqual(t, a, b, "MST edge %+v closes a cycle", e)
		parent[a] = b
	}
	root := find(0)
	for i := 1; i < n; i++ {
		require.Equal(t, root, find(i), "vertex %d is disconnected from the spanning tree", i)
	}
}
