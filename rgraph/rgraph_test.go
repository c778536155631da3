package rgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlsiroute/steinerwire/point"
	"github.com/vlsiroute/steinerwire/rgraph"
)

func TestPushPopVertex(t *testing.T) {
	g := rgraph.New()
	i0 := g.PushVertex(point.Point{0, 0})
	i1 := g.PushVertex(point.Point{1, 1})
	assert.Equal(t, rgraph.VIdx(0), i0)
	assert.Equal(t, rgraph.VIdx(1), i1)
	assert.Equal(t, 2, g.VerticesLen())

	g.PopVertex()
	assert.Equal(t, 1, g.VerticesLen())
	assert.Equal(t, point.Point{0, 0}, g.Vertex(0))
}

func TestTakePutEdgesRoundTrip(t *testing.T) {
	g := rgraph.New()
	g.PushVertex(point.Point{0, 0})
	g.PushVertex(point.Point{1, 0})
	g.PutEdges([]rgraph.EdgeRef{{From: 0, To: 1}})

	saved := g.TakeEdges()
	assert.Equal(t, 0, g.EdgesLen())

	g.PutEdges(saved)
	require.Equal(t, 1, g.EdgesLen())
	assert.Equal(t, rgraph.EdgeRef{From: 0, To: 1}, g.Edge(0))
}

func TestCanon(t *testing.T) {
	assert.Equal(t, rgraph.EdgeRef{From: 1, To: 3}, rgraph.Canon(rgraph.EdgeRef{From: 3, To: 1}))
	assert.Equal(t, rgraph.EdgeRef{From: 1, To: 3}, rgraph.Canon(rgraph.EdgeRef{From: 1, To: 3}))
	assert.Equal(t, rgraph.Tombstone, rgraph.Canon(rgraph.EdgeRef{From: 5, To: 5}))
}

func TestIntegrateNewEdgesKeepsSortedOrder(t *testing.T) {
	g := rgraph.New()
	g.PushVertex(point.Point{0, 0})  // 0
	g.PushVertex(point.Point{10, 0}) // 1
	g.PushVertex(point.Point{3, 0})  // 2, new vertex, close to 0 and 1

	g.PutEdges([]rgraph.EdgeRef{{From: 0, To: 1}}) // length 10, already "sorted"
	g.AppendEdges(rgraph.EdgeRef{From: 0, To: 2}, rgraph.EdgeRef{From: 1, To: 2}) // lengths 3, 7

	g.IntegrateNewEdges(1)

	edges := g.Edges()
	require.Len(t, edges, 3)
	for i := 1; i < len(edges); i++ {
		assert.LessOrEqual(t, g.Length(edges[i-1]), g.Length(edges[i]))
	}
	assert.Equal(t, rgraph.EdgeRef{From: 0, To: 2}, edges[0])
}

func TestEraseVerticesIfAndRemapEdges(t *testing.T) {
	g := rgraph.New()
	g.PushVertex(point.Point{0, 0})  // 0 kept
	g.PushVertex(point.Point{1, 1})  // 1 removed
	g.PushVertex(point.Point{2, 2})  // 2 kept
	g.PushVertex(point.Point{3, 3})  // 3 removed
	g.PutEdges([]rgraph.EdgeRef{{From: 0, To: 2}})

	mapping := g.EraseVerticesIf(func(_ point.Point, idx int) bool {
		return idx == 1 || idx == 3
	})
	require.Equal(t, []int{0, -1, 1, -1}, mapping)
	g.RemapEdges(mapping)

	assert.Equal(t, 2, g.VerticesLen())
	assert.Equal(t, point.Point{0, 0}, g.Vertex(0))
	assert.Equal(t, point.Point{2, 2}, g.Vertex(1))
	assert.Equal(t, rgraph.EdgeRef{From: 0, To: 1}, g.Edge(0))
}

func TestEraseEdgesIfRemovesTombstones(t *testing.T) {
	g := rgraph.New()
	g.PutEdges([]rgraph.EdgeRef{
		{From: 0, To: 1},
		rgraph.Tombstone,
		{From: 2, To: 3},
	})
	g.EraseEdgesIf(func(e rgraph.EdgeRef) bool { return e == rgraph.Tombstone })
	assert.Equal(t, []rgraph.EdgeRef{{From: 0, To: 1}, {From: 2, To: 3}}, g.Edges())
}
