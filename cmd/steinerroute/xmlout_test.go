package main

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlsiroute/steinerwire/point"
	"github.com/vlsiroute/steinerwire/route"
)

func TestWriteXMLProducesWellFormedDocument(t *testing.T) {
	net := route.Net{
		Bounds: point.Bounds{LB: point.Point{0, 0}, RU: point.Point{10, 10}},
		Pins:   []point.Point{{0, 0}, {3, 4}},
		HorSegs: []route.Segment{
			{A: point.Point{0, 0}, B: point.Point{3, 0}},
		},
		VertSegs: []route.Segment{
			{A: point.Point{3, 0}, B: point.Point{3, 4}},
		},
		Vias: []point.Point{{3, 0}, {3, 4}},
	}

	var buf bytes.Buffer
	require.NoError(t, writeXML(&buf, net))

	var parsed xmlRoot
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &parsed))

	assert.Equal(t, int64(0), parsed.Grid.MinX)
	assert.Equal(t, int64(10), parsed.Grid.MaxY)

	var pinCount, pinM2Count, viaCount int
	for _, p := range parsed.Net.Points {
		switch {
		case p.Layer == "pins" && p.Type == "pin":
			pinCount++
		case p.Layer == "pins_m2" && p.Type == "via":
			pinM2Count++
		case p.Layer == "m2_m3" && p.Type == "via":
			viaCount++
		}
	}
	assert.Equal(t, 2, pinCount)
	assert.Equal(t, 2, pinM2Count)
	assert.Equal(t, 2, viaCount)

	var m2Count, m3Count int
	for _, s := range parsed.Net.Segments {
		switch s.Layer {
		case "m2":
			m2Count++
		case "m3":
			m3Count++
		}
	}
	assert.Equal(t, 1, m2Count)
	assert.Equal(t, 1, m3Count)
}
