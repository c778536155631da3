package main

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/vlsiroute/steinerwire/route"
)

// xmlGrid mirrors the <grid> element's attributes.
type xmlGrid struct {
	MinX int64 `xml:"min_x,attr"`
	MaxX int64 `xml:"max_x,attr"`
	MinY int64 `xml:"min_y,attr"`
	MaxY int64 `xml:"max_y,attr"`
}

// xmlPoint mirrors a <point> element: a pin, a pin-to-M2 via pad, or an
// M2-to-M3 via.
type xmlPoint struct {
	X     int64  `xml:"x,attr"`
	Y     int64  `xml:"y,attr"`
	Layer string `xml:"layer,attr"`
	Type  string `xml:"type,attr"`
}

// xmlSegment mirrors a <segment> element: a vertical (M3) or horizontal
// (M2) wire run.
type xmlSegment struct {
	X1    int64  `xml:"x1,attr"`
	Y1    int64  `xml:"y1,attr"`
	X2    int64  `xml:"x2,attr"`
	Y2    int64  `xml:"y2,attr"`
	Layer string `xml:"layer,attr"`
}

type xmlNet struct {
	Points   []xmlPoint   `xml:"point"`
	Segments []xmlSegment `xml:"segment"`
}

type xmlRoot struct {
	XMLName xml.Name `xml:"root"`
	Grid    xmlGrid  `xml:"grid"`
	Net     xmlNet   `xml:"net"`
}

// writeXML renders net as a pin point and a pins_m2 via point for every
// pin, an m2_m3 via point for every recorded via, every vertical segment
// on layer m3, then every horizontal segment on layer m2.
func writeXML(w io.Writer, net route.Net) error {
	root := xmlRoot{
		Grid: xmlGrid{
			MinX: net.Bounds.LB.X,
			MaxX: net.Bounds.RU.X,
			MinY: net.Bounds.LB.Y,
			MaxY: net.Bounds.RU.Y,
		},
	}

	for _, p := range net.Pins {
		root.Net.Points = append(root.Net.Points, xmlPoint{X: p.X, Y: p.Y, Layer: "pins", Type: "pin"})
		root.Net.Points = append(root.Net.Points, xmlPoint{X: p.X, Y: p.Y, Layer: "pins_m2", Type: "via"})
	}
	for _, v := range net.Vias {
		root.Net.Points = append(root.Net.Points, xmlPoint{X: v.X, Y: v.Y, Layer: "m2_m3", Type: "via"})
	}
	for _, s := range net.VertSegs {
		root.Net.Segments = append(root.Net.Segments, xmlSegment{X1: s.A.X, Y1: s.A.Y, X2: s.B.X, Y2: s.B.Y, Layer: "m3"})
	}
	for _, s := range net.HorSegs {
		root.Net.Segments = append(root.Net.Segments, xmlSegment{X1: s.A.X, Y1: s.A.Y, X2: s.B.X, Y2: s.B.Y, Layer: "m2"})
	}

	if _, err := fmt.Fprint(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("writeXML: %w", err)
	}
	return nil
}
