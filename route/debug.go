package route

import (
	"fmt"
	"strings"
)

// DebugString renders n as a plain-text, line-per-element dump: one line
// per pin, via, horizontal segment, and vertical segment. It supplements
// the XML rendering cmd/steinerroute otherwise produces and is meant for
// interactive debugging, not machine consumption — field order and
// spacing are not a stable format.
func (n Net) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "bounds (%d,%d)-(%d,%d)\n", n.Bounds.LB.X, n.Bounds.LB.Y, n.Bounds.RU.X, n.Bounds.RU.Y)
	for _, p := range n.Pins {
		fmt.Fprintf(&b, "pin (%d,%d)\n", p.X, p.Y)
	}
	for _, v := range n.Vias {
		fmt.Fprintf(&b, "via (%d,%d)\n", v.X, v.Y)
	}
	for _, s := range n.HorSegs {
		fmt.Fprintf(&b, "hseg (%d,%d)-(%d,%d)\n", s.A.X, s.A.Y, s.B.X, s.B.Y)
	}
	for _, s := range n.VertSegs {
		fmt.Fprintf(&b, "vseg (%d,%d)-(%d,%d)\n", s.A.X, s.A.Y, s.B.X, s.B.Y)
	}
	return b.String()
}
