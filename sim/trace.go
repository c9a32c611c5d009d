package sim

import (
	"fmt"
	"io"

	"github.com/cactii/ncsim/coord"
	"github.com/cactii/ncsim/gcode"
)

// Trace is the dense ordered sequence of resolved tool positions.
// Order is machining chronology and must be preserved.
type Trace []coord.Point

// Bounds returns the workspace extents of the trace.
func (t Trace) Bounds() coord.Bounds {
	var b coord.Bounds
	for _, p := range t {
		b.Extend(p)
	}
	return b
}

// cursor is the running machine position. Each axis stays unset until
// a motion command first provides it; unspecified axes on later
// commands carry the previous value.
type cursor struct {
	x, y, z gcode.Arg
}

func (c cursor) known() bool { return c.x.Valid && c.y.Valid && c.z.Valid }

func (c cursor) point() coord.Point {
	return coord.Point{X: c.x.Value, Y: c.y.Value, Z: c.z.Value}
}

func (c *cursor) apply(m gcode.Motion) {
	if m.X.Valid {
		c.x = m.X
	}
	if m.Y.Valid {
		c.y = m.Y
	}
	if m.Z.Valid {
		c.z = m.Z
	}
}

func (c *cursor) set(p coord.Point) {
	c.x = gcode.Arg{Valid: true, Value: p.X}
	c.y = gcode.Arg{Valid: true, Value: p.Y}
	c.z = gcode.Arg{Valid: true, Value: p.Z}
}

// BuildTrace consumes blocks from r and expands them into a dense
// trace. Linear moves contribute a single point once all three axes
// are known; arcs expand to chordSpacing-spaced points.
func BuildTrace(r gcode.Reader, chordSpacing float64) (Trace, error) {
	var trace Trace
	var cur cursor

	for i := 0; ; i++ {
		b, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}

		m, ok := gcode.MotionFromBlock(b)
		if !ok {
			continue
		}

		switch m.Kind {
		case gcode.KindRapid, gcode.KindLinear:
			cur.apply(m)
			if cur.known() {
				trace = append(trace, cur.point())
			}
		case gcode.KindArcCW, gcode.KindArcCCW:
			if !cur.known() {
				return nil, fmt.Errorf("block %d %q: arc before position is known", i, b)
			}
			start := cur.point()
			end := coord.Point{
				X: m.X.Or(start.X),
				Y: m.Y.Or(start.Y),
				Z: m.Z.Or(start.Z),
			}
			cx := start.X + m.I
			cy := start.Y + m.J
			trace = append(trace, arcPoints(start, end, cx, cy, m.Kind == gcode.KindArcCW, chordSpacing)...)
			cur.set(end)
		}
	}

	return trace, nil
}
