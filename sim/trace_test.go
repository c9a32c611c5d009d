package sim

import (
	"testing"

	"github.com/cactii/ncsim/coord"
	"github.com/cactii/ncsim/gcode"
	"github.com/stretchr/testify/assert"
)

func buildTrace(t *testing.T, src string) Trace {
	t.Helper()
	tr, err := BuildTrace(&gcode.BlocksReader{Blocks: gcode.MustParse(src)}, 0.2)
	assert.NoError(t, err)
	return tr
}

func TestBuildTrace_Linear(t *testing.T) {
	tr := buildTrace(t, `
G0 X0 Y0 Z5
G1 Z-1
G1 X10
`)
	assert.Equal(t, Trace{
		{X: 0, Y: 0, Z: 5},
		{X: 0, Y: 0, Z: -1},
		{X: 10, Y: 0, Z: -1},
	}, tr)
}

func TestBuildTrace_NoPointUntilPositionKnown(t *testing.T) {
	// nothing is emitted until all three axes have been commanded
	tr := buildTrace(t, `
G0 X1
G0 Y2
G0 Z3
G1 X4
`)
	assert.Equal(t, Trace{
		{X: 1, Y: 2, Z: 3},
		{X: 4, Y: 2, Z: 3},
	}, tr)
}

func TestBuildTrace_AxisWordsNeedMotion(t *testing.T) {
	// X9 rides on a line with no motion command: discarded, not held
	tr := buildTrace(t, `
G1 X1 Y1 Z0
X9
G1 Y2
`)
	assert.Equal(t, Trace{
		{X: 1, Y: 1, Z: 0},
		{X: 1, Y: 2, Z: 0},
	}, tr)
}

func TestBuildTrace_ZeroLengthMove(t *testing.T) {
	// dwell points stay in the trace so that static stamping happens
	tr := buildTrace(t, `
G1 X1 Y1 Z0
G1 X1 Y1 Z0
`)
	assert.Equal(t, Trace{
		{X: 1, Y: 1, Z: 0},
		{X: 1, Y: 1, Z: 0},
	}, tr)
}

func TestBuildTrace_FullCircleClosedLoop(t *testing.T) {
	tr := buildTrace(t, `
G0 X0 Y0 Z-1
G2 I5 J0
`)

	// loop starts and ends at the starting point
	first := tr[1]
	last := tr[len(tr)-1]
	assert.InDelta(t, 0, first.X, 1e-9)
	assert.InDelta(t, 0, first.Y, 1e-9)
	assert.InDelta(t, 0, last.X, 1e-9)
	assert.InDelta(t, 0, last.Y, 1e-9)

	// every arc point sits on the circle of radius 5 around (5,0)
	for _, p := range tr[1:] {
		assert.InDelta(t, 5, p.DistanceXY(5, 0), 1e-9)
		assert.Equal(t, -1.0, p.Z)
	}
}

func TestBuildTrace_ArcEndPosition(t *testing.T) {
	// after the arc the cursor must sit at the arc's end, so the next
	// carried-over move starts there
	tr := buildTrace(t, `
G0 X10 Y0 Z0
G3 X0 Y10 I-10 J0
G1 Z-2
`)

	last := tr[len(tr)-1]
	assert.InDelta(t, 0, last.X, 1e-9)
	assert.InDelta(t, 10, last.Y, 1e-9)
	assert.Equal(t, -2.0, last.Z)
}

func TestBuildTrace_ArcCarriesEndZ(t *testing.T) {
	tr := buildTrace(t, `
G0 X10 Y0 Z0
G2 X0 Y-10 Z-3 I-10 J0
`)

	// no helical interpolation: every arc point carries the end Z
	for _, p := range tr[1:] {
		assert.Equal(t, -3.0, p.Z)
	}
}

func TestBuildTrace_ArcBeforePosition(t *testing.T) {
	_, err := BuildTrace(&gcode.BlocksReader{Blocks: gcode.MustParse("G2 X1 Y1 I1 J0")}, 0.2)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "block 0")
}

func TestTrace_Bounds(t *testing.T) {
	tr := Trace{{X: -1, Y: 2, Z: 0}, {X: 5, Y: -3, Z: -2}}
	b := tr.Bounds()
	assert.Equal(t, coord.Point{X: -1, Y: -3, Z: -2}, b.Min)
	assert.Equal(t, coord.Point{X: 5, Y: 2, Z: 0}, b.Max)
}
