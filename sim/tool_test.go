package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBallEndMill(t *testing.T) {
	tool, err := NewTool("ball", 10)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, tool.Radius())

	assert.Equal(t, 0.0, tool.HeightAtRadius(0))
	assert.InDelta(t, 0.1010205, tool.HeightAtRadius(1), 1e-6)
	assert.InDelta(t, 1.0, tool.HeightAtRadius(3), 1e-9)
	assert.Equal(t, 5.0, tool.HeightAtRadius(5))
	assert.True(t, math.IsInf(tool.HeightAtRadius(6), 1))
}

func TestFlatEndMill(t *testing.T) {
	tool, err := NewTool("flat", 10)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, tool.Radius())

	assert.Equal(t, 0.0, tool.HeightAtRadius(0))
	assert.Equal(t, 0.0, tool.HeightAtRadius(5))
	assert.True(t, math.IsInf(tool.HeightAtRadius(5.1), 1))
}

func TestNewTool_Unknown(t *testing.T) {
	_, err := NewTool("vbit", 10)
	assert.Error(t, err)
}

func TestNewProfile(t *testing.T) {
	tool, err := NewTool("ball", 3.175)
	assert.NoError(t, err)

	p := NewProfile(tool, 10, 38)

	// radius 1.5875mm at 10px/mm rounds to 16px -> 33x33 kernel
	assert.Equal(t, 33, p.Size())

	// tip of the ball sits at zero
	assert.Equal(t, 0.0, p.At(16, 16))

	// corners lie outside the cutting circle: clearance height
	assert.Equal(t, 38.0, p.At(0, 0))
	assert.Equal(t, 38.0, p.At(32, 32))

	// one cell off axis: spherical cap rises
	r := 0.1 // 1px at 10px/mm
	want := 1.5875 - math.Sqrt(1.5875*1.5875-r*r)
	assert.InDelta(t, want, p.At(17, 16), 1e-9)

	// symmetric about the axis
	assert.Equal(t, p.At(15, 16), p.At(17, 16))
	assert.Equal(t, p.At(16, 15), p.At(16, 17))
}
