package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_Add(t *testing.T) {
	a := Point{X: 1, Y: 2, Z: 3}
	b := Point{X: 4, Y: 5, Z: 6}

	assert.Equal(t, Point{X: 5, Y: 7, Z: 9}, a.Add(b))
}

func TestPoint_Scale(t *testing.T) {
	p := Point{X: 2, Y: 4, Z: 6}

	assert.Equal(t, Point{X: 1, Y: 2, Z: 3}, p.Div(2))
	assert.Equal(t, Point{X: 4, Y: 8, Z: 12}, p.Mul(2))
	assert.True(t, p.Equal(Point{X: 2, Y: 4, Z: 6}))
	assert.False(t, p.Equal(Point{X: 2, Y: 4, Z: 0}))
}

func TestPoint_CrossDot(t *testing.T) {
	x := Point{X: 1}
	y := Point{Y: 1}

	assert.Equal(t, Point{Z: 1}, x.Cross(y))
	assert.Equal(t, 0.0, x.Dot(y))
	assert.Equal(t, 1.0, x.Dot(x))
}

func TestPoint_DistanceXY(t *testing.T) {
	dist := Point{X: 1, Y: 2, Z: 3}.DistanceXY(4, 5)
	assert.InEpsilon(t, 4.24264, dist, .01)
}

func TestPoint_LerpTo(t *testing.T) {
	a := Point{X: 0, Y: 0, Z: 0}
	b := Point{X: 10, Y: -10, Z: 4}

	assert.Equal(t, a, a.LerpTo(b, 0))
	assert.Equal(t, b, a.LerpTo(b, 1))
	assert.Equal(t, Point{X: 5, Y: -5, Z: 2}, a.LerpTo(b, 0.5))
}

func TestPoint_Split(t *testing.T) {
	var a Point //zero
	b := Point{X: 10, Y: 10, Z: 10}

	res := a.Split(b, 2)

	assert.Equal(t, []Point{{X: 5, Y: 5, Z: 5}, {X: 10, Y: 10, Z: 10}}, res)

	a = Point{X: 10, Y: 10, Z: 10}
	b = Point{X: 20, Y: 20, Z: 20}
	res = a.Split(b, 4)
	assert.Equal(t,
		[]Point{{X: 12.5, Y: 12.5, Z: 12.5}, {X: 15, Y: 15, Z: 15}, {X: 17.5, Y: 17.5, Z: 17.5}, {X: 20, Y: 20, Z: 20}},
		res,
	)
}
