// Package stock models a non-flat starting stock surface, for
// simulating a second operation over an already-machined or uneven
// blank. The surface is built from a sparse set of sampled points and
// queried per grid cell.
package stock

import (
	"errors"
	"math"

	"github.com/cactii/ncsim/coord"
	"github.com/fogleman/delaunay"
)

type Surface struct {
	minX, minY, maxX, maxY float64
	triangles              []coord.Triangle
}

// NewSurface triangulates the sampled points. At least 3 non-collinear
// points are required.
func NewSurface(points []coord.Point) (*Surface, error) {
	if len(points) < 3 {
		return nil, errors.New("need at least 3 points to build a surface")
	}

	points2d := make([]delaunay.Point, len(points))
	m := make(map[delaunay.Point]coord.Point, len(points))

	s := &Surface{
		minX: points[0].X,
		minY: points[0].Y,
		maxX: points[0].X,
		maxY: points[0].Y,
	}
	var d delaunay.Point
	for i, p := range points {
		s.minX = math.Min(s.minX, p.X)
		s.minY = math.Min(s.minY, p.Y)
		s.maxX = math.Max(s.maxX, p.X)
		s.maxY = math.Max(s.maxY, p.Y)

		d.X = p.X
		d.Y = p.Y
		m[d] = p
		points2d[i] = d
	}
	s.minX -= coord.Epsilon
	s.minY -= coord.Epsilon
	s.maxX += coord.Epsilon
	s.maxY += coord.Epsilon

	tri, err := delaunay.Triangulate(points2d)
	if err != nil {
		return nil, err
	}

	s.triangles = make([]coord.Triangle, 0, len(tri.Triangles)/3)

	for i := 0; i < len(tri.Triangles); i += 3 {
		s.triangles = append(s.triangles, coord.Triangle{
			A: m[tri.Points[tri.Triangles[i]]],
			B: m[tri.Points[tri.Triangles[i+1]]],
			C: m[tri.Points[tri.Triangles[i+2]]],
		})
	}

	return s, nil
}

// HeightAt returns the interpolated surface height at (x, y), or false
// when the point lies outside the triangulated area.
func (s *Surface) HeightAt(x, y float64) (bool, float64) {
	if x < s.minX || s.maxX < x || y < s.minY || s.maxY < y {
		return false, 0
	}
	for _, t := range s.triangles {
		if !t.ContainsXY(x, y) {
			continue
		}
		return true, t.Z(x, y)
	}

	return false, 0
}
