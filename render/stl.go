package render

import (
	"github.com/hschendel/stl"

	"github.com/cactii/ncsim/sim"
)

// Mesh triangulates the carved surface: one vertex per grid cell at
// its workspace coordinate, two triangles per cell quad.
func Mesh(m *sim.Material) *stl.Solid {
	w, h := m.Dims()

	vert := func(px, py int) stl.Vec3 {
		x, y := m.CellCenter(px, py)
		return stl.Vec3{float32(x), float32(y), float32(m.HeightAt(px, py))}
	}

	solid := &stl.Solid{
		Name:      "ncsim",
		Triangles: make([]stl.Triangle, 0, 2*(w-1)*(h-1)),
	}

	for py := 0; py < h-1; py++ {
		for px := 0; px < w-1; px++ {
			a := vert(px, py)
			b := vert(px+1, py)
			c := vert(px+1, py+1)
			d := vert(px, py+1)

			solid.AppendTriangle(stl.Triangle{Vertices: [3]stl.Vec3{a, b, c}})
			solid.AppendTriangle(stl.Triangle{Vertices: [3]stl.Vec3{a, c, d}})
		}
	}

	solid.RecalculateNormals()

	return solid
}

// WriteSTL writes the carved surface mesh to path in binary STL.
func WriteSTL(path string, m *sim.Material) error {
	return Mesh(m).WriteFile(path)
}
