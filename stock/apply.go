package stock

import (
	"github.com/cactii/ncsim/sim"
)

// Apply seeds the material grid from the surface. Cells the surface
// covers take its interpolated height, everything else keeps top.
// Call before carving.
func Apply(m *sim.Material, s *Surface, top float64) {
	m.ResetFunc(func(x, y float64) float64 {
		if ok, z := s.HeightAt(x, y); ok {
			return z
		}
		return top
	})
}
