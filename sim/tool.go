package sim

import (
	"fmt"
	"math"
)

// Tool is an axially-symmetric cutter profile: the height of the
// cutting edge above the tool tip, as a function of radial distance
// from the tool axis. Outside the cutting radius the height is +Inf.
type Tool interface {
	Radius() float64
	HeightAtRadius(r float64) float64
}

type BallEndMill struct{ radius float64 }
type FlatEndMill struct{ radius float64 }

func NewTool(shape string, diameter float64) (Tool, error) {
	switch shape {
	case "ball":
		return &BallEndMill{radius: diameter / 2}, nil
	case "flat":
		return &FlatEndMill{radius: diameter / 2}, nil
	}
	return nil, fmt.Errorf("unrecognised tool shape: %s", shape)
}

func (t *BallEndMill) Radius() float64 { return t.radius }
func (t *FlatEndMill) Radius() float64 { return t.radius }

func (t *BallEndMill) HeightAtRadius(r float64) float64 {
	if r > t.radius {
		return math.Inf(1)
	}

	return t.radius - math.Sqrt(t.radius*t.radius-r*r)
}

func (t *FlatEndMill) HeightAtRadius(r float64) float64 {
	if r > t.radius {
		return math.Inf(1)
	}

	return 0
}

// Profile is a tool baked to a square kernel of height offsets at grid
// resolution: zero at the tip, the clearance height outside the
// cutting circle. Immutable once built, shared by every stamp.
type Profile struct {
	size    int
	half    int
	offsets []float64
}

// NewProfile builds the kernel for t at res pixels per unit. Cells the
// tool cannot reach are pinned to clearance so stamping them never
// removes material.
func NewProfile(t Tool, res, clearance float64) *Profile {
	half := int(math.Round(t.Radius() * res))
	size := 2*half + 1

	p := &Profile{
		size:    size,
		half:    half,
		offsets: make([]float64, size*size),
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x-half) / res
			dy := float64(y-half) / res
			h := t.HeightAtRadius(math.Hypot(dx, dy))
			if math.IsInf(h, 1) {
				h = clearance
			}
			p.offsets[y*size+x] = h
		}
	}

	return p
}

// Size returns the kernel edge length in cells.
func (p *Profile) Size() int { return p.size }

// At returns the height offset of kernel cell (x, y).
func (p *Profile) At(x, y int) float64 { return p.offsets[y*p.size+x] }
