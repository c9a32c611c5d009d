package coord

import (
	"math"
)

// Bounds is an axis-aligned bounding box accumulated
// from a set of points.
type Bounds struct {
	Min, Max Point

	set bool
}

// Extend grows the bounds to include p.
func (b *Bounds) Extend(p Point) {
	if !b.set {
		b.Min = p
		b.Max = p
		b.set = true
		return
	}

	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Min.Z = math.Min(b.Min.Z, p.Z)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
	b.Max.Z = math.Max(b.Max.Z, p.Z)
}

// Empty returns true if no point was ever added.
func (b Bounds) Empty() bool { return !b.set }

// GridSize returns the pixel dimensions of a grid covering the
// X/Y extent of the bounds at res pixels per unit.
func (b Bounds) GridSize(res float64) (w, h int) {
	w = int(math.Ceil((b.Max.X-b.Min.X)*res)) + 1
	h = int(math.Ceil((b.Max.Y-b.Min.Y)*res)) + 1
	return w, h
}

// ToGrid maps a workspace coordinate to grid indices at
// res pixels per unit, relative to the bounds minimum.
func (b Bounds) ToGrid(x, y, res float64) (px, py int) {
	return int((x - b.Min.X) * res), int((y - b.Min.Y) * res)
}
