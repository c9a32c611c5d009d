package sim

import (
	"math"

	"github.com/cactii/ncsim/coord"
)

// normalizeEndAngle shifts a raw atan2 end angle by 2π so that the
// sweep from start always runs in the commanded rotational direction:
// decreasing for clockwise arcs, increasing for counter-clockwise.
func normalizeEndAngle(start, end float64, clockwise bool) float64 {
	if clockwise && end > start {
		return end - 2*math.Pi
	}
	if !clockwise && end < start {
		return end + 2*math.Pi
	}
	return end
}

// arcPoints expands one arc into interpolated points from start to end
// around center (cx, cy), spaced at most chordSpacing apart along the
// arc. Every point carries end.Z. An end coinciding with the start
// (explicitly or because the end words were omitted and defaulted to
// it) commands a full circle. A zero radius collapses the arc to a
// single point at the center rather than dividing by it.
func arcPoints(start, end coord.Point, cx, cy float64, clockwise bool, chordSpacing float64) []coord.Point {
	radius := math.Hypot(start.X-cx, start.Y-cy)
	if radius == 0 {
		return []coord.Point{{X: cx, Y: cy, Z: end.Z}}
	}

	startAngle := math.Atan2(start.Y-cy, start.X-cx)

	var endAngle float64
	if start.X == end.X && start.Y == end.Y {
		if clockwise {
			endAngle = startAngle - 2*math.Pi
		} else {
			endAngle = startAngle + 2*math.Pi
		}
	} else {
		endAngle = normalizeEndAngle(startAngle, math.Atan2(end.Y-cy, end.X-cx), clockwise)
	}

	if math.IsNaN(startAngle) || math.IsNaN(endAngle) {
		return []coord.Point{{X: cx, Y: cy, Z: end.Z}}
	}

	arcLength := math.Abs(endAngle-startAngle) * radius
	steps := int(arcLength / chordSpacing)
	if steps < 1 {
		steps = 1
	}

	points := make([]coord.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		angle := startAngle + t*(endAngle-startAngle)
		points = append(points, coord.Point{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
			Z: end.Z,
		})
	}

	return points
}
