// Package render converts a carved material grid into output
// artifacts: a grayscale height map image with an optional measuring
// grid overlay, and a triangulated surface mesh.
package render

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/cactii/ncsim/sim"
)

// ErrDegenerateRange is returned when the trace never went below the
// stock top, leaving a zero height range that cannot be normalized.
var ErrDegenerateRange = errors.New("render: height range is zero, nothing was cut below the stock top")

type ImageOptions struct {
	// GridSpacing is the major gridline spacing in workspace units.
	// Minor lines are drawn at a tenth of it. Zero disables the
	// overlay.
	GridSpacing float64
}

// Grayscale maps cell heights to brightness: stock top is white, the
// deepest commanded Z is black. Image rows run top-down while the
// grid's Y axis points up, so the image is flipped vertically.
func Grayscale(m *sim.Material) (*image.Gray, error) {
	zMin := m.Bounds().Min.Z
	top := m.Top()
	if top == zMin {
		return nil, ErrDegenerateRange
	}

	w, h := m.Dims()
	img := image.NewGray(image.Rect(0, 0, w, h))

	for py := 0; py < h; py++ {
		iy := h - 1 - py
		for px := 0; px < w; px++ {
			v := 255 * (m.HeightAt(px, py) - zMin) / (top - zMin)
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			img.SetGray(px, iy, color.Gray{Y: uint8(v)})
		}
	}

	return img, nil
}

// Compose renders the grayscale map into an RGBA image and blends the
// measuring grid over it.
func Compose(m *sim.Material, opt ImageOptions) (*image.RGBA, error) {
	gray, err := Grayscale(m)
	if err != nil {
		return nil, err
	}

	b := gray.Bounds()
	img := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, gray.GrayAt(x, y))
		}
	}

	if opt.GridSpacing > 0 {
		res := m.Resolution()
		drawGrid(img, int(opt.GridSpacing*res), 5, color.RGBA{B: 255, A: 255})
		drawGrid(img, int(opt.GridSpacing/10*res), 1, color.RGBA{G: 255, A: 255})
	}

	return img, nil
}

// drawGrid blends half-transparent gridlines of the given pixel width
// every spacing pixels, in both directions.
func drawGrid(img *image.RGBA, spacing, width int, c color.RGBA) {
	if spacing <= 0 {
		return
	}
	b := img.Bounds()

	half := width / 2
	line := func(x, y int) {
		blend(img, x, y, c)
	}

	for x := 0; x < b.Max.X; x += spacing {
		for dx := -half; dx <= half; dx++ {
			if x+dx < 0 || x+dx >= b.Max.X {
				continue
			}
			for y := 0; y < b.Max.Y; y++ {
				line(x+dx, y)
			}
		}
	}
	for y := 0; y < b.Max.Y; y += spacing {
		for dy := -half; dy <= half; dy++ {
			if y+dy < 0 || y+dy >= b.Max.Y {
				continue
			}
			for x := 0; x < b.Max.X; x++ {
				line(x, y+dy)
			}
		}
	}
}

// blend mixes c into the pixel at half opacity.
func blend(img *image.RGBA, x, y int, c color.RGBA) {
	cur := img.RGBAAt(x, y)
	img.SetRGBA(x, y, color.RGBA{
		R: uint8((uint16(cur.R) + uint16(c.R)) / 2),
		G: uint8((uint16(cur.G) + uint16(c.G)) / 2),
		B: uint8((uint16(cur.B) + uint16(c.B)) / 2),
		A: 255,
	})
}

// WritePNG renders the material and writes it to path.
func WritePNG(path string, m *sim.Material, opt ImageOptions) error {
	img, err := Compose(m, opt)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	return png.Encode(out, img)
}
