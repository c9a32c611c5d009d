package sim

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"

	"github.com/cactii/ncsim/coord"
)

// ErrEmptyTrace is returned when the motion commands resolved to fewer
// than two trace points, so there is no segment to carve.
var ErrEmptyTrace = errors.New("sim: trace has no segments to carve")

// Material is the stock height field. Cells only ever go down: every
// write is a min against the tool's swept height at that cell.
type Material struct {
	w, h   int
	height []float64
	bounds coord.Bounds
	top    float64
	res    float64
	step   float64

	profile *Profile

	// Progress, if set, is called after each carved segment. It must
	// be safe for concurrent use when carving with multiple workers.
	Progress func(done, total int)
}

// NewMaterial sizes a grid from the trace bounds and fills it with the
// stock top height. The tool profile is baked once here and reused for
// every stamp.
func NewMaterial(trace Trace, cfg Config) (*Material, error) {
	if len(trace) < 2 {
		return nil, ErrEmptyTrace
	}

	tool, err := NewTool(cfg.ToolShape, cfg.ToolDiameter)
	if err != nil {
		return nil, err
	}

	b := trace.Bounds()
	w, h := b.GridSize(cfg.Resolution)

	m := &Material{
		w:       w,
		h:       h,
		height:  make([]float64, w*h),
		bounds:  b,
		top:     cfg.TopHeight,
		res:     cfg.Resolution,
		step:    cfg.StepLength,
		profile: NewProfile(tool, cfg.Resolution, cfg.ToolLength),
	}

	for i := range m.height {
		m.height[i] = cfg.TopHeight
	}

	return m, nil
}

func (m *Material) Dims() (w, h int)     { return m.w, m.h }
func (m *Material) Bounds() coord.Bounds { return m.bounds }
func (m *Material) Top() float64         { return m.top }
func (m *Material) Resolution() float64  { return m.res }

func (m *Material) HeightAt(px, py int) float64 {
	return m.height[py*m.w+px]
}

// CellCenter returns the workspace coordinate of grid cell (px, py).
func (m *Material) CellCenter(px, py int) (x, y float64) {
	return m.bounds.Min.X + float64(px)/m.res, m.bounds.Min.Y + float64(py)/m.res
}

// ResetFunc refills every cell from f, given the cell's workspace
// coordinate. Used to seed a non-flat starting stock before carving.
func (m *Material) ResetFunc(f func(x, y float64) float64) {
	for py := 0; py < m.h; py++ {
		for px := 0; px < m.w; px++ {
			x, y := m.CellCenter(px, py)
			m.height[py*m.w+px] = f(x, y)
		}
	}
}

// Stamp composites the tool profile into the grid at (px, py), offset
// by z. The overlap between kernel and grid is clipped on both sides,
// so stamping at or beyond an edge only touches in-bounds cells.
func (m *Material) Stamp(px, py int, z float64) {
	m.stampTo(m.height, px, py, z)
}

func (m *Material) stampTo(dst []float64, px, py int, z float64) {
	half := m.profile.half

	xs := px - half
	if xs < 0 {
		xs = 0
	}
	xe := px + half + 1
	if xe > m.w {
		xe = m.w
	}
	ys := py - half
	if ys < 0 {
		ys = 0
	}
	ye := py + half + 1
	if ye > m.h {
		ye = m.h
	}

	for y := ys; y < ye; y++ {
		ty := y - py + half
		for x := xs; x < xe; x++ {
			v := m.profile.At(x-px+half, ty) + z
			if v < dst[y*m.w+x] {
				dst[y*m.w+x] = v
			}
		}
	}
}

// Carve walks the trace pairwise, resamples each segment at the
// configured step length and stamps the tool at every sub-point.
func (m *Material) Carve(trace Trace) {
	var done int64
	m.carveRange(m.height, trace, 0, len(trace)-1, &done)
}

// CarveParallel splits the trace's segments across workers, each
// carving into a private grid, and merges the grids with an
// element-wise min. Stamps commute under min, so the split point and
// overlap between chunks don't affect the result.
func (m *Material) CarveParallel(trace Trace, workers int) {
	segs := len(trace) - 1
	if workers <= 1 || segs < workers {
		m.Carve(trace)
		return
	}

	chunk := (segs + workers - 1) / workers
	grids := make([][]float64, workers)

	var done int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > segs {
			hi = segs
		}
		if lo >= hi {
			continue
		}

		buf := make([]float64, len(m.height))
		copy(buf, m.height)
		grids[w] = buf

		wg.Add(1)
		go func(buf []float64, lo, hi int) {
			defer wg.Done()
			m.carveRange(buf, trace, lo, hi, &done)
		}(buf, lo, hi)
	}
	wg.Wait()

	for _, g := range grids {
		if g == nil {
			continue
		}
		for i, v := range g {
			if v < m.height[i] {
				m.height[i] = v
			}
		}
	}
}

// carveRange carves segments [lo,hi) of the trace into dst. Segment i
// runs from trace[i] to trace[i+1]. Zero-length segments still stamp
// once, so dwell points cut at their location.
func (m *Material) carveRange(dst []float64, trace Trace, lo, hi int, done *int64) {
	total := len(trace) - 1

	for i := lo; i < hi; i++ {
		a, b := trace[i], trace[i+1]

		dist := math.Hypot(b.X-a.X, b.Y-a.Y)
		steps := int(dist / m.step)
		if steps < 1 {
			steps = 1
		}

		for s := 0; s <= steps; s++ {
			p := a.LerpTo(b, float64(s)/float64(steps))
			px, py := m.bounds.ToGrid(p.X, p.Y, m.res)
			m.stampTo(dst, px, py, p.Z)
		}

		if m.Progress != nil {
			m.Progress(int(atomic.AddInt64(done, 1)), total)
		}
	}
}
