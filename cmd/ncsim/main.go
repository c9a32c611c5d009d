package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/cactii/ncsim/coord"
	"github.com/cactii/ncsim/gcode"
	"github.com/cactii/ncsim/render"
	"github.com/cactii/ncsim/sim"
	"github.com/cactii/ncsim/stock"
)

func main() {
	log.SetFlags(log.Lshortfile)

	resolution := flag.Float64("resolution", 10, "Grid resolution in pixels per mm.")
	toolDiameter := flag.Float64("tool-diameter", 3.175, "Tool diameter in mm.")
	toolShape := flag.String("tool-shape", "ball", "Tool shape: ball or flat.")
	toolLength := flag.Float64("tool-length", 38, "Tool clearance height in mm.")
	top := flag.Float64("top", 0, "Stock top height in mm.")
	step := flag.Float64("step", 0.2, "Carve resample step length in mm.")
	chord := flag.Float64("chord", 0.2, "Max arc chord spacing in mm.")
	gridSpacing := flag.Float64("grid-spacing", 10, "Overlay grid spacing in mm (0 disables the overlay).")
	out := flag.String("out", "", "Output PNG path (default: GCODEFILE.png).")
	stlOut := flag.String("stl", "", "Also write the carved surface as binary STL.")
	stockPath := flag.String("stock", "", "Initial stock surface points file (x y z per line).")
	workers := flag.Int("workers", 1, "Carve worker count.")
	addr := flag.String("addr", "", "Serve a result preview on this address after carving.")
	quiet := flag.Bool("quiet", false, "Suppress dimension and progress output.")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: ncsim [flags] GCODEFILE\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(2)
	}
	gcodePath := args[0]

	if *out == "" {
		*out = gcodePath + ".png"
	}

	cfg := sim.Config{
		Resolution:   *resolution,
		ToolShape:    *toolShape,
		ToolDiameter: *toolDiameter,
		ToolLength:   *toolLength,
		TopHeight:    *top,
		StepLength:   *step,
		ChordSpacing: *chord,
	}

	f, err := os.Open(gcodePath)
	if err != nil {
		log.Fatal(err)
	}
	trace, err := sim.BuildTrace(gcode.NewParser(f), cfg.ChordSpacing)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}

	m, err := sim.NewMaterial(trace, cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *stockPath != "" {
		s, err := readStock(*stockPath)
		if err != nil {
			log.Fatal(err)
		}
		stock.Apply(m, s, cfg.TopHeight)
	}

	b := trace.Bounds()
	w, h := m.Dims()
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Trace: %d points\n", len(trace))
		fmt.Fprintf(os.Stderr, "X range: %.2f to %.2f\n", b.Min.X, b.Max.X)
		fmt.Fprintf(os.Stderr, "Y range: %.2f to %.2f\n", b.Min.Y, b.Max.Y)
		fmt.Fprintf(os.Stderr, "Z range: %.2f to %.2f\n", b.Min.Z, b.Max.Z)
		fmt.Fprintf(os.Stderr, "Grid: %dx%d px\n", w, h)
	}

	var a *api
	if *addr != "" {
		a = newAPI(*out)
	}

	var progMu sync.Mutex
	lastPct := -1
	m.Progress = func(done, total int) {
		if a != nil {
			a.setProgress(done, total)
		}
		if *quiet {
			return
		}
		pct := 100 * done / total
		progMu.Lock()
		if pct != lastPct {
			lastPct = pct
			fmt.Fprintf(os.Stderr, "   \rCarving: %d%%", pct)
		}
		progMu.Unlock()
	}

	m.CarveParallel(trace, *workers)
	if !*quiet {
		fmt.Fprintf(os.Stderr, "   \rCarving: done\n")
	}

	err = render.WritePNG(*out, m, render.ImageOptions{GridSpacing: *gridSpacing})
	if err != nil {
		log.Fatal(err)
	}
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Image saved to %s\n", *out)
	}

	if *stlOut != "" {
		if err = render.WriteSTL(*stlOut, m); err != nil {
			log.Fatal(err)
		}
	}

	if a != nil {
		a.setDone()
		log.Printf("preview on http://%s/heightmap.png", *addr)
		err = http.ListenAndServe(*addr, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			log.Printf("%s %s - %s", req.Method, req.URL.Path, req.RemoteAddr)
			a.ServeHTTP(w, req)
		}))
		if err != nil {
			log.Fatal(err)
		}
	}
}

// readStock parses a whitespace-separated "x y z" points file.
func readStock(path string) (*stock.Surface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var points []coord.Point
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var p coord.Point
		_, err = fmt.Sscanf(line, "%f %f %f", &p.X, &p.Y, &p.Z)
		if err != nil {
			return nil, fmt.Errorf("stock file %s: %q: %w", path, line, err)
		}
		points = append(points, p)
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}

	return stock.NewSurface(points)
}
