package field

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

type drawCall struct {
	kind  string
	x0    float64
	y0    float64
	x1    float64
	y1    float64
	width float64
	clr   color.Color
}

type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) Clear() {
	s.calls = append(s.calls, drawCall{kind: "clear"})
}

func (s *recordingSurface) FillCircle(x, y, r float64, c color.Color) {
	s.calls = append(s.calls, drawCall{kind: "fill", x0: x, y0: y, width: r, clr: c})
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	s.calls = append(s.calls, drawCall{kind: "line", x0: x0, y0: y0, x1: x1, y1: y1, width: width, clr: c})
}

func (s *recordingSurface) count(kind string) int {
	n := 0
	for _, c := range s.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func fixedField(cfg Config, width, height float64, pts ...[2]float64) *Field {
	cfg.Count = len(pts)
	f := New(cfg, width, height, rand.New(rand.NewSource(7)))
	for i, p := range pts {
		f.particles[i] = Particle{X: p[0], Y: p[1], Radius: 2}
	}
	return f
}

func TestParticlesStayInBounds(t *testing.T) {
	const width, height = 50, 30
	f := New(DefaultConfig(), width, height, rand.New(rand.NewSource(42)))
	for step := 0; step < 5000; step++ {
		f.Step()
		for i, p := range f.Particles() {
			if p.X < 0 || p.X > width || p.Y < 0 || p.Y > height {
				t.Fatalf("step %d particle %d out of bounds at (%f, %f)", step, i, p.X, p.Y)
			}
		}
	}
}

func TestHueStaysInRangeAndWraps(t *testing.T) {
	f := New(DefaultConfig(), 800, 600, rand.New(rand.NewSource(3)))
	wrapped := false
	for step := 0; step < 2000; step++ {
		f.Step()
		h := f.Particles()[0].Hue
		if h < 0 || h > 180 {
			t.Fatalf("step %d hue %f out of range", step, h)
		}
		if step > 0 && h == 120 {
			wrapped = true
		}
		if wrapped && h < 120 {
			t.Fatalf("step %d hue %f dropped below 120 after wrapping", step, h)
		}
	}
	if !wrapped {
		t.Fatal("hue never wrapped to 120")
	}
}

func TestHueWrapsToExactly120(t *testing.T) {
	p := Particle{X: 10, Y: 10, Hue: 179.9}
	p.advance(100, 100, 0.2)
	if p.Hue != 120 {
		t.Fatalf("hue = %f, want 120", p.Hue)
	}
}

func TestReflectFlipsVelocity(t *testing.T) {
	tests := []struct {
		name         string
		v, vel       float64
		bound        float64
		wantV, wantW float64
	}{
		{"inside", 5, 0.4, 10, 5, 0.4},
		{"below zero", -0.3, -0.4, 10, 0.3, 0.4},
		{"above bound", 10.25, 0.5, 10, 9.75, -0.5},
		{"on edge", 10, 0.5, 10, 10, 0.5},
		{"degenerate bound", 0.5, 0.5, 0, 0, -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, w := reflect(tt.v, tt.vel, tt.bound)
			if !approx(v, tt.wantV) || !approx(w, tt.wantW) {
				t.Fatalf("reflect(%v, %v, %v) = (%v, %v), want (%v, %v)",
					tt.v, tt.vel, tt.bound, v, w, tt.wantV, tt.wantW)
			}
		})
	}
}

func TestParticleColorBands(t *testing.T) {
	tests := []struct {
		hue  float64
		want color.RGBA
	}{
		{0, color.RGBA{255, 255, 255, 255}},
		{59.9, color.RGBA{255, 255, 255, 255}},
		{120, color.RGBA{0, 255, 0, 255}},
		{150, particleGreen},
		{180, particleGreen},
	}
	for _, tt := range tests {
		got := Particle{Hue: tt.hue}.Color()
		if got != tt.want {
			t.Errorf("hue %v: color = %v, want %v", tt.hue, got, tt.want)
		}
	}
	mid := Particle{Hue: 90}.Color()
	if mid == particleWhite || mid == particleGreen {
		t.Errorf("hue 90 should be in the rotating band, got %v", mid)
	}
}

func TestEdgeOpacity(t *testing.T) {
	tests := []struct {
		d    float64
		want float64
	}{
		{0, 0.85},
		{120, 0.35},
		{204, 0},
		{230, 0},
	}
	for _, tt := range tests {
		if got := EdgeOpacity(tt.d, 240, 0.85); !approx(got, tt.want) {
			t.Errorf("EdgeOpacity(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestPointerEdgesOnlyWhenPresent(t *testing.T) {
	f := fixedField(DefaultConfig(), 1000, 1000, [2]float64{100, 100}, [2]float64{150, 100})
	f.Step()
	if n := len(f.PointerEdges()); n != 0 {
		t.Fatalf("pointer absent: got %d pointer edges", n)
	}

	f.SetPointer(100, 200)
	f.Step()
	edges := f.PointerEdges()
	if len(edges) != 2 {
		t.Fatalf("pointer present: got %d pointer edges, want 2", len(edges))
	}
	if want := 1 - 100.0/360; !approx(edges[0].Opacity, want) {
		t.Fatalf("pointer edge opacity = %v, want %v", edges[0].Opacity, want)
	}

	f.ClearPointer()
	f.Step()
	surf := &recordingSurface{}
	f.Render(surf)
	if n := len(f.PointerEdges()); n != 0 {
		t.Fatalf("after touch end: got %d pointer edges", n)
	}
	for _, c := range surf.calls {
		if c.kind == "line" && c.width == f.cfg.PointerWidth {
			t.Fatal("pointer edge drawn after touch end")
		}
	}
}

func TestPointerEdgeThresholdIsScaled(t *testing.T) {
	f := fixedField(DefaultConfig(), 1000, 1000, [2]float64{0, 0})
	f.SetPointer(300, 0)
	f.Step()
	if n := len(f.PointerEdges()); n != 1 {
		t.Fatalf("got %d pointer edges at distance 300, want 1", n)
	}
	f.SetPointer(360, 0)
	f.Step()
	if n := len(f.PointerEdges()); n != 0 {
		t.Fatalf("got %d pointer edges at distance 360, want 0", n)
	}
}

func TestResizeKeepsCountAndBounds(t *testing.T) {
	cfg := DefaultConfig()
	f := New(cfg, 640, 480, rand.New(rand.NewSource(9)))
	sizes := [][2]float64{{320, 200}, {1920, 1080}, {10, 10}, {800, 600}}
	for _, s := range sizes {
		f.Resize(s[0], s[1])
		if n := len(f.Particles()); n != cfg.Count {
			t.Fatalf("after resize to %v: %d particles, want %d", s, n, cfg.Count)
		}
		for _, p := range f.Particles() {
			if p.X < 0 || p.X > s[0] || p.Y < 0 || p.Y > s[1] {
				t.Fatalf("particle (%f, %f) outside %v after resize", p.X, p.Y, s)
			}
			if p.Radius < 1 || p.Radius >= 3 {
				t.Fatalf("radius %f outside [1,3)", p.Radius)
			}
			if p.Hue != 0 {
				t.Fatalf("hue %f not reset", p.Hue)
			}
		}
	}
}

func TestTickFourFixedParticles(t *testing.T) {
	f := fixedField(DefaultConfig(), 1000, 1000,
		[2]float64{0, 0},
		[2]float64{100, 0},
		[2]float64{0, 200},
		[2]float64{300, 400},
	)
	surf := &recordingSurface{}
	f.Tick(surf)

	want := []struct {
		x0, y0, x1, y1 float64
		opacity        float64
	}{
		{0, 0, 100, 0, 0.85 - 100.0/240},
		{0, 0, 0, 200, 0.85 - 200.0/240},
		{100, 0, 0, 200, 0},
	}
	edges := f.Edges()
	if len(edges) != len(want) {
		t.Fatalf("got %d edges, want %d: %+v", len(edges), len(want), edges)
	}
	for i, w := range want {
		e := edges[i]
		if e.X0 != w.x0 || e.Y0 != w.y0 || e.X1 != w.x1 || e.Y1 != w.y1 {
			t.Errorf("edge %d = %+v, want endpoints %+v", i, e, w)
		}
		if !approx(e.Opacity, w.opacity) {
			t.Errorf("edge %d opacity = %v, want %v", i, e.Opacity, w.opacity)
		}
	}
	if n := len(f.PointerEdges()); n != 0 {
		t.Fatalf("got %d pointer edges with pointer absent", n)
	}

	if surf.calls[0].kind != "clear" {
		t.Fatalf("first call = %q, want clear", surf.calls[0].kind)
	}
	if got := surf.count("fill"); got != 4 {
		t.Fatalf("got %d fills, want 4", got)
	}
	if got := surf.count("line"); got != 3 {
		t.Fatalf("got %d lines, want 3", got)
	}
	for i, c := range surf.calls[1:5] {
		if c.kind != "fill" {
			t.Fatalf("call %d = %q, fills must precede edges", i+1, c.kind)
		}
	}
	if st := f.Stats(); st != (Stats{Particles: 4, Edges: 3}) {
		t.Fatalf("stats = %+v", st)
	}
}

type failingSolver struct{ calls int }

func (s *failingSolver) Edges([]Particle, float64, float64, []Edge) ([]Edge, error) {
	s.calls++
	return nil, errSolver
}

type solverError string

func (e solverError) Error() string { return string(e) }

const errSolver = solverError("device lost")

func TestSolverFailureFallsBackToCPU(t *testing.T) {
	f := fixedField(DefaultConfig(), 500, 500, [2]float64{0, 0}, [2]float64{10, 0})
	s := &failingSolver{}
	f.SetSolver(s)
	f.Step()
	f.Step()
	if s.calls != 1 {
		t.Fatalf("failing solver called %d times, want 1", s.calls)
	}
	if n := len(f.Edges()); n != 1 {
		t.Fatalf("got %d edges after fallback, want 1", n)
	}
}
