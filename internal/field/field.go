// Package field implements the particle field: a fixed-count point cloud that
// drifts inside the viewport, links nearby particles with fading edges and
// draws a second set of edges towards the pointer when one is present.
package field

import (
	"image/color"
	"log"
	"math/rand"
)

// Surface is the raster target a Field paints onto each frame.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
}

// Config holds the tuning constants of a field.
type Config struct {
	Count           int
	MaxDistance     float64
	PointerScale    float64
	HueStep         float64
	EdgeOpacity     float64
	PointerOpacity  float64
	EdgeWidth       float64
	PointerWidth    float64
	EdgeColor       color.RGBA
	PointerColor    color.RGBA
	BackgroundColor color.RGBA
}

// DefaultConfig returns the intro screen's field settings.
func DefaultConfig() Config {
	return Config{
		Count:          120,
		MaxDistance:    240,
		PointerScale:   1.5,
		HueStep:        0.2,
		EdgeOpacity:    0.85,
		PointerOpacity: 1,
		EdgeWidth:      1,
		PointerWidth:   1.5,
		EdgeColor:      color.RGBA{255, 255, 255, 255},
		PointerColor:   color.RGBA{50, 205, 50, 255},
	}
}

// Pointer is the last known interaction coordinate. Present is false until
// the first move event and again after a touch ends.
type Pointer struct {
	X, Y    float64
	Present bool
}

// Stats summarises the most recent step.
type Stats struct {
	Particles    int
	Edges        int
	PointerEdges int
}

// Field owns the particle set and the per-frame proximity graph.
type Field struct {
	cfg           Config
	width, height float64
	particles     []Particle
	pointer       Pointer
	rng           *rand.Rand

	solver       PairSolver
	solverFailed bool
	edges        []Edge
	pointerEdges []Edge
}

// New creates a field of cfg.Count particles spread over width x height.
func New(cfg Config, width, height float64, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	f := &Field{
		cfg:    cfg,
		rng:    rng,
		solver: CPUSolver{},
	}
	f.Resize(width, height)
	return f
}

// SetSolver replaces the pair solver. A nil solver restores the CPU solver.
func (f *Field) SetSolver(s PairSolver) {
	if s == nil {
		s = CPUSolver{}
	}
	f.solver = s
	f.solverFailed = false
}

// Resize adopts the new bounds and replaces the whole particle set; existing
// particles are not remapped.
func (f *Field) Resize(width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f.width, f.height = width, height
	if cap(f.particles) < f.cfg.Count {
		f.particles = make([]Particle, f.cfg.Count)
	}
	f.particles = f.particles[:f.cfg.Count]
	for i := range f.particles {
		f.particles[i] = spawnParticle(f.rng, width, height)
	}
	f.edges = f.edges[:0]
	f.pointerEdges = f.pointerEdges[:0]
}

// Size reports the current bounds.
func (f *Field) Size() (float64, float64) { return f.width, f.height }

// SetPointer records a pointer coordinate and enables pointer edges.
func (f *Field) SetPointer(x, y float64) {
	f.pointer = Pointer{X: x, Y: y, Present: true}
}

// ClearPointer marks the pointer absent, disabling pointer edges.
func (f *Field) ClearPointer() {
	f.pointer = Pointer{}
}

// Pointer returns the current pointer state.
func (f *Field) Pointer() Pointer { return f.pointer }

// Particles exposes the particle arena. Callers must not retain it across a
// Resize.
func (f *Field) Particles() []Particle { return f.particles }

// Edges returns the inter-particle edges computed by the last Step.
func (f *Field) Edges() []Edge { return f.edges }

// PointerEdges returns the pointer edges computed by the last Step.
func (f *Field) PointerEdges() []Edge { return f.pointerEdges }

// Stats reports counts from the last Step.
func (f *Field) Stats() Stats {
	return Stats{
		Particles:    len(f.particles),
		Edges:        len(f.edges),
		PointerEdges: len(f.pointerEdges),
	}
}

// Step advances every particle once and rebuilds the frame's edge sets.
func (f *Field) Step() {
	for i := range f.particles {
		f.particles[i].advance(f.width, f.height, f.cfg.HueStep)
	}
	f.computeEdges()
}

func (f *Field) computeEdges() {
	edges, err := f.solver.Edges(f.particles, f.cfg.MaxDistance, f.cfg.EdgeOpacity, f.edges[:0])
	if err != nil {
		if !f.solverFailed {
			log.Printf("Pair solver failed, falling back to CPU: %v", err)
			f.solverFailed = true
		}
		f.solver = CPUSolver{}
		edges, _ = f.solver.Edges(f.particles, f.cfg.MaxDistance, f.cfg.EdgeOpacity, f.edges[:0])
	}
	f.edges = edges

	f.pointerEdges = f.pointerEdges[:0]
	if f.pointer.Present {
		f.pointerEdges = pointerEdges(f.particles, f.pointer.X, f.pointer.Y,
			f.cfg.MaxDistance*f.cfg.PointerScale, f.cfg.PointerOpacity, f.pointerEdges)
	}
}

// Render paints the current state: clear, particle fills, particle edges,
// then pointer edges so lines sit on top of the fills.
func (f *Field) Render(s Surface) {
	s.Clear()
	for i := range f.particles {
		p := &f.particles[i]
		s.FillCircle(p.X, p.Y, p.Radius, p.Color())
	}
	for _, e := range f.edges {
		s.StrokeLine(e.X0, e.Y0, e.X1, e.Y1, f.cfg.EdgeWidth, withOpacity(f.cfg.EdgeColor, e.Opacity))
	}
	for _, e := range f.pointerEdges {
		s.StrokeLine(e.X0, e.Y0, e.X1, e.Y1, f.cfg.PointerWidth, withOpacity(f.cfg.PointerColor, e.Opacity))
	}
}

// Tick is one animation frame: Step followed by Render.
func (f *Field) Tick(s Surface) {
	f.Step()
	f.Render(s)
}

// withOpacity returns c scaled to the given alpha as a non-premultiplied
// colour.
func withOpacity(c color.RGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(opacity*float64(c.A) + 0.5)}
}
