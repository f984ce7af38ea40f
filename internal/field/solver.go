package field

import "math"

// Edge is a line segment drawn between two particles, or between a particle
// and the pointer.
type Edge struct {
	X0, Y0  float64
	X1, Y1  float64
	Opacity float64
}

// PairSolver computes the proximity graph among particles. Implementations
// append to dst and return it; every unordered pair closer than threshold
// yields exactly one edge with opacity clamp(base - d/threshold, 0, base).
type PairSolver interface {
	Edges(particles []Particle, threshold, base float64, dst []Edge) ([]Edge, error)
}

// CPUSolver scans all pairs on the calling goroutine.
type CPUSolver struct{}

func (CPUSolver) Edges(particles []Particle, threshold, base float64, dst []Edge) ([]Edge, error) {
	for i := range particles {
		dst = scanRow(particles, i, threshold, base, dst)
	}
	return dst, nil
}

// EdgeOpacity decays linearly from base at distance zero, clamped to
// [0, base]. Callers check d < threshold before drawing.
func EdgeOpacity(d, threshold, base float64) float64 {
	o := base - d/threshold
	if o < 0 {
		return 0
	}
	if o > base {
		return base
	}
	return o
}

// pointerEdges appends one edge per particle within threshold of (px, py).
func pointerEdges(particles []Particle, px, py, threshold, base float64, dst []Edge) []Edge {
	for i := range particles {
		p := &particles[i]
		d := math.Hypot(p.X-px, p.Y-py)
		if d >= threshold {
			continue
		}
		dst = append(dst, Edge{
			X0: p.X, Y0: p.Y,
			X1: px, Y1: py,
			Opacity: EdgeOpacity(d, threshold, base),
		})
	}
	return dst
}
