package field

import (
	"image/color"
	"math/rand"

	"github.com/crazy3lf/colorconv"
)

// Particle is one simulated point. Radius and velocity are fixed at spawn;
// position and hue change every step.
type Particle struct {
	X, Y   float64
	Radius float64
	VX, VY float64
	Hue    float64
}

const (
	hueWhiteBelow = 60
	hueGreenFrom  = 150
	hueWrapAbove  = 180
	hueWrapTo     = 120
)

var (
	particleWhite = color.RGBA{255, 255, 255, 255}
	particleGreen = hslColor(120, 0.75, 0.5)
)

// spawnParticle places a particle uniformly inside width x height with a
// radius in [1,3) and each velocity component in [-0.5,0.5).
func spawnParticle(rng *rand.Rand, width, height float64) Particle {
	return Particle{
		X:      rng.Float64() * width,
		Y:      rng.Float64() * height,
		Radius: rng.Float64()*2 + 1,
		VX:     rng.Float64() - 0.5,
		VY:     rng.Float64() - 0.5,
	}
}

// advance moves p by its velocity, steps its hue and reflects it off the
// [0,width] x [0,height] bounds.
func (p *Particle) advance(width, height, hueStep float64) {
	p.X += p.VX
	p.Y += p.VY
	p.Hue += hueStep
	if p.Hue > hueWrapAbove {
		p.Hue = hueWrapTo
	}
	p.X, p.VX = reflect(p.X, p.VX, width)
	p.Y, p.VY = reflect(p.Y, p.VY, height)
}

// reflect mirrors v back across whichever edge of [0,bound] it crossed and
// flips the velocity sign.
func reflect(v, vel, bound float64) (float64, float64) {
	switch {
	case v < 0:
		v, vel = -v, -vel
	case v > bound:
		v, vel = 2*bound-v, -vel
	default:
		return v, vel
	}
	// Only reachable when the bound is smaller than one step.
	if v < 0 {
		v = 0
	} else if v > bound {
		v = bound
	}
	return v, vel
}

// Color returns the fill colour for the particle's current hue: white below
// 60, a saturated hue-rotating colour up to 150, then a fixed green.
func (p Particle) Color() color.RGBA {
	switch {
	case p.Hue < hueWhiteBelow:
		return particleWhite
	case p.Hue < hueGreenFrom:
		return hslColor(p.Hue, 1, 0.5)
	default:
		return particleGreen
	}
}

func hslColor(h, s, l float64) color.RGBA {
	r, g, b, err := colorconv.HSLToRGB(h, s, l)
	if err != nil {
		return particleWhite
	}
	return color.RGBA{r, g, b, 255}
}
