package pointer

import (
	"math"
	"math/rand"
)

// Wanderer produces a scripted pointer path: straight runs in random
// headings, turning away from the viewport edges. It stands in for a user
// while profiling.
type Wanderer struct {
	rng    *rand.Rand
	speed  float64
	x, y   float64
	dirX   float64
	dirY   float64
	frames int
}

// NewWanderer starts a path at the centre of a width x height viewport.
func NewWanderer(rng *rand.Rand, width, height, speed float64) *Wanderer {
	return &Wanderer{
		rng:   rng,
		speed: speed,
		x:     width / 2,
		y:     height / 2,
	}
}

// Next advances the path by one frame inside the given bounds and returns
// the new position.
func (w *Wanderer) Next(width, height float64) (float64, float64) {
	for attempts := 0; attempts < 5; attempts++ {
		if w.frames <= 0 {
			w.randomizeDirection()
		}
		nx := w.x + w.dirX*w.speed
		ny := w.y + w.dirY*w.speed
		if nx >= 0 && nx <= width && ny >= 0 && ny <= height {
			w.x, w.y = nx, ny
			w.frames--
			return w.x, w.y
		}
		w.frames = 0
	}
	w.x = math.Min(math.Max(w.x, 0), width)
	w.y = math.Min(math.Max(w.y, 0), height)
	return w.x, w.y
}

func (w *Wanderer) randomizeDirection() {
	angle := w.rng.Float64() * 2 * math.Pi
	w.dirX = math.Cos(angle)
	w.dirY = math.Sin(angle)
	w.frames = 20 + w.rng.Intn(50)
}
