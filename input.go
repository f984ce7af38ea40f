package main

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"introfield/internal/pointer"
)

// enableWander hands the pointer to a scripted path for duration.
func (g *Game) enableWander(duration time.Duration, seed int64) {
	rng := rand.New(rand.NewSource(seed + 3))
	g.wander = pointer.NewWanderer(rng, float64(g.width), float64(g.height), wanderSpeed)
	g.wanderDeadline = time.Now().Add(duration)
}

// updatePointer feeds this frame's mouse and touch state to the field, or
// the scripted path while one is active.
func (g *Game) updatePointer() {
	if g.wander != nil {
		if time.Now().Before(g.wanderDeadline) {
			g.field.SetPointer(g.wander.Next(float64(g.width), float64(g.height)))
			return
		}
		g.wander = nil
		g.field.ClearPointer()
	}
	g.pointer.Apply(g.readInput(), g.field)
}

// readInput samples the cursor, active touches and touch releases.
func (g *Game) readInput() pointer.Sample {
	var s pointer.Sample
	s.Cursor.X, s.Cursor.Y = ebiten.CursorPosition()

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		s.Touches = append(s.Touches, pointer.Point{X: x, Y: y})
	}
	g.released = inpututil.AppendJustReleasedTouchIDs(g.released[:0])
	s.TouchEnded = len(g.released) > 0 && len(g.touchIDs) == 0
	return s
}

// handleDebugControls processes debug overlay hotkeys.
func (g *Game) handleDebugControls() {
	if !*debugFlag {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustStepsPerFrame(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustStepsPerFrame(1)
	}
}

// adjustStepsPerFrame clamps the per-frame field step count within bounds.
func (g *Game) adjustStepsPerFrame(delta int) {
	g.stepsPerFrame += delta
	if g.stepsPerFrame < minStepsPerFrame {
		g.stepsPerFrame = minStepsPerFrame
	} else if g.stepsPerFrame > maxStepsPerFrame {
		g.stepsPerFrame = maxStepsPerFrame
	}
}
