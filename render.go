package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenSurface adapts an ebiten image to the field's drawing interface.
type screenSurface struct {
	dst *ebiten.Image
	bg  color.Color
}

func (s screenSurface) Clear() { s.dst.Fill(s.bg) }

func (s screenSurface) FillCircle(x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), c, true)
}

func (s screenSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

// Draw renders the particle field, the terminal text on top of it and the
// optional debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.field.Render(screenSurface{dst: screen, bg: color.Black})
	g.drawTerminal(screen)

	if *debugFlag {
		fps := ebiten.ActualFPS()
		tps := ebiten.ActualTPS()
		if tps < 0 {
			tps = 0
		}
		st := g.field.Stats()
		stepMS := g.lastStep.Seconds() * 1000
		debugMsg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nParticles: %d  Edges: %d  Pointer: %d\nSteps/frame: %d (+/-)  Step: %.2f ms\nLines: %d/%d  State: %s",
			fps, tps, st.Particles, st.Edges, st.PointerEdges, g.stepsPerFrame, stepMS,
			len(g.stream.Lines()), g.stream.Capacity(), g.stream.State())
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// drawTerminal draws every buffered line that intersects the viewport.
func (g *Game) drawTerminal(screen *ebiten.Image) {
	lh := g.stream.LineHeight()
	for i, line := range g.stream.Lines() {
		top := g.stream.LineTop(i)
		if top+lh < 0 || top > float64(g.height) {
			continue
		}
		y := int(math.Round(top + g.baseline))
		text.Draw(screen, line, g.face, terminalMarginX, y, terminalColor)
	}
}

// Layout follows the window size so the field always covers the viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	g.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
