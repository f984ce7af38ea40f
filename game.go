package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"introfield/internal/click"
	"introfield/internal/field"
	"introfield/internal/glyph"
	"introfield/internal/pointer"
	"introfield/internal/typewriter"
)

// Game owns the particle field, the terminal stream, input state and the
// optional audio pipeline.
type Game struct {
	field  *field.Field
	stream *typewriter.Stream

	width  int
	height int

	face     font.Face
	baseline float64

	pointer  pointer.Tracker
	touchIDs []ebiten.TouchID
	released []ebiten.TouchID

	wander         *pointer.Wanderer
	wanderDeadline time.Time
	stopProfile    func()

	stepsPerFrame int
	lastStep      time.Duration

	edgeSolver *openCLEdgeSolver

	audioCtx    *audio.Context
	clicks      *click.Stream
	audioPlayer *audio.Player
}

// newGame constructs a fully initialized Game for a width x height viewport.
func newGame(width, height int, seed int64) *Game {
	face, err := glyph.NewMonoFace(terminalFontSize)
	if err != nil {
		log.Fatalf("Terminal font unavailable: %v", err)
	}
	rng := rand.New(rand.NewSource(seed))
	g := &Game{
		field:         field.New(fieldConfig(), float64(width), float64(height), rng),
		stream:        typewriter.New(streamConfig(), introScript, float64(height)),
		width:         width,
		height:        height,
		face:          face,
		baseline:      glyph.Baseline(face, lineHeight),
		stepsPerFrame: minStepsPerFrame,
	}
	if *workersFlag != 1 {
		g.field.SetSolver(field.NewParallelSolver(*workersFlag))
	}
	if *openCLFlag {
		if solver, err := newOpenCLEdgeSolver(); err != nil {
			log.Printf("OpenCL initialization failed, using CPU edges: %v", err)
		} else {
			log.Printf("OpenCL edge solver enabled (device: %s)", solver.DeviceName())
			g.edgeSolver = solver
			g.field.SetSolver(solver)
		}
	}
	if *enableAudioFlag {
		g.startAudio(rng)
	}
	g.stream.Start()
	return g
}

// Update advances the field and the terminal by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleDebugControls()
	g.updatePointer()

	start := time.Now()
	for i := 0; i < g.stepsPerFrame; i++ {
		g.field.Step()
	}
	g.lastStep = time.Since(start)

	g.stream.Advance(frameDuration())
	g.stream.Scroll()

	if g.stopProfile != nil && !g.wanderDeadline.IsZero() && time.Now().After(g.wanderDeadline) {
		g.stopProfile()
		g.stopProfile = nil
		log.Printf("Wrote %s", pgoOutputPath)
		return ebiten.Termination
	}
	return nil
}

// resize handles a viewport size change reported by Layout.
func (g *Game) resize(width, height int) {
	if width == g.width && height == g.height {
		return
	}
	g.width, g.height = width, height
	g.field.Resize(float64(width), float64(height))
	g.stream.Resize(float64(height))
}

// frameDuration is the wall time one Update represents.
func frameDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = defaultTPS
	}
	return time.Second / time.Duration(tps)
}

// close releases optional resources once the game loop has exited.
func (g *Game) close() {
	if g.edgeSolver != nil {
		g.edgeSolver.Close()
	}
	if g.audioPlayer != nil {
		_ = g.audioPlayer.Close()
	}
	if g.stopProfile != nil {
		g.stopProfile()
	}
}
