package main

import (
	"image/color"
	"time"

	"introfield/internal/field"
	"introfield/internal/typewriter"
)

// Build-time configuration for the intro screen. These values define the
// particle field, the terminal stream timing and the optional audio and
// profiling behaviour.
const (
	windowWidth, windowHeight = 1280, 720
	windowTitle               = "Intro"
	defaultTPS                = 60
	particleCount             = 120
	maxDistance               = 240
	pointerDistanceScale      = 1.5
	hueStep                   = 0.2
	edgeBaseOpacity           = 0.85
	lineHeight                = 24
	charDelay                 = 10 * time.Millisecond
	linePause                 = 40 * time.Millisecond
	scrollSpeed               = 0.3
	scrollBaseOffset          = -lineHeight
	terminalFontSize          = 16
	terminalMarginX           = 24
	minStepsPerFrame          = 1
	maxStepsPerFrame          = 8
	wanderSpeed               = 6
	pgoRecordDuration         = 15 * time.Second
	pgoOutputPath             = "default.pgo"
	audioSampleRate           = 48000
	audioBufferDuration       = 80 * time.Millisecond
	clickLength               = 12 * time.Millisecond
	clickGain                 = 0.25
)

var terminalColor = color.RGBA{50, 205, 50, 255}

// introScript is replayed line by line, forever.
var introScript = []string{
	"function welcome() {",
	"    console.log('Welcome to my site!');",
	"}",
	"welcome();",
	"",
	"const message = 'Explore my projects and learn more about me';",
	"alert(message);",
	"// Loading...",
	"// Connecting to server...",
	"// Fetching latest projects...",
	"// Loading AI model...",
	"// Initializing UI renderer...",
	"// Done.",
}

func fieldConfig() field.Config {
	cfg := field.DefaultConfig()
	cfg.Count = particleCount
	cfg.MaxDistance = maxDistance
	cfg.PointerScale = pointerDistanceScale
	cfg.HueStep = hueStep
	cfg.EdgeOpacity = edgeBaseOpacity
	return cfg
}

func streamConfig() typewriter.Config {
	return typewriter.Config{
		LineHeight:  lineHeight,
		CharDelay:   charDelay,
		LinePause:   linePause,
		ScrollSpeed: scrollSpeed,
		BaseOffset:  scrollBaseOffset,
		Prompt:      "> ",
	}
}
