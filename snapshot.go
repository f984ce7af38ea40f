package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"strings"
	"time"

	"introfield/internal/field"
	"introfield/internal/glyph"
	"introfield/internal/snapshot"
	"introfield/internal/typewriter"
)

// parseSize reads a WIDTHxHEIGHT pair.
func parseSize(s string) (int, int, error) {
	var width, height int
	if _, err := fmt.Sscanf(strings.ToLower(s), "%dx%d", &width, &height); err != nil {
		return 0, 0, fmt.Errorf("parsing size %q: %w", s, err)
	}
	if width < 1 || height < 1 {
		return 0, 0, fmt.Errorf("size %q must be positive", s)
	}
	return width, height, nil
}

// runSnapshot simulates ticks frames at the default tick rate without a
// window and writes the final frame to path.
func runSnapshot(path string, width, height, ticks int, seed int64) error {
	face, err := glyph.NewMonoFace(terminalFontSize)
	if err != nil {
		return err
	}
	defer face.Close()

	f := field.New(fieldConfig(), float64(width), float64(height), rand.New(rand.NewSource(seed)))
	if *workersFlag != 1 {
		f.SetSolver(field.NewParallelSolver(*workersFlag))
	}
	stream := typewriter.New(streamConfig(), introScript, float64(height))
	stream.Start()

	frame := time.Second / defaultTPS
	start := time.Now()
	for i := 0; i < ticks; i++ {
		f.Step()
		stream.Advance(frame)
		stream.Scroll()
	}

	canvas := snapshot.New(width, height, color.Black)
	f.Render(canvas)
	baseline := glyph.Baseline(face, lineHeight)
	for i, line := range stream.Lines() {
		canvas.DrawText(line, terminalMarginX, stream.LineTop(i)+baseline, face, terminalColor)
	}
	if err := canvas.SavePNG(path); err != nil {
		return err
	}
	st := f.Stats()
	log.Printf("Wrote %s (%dx%d, %d ticks in %v, %d edges, %d lines)",
		path, width, height, ticks, time.Since(start).Round(time.Millisecond), st.Edges, len(stream.Lines()))
	return nil
}
