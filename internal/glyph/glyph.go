// Package glyph loads the monospace face used for the terminal text.
package glyph

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// NewMonoFace returns Go Mono at the given point size (72 DPI, so points
// equal pixels).
func NewMonoFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing mono font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %.0fpt mono face: %w", size, err)
	}
	return face, nil
}

// Baseline returns the offset from a line's top to its baseline that centres
// the face vertically inside lineHeight.
func Baseline(face font.Face, lineHeight float64) float64 {
	m := face.Metrics()
	ascent := float64(m.Ascent.Round())
	descent := float64(m.Descent.Round())
	return (lineHeight-(ascent+descent))/2 + ascent
}
