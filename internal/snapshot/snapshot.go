// Package snapshot renders frames off screen with gg so the intro can be
// exported as a PNG without opening a window.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Canvas is a gg-backed drawing surface. It satisfies field.Surface.
type Canvas struct {
	dc         *gg.Context
	background color.Color
}

// New returns a width x height canvas cleared to background.
func New(width, height int, background color.Color) *Canvas {
	c := &Canvas{dc: gg.NewContext(width, height), background: background}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	c.dc.SetColor(c.background)
	c.dc.Clear()
}

func (c *Canvas) FillCircle(x, y, r float64, clr color.Color) {
	c.dc.DrawCircle(x, y, r)
	c.dc.SetColor(clr)
	c.dc.Fill()
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x0, y0, x1, y1)
	c.dc.Stroke()
}

// DrawText draws s with its baseline at y.
func (c *Canvas) DrawText(s string, x, y float64, face font.Face, clr color.Color) {
	c.dc.SetFontFace(face)
	c.dc.SetColor(clr)
	c.dc.DrawString(s, x, y)
}

func (c *Canvas) Width() int  { return c.dc.Width() }
func (c *Canvas) Height() int { return c.dc.Height() }

func (c *Canvas) Image() image.Image { return c.dc.Image() }

// EncodePNG writes the current frame as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// SavePNG writes the current frame to path.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving snapshot %q: %w", path, err)
	}
	return nil
}
