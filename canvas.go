// seehuhn.de/go/stipple - turn grayscale images into animated dot drawings
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package stipple

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/stipple/raster"
)

// CanvasOptions control how dots are drawn.
type CanvasOptions struct {
	// PixelsPerUnit is the number of output pixels per buffer pixel.
	PixelsPerUnit float64

	// Margin is the blank border around the drawing, in buffer units.
	Margin float64

	// DotRadius is the radius of a dot of size 1, in buffer units.
	DotRadius float64

	// Alpha is the opacity of a dot, in (0, 1].
	Alpha float64

	// Background is the gray level of the empty canvas.
	Background uint8
}

// DefaultCanvasOptions returns white paper, a 5 unit margin and slightly
// translucent dots.
func DefaultCanvasOptions() CanvasOptions {
	return CanvasOptions{
		PixelsPerUnit: 4,
		Margin:        5,
		DotRadius:     0.5,
		Alpha:         0.8,
		Background:    255,
	}
}

// Canvas is a grayscale drawing surface for frames of one DotSet.
//
// Draw only paints the dots which are new since the previous call, so a
// full animation costs time proportional to the number of dots. The final
// image is the same as drawing the last frame onto an empty canvas.
type Canvas struct {
	img   *image.Gray
	opt   CanvasOptions
	r     *raster.Rasteriser
	drawn int
}

// NewCanvas returns an empty canvas for a DotSet with a width×height
// normalized buffer.
func NewCanvas(width, height int, opt CanvasOptions) *Canvas {
	s := opt.PixelsPerUnit
	pw := int(math.Ceil((float64(width) + 2*opt.Margin) * s))
	ph := int(math.Ceil((float64(height) + 2*opt.Margin) * s))

	clip := rect.Rect{URx: float64(pw), URy: float64(ph)}
	r := raster.NewRasteriser(clip)
	// dot (x, y) marks the centre of buffer pixel (x, y)
	off := (opt.Margin + 0.5) * s
	r.CTM = matrix.Matrix{s, 0, 0, s, off, off}

	c := &Canvas{
		img: image.NewGray(image.Rect(0, 0, pw, ph)),
		opt: opt,
		r:   r,
	}
	c.Clear()
	return c
}

// Image returns the canvas image. It changes with each call to Draw.
func (c *Canvas) Image() *image.Gray {
	return c.img
}

// Drawn returns the number of dots painted so far.
func (c *Canvas) Drawn() int {
	return c.drawn
}

// Clear fills the canvas with the background.
func (c *Canvas) Clear() {
	for i := range c.img.Pix {
		c.img.Pix[i] = c.opt.Background
	}
	c.drawn = 0
}

// Draw brings the canvas up to date with f. If f reveals fewer dots than
// are already drawn, for example after the renderer was reset, the canvas
// is cleared and redrawn.
func (c *Canvas) Draw(f Frame) {
	if f.Revealed < c.drawn {
		c.Clear()
	}
	for _, d := range f.Dots[c.drawn:f.Revealed] {
		c.DrawDot(d)
	}
	c.drawn = f.Revealed
}

// DrawDot paints a single dot, without changing the Drawn count.
func (c *Canvas) DrawDot(d Dot) {
	shade := 255 * (1 - d.Darkness)
	alpha := float32(c.opt.Alpha)
	img := c.img
	c.r.FillCircle(vec.Vec2{X: d.X, Y: d.Y}, d.Size*c.opt.DotRadius, func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+xMin:]
		for i, cv := range coverage {
			a := float64(alpha * cv)
			row[i] = clampByte(float64(row[i])*(1-a) + shade*a)
		}
	})
}
