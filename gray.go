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
	"fmt"
	"image"
	"image/color"
)

// Gray is a grayscale pixel buffer in row-major order.
// Each byte is an intensity from 0 (black) to 255 (white).
// The row stride is always Width.
type Gray struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewGray allocates a buffer of the given size, filled with black.
func NewGray(width, height int) *Gray {
	return &Gray{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// GrayFromImage converts a decoded image to a Gray buffer.
func GrayFromImage(img image.Image) *Gray {
	b := img.Bounds()
	g := NewGray(b.Dx(), b.Dy())

	if src, ok := img.(*image.Gray); ok {
		for y := range g.Height {
			off := (y+b.Min.Y-src.Rect.Min.Y)*src.Stride + (b.Min.X - src.Rect.Min.X)
			copy(g.Pix[y*g.Width:(y+1)*g.Width], src.Pix[off:off+g.Width])
		}
		return g
	}

	for y := range g.Height {
		for x := range g.Width {
			c := color.GrayModel.Convert(img.At(x+b.Min.X, y+b.Min.Y)).(color.Gray)
			g.Pix[y*g.Width+x] = c.Y
		}
	}
	return g
}

// Validate reports ErrInvalidImage if the buffer has zero area or if the
// pixel slice does not match the dimensions.
func (g *Gray) Validate() error {
	if g == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidImage)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidImage, g.Width, g.Height)
	}
	if len(g.Pix) != g.Width*g.Height {
		return fmt.Errorf("%w: %d pixels for size %dx%d",
			ErrInvalidImage, len(g.Pix), g.Width, g.Height)
	}
	return nil
}

// At returns the intensity at (x, y).
func (g *Gray) At(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// Clone returns a deep copy of g.
func (g *Gray) Clone() *Gray {
	return &Gray{
		Width:  g.Width,
		Height: g.Height,
		Pix:    append([]uint8(nil), g.Pix...),
	}
}

// Image returns an *image.Gray sharing the pixel data of g.
func (g *Gray) Image() *image.Gray {
	return &image.Gray{
		Pix:    g.Pix,
		Stride: g.Width,
		Rect:   image.Rect(0, 0, g.Width, g.Height),
	}
}
