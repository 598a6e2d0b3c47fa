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

// Package output writes stipple drawings in various file formats.
package output

import (
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"time"

	"seehuhn.de/go/stipple"
)

// WritePNG draws all dots of ds and writes the result as PNG.
func WritePNG(w io.Writer, ds *stipple.DotSet, opt stipple.CanvasOptions) error {
	c := stipple.NewCanvas(ds.Width, ds.Height, opt)
	c.Draw(stipple.Frame{Dots: ds.Dots, Revealed: ds.Len(), Total: ds.Len()})
	return png.Encode(w, c.Image())
}

// grayPalette maps palette index i to gray level i.
var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

// WriteGIF writes the progressive reveal of ds as an animated GIF, one
// image per renderer frame. delay is the time between frames; the final
// frame is held for a second.
func WriteGIF(w io.Writer, ds *stipple.DotSet, targetFrames int, opt stipple.CanvasOptions, delay time.Duration) error {
	c := stipple.NewCanvas(ds.Width, ds.Height, opt)
	r := stipple.NewRenderer(ds, targetFrames)

	centis := max(int(delay/(10*time.Millisecond)), 1)
	anim := &gif.GIF{LoopCount: -1}
	addFrame := func(d int) {
		src := c.Image()
		img := image.NewPaletted(src.Bounds(), grayPalette)
		copy(img.Pix, src.Pix)
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, d)
	}

	for {
		f, ok := r.NextFrame()
		if !ok {
			break
		}
		c.Draw(f)
		d := centis
		if f.Done {
			d = max(d, 100)
		}
		addFrame(d)
	}
	if len(anim.Image) == 0 {
		addFrame(100)
	}
	return gif.EncodeAll(w, anim)
}
