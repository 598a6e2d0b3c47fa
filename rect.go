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

// Rect is an axis-aligned rectangle in pixel coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the number of pixels covered by r.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Clamp clips r to the image rectangle [0,w)×[0,h).
// The result may be empty. Arbitrarily large rectangles are clipped
// without integer overflow.
func (r Rect) Clamp(w, h int) Rect {
	x, width := clampSpan(r.X, r.Width, w)
	y, height := clampSpan(r.Y, r.Height, h)
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// clampSpan clips the interval [pos, pos+size) to [0, n).
func clampSpan(pos, size, n int) (int, int) {
	lo := min(max(pos, 0), n)
	if size <= 0 {
		return lo, 0
	}
	hi := n
	if pos < 0 {
		// pos+size cannot overflow here
		hi = min(pos+size, n)
	} else if size < n-pos {
		hi = pos + size
	}
	return lo, max(hi-lo, 0)
}

// Contains reports whether the point (x, y) lies inside r.
// All four edges count as inside.
func (r Rect) Contains(x, y float64) bool {
	x0, y0 := float64(r.X), float64(r.Y)
	return x0 <= x && x <= x0+float64(r.Width) &&
		y0 <= y && y <= y0+float64(r.Height)
}

// Scale is the per-axis ratio between the normalized buffer and the
// source image it was resized from.
type Scale struct {
	X, Y float64
}

// ScaleBetween returns the scale mapping a srcW×srcH image onto a
// dstW×dstH buffer.
func ScaleBetween(srcW, srcH, dstW, dstH int) Scale {
	return Scale{
		X: float64(dstW) / float64(srcW),
		Y: float64(dstH) / float64(srcH),
	}
}

// ToBuffer maps a rectangle from source coordinates to buffer coordinates.
// Coordinates are truncated towards zero.
func (s Scale) ToBuffer(r Rect) Rect {
	return Rect{
		X:      int(float64(r.X) * s.X),
		Y:      int(float64(r.Y) * s.Y),
		Width:  int(float64(r.Width) * s.X),
		Height: int(float64(r.Height) * s.Y),
	}
}

// ToSource maps a point from buffer coordinates back to source coordinates.
func (s Scale) ToSource(x, y float64) (float64, float64) {
	return x / s.X, y / s.Y
}
