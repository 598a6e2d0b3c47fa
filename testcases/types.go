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

package testcases

import "image"

// TestCase is a synthetic grayscale scene.
type TestCase struct {
	Name   string               // lowercase a-z and _ only
	Width  int                  // image width in pixels
	Height int                  // image height in pixels
	Shade  func(x, y int) uint8 // gray level of pixel (x, y)
	ROI    image.Rectangle      // region of interest in image coordinates (empty means none)
}

// Image renders the scene.
func (tc TestCase) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	for y := range tc.Height {
		row := img.Pix[y*img.Stride:]
		for x := range tc.Width {
			row[x] = tc.Shade(x, y)
		}
	}
	return img
}

// HasROI reports whether the scene carries a region of interest.
func (tc TestCase) HasROI() bool {
	return !tc.ROI.Empty()
}

// flat returns a shading function with a constant gray level.
func flat(v uint8) func(x, y int) uint8 {
	return func(int, int) uint8 { return v }
}

// lerp maps t in [0, 1] linearly onto the gray levels [a, b].
func lerp(a, b uint8, t float64) uint8 {
	t = max(0, min(1, t))
	return uint8(float64(a) + t*(float64(b)-float64(a)) + 0.5)
}
