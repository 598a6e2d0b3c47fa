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

var roiCases = []TestCase{
	{
		Name:   "centre",
		Width:  60,
		Height: 40,
		Shade:  flat(128),
		ROI:    image.Rect(20, 10, 40, 30),
	},
	{
		Name:   "corner",
		Width:  60,
		Height: 40,
		Shade: func(x, y int) uint8 {
			return lerp(40, 220, float64(x+y)/98)
		},
		ROI: image.Rect(0, 0, 15, 10),
	},
	{
		// partly outside the image
		Name:   "overhang",
		Width:  60,
		Height: 40,
		Shade:  flat(100),
		ROI:    image.Rect(50, 30, 90, 70),
	},
	{
		// larger source, so that the region is scaled to the buffer
		Name:   "scaled",
		Width:  300,
		Height: 200,
		Shade:  flat(90),
		ROI:    image.Rect(100, 50, 200, 150),
	},
}
