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

import "math"

var gradientCases = []TestCase{
	{
		Name:   "horizontal",
		Width:  80,
		Height: 40,
		Shade: func(x, y int) uint8 {
			return lerp(0, 255, float64(x)/79)
		},
	},
	{
		Name:   "vertical",
		Width:  40,
		Height: 80,
		Shade: func(x, y int) uint8 {
			return lerp(255, 0, float64(y)/79)
		},
	},
	{
		Name:   "radial",
		Width:  60,
		Height: 60,
		Shade: func(x, y int) uint8 {
			d := math.Hypot(float64(x)-29.5, float64(y)-29.5)
			return lerp(0, 255, d/42)
		},
	},
	{
		// steps at the tier boundaries of the default settings
		Name:   "steps",
		Width:  60,
		Height: 20,
		Shade: func(x, y int) uint8 {
			levels := [...]uint8{255, 240, 200, 150, 100, 40}
			return levels[x/10]
		},
	},
}
