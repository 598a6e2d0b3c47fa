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

var shapeCases = []TestCase{
	{
		Name:   "disc",
		Width:  50,
		Height: 50,
		Shade: func(x, y int) uint8 {
			if math.Hypot(float64(x)-24.5, float64(y)-24.5) < 15 {
				return 0
			}
			return 255
		},
	},
	{
		Name:   "ring",
		Width:  50,
		Height: 50,
		Shade: func(x, y int) uint8 {
			d := math.Hypot(float64(x)-24.5, float64(y)-24.5)
			if d > 12 && d < 20 {
				return 30
			}
			return 255
		},
	},
	{
		Name:   "checker",
		Width:  64,
		Height: 48,
		Shade: func(x, y int) uint8 {
			if (x/8+y/8)%2 == 0 {
				return 20
			}
			return 235
		},
	},
	{
		Name:   "step_edge",
		Width:  40,
		Height: 40,
		Shade: func(x, y int) uint8 {
			if x < 20 {
				return 60
			}
			return 200
		},
	},
}
