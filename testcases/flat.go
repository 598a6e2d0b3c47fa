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

var flatCases = []TestCase{
	{Name: "black", Width: 40, Height: 30, Shade: flat(0)},
	{Name: "white", Width: 40, Height: 30, Shade: flat(255)},
	{Name: "mid_gray", Width: 40, Height: 30, Shade: flat(128)},
	{Name: "light_gray", Width: 40, Height: 30, Shade: flat(220)},
	{Name: "tall", Width: 12, Height: 90, Shade: flat(64)},
	{Name: "single_pixel", Width: 1, Height: 1, Shade: flat(0)},
}
