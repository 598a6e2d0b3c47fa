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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRectClamp(t *testing.T) {
	cases := []struct {
		in, want Rect
	}{
		{Rect{X: 2, Y: 3, Width: 4, Height: 5}, Rect{X: 2, Y: 3, Width: 4, Height: 5}},
		{Rect{X: -5, Y: -5, Width: 10, Height: 10}, Rect{X: 0, Y: 0, Width: 5, Height: 5}},
		{Rect{X: 8, Y: 8, Width: 10, Height: 10}, Rect{X: 8, Y: 8, Width: 2, Height: 2}},
		{Rect{X: 20, Y: 0, Width: 5, Height: 5}, Rect{X: 10, Y: 0, Width: 0, Height: 5}},
		{Rect{X: 1, Y: 1, Width: -3, Height: 2}, Rect{X: 1, Y: 1, Width: 0, Height: 2}},
	}
	for _, c := range cases {
		got := c.in.Clamp(10, 10)
		if d := cmp.Diff(got, c.want); d != "" {
			t.Errorf("Clamp(%v) mismatch (-got +want):\n%s", c.in, d)
		}
	}
	if !(Rect{X: 20, Width: 5, Height: 5}).Clamp(10, 10).Empty() {
		t.Error("rectangle outside the image is not empty after clamping")
	}
}

func TestRectClampHuge(t *testing.T) {
	cases := []struct {
		in, want Rect
	}{
		{
			Rect{X: 5, Y: 5, Width: math.MaxInt, Height: math.MaxInt},
			Rect{X: 5, Y: 5, Width: 15, Height: 15},
		},
		{
			Rect{X: math.MinInt, Y: math.MinInt, Width: math.MaxInt, Height: math.MaxInt},
			Rect{X: 0, Y: 0, Width: 0, Height: 0},
		},
		{
			Rect{X: -100, Y: 3, Width: math.MaxInt, Height: 4},
			Rect{X: 0, Y: 3, Width: 20, Height: 4},
		},
		{
			Rect{X: math.MaxInt, Y: 0, Width: math.MaxInt, Height: 5},
			Rect{X: 20, Y: 0, Width: 0, Height: 5},
		},
	}
	for _, c := range cases {
		got := c.in.Clamp(20, 20)
		if d := cmp.Diff(got, c.want); d != "" {
			t.Errorf("Clamp(%v) mismatch (-got +want):\n%s", c.in, d)
		}
	}

	r := Rect{X: 5, Y: 5, Width: math.MaxInt, Height: math.MaxInt}
	if !r.Contains(1e9, 1e9) {
		t.Error("point inside a huge rectangle not contained")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 5, Height: 5}
	inside := [][2]float64{{10, 20}, {15, 25}, {12.5, 22}, {15, 20}, {10, 25}}
	outside := [][2]float64{{9.99, 20}, {15.01, 25}, {12, 19.9}, {12, 25.1}}
	for _, p := range inside {
		if !r.Contains(p[0], p[1]) {
			t.Errorf("%v not inside %v", p, r)
		}
	}
	for _, p := range outside {
		if r.Contains(p[0], p[1]) {
			t.Errorf("%v inside %v", p, r)
		}
	}
}

func TestScale(t *testing.T) {
	s := ScaleBetween(300, 200, 150, 100)
	if s.X != 0.5 || s.Y != 0.5 {
		t.Fatalf("scale = %v", s)
	}

	got := s.ToBuffer(Rect{X: 101, Y: 51, Width: 99, Height: 3})
	want := Rect{X: 50, Y: 25, Width: 49, Height: 1}
	if d := cmp.Diff(got, want); d != "" {
		t.Errorf("ToBuffer mismatch (-got +want):\n%s", d)
	}

	x, y := s.ToSource(50.5, 25)
	if x != 101 || y != 50 {
		t.Errorf("ToSource = %g, %g", x, y)
	}
}
