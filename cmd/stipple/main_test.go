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

package main

import (
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/stipple"
)

func TestParseRect(t *testing.T) {
	got, err := parseRect("10, 20,30,40")
	if err != nil {
		t.Fatal(err)
	}
	want := stipple.Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if d := cmp.Diff(got, want); d != "" {
		t.Errorf("parseRect mismatch (-got +want):\n%s", d)
	}

	for _, bad := range []string{"", "1,2,3", "1,2,3,x", "1,2,3,4,5"} {
		if _, err := parseRect(bad); err == nil {
			t.Errorf("parseRect(%q) succeeded", bad)
		}
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()

	img := image.NewGray(image.Rect(0, 0, 40, 30))
	for y := range 30 {
		for x := range 40 {
			img.Pix[y*img.Stride+x] = uint8(x * 6)
		}
	}
	in := filepath.Join(dir, "in.png")
	f, err := os.Create(in)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	jsonOut := filepath.Join(dir, "dots.json")
	pngOut := filepath.Join(dir, "dots.png")
	args := []string{
		"-i", in,
		"-dim", "40",
		"-dots", "100",
		"-seed", "7",
		"-roi", "0,0,10,10",
		"-json", jsonOut,
		"-png", pngOut,
	}
	if err := run(args); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(jsonOut)
	if err != nil {
		t.Fatal(err)
	}
	var res struct {
		Width int         `json:"width"`
		Dots  [][]float64 `json:"dots"`
	}
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatal(err)
	}
	if res.Width != 40 {
		t.Errorf("width = %d, want 40", res.Width)
	}
	if len(res.Dots) == 0 || len(res.Dots) > 100 {
		t.Errorf("got %d dots, want 1..100", len(res.Dots))
	}
	if _, err := os.Stat(pngOut); err != nil {
		t.Error(err)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	cases := [][]string{
		{},
		{"-i", filepath.Join(dir, "missing.png")},
		{"-i", "x.png", "-order", "sideways"},
		{"-i", "x.png", "-dots", "0"},
	}
	for _, args := range cases {
		if err := run(args); err == nil {
			t.Errorf("run(%q) succeeded", args)
		}
	}
}
