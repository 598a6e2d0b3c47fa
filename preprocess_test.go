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
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/stipple/testcases"
)

// noFilters disables every pass after resizing.
func noFilters() PreprocessOptions {
	return PreprocessOptions{Equalization: EqualizeNone}
}

func TestNormalizeSize(t *testing.T) {
	cases := []struct {
		w, h, target int
		wantW, wantH int
	}{
		{300, 200, 150, 150, 100},
		{100, 300, 150, 50, 150},
		{150, 150, 150, 150, 150},
		{10, 10, 150, 150, 150},
		{1000, 1, 150, 150, 1},
		{3, 7, 10, 4, 10},
	}
	for _, c := range cases {
		out, err := Normalize(flatGray(c.w, c.h, 128), c.target, DefaultPreprocessOptions())
		if err != nil {
			t.Fatal(err)
		}
		if out.Width != c.wantW || out.Height != c.wantH {
			t.Errorf("%dx%d→%d: got %dx%d, want %dx%d",
				c.w, c.h, c.target, out.Width, out.Height, c.wantW, c.wantH)
		}
		if len(out.Pix) != out.Width*out.Height {
			t.Errorf("%dx%d: %d pixels", c.w, c.h, len(out.Pix))
		}
	}
}

func TestNormalizeErrors(t *testing.T) {
	if _, err := Normalize(&Gray{}, 150, DefaultPreprocessOptions()); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("zero-size image: got %v", err)
	}
	if _, err := Normalize(flatGray(4, 4, 0), 0, DefaultPreprocessOptions()); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero target: got %v", err)
	}
	opt := DefaultPreprocessOptions()
	opt.BlurSize = 4
	if _, err := Normalize(flatGray(4, 4, 0), 10, opt); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("even blur size: got %v", err)
	}
}

func TestNormalizeKeepsSource(t *testing.T) {
	src := GrayFromImage(testcases.All["shape"][0].Image())
	orig := src.Clone()
	if _, err := Normalize(src, 20, DefaultPreprocessOptions()); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(src, orig); d != "" {
		t.Errorf("source modified (-got +want):\n%s", d)
	}

	// no resize and no filters: a copy, not the source itself
	out, err := Normalize(src, src.Width, noFilters())
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(out, orig); d != "" {
		t.Errorf("identity normalization mismatch (-got +want):\n%s", d)
	}
	out.Pix[0] ^= 0xff
	if src.Pix[0] != orig.Pix[0] {
		t.Error("output shares pixels with source")
	}
}

func TestGaussianKernel(t *testing.T) {
	for _, size := range []int{3, 5, 7} {
		k := gaussianKernel(size)
		sum := 0.0
		for i, v := range k {
			sum += v
			if v != k[size-1-i] {
				t.Errorf("size %d: kernel not symmetric", size)
			}
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("size %d: sum %g", size, sum)
		}
		if slices.Max(k) != k[size/2] {
			t.Errorf("size %d: peak not at centre", size)
		}
	}
}

// TestGaussianKernelSize3 checks the 3-tap kernel against the weights
// of σ = 0.8, the value used for blur size 3.
func TestGaussianKernelSize3(t *testing.T) {
	k := gaussianKernel(3)
	want := []float64{0.23899, 0.52202, 0.23899}
	if len(k) != len(want) {
		t.Fatalf("kernel length %d, want %d", len(k), len(want))
	}
	for i := range want {
		if math.Abs(k[i]-want[i]) > 1e-4 {
			t.Errorf("k[%d] = %.5f, want %.5f", i, k[i], want[i])
		}
	}
}

func TestBlurFlat(t *testing.T) {
	src := flatGray(9, 7, 77)
	if d := cmp.Diff(gaussianBlur(src, 5), src); d != "" {
		t.Errorf("blur changed a flat image (-got +want):\n%s", d)
	}
}

func TestEqualizeHist(t *testing.T) {
	src := NewGray(16, 16)
	for i := range src.Pix {
		src.Pix[i] = uint8(100 + i%50)
	}
	out := equalizeHist(src)
	if lo, hi := slices.Min(out.Pix), slices.Max(out.Pix); lo != 0 || hi != 255 {
		t.Errorf("range after equalization [%d, %d], want [0, 255]", lo, hi)
	}
	for i := 1; i < len(src.Pix); i++ {
		a, b := src.Pix[i-1], src.Pix[i]
		if (a < b) != (out.Pix[i-1] < out.Pix[i]) && a != b {
			t.Fatalf("equalization is not monotone at %d", i)
		}
	}

	flat := flatGray(5, 5, 33)
	if d := cmp.Diff(equalizeHist(flat), flat); d != "" {
		t.Errorf("single-valued image changed (-got +want):\n%s", d)
	}
}

func TestEqualizeCLAHE(t *testing.T) {
	// low-contrast gradient
	src := NewGray(64, 64)
	for y := range 64 {
		for x := range 64 {
			src.Pix[y*64+x] = uint8(110 + (x+y)/8)
		}
	}
	out := equalizeCLAHE(src, 2, 8)
	inRange := int(slices.Max(src.Pix)) - int(slices.Min(src.Pix))
	outRange := int(slices.Max(out.Pix)) - int(slices.Min(out.Pix))
	if outRange <= inRange {
		t.Errorf("CLAHE did not increase contrast: %d → %d", inRange, outRange)
	}

	white := flatGray(20, 20, 255)
	if d := cmp.Diff(equalizeCLAHE(white, 2, 8), white); d != "" {
		t.Errorf("white image changed (-got +want):\n%s", d)
	}

	// more tiles than pixels
	tiny := flatGray(3, 2, 128)
	if out := equalizeCLAHE(tiny, 2, 8); out.Width != 3 || out.Height != 2 {
		t.Errorf("tiny image: got %dx%d", out.Width, out.Height)
	}
}

func TestCanny(t *testing.T) {
	var tc testcases.TestCase
	for _, c := range testcases.All["shape"] {
		if c.Name == "step_edge" {
			tc = c
		}
	}
	src := GrayFromImage(tc.Image())
	edges := canny(src, 50, 150)

	for y := 1; y < src.Height-1; y++ {
		found := false
		for x := range src.Width {
			switch edges.At(x, y) {
			case 255:
				if x < 18 || x > 21 {
					t.Errorf("edge at (%d, %d), far from the step", x, y)
				}
				found = true
			case 0:
			default:
				t.Errorf("edge map value %d at (%d, %d)", edges.At(x, y), x, y)
			}
		}
		if !found {
			t.Errorf("row %d: step not detected", y)
		}
	}

	if out := canny(flatGray(10, 10, 90), 50, 150); slices.Max(out.Pix) != 0 {
		t.Error("edges found in a flat image")
	}
}

func TestEdgeBlend(t *testing.T) {
	img := flatGray(2, 1, 100)
	edges := &Gray{Width: 2, Height: 1, Pix: []uint8{0, 255}}
	blendInto(img, edges, 0.2)
	want := []uint8{80, 131}
	if d := cmp.Diff(img.Pix, want); d != "" {
		t.Errorf("blend mismatch (-got +want):\n%s", d)
	}
}
