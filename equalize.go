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

import "math"

// equalizeHist spreads the intensities of src over the full range using
// the cumulative histogram. A single-valued image is returned unchanged.
func equalizeHist(src *Gray) *Gray {
	var hist [256]int
	for _, v := range src.Pix {
		hist[v]++
	}

	total := len(src.Pix)
	lo := 0
	for hist[lo] == 0 {
		lo++
	}
	if hist[lo] == total {
		return src.Clone()
	}

	var lut [256]uint8
	scale := 255 / float64(total-hist[lo])
	cdf := 0
	for i := lo + 1; i < 256; i++ {
		cdf += hist[i]
		lut[i] = clampByte(float64(cdf) * scale)
	}

	dst := NewGray(src.Width, src.Height)
	for i, v := range src.Pix {
		dst.Pix[i] = lut[v]
	}
	return dst
}

// equalizeCLAHE applies contrast-limited adaptive histogram equalization.
//
// The buffer is split into a grid×grid arrangement of tiles. Each tile gets
// its own equalization table, built from a histogram whose bins are clipped
// at clipLimit times the uniform bin height, with the excess spread evenly
// over all bins. Every output pixel is a bilinear blend of the tables of
// the four tiles whose centres surround it.
func equalizeCLAHE(src *Gray, clipLimit float64, grid int) *Gray {
	w, h := src.Width, src.Height
	tx := min(grid, w)
	ty := min(grid, h)

	xs := tileEdges(w, tx)
	ys := tileEdges(h, ty)

	luts := make([][256]uint8, tx*ty)
	for j := range ty {
		for i := range tx {
			luts[j*tx+i] = tileLUT(src, xs[i], xs[i+1], ys[j], ys[j+1], clipLimit)
		}
	}

	tileW := float64(w) / float64(tx)
	tileH := float64(h) / float64(ty)

	dst := NewGray(w, h)
	for y := range h {
		fy := (float64(y)+0.5)/tileH - 0.5
		j0, j1, wy := neighbourTiles(fy, ty)
		for x := range w {
			fx := (float64(x)+0.5)/tileW - 0.5
			i0, i1, wx := neighbourTiles(fx, tx)

			v := src.Pix[y*w+x]
			top := (1-wx)*float64(luts[j0*tx+i0][v]) + wx*float64(luts[j0*tx+i1][v])
			bot := (1-wx)*float64(luts[j1*tx+i0][v]) + wx*float64(luts[j1*tx+i1][v])
			dst.Pix[y*w+x] = clampByte((1-wy)*top + wy*bot)
		}
	}
	return dst
}

// tileEdges splits [0,n) into k nearly equal intervals.
func tileEdges(n, k int) []int {
	edges := make([]int, k+1)
	for i := range edges {
		edges[i] = i * n / k
	}
	return edges
}

// neighbourTiles returns the two tile indices around the tile-space
// coordinate f, and the weight of the second one.
func neighbourTiles(f float64, n int) (int, int, float64) {
	i0 := int(math.Floor(f))
	frac := f - float64(i0)
	i1 := i0 + 1
	if i0 < 0 {
		i0, frac = 0, 0
	}
	if i1 > n-1 {
		i1 = n - 1
	}
	if i0 > n-1 {
		i0 = n - 1
	}
	return i0, i1, frac
}

// tileLUT builds the clipped equalization table for one tile.
func tileLUT(src *Gray, x0, x1, y0, y1 int, clipLimit float64) [256]uint8 {
	var hist [256]int
	for y := y0; y < y1; y++ {
		for _, v := range src.Pix[y*src.Width+x0 : y*src.Width+x1] {
			hist[v]++
		}
	}
	area := (x1 - x0) * (y1 - y0)

	limit := max(int(clipLimit*float64(area)/256), 1)
	excess := 0
	for i, c := range hist {
		if c > limit {
			excess += c - limit
			hist[i] = limit
		}
	}

	add := excess / 256
	rem := excess % 256
	for i := range hist {
		hist[i] += add
	}
	if rem > 0 {
		step := max(256/rem, 1)
		for i := 0; i < 256 && rem > 0; i += step {
			hist[i]++
			rem--
		}
	}

	var lut [256]uint8
	scale := 255 / float64(area)
	cdf := 0
	for i, c := range hist {
		cdf += c
		lut[i] = clampByte(float64(cdf) * scale)
	}
	return lut
}
