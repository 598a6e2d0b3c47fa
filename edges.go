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

// canny returns a binary edge map (0 or 255) of src.
//
// Gradients come from 3×3 Sobel operators, with the L1 norm as magnitude.
// Non-maximum suppression thins ridges along the gradient direction,
// quantized to four orientations. Pixels above high seed edges, which then
// grow through 8-connected pixels above low.
func canny(src *Gray, low, high int) *Gray {
	w, h := src.Width, src.Height
	px := func(x, y int) int {
		x = min(max(x, 0), w-1)
		y = min(max(y, 0), h-1)
		return int(src.Pix[y*w+x])
	}

	gx := make([]int, w*h)
	gy := make([]int, w*h)
	mag := make([]int, w*h)
	for y := range h {
		for x := range w {
			dx := px(x+1, y-1) + 2*px(x+1, y) + px(x+1, y+1) -
				px(x-1, y-1) - 2*px(x-1, y) - px(x-1, y+1)
			dy := px(x-1, y+1) + 2*px(x, y+1) + px(x+1, y+1) -
				px(x-1, y-1) - 2*px(x, y-1) - px(x+1, y-1)
			i := y*w + x
			gx[i], gy[i] = dx, dy
			mag[i] = absInt(dx) + absInt(dy)
		}
	}

	magAt := func(x, y int) int {
		if x < 0 || x >= w || y < 0 || y >= h {
			return 0
		}
		return mag[y*w+x]
	}

	const (
		notEdge = iota
		weak
		strong
	)
	class := make([]uint8, w*h)
	var stack []int
	for y := range h {
		for x := range w {
			i := y*w + x
			m := mag[i]
			if m <= low {
				continue
			}

			// tan(22.5°) ≈ 0.4142, tan(67.5°) ≈ 2.4142
			ax, ay := absInt(gx[i]), absInt(gy[i])
			var n1, n2 int
			switch {
			case ay*10000 < ax*4142:
				n1, n2 = magAt(x-1, y), magAt(x+1, y)
			case ay*10000 > ax*24142:
				n1, n2 = magAt(x, y-1), magAt(x, y+1)
			case (gx[i] < 0) == (gy[i] < 0):
				n1, n2 = magAt(x-1, y-1), magAt(x+1, y+1)
			default:
				n1, n2 = magAt(x+1, y-1), magAt(x-1, y+1)
			}
			if m <= n1 || m < n2 {
				continue
			}

			if m > high {
				class[i] = strong
				stack = append(stack, i)
			} else {
				class[i] = weak
			}
		}
	}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%w, i/w
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				xx, yy := x+dx, y+dy
				if xx < 0 || xx >= w || yy < 0 || yy >= h {
					continue
				}
				j := yy*w + xx
				if class[j] == weak {
					class[j] = strong
					stack = append(stack, j)
				}
			}
		}
	}

	dst := NewGray(w, h)
	for i, c := range class {
		if c == strong {
			dst.Pix[i] = 255
		}
	}
	return dst
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
