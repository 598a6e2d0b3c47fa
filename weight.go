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

// WeightMap holds one sampling weight per pixel of a normalized buffer,
// in row-major order. All weights are >= 0.
type WeightMap struct {
	Width  int
	Height int
	W      []float64
}

// At returns the weight of pixel (x, y).
func (m *WeightMap) At(x, y int) float64 {
	return m.W[y*m.Width+x]
}

// BuildWeightMap returns a w×h map with every cell set to base. If roi is
// not nil, it is mapped from source to buffer coordinates with s, clipped
// to the buffer, and the cells inside are multiplied by boost.
//
// Cells outside the region keep the base weight. The whole image stays
// covered; the region is emphasized through density only.
func BuildWeightMap(w, h int, roi *Rect, s Scale, base, boost float64) *WeightMap {
	m := &WeightMap{
		Width:  w,
		Height: h,
		W:      make([]float64, w*h),
	}
	for i := range m.W {
		m.W[i] = base
	}

	if roi == nil {
		return m
	}
	r := s.ToBuffer(*roi).Clamp(w, h)
	for y := r.Y; y < r.Y+r.Height; y++ {
		row := m.W[y*w+r.X : y*w+r.X+r.Width]
		for i := range row {
			row[i] *= boost
		}
	}
	return m
}
