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

import "gonum.org/v1/gonum/stat"

// Summary describes a DotSet.
type Summary struct {
	Count        int
	MeanDarkness float64
	StdDarkness  float64
	MeanSize     float64
	InROI        int // dots which map into the region of interest
}

// Summarize computes a Summary of ds. All means are zero for an empty set.
func Summarize(ds *DotSet) Summary {
	s := Summary{Count: ds.Len()}
	if s.Count == 0 {
		return s
	}

	darkness := make([]float64, s.Count)
	size := make([]float64, s.Count)
	scale := ds.Scale()
	for i, d := range ds.Dots {
		darkness[i] = d.Darkness
		size[i] = d.Size
		if ds.ROI != nil {
			if x, y := scale.ToSource(d.X, d.Y); ds.ROI.Contains(x, y) {
				s.InROI++
			}
		}
	}

	s.MeanSize = stat.Mean(size, nil)
	if s.Count > 1 {
		s.MeanDarkness, s.StdDarkness = stat.MeanStdDev(darkness, nil)
	} else {
		s.MeanDarkness = darkness[0]
	}
	return s
}
