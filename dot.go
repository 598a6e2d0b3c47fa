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

// Dot is a single stipple mark in normalized buffer coordinates.
type Dot struct {
	X, Y     float64 // jittered pixel position
	Darkness float64 // (255 - intensity)/255, in [0, 1]
	Size     float64 // in [0.3, 1]; larger for darker pixels
}

// Dot size as an affine function of darkness.
const (
	sizeSlope  = 0.7
	sizeOffset = 0.3
)

// dotSize maps darkness to the relative size of a dot.
func dotSize(darkness float64) float64 {
	return darkness*sizeSlope + sizeOffset
}

// DotSet is the ordered result of a stippling run.
// A DotSet must not be modified after it has been returned by Generate;
// renderers and writers only read it.
type DotSet struct {
	// Dots in presentation order.
	Dots []Dot

	// Width and Height of the normalized buffer. Dot coordinates lie in
	// [-Jitter, Width-1+Jitter] × [-Jitter, Height-1+Jitter].
	Width, Height int

	// SourceWidth and SourceHeight of the image before resizing.
	SourceWidth, SourceHeight int

	// ROI is the region of interest in source coordinates, clipped to the
	// source image, or nil.
	ROI *Rect

	// Warning is non-nil if the run succeeded with a degenerate result.
	// Currently only ErrEmptyResult is used.
	Warning error
}

// Len returns the number of dots.
func (ds *DotSet) Len() int {
	return len(ds.Dots)
}

// Prefix returns the first n dots. The result has no spare capacity, so
// appending to it never overwrites the set.
func (ds *DotSet) Prefix(n int) []Dot {
	n = min(max(n, 0), len(ds.Dots))
	return ds.Dots[:n:n]
}

// Scale returns the mapping from source to buffer coordinates.
func (ds *DotSet) Scale() Scale {
	return ScaleBetween(ds.SourceWidth, ds.SourceHeight, ds.Width, ds.Height)
}
