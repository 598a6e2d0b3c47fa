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

// Detector finds a region of interest, such as a face, in a source image.
// The rectangle is in the coordinates of the image passed in. A detector
// which finds nothing returns false.
type Detector interface {
	Detect(src *Gray) (Rect, bool)
}

// DetectorFunc adapts an ordinary function to the Detector interface.
type DetectorFunc func(src *Gray) (Rect, bool)

// Detect calls f(src).
func (f DetectorFunc) Detect(src *Gray) (Rect, bool) {
	return f(src)
}

// StaticDetector always reports the same rectangle.
type StaticDetector Rect

// Detect returns the stored rectangle, or false if it is empty.
func (d StaticDetector) Detect(*Gray) (Rect, bool) {
	r := Rect(d)
	return r, !r.Empty()
}

// Largest returns the rectangle of largest area. Detectors which find
// several candidates use it to pick one.
func Largest(rects []Rect) (Rect, bool) {
	best, found := Rect{}, false
	for _, r := range rects {
		if r.Empty() {
			continue
		}
		if !found || r.Area() > best.Area() {
			best, found = r, true
		}
	}
	return best, found
}
