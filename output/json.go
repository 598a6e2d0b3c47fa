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

package output

import (
	"encoding/json"
	"io"

	"seehuhn.de/go/stipple"
)

// jsonDotSet is the JSON form of a DotSet, for drawing surfaces outside
// of Go.
type jsonDotSet struct {
	Width        int         `json:"width"`
	Height       int         `json:"height"`
	SourceWidth  int         `json:"source_width"`
	SourceHeight int         `json:"source_height"`
	ROI          *jsonRect   `json:"roi,omitempty"`
	Dots         [][]float64 `json:"dots"` // x, y, darkness, size
}

type jsonRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// WriteJSON writes ds as indented JSON. Each dot is an array
// [x, y, darkness, size], in presentation order.
func WriteJSON(w io.Writer, ds *stipple.DotSet) error {
	out := jsonDotSet{
		Width:        ds.Width,
		Height:       ds.Height,
		SourceWidth:  ds.SourceWidth,
		SourceHeight: ds.SourceHeight,
		Dots:         make([][]float64, len(ds.Dots)),
	}
	if ds.ROI != nil {
		out.ROI = &jsonRect{
			X:      ds.ROI.X,
			Y:      ds.ROI.Y,
			Width:  ds.ROI.Width,
			Height: ds.ROI.Height,
		}
	}
	for i, d := range ds.Dots {
		out.Dots[i] = []float64{d.X, d.Y, d.Darkness, d.Size}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
