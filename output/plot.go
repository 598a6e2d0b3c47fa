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
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"seehuhn.de/go/stipple"
)

// WritePlot renders ds as a scatter plot and saves it to fileName. The
// format follows the file extension (png, svg, pdf, eps, ...).
//
// A dot of size s is drawn as a disc of area 30·s+2 square points, in
// gray level 1-Darkness.
func WritePlot(fileName string, ds *stipple.DotSet, width vg.Length, margin float64) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d dots", ds.Len())
	p.HideAxes()
	p.X.Min, p.X.Max = -margin, float64(ds.Width)+margin
	p.Y.Min, p.Y.Max = -margin, float64(ds.Height)+margin
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	if ds.Len() > 0 {
		xys := make(plotter.XYs, ds.Len())
		for i, d := range ds.Dots {
			xys[i] = plotter.XY{X: d.X, Y: d.Y}
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			d := ds.Dots[i]
			area := d.Size*30 + 2
			return draw.GlyphStyle{
				Color:  color.Gray{Y: uint8(math.Round(255 * (1 - d.Darkness)))},
				Radius: vg.Points(math.Sqrt(area / math.Pi)),
				Shape:  draw.CircleGlyph{},
			}
		}
		p.Add(sc)
	}

	aspect := (float64(ds.Height) + 2*margin) / (float64(ds.Width) + 2*margin)
	return p.Save(width, vg.Length(float64(width)*aspect), fileName)
}
