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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/stipple"
)

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498

// WritePDF writes ds as a single-page vector PDF. One buffer unit is
// opt.PixelsPerUnit points. Dots are painted opaque, in presentation
// order, with the gray level 1-Darkness.
func WritePDF(fileName string, ds *stipple.DotSet, opt stipple.CanvasOptions) error {
	s := opt.PixelsPerUnit
	pageW := (float64(ds.Width) + 2*opt.Margin) * s
	pageH := (float64(ds.Height) + 2*opt.Margin) * s
	paper := &pdf.Rectangle{URx: pageW, URy: pageH}

	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(float64(opt.Background) / 255))
	page.Rectangle(0, 0, pageW, pageH)
	page.Fill()

	// PDF has its origin at the bottom left; dots use top-left.
	off := (opt.Margin + 0.5) * s
	page.Transform(matrix.Matrix{s, 0, 0, -s, off, pageH - off})

	for _, d := range ds.Dots {
		r := d.Size * opt.DotRadius
		k := kappa * r
		page.SetFillColor(color.DeviceGray(1 - d.Darkness))
		page.MoveTo(d.X+r, d.Y)
		page.CurveTo(d.X+r, d.Y+k, d.X+k, d.Y+r, d.X, d.Y+r)
		page.CurveTo(d.X-k, d.Y+r, d.X-r, d.Y+k, d.X-r, d.Y)
		page.CurveTo(d.X-r, d.Y-k, d.X-k, d.Y-r, d.X, d.Y-r)
		page.CurveTo(d.X+k, d.Y-r, d.X+r, d.Y-k, d.X+r, d.Y)
		page.ClosePath()
		page.Fill()
	}

	return page.Close()
}
