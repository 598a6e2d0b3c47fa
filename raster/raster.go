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

// Package raster computes anti-aliased pixel coverage for small filled
// shapes, such as the round marks of a stipple drawing.
package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// segment is a non-horizontal line segment in device coordinates.
type segment struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser converts filled paths to per-pixel coverage in [0, 1].
// Internal buffers grow as needed and are reused, so that filling many
// small shapes does not allocate in steady state.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip limits output to this device rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in device pixels.
	// Must be positive.
	Flatness float64

	segs       []segment
	cover      []float32 // signed height crossed in each pixel; becomes the output
	area       []float32 // cover weighted by the uncovered part of the pixel
	rowHasSegs []bool
	circle     pathBuf
	bboxEmpty  bool
	bboxX0     float64
	bboxX1     float64
	bboxY0     float64
	bboxY1     float64
}

// defaultFlatness is below the threshold of visual perception.
const defaultFlatness = 0.25

// horizontalThreshold is the minimal vertical extent of a segment.
// Flatter segments do not contribute coverage.
const horizontalThreshold = 1e-10

// NewRasteriser returns a Rasteriser with identity CTM and the given clip
// rectangle.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset restores the defaults with a new clip rectangle, keeping the
// allocated buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.segs = r.segs[:0]
}

// FillNonZero fills p using the nonzero winding rule. emit is called once
// per row with any coverage; its slice is only valid during the call.
func (r *Rasteriser) FillNonZero(p path.Path, emit func(y, xMin int, coverage []float32)) {
	x0, x1, y0, y1, ok := r.collect(p)
	if !ok {
		return
	}
	r.fill(x0, x1, y0, y1, emit)
}

// FillCircle fills the disc of radius rad around c, given in user space.
func (r *Rasteriser) FillCircle(c vec.Vec2, rad float64, emit func(y, xMin int, coverage []float32)) {
	if !(rad > 0) {
		return
	}
	r.FillNonZero(appendCircle(&r.circle, c, rad).Path(), emit)
}

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498

// appendCircle resets d to a circle made of four cubic arcs.
func appendCircle(d *pathBuf, c vec.Vec2, rad float64) *pathBuf {
	d.cmds = d.cmds[:0]
	d.coords = d.coords[:0]
	k := kappa * rad
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: c.X + x, Y: c.Y + y} }
	return d.MoveTo(pt(rad, 0)).
		CubeTo(pt(rad, k), pt(k, rad), pt(0, rad)).
		CubeTo(pt(-k, rad), pt(-rad, k), pt(-rad, 0)).
		CubeTo(pt(-rad, -k), pt(-k, -rad), pt(0, -rad)).
		CubeTo(pt(k, -rad), pt(rad, -k), pt(rad, 0)).
		Close()
}

// pathBuf stores a path as flat command and point lists, so that its
// storage can be reused.
type pathBuf struct {
	cmds   []path.Command
	coords []vec.Vec2
}

func (d *pathBuf) MoveTo(p vec.Vec2) *pathBuf {
	d.cmds = append(d.cmds, path.CmdMoveTo)
	d.coords = append(d.coords, p)
	return d
}

func (d *pathBuf) LineTo(p vec.Vec2) *pathBuf {
	d.cmds = append(d.cmds, path.CmdLineTo)
	d.coords = append(d.coords, p)
	return d
}

func (d *pathBuf) QuadTo(p1, p2 vec.Vec2) *pathBuf {
	d.cmds = append(d.cmds, path.CmdQuadTo)
	d.coords = append(d.coords, p1, p2)
	return d
}

func (d *pathBuf) CubeTo(p1, p2, p3 vec.Vec2) *pathBuf {
	d.cmds = append(d.cmds, path.CmdCubeTo)
	d.coords = append(d.coords, p1, p2, p3)
	return d
}

func (d *pathBuf) Close() *pathBuf {
	d.cmds = append(d.cmds, path.CmdClose)
	return d
}

// Path returns an iterator over the segments of d. The point slices
// alias the storage of d.
func (d *pathBuf) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		k := 0
		for _, cmd := range d.cmds {
			n := pointCount(cmd)
			if !yield(cmd, d.coords[k:k+n]) {
				return
			}
			k += n
		}
	}
}

// pointCount gives the number of points a command consumes.
func pointCount(cmd path.Command) int {
	switch cmd {
	case path.CmdMoveTo, path.CmdLineTo:
		return 1
	case path.CmdQuadTo:
		return 2
	case path.CmdCubeTo:
		return 3
	default:
		return 0
	}
}

// collect flattens p into device-space segments and returns their
// integer bounding box, clipped.
func (r *Rasteriser) collect(p path.Path) (x0, x1, y0, y1 int, ok bool) {
	r.segs = r.segs[:0]
	r.bboxEmpty = true
	if p == nil {
		return 0, 0, 0, 0, false
	}

	var cur, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			cur = pts[0]
			start = cur
		case path.CmdLineTo:
			r.addSegment(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			r.flattenQuad(cur, pts[0], pts[1])
			cur = pts[1]
		case path.CmdCubeTo:
			r.flattenCube(cur, pts[0], pts[1], pts[2])
			cur = pts[2]
		case path.CmdClose:
			if cur != start {
				r.addSegment(cur, start)
			}
			cur = start
		}
	}
	if len(r.segs) == 0 {
		return 0, 0, 0, 0, false
	}

	x0 = max(int(math.Floor(r.bboxX0)), int(r.Clip.LLx))
	x1 = min(int(math.Floor(r.bboxX1))+1, int(r.Clip.URx))
	y0 = max(int(math.Floor(r.bboxY0)), int(r.Clip.LLy))
	y1 = min(int(math.Floor(r.bboxY1))+1, int(r.Clip.URy))
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0, false
	}
	return x0, x1, y0, y1, true
}

// device applies the CTM to a user-space point.
func (r *Rasteriser) device(p vec.Vec2) (float64, float64) {
	m := r.CTM
	return m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]
}

// linear applies the CTM without its translation.
func (r *Rasteriser) linear(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}
}

func (r *Rasteriser) addSegment(a, b vec.Vec2) {
	x0, y0 := r.device(a)
	x1, y1 := r.device(b)

	if r.bboxEmpty {
		r.bboxX0, r.bboxX1 = min(x0, x1), max(x0, x1)
		r.bboxY0, r.bboxY1 = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
	} else {
		r.bboxX0 = min(r.bboxX0, x0, x1)
		r.bboxX1 = max(r.bboxX1, x0, x1)
		r.bboxY0 = min(r.bboxY0, y0, y1)
		r.bboxY1 = max(r.bboxY1, y0, y1)
	}

	dy := y1 - y0
	if math.Abs(dy) < horizontalThreshold {
		return
	}
	r.segs = append(r.segs, segment{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})
}

// flattenQuad approximates a quadratic Bézier by line segments, with the
// tolerance measured in device space.
func (r *Rasteriser) flattenQuad(p0, p1, p2 vec.Vec2) {
	dev := r.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addSegment(prev, pt)
		prev = pt
	}
}

// flattenCube approximates a cubic Bézier by line segments. The number of
// segments follows Wang's formula.
func (r *Rasteriser) flattenCube(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addSegment(prev, pt)
		prev = pt
	}
}

// fill accumulates all segments into a 2D cover/area buffer spanning the
// bounding box, then integrates and emits each touched row.
//
// A segment crossing a pixel adds its signed vertical extent to cover, and
// the same value weighted by the horizontal distance to the right pixel
// edge to area. Summing cover from the left and adding area gives the
// signed covered fraction of each pixel.
func (r *Rasteriser) fill(x0, x1, y0, y1 int, emit func(y, xMin int, coverage []float32)) {
	w := x1 - x0
	h := y1 - y0
	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	r.rowHasSegs = slices.Grow(r.rowHasSegs[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.rowHasSegs)

	for i := range r.segs {
		s := &r.segs[i]
		top := max(int(math.Floor(min(s.y0, s.y1))), y0)
		bot := min(int(math.Floor(max(s.y0, s.y1)))+1, y1)
		for y := top; y < bot; y++ {
			row := (y - y0) * w
			accumulate(s, y, r.cover[row:row+w], r.area[row:row+w], x0, x1)
			r.rowHasSegs[y-y0] = true
		}
	}

	for j := range h {
		if !r.rowHasSegs[j] {
			continue
		}
		row := j * w
		cov := r.cover[row : row+w]
		integrateNonZero(cov, r.area[row:row+w])
		if lo, hi := nonZeroRange(cov); lo < hi {
			emit(y0+j, x0+lo, cov[lo:hi])
		}
	}
}

// accumulate adds the part of s inside scanline y to cover and area, which
// are indexed from xMin. Contributions left of xMin go to the first pixel
// as full coverage; those right of xMax are dropped.
func accumulate(s *segment, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), min(s.y0, s.y1))
	yBot := min(float64(y+1), max(s.y0, s.y1))
	if yBot <= yTop {
		return
	}
	sign := float32(1)
	if s.y1 < s.y0 {
		sign = -1
	}

	xa := s.x0 + s.dxdy*(yTop-s.y0)
	xb := s.x0 + s.dxdy*(yBot-s.y0)
	pxL := int(math.Floor(min(xa, xb)))
	pxR := int(math.Floor(max(xa, xb)))

	add := func(px int, yA, yB float64) {
		c := sign * float32(yB-yA)
		switch {
		case px < xMin:
			cover[0] += c
			area[0] += c
		case px < xMax:
			xm := s.x0 + s.dxdy*((yA+yB)/2-s.y0)
			frac := xm - float64(px)
			cover[px-xMin] += c
			area[px-xMin] += c * float32(1-frac)
		}
	}

	if pxL == pxR {
		add(pxL, yTop, yBot)
		return
	}

	// split at pixel column boundaries
	dydx := 1 / s.dxdy
	for px := pxL; px <= pxR; px++ {
		ya := s.y0 + dydx*(float64(px)-s.x0)
		yb := s.y0 + dydx*(float64(px+1)-s.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi > lo {
			add(px, lo, hi)
		}
	}
}

// integrateNonZero turns accumulated cover/area into coverage values,
// in place in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// nonZeroRange returns the half-open index range outside of which cov is
// zero. lo == hi if all values are zero.
func nonZeroRange(cov []float32) (lo, hi int) {
	hi = len(cov)
	for lo < hi && cov[lo] == 0 {
		lo++
	}
	for hi > lo && cov[hi-1] == 0 {
		hi--
	}
	return lo, hi
}
