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

// Package stipple converts grayscale images into ordered sets of dots
// ("stipples") and reveals them progressively.
//
// The pipeline runs synchronously:
//
//	Normalize → BuildWeightMap → Sample → Order
//
// and produces a DotSet. A Renderer then turns the DotSet into a sequence
// of frames, each a longer prefix of the set, and a Canvas draws those
// frames into an image.
package stipple

import (
	"time"
)

// Engine runs the stippling pipeline with a fixed, validated Config.
// An Engine holds no per-run state and can be reused.
type Engine struct {
	cfg Config
}

// NewEngine validates cfg and returns an engine using it.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Tiers = append([]Tier(nil), cfg.Tiers...)
	return &Engine{cfg: cfg}, nil
}

// Config returns a copy of the engine's configuration.
func (e *Engine) Config() Config {
	cfg := e.cfg
	cfg.Tiers = append([]Tier(nil), e.cfg.Tiers...)
	return cfg
}

// Generate converts src into a DotSet. roi, if not nil, is a region of
// interest in src coordinates; it is clipped to the image. src is not
// modified.
//
// A result without dots is not an error. In this case the DotSet is
// empty and its Warning field is ErrEmptyResult.
func (e *Engine) Generate(src *Gray, roi *Rect) (*DotSet, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	log := Logger()
	start := time.Now()

	if roi != nil {
		r := roi.Clamp(src.Width, src.Height)
		if r.Empty() {
			log.Debug("region of interest outside image, ignored", "roi", *roi)
			roi = nil
		} else {
			roi = &r
		}
	}

	buf, err := Normalize(src, e.cfg.TargetMaxDimension, e.cfg.Preprocess)
	if err != nil {
		return nil, err
	}
	scale := ScaleBetween(src.Width, src.Height, buf.Width, buf.Height)
	log.Debug("normalized",
		"width", buf.Width, "height", buf.Height,
		"elapsed", time.Since(start))

	wm := BuildWeightMap(buf.Width, buf.Height, roi, scale, e.cfg.BaseWeight, e.cfg.ROIBoost)

	candidates := Sample(buf, wm, e.cfg.sampleParams())
	log.Debug("sampled", "candidates", len(candidates), "elapsed", time.Since(start))

	dots := Order(candidates, roi, scale, OrderOptions{
		Ordering:  e.cfg.Ordering,
		MaxDots:   e.cfg.MaxDots,
		ROIFactor: e.cfg.ROIPriorityFactor,
		Seed:      e.cfg.RandomSeed,
	})

	ds := &DotSet{
		Dots:         dots,
		Width:        buf.Width,
		Height:       buf.Height,
		SourceWidth:  src.Width,
		SourceHeight: src.Height,
		ROI:          roi,
	}
	if len(dots) == 0 {
		ds.Warning = ErrEmptyResult
		log.Warn("no dots generated", "width", buf.Width, "height", buf.Height)
		return ds, nil
	}

	sum := Summarize(ds)
	log.Info("generated dots",
		"dots", sum.Count,
		"candidates", len(candidates),
		"in_roi", sum.InROI,
		"mean_darkness", sum.MeanDarkness,
		"ordering", e.cfg.Ordering,
		"elapsed", time.Since(start))
	return ds, nil
}

// GenerateDetected asks d for a region of interest and then calls
// Generate. A nil detector, or one that finds nothing, means no region.
func (e *Engine) GenerateDetected(src *Gray, d Detector) (*DotSet, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	var roi *Rect
	if d != nil {
		if r, ok := d.Detect(src); ok {
			roi = &r
			Logger().Debug("region of interest detected", "roi", r)
		}
	}
	return e.Generate(src, roi)
}

// Renderer returns a renderer for ds using the configured frame count.
func (e *Engine) Renderer(ds *DotSet) *Renderer {
	return NewRenderer(ds, e.cfg.TargetFrameCount)
}
