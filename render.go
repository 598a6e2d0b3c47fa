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

import (
	"context"
	"time"
)

// Phase is the state of a Renderer.
type Phase int

const (
	Rendering Phase = iota
	Complete
)

func (p Phase) String() string {
	if p == Complete {
		return "complete"
	}
	return "rendering"
}

// RenderState is a snapshot of a Renderer's progress.
type RenderState struct {
	Phase     Phase
	Revealed  int
	BatchSize int
	Total     int
}

// Frame is one step of the progressive reveal.
type Frame struct {
	// Dots is the revealed prefix of the DotSet. It must not be modified.
	Dots []Dot

	// Added holds the dots revealed by this step. It is a suffix of Dots.
	Added []Dot

	Revealed int
	Total    int
	Done     bool
}

// Progress returns the revealed fraction in [0, 1].
func (f Frame) Progress() float64 {
	if f.Total == 0 {
		return 1
	}
	return float64(f.Revealed) / float64(f.Total)
}

// Renderer reveals a DotSet in batches, one batch per call to NextFrame.
// The DotSet is only read; any number of renderers can share it.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	dots  *DotSet
	state RenderState

	// OnComplete, if set, is called exactly once when the renderer
	// reaches the Complete phase.
	OnComplete func()
	signalled  bool
}

// NewRenderer returns a renderer which reveals ds in about targetFrames
// steps: the batch size is max(1, ds.Len()/targetFrames).
// An empty set starts out complete.
func NewRenderer(ds *DotSet, targetFrames int) *Renderer {
	r := &Renderer{dots: ds}
	total := ds.Len()
	r.state.Total = total
	r.state.BatchSize = max(1, total/max(targetFrames, 1))
	r.Reset()
	return r
}

// Reset rewinds the renderer to the first frame. The following frames are
// identical to those of the previous pass.
func (r *Renderer) Reset() {
	r.state.Revealed = 0
	r.state.Phase = Rendering
	if r.state.Total == 0 {
		r.state.Phase = Complete
	}
	r.signalled = false
}

// State returns the current progress.
func (r *Renderer) State() RenderState {
	return r.state
}

// NextFrame advances by one batch and returns the new frame. Once the
// renderer is complete, NextFrame returns false. The frame that reveals
// the last dot has Done set.
func (r *Renderer) NextFrame() (Frame, bool) {
	if r.state.Phase == Complete {
		r.signalComplete()
		return Frame{}, false
	}

	prev := r.state.Revealed
	r.state.Revealed = min(prev+r.state.BatchSize, r.state.Total)

	dots := r.dots.Prefix(r.state.Revealed)
	f := Frame{
		Dots:     dots,
		Added:    dots[prev:],
		Revealed: r.state.Revealed,
		Total:    r.state.Total,
	}
	if r.state.Revealed == r.state.Total {
		r.state.Phase = Complete
		f.Done = true
		r.signalComplete()
	}
	return f, true
}

func (r *Renderer) signalComplete() {
	if r.signalled {
		return
	}
	r.signalled = true
	Logger().Debug("rendering complete", "dots", r.state.Total)
	if r.OnComplete != nil {
		r.OnComplete()
	}
}

// Animate calls draw with one frame per value received from ticks, until
// the renderer is complete. It returns early if ticks is closed, ctx is
// cancelled, or draw fails. Stopping early leaves the renderer where it
// was; a later call continues from there.
func (r *Renderer) Animate(ctx context.Context, ticks <-chan time.Time, draw func(Frame) error) error {
	for {
		if r.state.Phase == Complete {
			r.signalComplete()
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
		}
		f, ok := r.NextFrame()
		if !ok {
			return nil
		}
		if err := draw(f); err != nil {
			return err
		}
	}
}
