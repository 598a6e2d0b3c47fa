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
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func testDotSet(n int) *DotSet {
	return &DotSet{Dots: testDots(n), Width: 17, Height: n/17 + 1, SourceWidth: 17, SourceHeight: n/17 + 1}
}

// collectFrames runs r to completion.
func collectFrames(r *Renderer) []Frame {
	var frames []Frame
	for {
		f, ok := r.NextFrame()
		if !ok {
			return frames
		}
		frames = append(frames, f)
	}
}

func TestRendererBatches(t *testing.T) {
	cases := []struct {
		total, target int
		batch, frames int
	}{
		{1000, 200, 5, 200},
		{1001, 200, 5, 201},
		{50, 200, 1, 50},
		{7, 3, 2, 4},
		{1, 200, 1, 1},
	}
	for _, c := range cases {
		r := NewRenderer(testDotSet(c.total), c.target)
		if got := r.State().BatchSize; got != c.batch {
			t.Errorf("%d/%d: batch size %d, want %d", c.total, c.target, got, c.batch)
		}
		frames := collectFrames(r)
		if len(frames) != c.frames {
			t.Errorf("%d/%d: %d frames, want %d", c.total, c.target, len(frames), c.frames)
		}
	}
}

func TestRendererFrames(t *testing.T) {
	ds := testDotSet(23)
	r := NewRenderer(ds, 5)
	frames := collectFrames(r)

	batch := r.State().BatchSize
	if batch != 4 {
		t.Fatalf("batch size %d, want 4", batch)
	}
	prev := 0
	for i, f := range frames {
		step := f.Revealed - prev
		if i < len(frames)-1 {
			if step != batch {
				t.Errorf("frame %d: revealed %d new dots, want %d", i, step, batch)
			}
		} else if step < 1 || step > batch {
			t.Errorf("last frame: revealed %d new dots, want 1..%d", step, batch)
		}
		if d := cmp.Diff(f.Dots, ds.Dots[:f.Revealed]); d != "" {
			t.Errorf("frame %d: dots are not a prefix (-got +want):\n%s", i, d)
		}
		if d := cmp.Diff(f.Added, ds.Dots[prev:f.Revealed]); d != "" {
			t.Errorf("frame %d: added mismatch (-got +want):\n%s", i, d)
		}
		if f.Done != (i == len(frames)-1) {
			t.Errorf("frame %d: done=%v", i, f.Done)
		}
		if f.Total != 23 {
			t.Errorf("frame %d: total %d", i, f.Total)
		}
		prev = f.Revealed
	}
	if prev != ds.Len() {
		t.Errorf("last frame reveals %d of %d dots", prev, ds.Len())
	}
	if p := frames[len(frames)-1].Progress(); p != 1 {
		t.Errorf("final progress %g", p)
	}
	if s := r.State(); s.Phase != Complete || s.Revealed != 23 {
		t.Errorf("final state %+v", s)
	}

	// the revealed prefix cannot be extended into the set
	f := frames[0]
	_ = append(f.Dots, Dot{X: -1})
	if ds.Dots[f.Revealed].X == -1 {
		t.Error("appending to a frame modified the dot set")
	}
}

func TestRendererEmpty(t *testing.T) {
	r := NewRenderer(&DotSet{}, 200)
	calls := 0
	r.OnComplete = func() { calls++ }

	if s := r.State(); s.Phase != Complete || s.BatchSize != 1 {
		t.Errorf("initial state %+v", s)
	}
	for range 3 {
		if _, ok := r.NextFrame(); ok {
			t.Error("frame from empty set")
		}
	}
	if calls != 1 {
		t.Errorf("OnComplete called %d times", calls)
	}
	if p := (Frame{}).Progress(); p != 1 {
		t.Errorf("empty progress %g", p)
	}
}

func TestRendererOnComplete(t *testing.T) {
	r := NewRenderer(testDotSet(10), 3)
	calls := 0
	r.OnComplete = func() {
		calls++
		if r.State().Phase != Complete {
			t.Error("OnComplete before completion")
		}
	}
	collectFrames(r)
	for range 3 {
		r.NextFrame()
	}
	if calls != 1 {
		t.Errorf("OnComplete called %d times", calls)
	}

	r.Reset()
	collectFrames(r)
	if calls != 2 {
		t.Errorf("after reset: OnComplete called %d times, want 2", calls)
	}
}

func TestRendererReset(t *testing.T) {
	ds := testDotSet(40)
	r := NewRenderer(ds, 7)
	first := collectFrames(r)

	r.Reset()
	if s := r.State(); s.Phase != Rendering || s.Revealed != 0 {
		t.Errorf("state after reset %+v", s)
	}
	second := collectFrames(r)
	if d := cmp.Diff(second, first); d != "" {
		t.Errorf("replay mismatch (-got +want):\n%s", d)
	}
}

func TestAnimate(t *testing.T) {
	ds := testDotSet(10)
	r := NewRenderer(ds, 5)

	ticks := make(chan time.Time, 10)
	for range 10 {
		ticks <- time.Time{}
	}
	var frames []Frame
	err := r.Animate(context.Background(), ticks, func(f Frame) error {
		frames = append(frames, f)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 5 || !frames[4].Done {
		t.Errorf("got %d frames", len(frames))
	}
	if len(ticks) != 5 {
		t.Errorf("%d ticks consumed, want 5", 10-len(ticks))
	}
}

func TestAnimateStop(t *testing.T) {
	ds := testDotSet(10)
	r := NewRenderer(ds, 10)

	// closed tick source
	ticks := make(chan time.Time, 3)
	for range 3 {
		ticks <- time.Time{}
	}
	close(ticks)
	n := 0
	count := func(Frame) error { n++; return nil }
	if err := r.Animate(context.Background(), ticks, count); err != nil {
		t.Fatal(err)
	}
	if n != 3 || r.State().Revealed != 3 {
		t.Errorf("drew %d frames, revealed %d", n, r.State().Revealed)
	}

	// cancelled context; the renderer stays where it was
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Animate(ctx, make(chan time.Time), count); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
	if r.State().Revealed != 3 {
		t.Errorf("revealed %d after cancel", r.State().Revealed)
	}

	// draw error
	errDraw := errors.New("draw failed")
	ticks = make(chan time.Time, 1)
	ticks <- time.Time{}
	err := r.Animate(context.Background(), ticks, func(Frame) error { return errDraw })
	if !errors.Is(err, errDraw) {
		t.Errorf("got %v, want draw error", err)
	}
}

func TestAnimateEmpty(t *testing.T) {
	r := NewRenderer(&DotSet{}, 10)
	called := false
	r.OnComplete = func() { called = true }
	err := r.Animate(context.Background(), nil, func(Frame) error {
		t.Error("draw called for empty set")
		return nil
	})
	if err != nil || !called {
		t.Errorf("err=%v, complete=%v", err, called)
	}
}
