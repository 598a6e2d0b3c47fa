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
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
)

// Ordering is the presentation order of a DotSet.
type Ordering int

const (
	// OrderPriority sorts dots by decreasing priority.
	OrderPriority Ordering = iota

	// OrderShuffle presents the selected dots in random order.
	OrderShuffle
)

func (o Ordering) String() string {
	switch o {
	case OrderPriority:
		return "priority"
	case OrderShuffle:
		return "shuffle"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// ParseOrdering converts "priority" or "shuffle" to an Ordering.
func ParseOrdering(s string) (Ordering, error) {
	switch s {
	case "priority":
		return OrderPriority, nil
	case "shuffle":
		return OrderShuffle, nil
	}
	return 0, configError("unknown ordering %q", s)
}

// OrderOptions control Order.
type OrderOptions struct {
	Ordering  Ordering
	MaxDots   int
	ROIFactor float64
	Seed      uint64
}

// Priority returns the presentation priority of d: its darkness, multiplied
// by factor if the dot maps into roi in source coordinates.
func Priority(d Dot, roi *Rect, s Scale, factor float64) float64 {
	if roi != nil {
		if x, y := s.ToSource(d.X, d.Y); roi.Contains(x, y) {
			return d.Darkness * factor
		}
	}
	return d.Darkness
}

// Order selects at most opt.MaxDots dots and arranges them for
// presentation. dots is not modified.
//
// Selection always keeps the dots of highest priority. Ties keep their
// generation order, so the result depends only on the input and the seed.
// With OrderShuffle the selected dots are then permuted uniformly.
func Order(dots []Dot, roi *Rect, s Scale, opt OrderOptions) []Dot {
	type ranked struct {
		dot  Dot
		prio float64
	}
	rs := make([]ranked, len(dots))
	for i, d := range dots {
		rs[i] = ranked{dot: d, prio: Priority(d, roi, s, opt.ROIFactor)}
	}
	slices.SortStableFunc(rs, func(a, b ranked) int {
		return cmp.Compare(b.prio, a.prio)
	})

	n := min(len(rs), max(opt.MaxDots, 0))
	out := make([]Dot, n)
	for i := range out {
		out[i] = rs[i].dot
	}

	if opt.Ordering == OrderShuffle {
		rng := rand.New(rand.NewPCG(opt.Seed, shuffleStream))
		rng.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
	}
	return out
}
