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
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

// SampleParams control Sample.
type SampleParams struct {
	Tiers            []Tier
	AcceptCeiling    float64
	BackgroundChance float64
	Jitter           float64
	Seed             uint64

	// Workers is the number of rows sampled concurrently.
	// The result does not depend on it.
	Workers int
}

// sampleParams extracts the sampler settings from a Config.
func (c *Config) sampleParams() SampleParams {
	return SampleParams{
		Tiers:            c.Tiers,
		AcceptCeiling:    c.AcceptCeiling,
		BackgroundChance: c.BackgroundChance,
		Jitter:           c.Jitter,
		Seed:             c.RandomSeed,
		Workers:          c.Workers,
	}
}

// shuffleStream is the PCG sequence number reserved for the orderer.
// Row streams use the row index.
const shuffleStream = ^uint64(0)

// rowRand returns the random source used for one row of the buffer.
func rowRand(seed uint64, row int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(row)))
}

// Sample converts every pixel of buf into zero or more jittered candidate
// dots. The dots are returned in row-major generation order; their number
// is not bounded here.
//
// For each pixel, probability = darkness·weight. The tier of the pixel
// gives floor(probability·multiplier) candidates; pixels below all tiers
// get one candidate with chance BackgroundChance. Each candidate is kept
// with probability min(probability, AcceptCeiling).
func Sample(buf *Gray, wm *WeightMap, p SampleParams) []Dot {
	rows := make([][]Dot, buf.Height)

	workers := max(p.Workers, 1)
	if workers == 1 {
		for y := range buf.Height {
			rows[y] = sampleRow(buf, wm, y, &p)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		for y := range buf.Height {
			g.Go(func() error {
				rows[y] = sampleRow(buf, wm, y, &p)
				return nil
			})
		}
		_ = g.Wait()
	}

	n := 0
	for _, r := range rows {
		n += len(r)
	}
	dots := make([]Dot, 0, n)
	for _, r := range rows {
		dots = append(dots, r...)
	}
	return dots
}

// sampleRow generates the candidates of row y. Each row owns its random
// source and its output slice.
func sampleRow(buf *Gray, wm *WeightMap, y int, p *SampleParams) []Dot {
	rng := rowRand(p.Seed, y)
	var out []Dot
	for x := range buf.Width {
		darkness := float64(255-buf.At(x, y)) / 255
		prob := darkness * wm.At(x, y)

		var count int
		if t := lookupTier(p.Tiers, darkness); t >= 0 {
			count = int(prob * float64(p.Tiers[t].Multiplier))
		} else if rng.Float64() < p.BackgroundChance {
			count = 1
		}

		accept := min(prob, p.AcceptCeiling)
		for range count {
			if rng.Float64() >= accept {
				continue
			}
			out = append(out, Dot{
				X:        float64(x) + (2*rng.Float64()-1)*p.Jitter,
				Y:        float64(y) + (2*rng.Float64()-1)*p.Jitter,
				Darkness: darkness,
				Size:     dotSize(darkness),
			})
		}
	}
	return out
}
