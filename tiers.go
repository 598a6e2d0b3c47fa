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

// Tier is one band of the darkness-to-density table. Pixels with darkness
// strictly above Threshold receive floor(probability*Multiplier) candidate
// dots.
type Tier struct {
	Threshold  float64
	Multiplier int
}

// DefaultTiers returns the six-band table: five tiers plus the sparse
// background band below the last threshold.
func DefaultTiers() []Tier {
	return []Tier{
		{Threshold: 0.8, Multiplier: 6},  // hair, pupils
		{Threshold: 0.6, Multiplier: 4},  // shadows
		{Threshold: 0.4, Multiplier: 3},  // mid tones
		{Threshold: 0.25, Multiplier: 2}, // light
		{Threshold: 0.1, Multiplier: 1},  // highlights
	}
}

// lookupTier returns the index of the first tier whose threshold darkness
// exceeds, or -1 for the background band.
func lookupTier(tiers []Tier, darkness float64) int {
	for i, t := range tiers {
		if darkness > t.Threshold {
			return i
		}
	}
	return -1
}

func validateTiers(tiers []Tier) error {
	if len(tiers) == 0 {
		return configError("empty tier table")
	}
	for i, t := range tiers {
		if !(t.Threshold >= 0 && t.Threshold < 1) {
			return configError("tier %d: threshold %g outside [0, 1)", i, t.Threshold)
		}
		if t.Multiplier <= 0 {
			return configError("tier %d: multiplier must be positive, got %d", i, t.Multiplier)
		}
		if i > 0 && t.Threshold >= tiers[i-1].Threshold {
			return configError("tier %d: thresholds must decrease", i)
		}
	}
	return nil
}
