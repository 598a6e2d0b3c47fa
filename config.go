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
	"fmt"
	"math"
)

// Config holds all parameters of a stippling run.
// Start from DefaultConfig and override individual fields.
type Config struct {
	// MaxDots caps the number of dots in the result. Must be > 0.
	MaxDots int

	// TargetMaxDimension is the length of the longer side of the
	// normalized buffer in pixels. Must be > 0.
	TargetMaxDimension int

	// BaseWeight is the sampling weight of every pixel. Must be >= 0.
	BaseWeight float64

	// ROIBoost multiplies the weight inside the region of interest.
	// Must be >= 1.
	ROIBoost float64

	// Ordering selects how dots are arranged for presentation.
	Ordering Ordering

	// TargetFrameCount is the approximate number of frames of the
	// progressive reveal. Must be > 0.
	TargetFrameCount int

	// RandomSeed seeds all stochastic choices. Every value is valid.
	RandomSeed uint64

	// AcceptCeiling bounds the per-candidate acceptance probability.
	// Must be in (0, 1].
	AcceptCeiling float64

	// ROIPriorityFactor multiplies the priority of dots inside the region
	// of interest. Must be >= 1.
	ROIPriorityFactor float64

	// BackgroundChance is the probability that a pixel below the lowest
	// tier receives a candidate dot. Must be in [0, 1].
	BackgroundChance float64

	// Jitter is the maximal positional offset of a dot, in buffer units.
	// Must be in [0, 0.5).
	Jitter float64

	// Tiers maps darkness to candidate multipliers. Thresholds must be
	// strictly decreasing and in [0, 1); multipliers must be positive.
	Tiers []Tier

	// Workers is the number of goroutines used for sampling.
	// Values < 1 are treated as 1.
	Workers int

	// Preprocess controls image normalization.
	Preprocess PreprocessOptions
}

// Default values for Config.
const (
	DefaultMaxDots            = 8000
	DefaultTargetMaxDimension = 150
	DefaultBaseWeight         = 0.8
	DefaultROIBoost           = 1.5
	DefaultTargetFrameCount   = 200
	DefaultAcceptCeiling      = 0.9
	DefaultROIPriorityFactor  = 2.0
	DefaultBackgroundChance   = 0.1
	DefaultJitter             = 0.15
)

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		MaxDots:            DefaultMaxDots,
		TargetMaxDimension: DefaultTargetMaxDimension,
		BaseWeight:         DefaultBaseWeight,
		ROIBoost:           DefaultROIBoost,
		Ordering:           OrderPriority,
		TargetFrameCount:   DefaultTargetFrameCount,
		AcceptCeiling:      DefaultAcceptCeiling,
		ROIPriorityFactor:  DefaultROIPriorityFactor,
		BackgroundChance:   DefaultBackgroundChance,
		Jitter:             DefaultJitter,
		Tiers:              DefaultTiers(),
		Workers:            1,
		Preprocess:         DefaultPreprocessOptions(),
	}
}

// Validate checks all fields and returns an error wrapping
// ErrInvalidConfig for the first problem found.
func (c *Config) Validate() error {
	switch {
	case c.MaxDots <= 0:
		return configError("MaxDots must be positive, got %d", c.MaxDots)
	case c.TargetMaxDimension <= 0:
		return configError("TargetMaxDimension must be positive, got %d", c.TargetMaxDimension)
	case !(c.BaseWeight >= 0) || math.IsInf(c.BaseWeight, 0):
		return configError("BaseWeight must be finite and >= 0, got %g", c.BaseWeight)
	case !(c.ROIBoost >= 1) || math.IsInf(c.ROIBoost, 0):
		return configError("ROIBoost must be finite and >= 1, got %g", c.ROIBoost)
	case c.Ordering != OrderPriority && c.Ordering != OrderShuffle:
		return configError("unknown ordering %d", c.Ordering)
	case c.TargetFrameCount <= 0:
		return configError("TargetFrameCount must be positive, got %d", c.TargetFrameCount)
	case !(c.AcceptCeiling > 0 && c.AcceptCeiling <= 1):
		return configError("AcceptCeiling must be in (0, 1], got %g", c.AcceptCeiling)
	case !(c.ROIPriorityFactor >= 1) || math.IsInf(c.ROIPriorityFactor, 0):
		return configError("ROIPriorityFactor must be finite and >= 1, got %g", c.ROIPriorityFactor)
	case !(c.BackgroundChance >= 0 && c.BackgroundChance <= 1):
		return configError("BackgroundChance must be in [0, 1], got %g", c.BackgroundChance)
	case !(c.Jitter >= 0 && c.Jitter < 0.5):
		return configError("Jitter must be in [0, 0.5), got %g", c.Jitter)
	}
	if err := validateTiers(c.Tiers); err != nil {
		return err
	}
	return c.Preprocess.validate()
}

func configError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}
