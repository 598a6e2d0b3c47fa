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
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Equalization selects the contrast equalization pass of the preprocessor.
type Equalization int

const (
	// EqualizeCLAHE applies contrast-limited adaptive histogram
	// equalization on a grid of tiles.
	EqualizeCLAHE Equalization = iota

	// EqualizeGlobal applies plain histogram equalization to the whole
	// buffer.
	EqualizeGlobal

	// EqualizeNone leaves the intensities unchanged.
	EqualizeNone
)

func (e Equalization) String() string {
	switch e {
	case EqualizeCLAHE:
		return "clahe"
	case EqualizeGlobal:
		return "global"
	case EqualizeNone:
		return "none"
	default:
		return "unknown"
	}
}

// PreprocessOptions control Normalize.
type PreprocessOptions struct {
	// BlurSize is the width of the square Gaussian kernel. Must be odd;
	// 0 or 1 disables blurring.
	BlurSize int

	// Equalization selects the contrast pass.
	Equalization Equalization

	// ClipLimit is the CLAHE histogram clip limit, relative to a uniform
	// histogram. Must be > 0 when CLAHE is used.
	ClipLimit float64

	// TileGrid is the number of CLAHE tiles along each axis. Must be > 0
	// when CLAHE is used.
	TileGrid int

	// EdgeBlend is the weight of the edge map in the output, in [0, 1].
	// Zero disables edge detection.
	EdgeBlend float64

	// CannyLow and CannyHigh are the hysteresis thresholds of the edge
	// detector, applied to the L1 Sobel gradient magnitude.
	CannyLow, CannyHigh int
}

// DefaultPreprocessOptions returns a 3×3 blur, CLAHE with clip limit 2
// on an 8×8 grid and a 30% Canny edge blend.
func DefaultPreprocessOptions() PreprocessOptions {
	return PreprocessOptions{
		BlurSize:     3,
		Equalization: EqualizeCLAHE,
		ClipLimit:    2.0,
		TileGrid:     8,
		EdgeBlend:    0.3,
		CannyLow:     50,
		CannyHigh:    150,
	}
}

func (o *PreprocessOptions) validate() error {
	switch {
	case o.BlurSize < 0 || (o.BlurSize > 1 && o.BlurSize%2 == 0):
		return configError("BlurSize must be 0 or odd, got %d", o.BlurSize)
	case o.Equalization < EqualizeCLAHE || o.Equalization > EqualizeNone:
		return configError("unknown equalization %d", o.Equalization)
	case o.Equalization == EqualizeCLAHE && !(o.ClipLimit > 0):
		return configError("ClipLimit must be positive, got %g", o.ClipLimit)
	case o.Equalization == EqualizeCLAHE && o.TileGrid <= 0:
		return configError("TileGrid must be positive, got %d", o.TileGrid)
	case !(o.EdgeBlend >= 0 && o.EdgeBlend <= 1):
		return configError("EdgeBlend must be in [0, 1], got %g", o.EdgeBlend)
	case o.EdgeBlend > 0 && (o.CannyLow < 0 || o.CannyHigh < o.CannyLow):
		return configError("invalid Canny thresholds %d/%d", o.CannyLow, o.CannyHigh)
	}
	return nil
}

// Normalize resizes src so that its longer side is targetMax pixels and
// then applies blur, contrast equalization and edge blending as selected
// by opt. The source buffer is never modified.
func Normalize(src *Gray, targetMax int, opt PreprocessOptions) (*Gray, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if targetMax <= 0 {
		return nil, configError("target dimension must be positive, got %d", targetMax)
	}
	if err := opt.validate(); err != nil {
		return nil, err
	}

	w, h := normalizedSize(src.Width, src.Height, targetMax)
	img := resize(src, w, h)

	if opt.BlurSize > 1 {
		img = gaussianBlur(img, opt.BlurSize)
	}

	switch opt.Equalization {
	case EqualizeCLAHE:
		img = equalizeCLAHE(img, opt.ClipLimit, opt.TileGrid)
	case EqualizeGlobal:
		img = equalizeHist(img)
	}

	if opt.EdgeBlend > 0 {
		edges := canny(img, opt.CannyLow, opt.CannyHigh)
		blendInto(img, edges, opt.EdgeBlend)
	}

	return img, nil
}

// normalizedSize returns the size of a w×h image scaled so that its longer
// side equals target. The shorter side is rounded and at least 1.
func normalizedSize(w, h, target int) (int, int) {
	if w >= h {
		return target, max(1, int(math.Round(float64(target)*float64(h)/float64(w))))
	}
	return max(1, int(math.Round(float64(target)*float64(w)/float64(h)))), target
}

// resize scales src to w×h with bilinear interpolation.
func resize(src *Gray, w, h int) *Gray {
	dst := image.NewGray(image.Rect(0, 0, w, h))
	if w == src.Width && h == src.Height {
		copy(dst.Pix, src.Pix)
	} else {
		draw.BiLinear.Scale(dst, dst.Bounds(), src.Image(), src.Image().Bounds(), draw.Src, nil)
	}
	return &Gray{Width: w, Height: h, Pix: dst.Pix}
}

// gaussianKernel returns a normalized 1D Gaussian kernel of the given odd
// size. The standard deviation follows the usual rule for kernels given
// only by their size: σ = 0.3·((size-1)/2 - 1) + 0.8.
func gaussianKernel(size int) []float64 {
	sigma := 0.3*(float64(size-1)*0.5-1) + 0.8
	half := size / 2
	kernel := make([]float64, size)
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - half)
		kernel[i] = math.Exp(-x * x / twoSigmaSq)
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// gaussianBlur applies a separable Gaussian blur. Pixels outside the
// buffer are replaced by the nearest edge pixel.
func gaussianBlur(src *Gray, size int) *Gray {
	kernel := gaussianKernel(size)
	half := size / 2
	w, h := src.Width, src.Height

	tmp := make([]float64, w*h)
	for y := range h {
		row := src.Pix[y*w : (y+1)*w]
		for x := range w {
			var acc float64
			for k, kv := range kernel {
				xx := min(max(x+k-half, 0), w-1)
				acc += float64(row[xx]) * kv
			}
			tmp[y*w+x] = acc
		}
	}

	dst := NewGray(w, h)
	for y := range h {
		for x := range w {
			var acc float64
			for k, kv := range kernel {
				yy := min(max(y+k-half, 0), h-1)
				acc += tmp[yy*w+x] * kv
			}
			dst.Pix[y*w+x] = clampByte(acc)
		}
	}
	return dst
}

// blendInto replaces img by (1-ratio)·img + ratio·edges, saturated.
func blendInto(img, edges *Gray, ratio float64) {
	for i, v := range img.Pix {
		img.Pix[i] = clampByte((1-ratio)*float64(v) + ratio*float64(edges.Pix[i]))
	}
}

func clampByte(v float64) uint8 {
	v = math.Round(v)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
