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

// Stipple converts an image into a dot drawing and writes the drawing,
// its progressive reveal and the dot data in several formats.
//
// Usage:
//
//	stipple -i photo.jpg -gif reveal.gif -png final.png
//
// The region of interest, given with -roi as "x,y,w,h" in source pixels,
// is drawn denser and revealed first.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"gonum.org/v1/plot/vg"

	"seehuhn.de/go/stipple"
	"seehuhn.de/go/stipple/output"
)

func main() {
	err := run(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "stipple:", err)
		os.Exit(1)
	}
}

type options struct {
	input   string
	roi     string
	verbose bool

	pngOut  string
	gifOut  string
	pdfOut  string
	plotOut string
	jsonOut string

	delay time.Duration
	scale float64
}

func run(args []string) error {
	cfg := stipple.DefaultConfig()
	var opt options
	var ordering string

	fs := flag.NewFlagSet("stipple", flag.ContinueOnError)
	fs.StringVar(&opt.input, "i", "", "input image (jpeg, png, gif, bmp, tiff, webp)")
	fs.StringVar(&opt.roi, "roi", "", "region of interest \"x,y,w,h\" in source pixels")
	fs.IntVar(&cfg.MaxDots, "dots", cfg.MaxDots, "maximal number of dots")
	fs.IntVar(&cfg.TargetMaxDimension, "dim", cfg.TargetMaxDimension, "longer side of the working buffer")
	fs.Float64Var(&cfg.BaseWeight, "base", cfg.BaseWeight, "base sampling weight")
	fs.Float64Var(&cfg.ROIBoost, "boost", cfg.ROIBoost, "weight multiplier inside the region of interest")
	fs.StringVar(&ordering, "order", cfg.Ordering.String(), "presentation order: priority or shuffle")
	fs.IntVar(&cfg.TargetFrameCount, "frames", cfg.TargetFrameCount, "approximate number of animation frames")
	fs.Uint64Var(&cfg.RandomSeed, "seed", uint64(time.Now().UnixNano()), "random seed")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of sampling goroutines")
	fs.StringVar(&opt.pngOut, "png", "", "write the final drawing as PNG")
	fs.StringVar(&opt.gifOut, "gif", "", "write the progressive reveal as animated GIF")
	fs.StringVar(&opt.pdfOut, "pdf", "", "write the final drawing as PDF")
	fs.StringVar(&opt.plotOut, "plot", "", "write a scatter plot (format from extension)")
	fs.StringVar(&opt.jsonOut, "json", "", "write the dots as JSON")
	fs.DurationVar(&opt.delay, "delay", 40*time.Millisecond, "GIF frame delay")
	fs.Float64Var(&opt.scale, "scale", 4, "output pixels per buffer pixel")
	fs.BoolVar(&opt.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if opt.input == "" {
		fs.Usage()
		return errors.New("missing input image (-i)")
	}

	level := slog.LevelInfo
	if opt.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	stipple.SetLogger(logger)

	var err error
	cfg.Ordering, err = stipple.ParseOrdering(ordering)
	if err != nil {
		return err
	}
	engine, err := stipple.NewEngine(cfg)
	if err != nil {
		return err
	}

	src, err := loadImage(opt.input)
	if err != nil {
		return err
	}

	var detector stipple.Detector
	if opt.roi != "" {
		r, err := parseRect(opt.roi)
		if err != nil {
			return err
		}
		detector = stipple.StaticDetector(r)
	}

	ds, err := engine.GenerateDetected(src, detector)
	if err != nil {
		return err
	}
	if ds.Warning != nil {
		slog.Warn("empty drawing", "input", opt.input, "err", ds.Warning)
	}

	return writeOutputs(ds, cfg, opt)
}

func writeOutputs(ds *stipple.DotSet, cfg stipple.Config, opt options) error {
	canvas := stipple.DefaultCanvasOptions()
	canvas.PixelsPerUnit = opt.scale

	if opt.pngOut != "" {
		err := writeFile(opt.pngOut, func(w io.Writer) error {
			return output.WritePNG(w, ds, canvas)
		})
		if err != nil {
			return err
		}
	}
	if opt.gifOut != "" {
		err := writeFile(opt.gifOut, func(w io.Writer) error {
			return output.WriteGIF(w, ds, cfg.TargetFrameCount, canvas, opt.delay)
		})
		if err != nil {
			return err
		}
	}
	if opt.jsonOut != "" {
		err := writeFile(opt.jsonOut, func(w io.Writer) error {
			return output.WriteJSON(w, ds)
		})
		if err != nil {
			return err
		}
	}
	if opt.pdfOut != "" {
		if err := output.WritePDF(opt.pdfOut, ds, canvas); err != nil {
			return err
		}
	}
	if opt.plotOut != "" {
		if err := output.WritePlot(opt.plotOut, ds, 6*vg.Inch, 2); err != nil {
			return err
		}
	}
	return nil
}

func loadImage(name string) (*stipple.Gray, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	slog.Debug("decoded image", "file", name, "format", format, "size", img.Bounds().Size())
	return stipple.GrayFromImage(img), nil
}

// parseRect parses "x,y,w,h".
func parseRect(s string) (stipple.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return stipple.Rect{}, fmt.Errorf("invalid rectangle %q, want x,y,w,h", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return stipple.Rect{}, fmt.Errorf("invalid rectangle %q: %w", s, err)
		}
		v[i] = n
	}
	return stipple.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}

func writeFile(name string, write func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
